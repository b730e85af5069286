package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables overriding the settings file.
const (
	EnvReportDir = "OSTRICH_REPORT_DIR"
	EnvLogFile   = "OSTRICH_LOG_FILE"
	EnvLogLevel  = "OSTRICH_LOG_LEVEL"
	EnvCoverSize = "OSTRICH_COVER_SIZE"
	EnvScanTags  = "OSTRICH_SCAN_TAGS"
)

// Settings holds all configuration options.
type Settings struct {
	// Report settings
	ReportDir  string `json:"report_dir"`
	DumpReport bool   `json:"dump_report"`

	// Logging settings
	LogFile       string `json:"log_file"`
	LogLevel      string `json:"log_level"` // debug, info, warn, error
	LogMaxSizeMB  int    `json:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"`
	Verbose       bool   `json:"verbose"`

	// Cover settings
	CoverSize   int  `json:"cover_size"`
	ResizeCover bool `json:"resize_cover"`

	// Scan settings
	ScanTags bool `json:"scan_tags"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ReportDir:     "./output",
		DumpReport:    false,
		LogFile:       "",
		LogLevel:      "warn",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		Verbose:       false,
		CoverSize:     1000,
		ResizeCover:   false,
		ScanTags:      true,
	}
}

// DefaultPath returns the settings file location under the user
// configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ostrich.json"
	}
	return filepath.Join(dir, "mzk-ostrich-remover", "settings.json")
}

// Load reads settings from a JSON file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
		}
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadEnv loads .env files into the process environment without
// overriding variables that are already set. With no argument it loads
// ./.env. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings with the OSTRICH_* environment variables.
func (s *Settings) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvReportDir); ok && v != "" {
		s.ReportDir = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		s.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvCoverSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid %s %q", EnvCoverSize, v)
		}
		s.CoverSize = size
	}
	if v, ok := os.LookupEnv(EnvScanTags); ok && v != "" {
		scan, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", EnvScanTags, v)
		}
		s.ScanTags = scan
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
