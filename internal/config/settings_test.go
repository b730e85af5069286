package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	s := DefaultSettings()
	s.ReportDir = "/tmp/reports"
	s.CoverSize = 600
	s.ResizeCover = true
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true}`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Verbose)
	assert.Equal(t, 1000, s.CoverSize)
	assert.True(t, s.ScanTags)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvReportDir, "/reports")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvCoverSize, "500")
	t.Setenv(EnvScanTags, "false")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())

	assert.Equal(t, "/reports", s.ReportDir)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 500, s.CoverSize)
	assert.False(t, s.ScanTags)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv(EnvCoverSize, "big")
	assert.Error(t, DefaultSettings().ApplyEnv())
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OSTRICH_LOG_FILE=/tmp/ostrich.log\n"), 0644))
	t.Setenv(EnvLogFile, "")
	require.NoError(t, os.Unsetenv(EnvLogFile))

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")))

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())
	assert.Equal(t, "/tmp/ostrich.log", s.LogFile)
}
