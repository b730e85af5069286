// Package config provides configuration management for mzk-ostrich-remover.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from OSTRICH_* environment variables and .env files
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reports go to ./output
//	// Covers are expected to be 1000x1000
//	// Scans compare existing tags
//
// # Loading from File
//
//	_ = config.LoadEnv() // optional ./.env
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Invalid JSON or environment value
//	}
//
// A missing file yields the defaults. Environment variables always win over
// the file:
//
//	OSTRICH_REPORT_DIR   report directory
//	OSTRICH_LOG_FILE     rotated JSON log file, empty to disable
//	OSTRICH_LOG_LEVEL    debug, info, warn or error
//	OSTRICH_COVER_SIZE   expected embedded cover size in pixels
//	OSTRICH_SCAN_TAGS    compare existing tags during scans
package config
