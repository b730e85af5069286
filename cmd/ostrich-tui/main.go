package main

import (
	"fmt"
	"io"
	"os"

	"github.com/handiism/mzk-ostrich-remover/internal/config"
	"github.com/handiism/mzk-ostrich-remover/internal/logging"
	"github.com/handiism/mzk-ostrich-remover/internal/tui"
)

var version = "1.1.3"

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The console would draw over the alternate screen; only the log file
	// receives entries.
	logger, err := logging.New(logging.Config{
		Level:      settings.LogLevel,
		Console:    io.Discard,
		File:       settings.LogFile,
		MaxSizeMB:  settings.LogMaxSizeMB,
		MaxBackups: settings.LogMaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := tui.Run(settings, logger, version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
