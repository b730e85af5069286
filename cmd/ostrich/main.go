package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/mzk-ostrich-remover/internal/config"
	"github.com/handiism/mzk-ostrich-remover/internal/console"
	"github.com/handiism/mzk-ostrich-remover/internal/logging"
	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

var version = "1.1.3"

var errMissingMode = errors.New("missing mode")

type options struct {
	scan       bool
	fill       bool
	clean      bool
	dump       bool
	verbose    bool
	configPath string
}

// mode returns the selected mode. Scan wins over fill, fill over clean.
func (o *options) mode() (runner.Mode, error) {
	switch {
	case o.scan:
		return runner.ModeScan, nil
	case o.fill:
		return runner.ModeFill, nil
	case o.clean:
		return runner.ModeClean, nil
	default:
		return 0, errMissingMode
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ostrich <folder>",
		Short: "Scan, fill and clean music tags from file and folder names",
		Long: "ostrich checks a library laid out as Artist/Year - Album/Track against its\n" +
			"naming convention, fills FLAC and MP3 tags from the names, or cleans them.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.scan, "scan", "s", false, "Scan a folder to test it against the naming convention")
	flags.BoolVarP(&opts.fill, "fill", "f", false, "Fill tags with folder name and file name information")
	flags.BoolVarP(&opts.clean, "clean", "c", false, "Clean all previously set tags and embedded covers")
	flags.BoolVarP(&opts.dump, "dump", "d", false, "Dump scan errors as JSON in the report folder")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Display progress details and the errored tracks tree")
	flags.StringVar(&opts.configPath, "config", "", "Path to the settings file")

	return cmd
}

func run(out io.Writer, opts *options, root string) error {
	printer := console.NewPrinter(out, version, opts.verbose)

	if err := runner.ValidateRoot(root); err != nil {
		printer.InvalidPath(root, err)
		return err
	}
	mode, err := opts.mode()
	if err != nil {
		printer.MissingArguments()
		return err
	}

	if err := config.LoadEnv(); err != nil {
		return err
	}
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.dump {
		settings.DumpReport = true
	}
	if opts.verbose {
		settings.Verbose = true
	}

	logger, err := logging.New(logging.Config{
		Level:      settings.LogLevel,
		Verbose:    settings.Verbose,
		File:       settings.LogFile,
		MaxSizeMB:  settings.LogMaxSizeMB,
		MaxBackups: settings.LogMaxBackups,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	printer.Banner()
	stats, err := execute(out, printer, settings, logger, mode, root)
	if err != nil {
		return err
	}

	printer.RootInfo(stats.Info)
	printer.End(stats)
	if settings.Verbose && mode == runner.ModeScan {
		printer.ErroredTracks(stats.Results)
	}
	return nil
}

// execute runs the runner, drawing a progress bar unless verbose output
// was requested.
func execute(out io.Writer, printer *console.Printer, settings *config.Settings, logger *zap.Logger, mode runner.Mode, root string) (*runner.Stats, error) {
	if settings.Verbose {
		return runner.New(settings, logger, version, printer.Event).Run(mode, root)
	}

	var (
		mu  sync.Mutex
		bar *progressbar.ProgressBar
	)
	r := runner.New(settings, logger, version, func(e runner.ProgressEvent) {
		if e.Level == runner.LevelVerbose {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if bar != nil {
			_ = bar.Clear()
		}
		printer.Event(e)
	})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				processed, total, _ := r.Progress()
				if total == 0 {
					continue
				}
				mu.Lock()
				if bar == nil {
					bar = progressbar.NewOptions64(total,
						progressbar.OptionSetWriter(out),
						progressbar.OptionSetDescription(mode.String()),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}
				_ = bar.Set64(processed)
				mu.Unlock()
			}
		}
	}()

	stats, err := r.Run(mode, root)
	close(done)
	wg.Wait()

	if bar != nil {
		_ = bar.Finish()
	}
	return stats, err
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, runner.ErrInvalidRoot) && !errors.Is(err, errMissingMode) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
