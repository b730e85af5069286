package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/handiism/mzk-ostrich-remover/internal/album"
	"github.com/handiism/mzk-ostrich-remover/internal/audio"
	"github.com/handiism/mzk-ostrich-remover/internal/config"
	"github.com/handiism/mzk-ostrich-remover/internal/crawl"
	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"
	"github.com/handiism/mzk-ostrich-remover/internal/model"
	"github.com/handiism/mzk-ostrich-remover/internal/report"
)

// ErrInvalidRoot is returned when the root folder is not usable. It is the
// only fatal error of a run.
var ErrInvalidRoot = errors.New("invalid root folder")

// Mode selects what a run does to the library.
type Mode int

const (
	// ModeScan checks names and tags without writing anything.
	ModeScan Mode = iota

	// ModeFill writes tags derived from file and folder names.
	ModeFill

	// ModeClean removes managed tags and embedded pictures.
	ModeClean
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeScan:
		return "scan"
	case ModeFill:
		return "fill"
	case ModeClean:
		return "clean"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AlbumResult is the outcome of one album folder.
type AlbumResult struct {
	*album.Result

	// Problems holds the aggregation errors followed by the per-track
	// errors found while reading or writing tags.
	Problems []*model.ParseError
}

// Stats summarizes a finished run.
type Stats struct {
	Mode        Mode
	Root        string
	Info        *crawl.FolderInfo
	Albums      int
	TotalTracks int

	// Tracks is the number of tracks scanned, filled or cleaned.
	Tracks   int
	Errors   int
	Warnings int
	Purity   float64

	// ReportPath is set when a scan report was written.
	ReportPath string

	// Results holds the albums having at least one problem.
	Results []*AlbumResult
}

// Runner walks a library root and scans, fills or cleans every album.
//
// Albums and tracks are processed one at a time, in name order. Counters
// are atomics so Progress can be polled from another goroutine while Run
// is in progress.
//
// Example:
//
//	r := runner.New(settings, logger, version, func(e runner.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	stats, err := r.Run(runner.ModeScan, "/music/")
//	if errors.Is(err, runner.ErrInvalidRoot) {
//	    os.Exit(1)
//	}
type Runner struct {
	settings  *config.Settings
	logger    *zap.Logger
	version   string
	images    *ioutils.ImageService
	filler    *audio.Filler
	cleaner   *audio.Cleaner
	inspector *audio.Inspector

	totalTracks     int64
	processedTracks int64
	errorCount      int64
	warningCount    int64

	onProgress func(ProgressEvent)

	// dirFS opens the library root for listing.
	dirFS func(root string) fs.FS
}

// New creates a Runner. logger may be nil.
func New(settings *config.Settings, logger *zap.Logger, version string, onProgress func(ProgressEvent)) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		settings:   settings,
		logger:     logger,
		version:    version,
		images:     ioutils.NewImageService(),
		dirFS:      os.DirFS,
		filler:     audio.NewFiller(settings.CoverSize),
		cleaner:    audio.NewCleaner(),
		inspector:  audio.NewInspector(settings.CoverSize),
		onProgress: onProgress,
	}
}

// ValidateRoot checks that root ends with a path separator ("/" or "\")
// and is an existing directory.
func ValidateRoot(root string) error {
	if !strings.HasSuffix(root, "/") && !strings.HasSuffix(root, `\`) {
		return fmt.Errorf("%w: %q must end with a path separator", ErrInvalidRoot, root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrInvalidRoot, root)
	}
	return nil
}

// Progress returns the processed and expected track counts and the error
// count so far.
func (r *Runner) Progress() (processed, total, errors int64) {
	return atomic.LoadInt64(&r.processedTracks), atomic.LoadInt64(&r.totalTracks),
		atomic.LoadInt64(&r.errorCount)
}

// Purity returns the share of processed tracks without error, clamped to
// [0, 1]. It is 1 when nothing was processed.
func Purity(errors, processed int) float64 {
	if processed <= 0 {
		return 1
	}
	p := 1 - float64(errors)/float64(processed)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Run processes every album under root in the given mode. Only an invalid
// root aborts the run; every other problem is recorded in the returned
// Stats.
func (r *Runner) Run(mode Mode, root string) (*Stats, error) {
	if err := ValidateRoot(root); err != nil {
		return nil, err
	}
	ctx := context.Background()

	r.progress(ProgressEvent{Message: "Retrieving folder information...", Level: LevelInfo})
	fsys := r.dirFS(root)
	info, statFailures, err := crawl.StatFS(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	albums, failures, err := crawl.AlbumsFS(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	stats := &Stats{
		Mode:        mode,
		Root:        root,
		Info:        info,
		Albums:      len(albums),
		TotalTracks: info.FLAC + info.MP3,
	}
	atomic.StoreInt64(&r.totalTracks, int64(stats.TotalTracks))
	atomic.StoreInt64(&r.processedTracks, 0)
	atomic.StoreInt64(&r.errorCount, 0)
	atomic.StoreInt64(&r.warningCount, 0)

	r.logger.Info("run started",
		zap.Stringer("mode", mode),
		zap.String("root", root),
		zap.Int("albums", stats.Albums),
		zap.Int("tracks", stats.TotalTracks))
	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Starting %s of %s (%d tracks)", mode, root, stats.TotalTracks),
		Level:   LevelInfo,
	})

	var rep *report.Report
	if mode == ModeScan && r.settings.DumpReport {
		rep = report.New(r.version, root, info)
	}

	for _, res := range unreadable(append(statFailures, failures...)) {
		r.record(res)
		stats.Results = append(stats.Results, res)
		if rep != nil {
			rep.AddAlbum(res.Result, res.Problems)
		}
	}

	steps := newStepper(stats.TotalTracks)
	for _, dir := range albums {
		var res *AlbumResult
		switch mode {
		case ModeFill:
			res = r.fillAlbum(ctx, dir)
		case ModeClean:
			res = r.cleanAlbum(dir)
		default:
			res = r.scanAlbum(dir)
		}
		r.record(res)

		if len(res.Problems) > 0 {
			stats.Results = append(stats.Results, res)
		}
		if rep != nil {
			rep.AddAlbum(res.Result, res.Problems)
		}

		processed, _, errCount := r.Progress()
		if percent := steps.advance(int(processed)); percent > 0 {
			r.reportStep(mode, steps, percent, dir.Artist, int(errCount), int(processed))
		}
	}

	processed, _, errCount := r.Progress()
	stats.Tracks = int(processed)
	stats.Errors = int(errCount)
	stats.Warnings = int(atomic.LoadInt64(&r.warningCount))
	stats.Purity = Purity(stats.Errors, stats.Tracks)

	if rep != nil {
		rep.Finish(stats.Errors, stats.Tracks, stats.Purity)
		path, err := rep.Save(ctx, r.settings.ReportDir)
		if err != nil {
			r.logger.Error("report not saved", zap.Error(err))
			r.progress(ProgressEvent{Message: fmt.Sprintf("Error saving report: %v", err), Level: LevelError})
		} else {
			stats.ReportPath = path
			r.progress(ProgressEvent{Message: fmt.Sprintf("Report saved to %s", path), Level: LevelSuccess})
		}
	}

	r.logger.Info("run finished",
		zap.Stringer("mode", mode),
		zap.Int("tracks", stats.Tracks),
		zap.Int("errors", stats.Errors),
		zap.Float64("purity", stats.Purity))
	return stats, nil
}

func (r *Runner) reportStep(mode Mode, steps *stepper, percent int, artist string, errCount, processed int) {
	letter := initial(artist)
	var msg string
	switch mode {
	case ModeScan:
		msg = scanProgress(percent, steps.lastLetter, letter, errCount, processed, Purity(errCount, processed))
	default:
		msg = fmt.Sprintf("%3d%% %d tracks %sed", percent, processed, mode)
	}
	steps.lastLetter = letter
	r.progress(ProgressEvent{Message: msg, Level: LevelInfo})
}

// scanAlbum aggregates an album and, when enabled, compares the tags of
// its conformant tracks.
func (r *Runner) scanAlbum(dir crawl.AlbumDir) *AlbumResult {
	res := &AlbumResult{Result: album.Aggregate(dir.Path, dir.Files)}
	res.Problems = append(res.Problems, res.Errors...)

	if r.settings.ScanTags {
		for _, t := range res.Conformant() {
			res.Problems = append(res.Problems, r.inspector.Inspect(t)...)
		}
	}

	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Scanned %s: %d tracks, %d errors", dir.Path, res.Album.TotalTrack, model.CountErrors(res.Problems)),
		Level:   LevelVerbose,
	})
	atomic.AddInt64(&r.processedTracks, int64(res.Album.TotalTrack))
	return res
}

// fillAlbum writes derived tags and the folder cover into every conformant
// track of the album.
func (r *Runner) fillAlbum(ctx context.Context, dir crawl.AlbumDir) *AlbumResult {
	res := &AlbumResult{Result: album.Aggregate(dir.Path, dir.Files)}
	res.Problems = append(res.Problems, res.Errors...)

	cover := r.loadCover(ctx, res)

	filled := 0
	for _, t := range res.Conformant() {
		if err := r.fillTrack(t, cover); err != nil {
			res.Problems = append(res.Problems, model.NewParseError(model.TagIOFailure, t.Path, err.Error()))
			continue
		}
		filled++
	}

	atomic.AddInt64(&r.processedTracks, int64(filled))
	return res
}

func (r *Runner) fillTrack(t *model.Track, cover *audio.Picture) error {
	store, err := audio.Open(t.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	out, err := r.filler.Fill(store, t, cover)
	if err != nil {
		return err
	}
	if out.Saved {
		r.progress(ProgressEvent{
			Message: fmt.Sprintf("Filled %s (%s)", t.FileName, strings.Join(out.Changed, ", ")),
			Level:   LevelVerbose,
		})
	}
	return nil
}

// loadCover reads the album cover, resized when enabled. It returns nil
// when the album has no usable cover.
func (r *Runner) loadCover(ctx context.Context, res *AlbumResult) *audio.Picture {
	a := res.Album
	if !a.HasCover {
		return nil
	}

	cover, err := r.images.LoadCover(ctx, a.CoverPath())
	if err == nil && r.settings.ResizeCover && !cover.IsSquare(r.settings.CoverSize) {
		cover, err = r.images.FitCover(ctx, cover, r.settings.CoverSize)
	}
	if err != nil {
		res.Problems = append(res.Problems, model.NewParseError(model.TagIOFailure, a.CoverPath(), err.Error()))
		return nil
	}

	return &audio.Picture{
		Data:        cover.Data,
		MIME:        cover.MIME,
		Width:       cover.Width,
		Height:      cover.Height,
		ColorDepth:  cover.ColorDepth,
		Description: a.CoverFileName,
	}
}

// cleanAlbum resets every audio file of the album, conformant or not.
func (r *Runner) cleanAlbum(dir crawl.AlbumDir) *AlbumResult {
	res := &AlbumResult{Result: album.Aggregate(dir.Path, dir.Files)}

	cleaned := 0
	for _, t := range res.Tracks {
		if err := r.cleanTrack(t); err != nil {
			res.Problems = append(res.Problems, model.NewParseError(model.TagIOFailure, t.Path, err.Error()))
			continue
		}
		cleaned++
	}

	atomic.AddInt64(&r.processedTracks, int64(cleaned))
	return res
}

func (r *Runner) cleanTrack(t *model.Track) error {
	store, err := audio.Open(t.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := r.cleaner.Clean(store); err != nil {
		return err
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Cleaned %s", t.FileName), Level: LevelVerbose})
	return nil
}

// unreadable turns the folders and files the crawl could not read into
// results carrying one TagIOFailure each, one per path.
func unreadable(failures []crawl.Failure) []*AlbumResult {
	seen := make(map[string]bool)
	var results []*AlbumResult
	for _, f := range failures {
		if seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		results = append(results, &AlbumResult{
			Result:   &album.Result{Album: model.NewAlbum(f.Path)},
			Problems: []*model.ParseError{model.NewParseError(model.TagIOFailure, f.Path, f.Err.Error())},
		})
	}
	return results
}

// record logs the problems of an album and folds them into the counters.
func (r *Runner) record(res *AlbumResult) {
	for _, p := range res.Problems {
		fields := []zap.Field{
			zap.Stringer("kind", p.Kind),
			zap.String("path", p.Path),
			zap.String("detail", p.Detail),
		}
		switch {
		case p.Kind.IsWarning():
			atomic.AddInt64(&r.warningCount, 1)
			r.logger.Info("cover will be replaced", fields...)
		case p.Kind == model.TagIOFailure:
			atomic.AddInt64(&r.errorCount, 1)
			r.logger.Error("tag container failure", fields...)
		default:
			atomic.AddInt64(&r.errorCount, 1)
			r.logger.Warn("convention violation", fields...)
		}
	}
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}
