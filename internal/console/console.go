package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/handiism/mzk-ostrich-remover/internal/crawl"
	"github.com/handiism/mzk-ostrich-remover/internal/model"
	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

const rule = "────────────────────────────────────────"

// Printer writes the command line output.
type Printer struct {
	w       io.Writer
	version string
	verbose bool
	t       Theme
}

// NewPrinter creates a Printer writing to w. Colors are only used when w
// is a terminal.
func NewPrinter(w io.Writer, version string, verbose bool) *Printer {
	return &Printer{
		w:       w,
		version: version,
		verbose: verbose,
		t:       NewTheme(lipgloss.NewRenderer(w)),
	}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// Banner prints the tool name and version.
func (p *Printer) Banner() {
	p.println(p.t.Title.Render("MzkOstrichRemover " + p.version))
	p.println(p.t.Dim.Render("Scan, fill and clean music tags from file names"))
	p.println(p.t.Dim.Render(rule))
}

// InvalidPath explains that the root folder must end with a separator.
func (p *Printer) InvalidPath(path string, err error) {
	p.println(p.t.Error.Render(fmt.Sprintf("Invalid folder %q", path)))
	p.println(p.t.Dim.Render(err.Error()))
	p.println(p.t.Dim.Render(`The folder must exist and end with "/" (or "\" on Windows).`))
}

// MissingArguments explains that a mode flag is required.
func (p *Printer) MissingArguments() {
	p.println(p.t.Error.Render("Missing mode: use one of --scan, --fill or --clean."))
}

// RootInfo prints the root folder statistics.
func (p *Printer) RootInfo(info *crawl.FolderInfo) {
	p.println(p.t.Info.Render(fmt.Sprintf(
		"%d artists, %d albums, %d files (%s)",
		info.Artists, info.Albums, info.Files, humanize.Bytes(uint64(info.Bytes)),
	)))
	p.println(p.t.Info.Render(fmt.Sprintf(
		"%d FLAC, %d MP3, %d covers",
		info.FLAC, info.MP3, info.Covers,
	)))
}

// Event prints a progress event. Verbose events are only printed in
// verbose mode.
func (p *Printer) Event(e runner.ProgressEvent) {
	if e.Level == runner.LevelVerbose && !p.verbose {
		return
	}
	p.println(p.t.Event(e.Level, e.Message))
}

// End prints the summary of a run.
func (p *Printer) End(stats *runner.Stats) {
	var lines []string
	switch stats.Mode {
	case runner.ModeScan:
		lines = []string{
			fmt.Sprintf("Scan complete: %d/%d tracks", stats.Tracks, stats.TotalTracks),
			fmt.Sprintf("Errors: %d", stats.Errors),
			fmt.Sprintf("Warnings: %d", stats.Warnings),
			fmt.Sprintf("Purity: %.2f%%", stats.Purity*100),
		}
	default:
		lines = []string{
			fmt.Sprintf("%s complete: %d/%d tracks", capitalize(stats.Mode.String()), stats.Tracks, stats.TotalTracks),
			fmt.Sprintf("Errors: %d", stats.Errors),
		}
	}
	if stats.ReportPath != "" {
		lines = append(lines, "Report: "+stats.ReportPath)
	}
	p.println(p.t.Box.Render(strings.Join(lines, "\n")))
}

// ErroredTracks prints the problems of each album as a tree:
//
//	Artist
//	└── Year - Album
//	    ├── [NamingConventionViolation] file name
//	    └── [MissingCover] folder
func (p *Printer) ErroredTracks(results []*runner.AlbumResult) {
	lastArtist := ""
	for _, res := range results {
		if res.Album.Artist != lastArtist {
			p.println(p.t.Artist.Render(res.Album.Artist))
			lastArtist = res.Album.Artist
		}
		p.println("└── " + res.Album.FolderName)
		for i, prob := range res.Problems {
			branch := "├──"
			if i == len(res.Problems)-1 {
				branch = "└──"
			}
			style := p.t.Error
			if prob.Kind.IsWarning() {
				style = p.t.Warning
			}
			p.println("    " + branch + " " + style.Render(problemLine(res, prob)))
		}
	}
}

func problemLine(res *runner.AlbumResult, prob *model.ParseError) string {
	target := filepath.Base(prob.Path)
	if prob.Path == res.Album.Path {
		target = "(folder)"
	}
	return fmt.Sprintf("[%s] %s: %s", prob.Kind, target, prob.Detail)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
