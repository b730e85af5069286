package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/handiism/mzk-ostrich-remover/internal/album"
	"github.com/handiism/mzk-ostrich-remover/internal/crawl"
	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "1.1.3", false).Banner()
	assert.Contains(t, buf.String(), "MzkOstrichRemover 1.1.3")
}

func TestPrinter_InvalidPath(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "1.1.3", false).InvalidPath("/music", errors.New("missing separator"))

	out := buf.String()
	assert.Contains(t, out, `"/music"`)
	assert.Contains(t, out, "missing separator")
}

func TestPrinter_RootInfo(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "1.1.3", false).RootInfo(&crawl.FolderInfo{
		Artists: 2, Albums: 3, Files: 10, FLAC: 6, MP3: 2, Covers: 2, Bytes: 5_000_000,
	})

	out := buf.String()
	assert.Contains(t, out, "2 artists, 3 albums, 10 files (5.0 MB)")
	assert.Contains(t, out, "6 FLAC, 2 MP3, 2 covers")
}

func TestPrinter_EventVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	e := runner.ProgressEvent{Message: "Filled track", Level: runner.LevelVerbose}

	NewPrinter(&quiet, "v", false).Event(e)
	NewPrinter(&loud, "v", true).Event(e)

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "Filled track")
}

func TestPrinter_End(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "v", false).End(&runner.Stats{
		Mode: runner.ModeScan, Tracks: 4, TotalTracks: 5, Errors: 1, Purity: 0.75,
		ReportPath: "output/report.json",
	})

	out := buf.String()
	assert.Contains(t, out, "Scan complete: 4/5 tracks")
	assert.Contains(t, out, "Purity: 75.00%")
	assert.Contains(t, out, "output/report.json")

	buf.Reset()
	NewPrinter(&buf, "v", false).End(&runner.Stats{Mode: runner.ModeClean, Tracks: 3, TotalTracks: 3})
	assert.Contains(t, buf.String(), "Clean complete: 3/3 tracks")
}

func TestPrinter_ErroredTracks(t *testing.T) {
	res := album.Aggregate("/music/Zed/2019 - Last", []string{"Zed - 2019 - Last - Two.flac"})
	results := []*runner.AlbumResult{{Result: res, Problems: res.Errors}}

	var buf bytes.Buffer
	NewPrinter(&buf, "v", true).ErroredTracks(results)

	out := buf.String()
	assert.Contains(t, out, "Zed")
	assert.Contains(t, out, "└── 2019 - Last")
	assert.Contains(t, out, "[NamingConventionViolation] Zed - 2019 - Last - Two.flac")
	assert.Contains(t, out, "[MissingCover] (folder)")
}

func TestTheme_Event(t *testing.T) {
	var buf bytes.Buffer
	theme := NewTheme(lipgloss.NewRenderer(&buf))

	tests := []struct {
		level runner.ProgressLevel
		want  string
	}{
		{runner.LevelError, "✗ broken"},
		{runner.LevelWarning, "! broken"},
		{runner.LevelSuccess, "✓ broken"},
		{runner.LevelInfo, "› broken"},
		{runner.LevelVerbose, "• broken"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, theme.Event(tt.level, "broken"))
	}
}
