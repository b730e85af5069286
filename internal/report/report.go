package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/handiism/mzk-ostrich-remover/internal/album"
	"github.com/handiism/mzk-ostrich-remover/internal/crawl"
	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"
	"github.com/handiism/mzk-ostrich-remover/internal/model"
)

// Report is the JSON dump of a scan.
type Report struct {
	Version    string            `json:"version"`
	RunID      string            `json:"runId"`
	Date       time.Time         `json:"date"`
	Root       string            `json:"root"`
	FolderInfo *crawl.FolderInfo `json:"folderInfo"`
	Albums     []*AlbumReport    `json:"albums"`
	Errors     int               `json:"errors"`
	Tracks     int               `json:"tracks"`
	Purity     float64           `json:"purity"`
}

// AlbumReport lists the problems found in one album folder.
type AlbumReport struct {
	Path   string              `json:"path"`
	Artist string              `json:"artist"`
	Title  string              `json:"title"`
	Year   string              `json:"year"`
	Errors []*model.ParseError `json:"errors"`
}

// New creates an empty report for a run over root.
func New(version, root string, info *crawl.FolderInfo) *Report {
	return &Report{
		Version:    version,
		RunID:      uuid.NewString(),
		Date:       time.Now(),
		Root:       root,
		FolderInfo: info,
		Albums:     []*AlbumReport{},
	}
}

// AddAlbum records the problems of an aggregated album. Albums without any
// problem are left out.
func (r *Report) AddAlbum(res *album.Result, errs []*model.ParseError) {
	if len(errs) == 0 {
		return
	}
	r.Albums = append(r.Albums, &AlbumReport{
		Path:   res.Album.Path,
		Artist: res.Album.Artist,
		Title:  res.Album.Title,
		Year:   res.Album.Year,
		Errors: errs,
	})
}

// Finish sets the run totals.
func (r *Report) Finish(errors, tracks int, purity float64) {
	r.Errors = errors
	r.Tracks = tracks
	r.Purity = purity
}

// FileName returns the report file name, unique per run.
func (r *Report) FileName() string {
	return fmt.Sprintf("MzkOstrichRemover_%s_%s.json", r.Date.Format("2006-01-02_15-04-05"), r.RunID[:8])
}

// Save writes the report as indented JSON into dir and returns the file
// path. dir is created when missing.
func (r *Report) Save(ctx context.Context, dir string) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	path := filepath.Join(dir, r.FileName())
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
