package album

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/mzk-ostrich-remover/internal/model"
	"github.com/handiism/mzk-ostrich-remover/internal/naming"
)

// FileKind classifies the files of an album folder.
type FileKind int

const (
	// KindOther is any file the tool ignores.
	KindOther FileKind = iota

	// KindAudio is a FLAC or MP3 track.
	KindAudio

	// KindImage is a JPEG or PNG cover candidate.
	KindImage
)

var (
	audioExtensions = map[string]bool{".mp3": true, ".flac": true}
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

// KindOf returns the kind of a file from its extension, case-insensitively.
func KindOf(fileName string) FileKind {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case audioExtensions[ext]:
		return KindAudio
	case imageExtensions[ext]:
		return KindImage
	default:
		return KindOther
	}
}

// Result is the outcome of the aggregation of one album folder.
type Result struct {
	// Album holds the album level facts.
	Album *model.Album

	// Tracks holds every audio file of the folder, in listing order,
	// conformant or not.
	Tracks []*model.Track

	// Errors holds the problems found in the folder, in detection order.
	Errors []*model.ParseError
}

// ErrorCount returns the number of errors, warnings excluded.
func (r *Result) ErrorCount() int {
	return model.CountErrors(r.Errors)
}

// Conformant returns the tracks whose file name follows the convention.
func (r *Result) Conformant() []*model.Track {
	var tracks []*model.Track
	for _, t := range r.Tracks {
		if t.Conformant {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// Aggregate parses the files of the album folder at path and folds them into
// album facts.
//
// files are the file names of the folder (hidden files already removed),
// processed in the given order:
//   - each audio file is parsed into a Track; conformant ones count towards
//     TotalTrack and TotalDisc
//   - the first image file becomes the album cover
//   - the album year is seeded from the first conformant track, then checked
//     once against every conformant track and against the folder name
//   - a disc or track number that does not convert is recorded, the track
//     stays conformant
//
// Aggregate never fails: every problem is recorded in Result.Errors.
//
// Example:
//
//	res := album.Aggregate("/music/A/2020 - B", []string{
//	    "A - 2020 - B - 101 - A - One.flac",
//	    "cover.jpg",
//	})
//	// res.Album.TotalTrack = 1, res.Album.CoverFileName = "cover.jpg"
func Aggregate(path string, files []string) *Result {
	res := &Result{Album: model.NewAlbum(path)}
	a := res.Album

	fields, err := naming.SplitFolderName(a.FolderName)
	a.FolderNameFields = fields
	if err != nil {
		res.addError(model.NamingConventionViolation, a.Path, err.Error())
	} else {
		a.Title = fields[naming.FolderFieldAlbumTitle]
	}

	audioFiles := 0
	for _, file := range files {
		switch KindOf(file) {
		case KindAudio:
			audioFiles++
			res.Tracks = append(res.Tracks, res.parseTrack(file))
		case KindImage:
			if !a.HasCover {
				a.HasCover = true
				a.CoverFileName = file
			}
		}
	}

	res.checkYear()

	for _, t := range res.Tracks {
		t.TotalTrack = a.TotalTrack
		t.TotalDisc = a.TotalDisc
	}

	if audioFiles > 0 && !a.HasCover {
		res.addError(model.MissingCover, a.Path, "no cover image in album folder")
	}

	return res
}

// parseTrack parses one audio file name and folds it into the album.
func (r *Result) parseTrack(fileName string) *model.Track {
	a := r.Album
	t := model.NewTrack(a, fileName)

	fields, err := naming.SplitFileName(fileName)
	t.FileNameFields = fields
	if err != nil {
		r.addError(KindFor(err), t.Path, err.Error())
		return t
	}

	t.Conformant = true
	a.TotalTrack++

	t.Year = fields[naming.FieldYear]

	t.Title = naming.Title(fields)
	credits := naming.Derive(fields, fileName)
	t.Artists = credits.Artists
	t.Performers = credits.Performers
	t.ComposedPerformers = credits.ComposedPerformers
	t.Featuring = credits.Featuring
	t.Remixers = credits.Remixers

	code, err := naming.ParseTrackCode(fields[naming.FieldCode])
	t.DiscNumber = code.Disc
	t.TrackNumber = code.Track
	if err != nil {
		r.addError(KindFor(err), t.Path, err.Error())
		return t
	}
	if disc, err := code.DiscNumber(); err == nil && disc > a.TotalDisc {
		a.TotalDisc = disc
	}
	if _, err := code.TrackNumber(); err != nil {
		r.addError(KindFor(err), t.Path, err.Error())
	}

	return t
}

// checkYear runs the album year consistency check. The album year is seeded
// from the first conformant track, even when empty, and every other
// conformant track is compared to it. The first disagreement locks the album
// year to unknown and is the only one reported.
func (r *Result) checkYear() {
	a := r.Album
	seeded := false
	for _, t := range r.Tracks {
		if !t.Conformant {
			continue
		}
		if !seeded {
			a.Year = t.Year
			seeded = true
			continue
		}
		if t.Year != a.Year {
			r.addError(model.YearInconsistency, t.Path,
				fmt.Sprintf("track year %q differs from album year %q", t.Year, a.Year))
			a.Year = model.YearUnknown
			return
		}
	}
	if !seeded {
		return
	}
	if len(a.FolderNameFields) == naming.FolderNameFieldCount {
		if folderYear := a.FolderNameFields[naming.FolderFieldYear]; folderYear != a.Year {
			r.addError(model.YearInconsistency, a.Path,
				fmt.Sprintf("folder year %q differs from track year %q", folderYear, a.Year))
			a.Year = model.YearUnknown
		}
	}
}

func (r *Result) addError(kind model.ErrorKind, path, detail string) {
	r.Errors = append(r.Errors, model.NewParseError(kind, path, detail))
}

// KindFor maps a naming error to the error kind it is reported as.
func KindFor(err error) model.ErrorKind {
	switch {
	case errors.Is(err, naming.ErrDiscNumber), errors.Is(err, naming.ErrTrackNumber):
		return model.DiscNumberParseFailure
	default:
		return model.NamingConventionViolation
	}
}
