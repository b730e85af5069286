package audio

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/handiism/mzk-ostrich-remover/internal/model"
	"github.com/handiism/mzk-ostrich-remover/internal/naming"
)

// Field is one tag value derived from a track.
type Field struct {
	Name  string
	Value string
}

// Fields returns the tag values derived from a parsed track, in writing
// order. Values that could not be derived are empty.
//
// Example:
//
//	for _, f := range audio.Fields(track) {
//	    fmt.Printf("%s=%s\n", f.Name, f.Value)
//	}
func Fields(t *model.Track) []Field {
	var year, albumArtist, albumTitle string
	if t.Album != nil {
		year = t.Album.Year
		albumArtist = t.Album.Artist
		albumTitle = t.Album.Title
	}

	code := naming.TrackCode{Disc: t.DiscNumber, Track: t.TrackNumber}
	trackNumber, discNumber := "", ""
	if n, err := code.TrackNumber(); err == nil {
		trackNumber = strconv.Itoa(n)
	}
	if n, err := code.DiscNumber(); err == nil {
		discNumber = strconv.Itoa(n)
	}

	return []Field{
		{TagTitle, t.Title},
		{TagDate, year},
		{TagArtist, strings.Join(t.Artists, ValueSeparator)},
		{TagAlbumArtist, albumArtist},
		{TagPerformer, strings.Join(t.Performers, ValueSeparator)},
		{TagTrackNumber, trackNumber},
		{TagTrackTotal, positive(t.TotalTrack)},
		{TagAlbum, albumTitle},
		{TagDiscTotal, positive(t.TotalDisc)},
		{TagDiscNumber, discNumber},
	}
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// FillResult describes what Fill changed in a file.
type FillResult struct {
	// Changed lists the tag names that were written.
	Changed []string

	// CoverEmbedded is true when the folder cover replaced the embedded one.
	CoverEmbedded bool

	// Saved is true when the file was written.
	Saved bool
}

// Filler writes derived tags and the album cover into audio files.
//
// A tag is only written when its derived value is non-empty and differs
// from the current one, and the file is only saved when something changed.
// Filling the same file twice therefore leaves it untouched the second time.
type Filler struct {
	coverSize int
}

// NewFiller creates a Filler that keeps embedded covers of coverSize x
// coverSize pixels.
func NewFiller(coverSize int) *Filler {
	return &Filler{coverSize: coverSize}
}

// Fill writes the tags derived from t into store and embeds cover when the
// file has none or has one of the wrong size. cover may be nil.
func (f *Filler) Fill(store TagStore, t *model.Track, cover *Picture) (*FillResult, error) {
	res := &FillResult{}

	for _, field := range Fields(t) {
		if field.Value == "" {
			continue
		}
		if current, ok := store.Get(field.Name); ok && current == field.Value {
			continue
		}
		store.Set(field.Name, field.Value)
		res.Changed = append(res.Changed, field.Name)
	}

	if f.needsCover(store, cover) {
		if err := store.EmbedCover(cover); err != nil {
			return res, err
		}
		res.CoverEmbedded = true
	}

	if len(res.Changed) == 0 && !res.CoverEmbedded {
		return res, nil
	}
	if err := store.Save(); err != nil {
		return res, err
	}
	res.Saved = true
	return res, nil
}

func (f *Filler) needsCover(store TagStore, cover *Picture) bool {
	if cover == nil || len(cover.Data) == 0 {
		return false
	}
	existing, ok := store.Cover()
	if !ok {
		return true
	}
	if bytes.Equal(existing.Data, cover.Data) {
		return false
	}
	return !existing.IsSquare(f.coverSize)
}
