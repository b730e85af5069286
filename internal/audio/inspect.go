package audio

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"
	"github.com/handiism/mzk-ostrich-remover/internal/model"

	"github.com/dhowden/tag"
)

// Inspector compares the tags already present in audio files with the
// values derived from their names. It never writes.
type Inspector struct {
	coverSize int
}

// NewInspector creates an Inspector expecting coverSize x coverSize covers.
func NewInspector(coverSize int) *Inspector {
	return &Inspector{coverSize: coverSize}
}

// Inspect reads the tags of t.Path and returns one TagMismatch per field
// that differs from the derived value, plus cover problems. Fields without
// a derived value are not compared. A file that cannot be read yields a
// single TagIOFailure.
//
// Inspect also copies the existing cover and the composer, producer, label,
// BPM and language tags onto t.
func (i *Inspector) Inspect(t *model.Track) []*model.ParseError {
	f, err := os.Open(t.Path)
	if err != nil {
		return []*model.ParseError{model.NewParseError(model.TagIOFailure, t.Path, err.Error())}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return []*model.ParseError{
			model.NewParseError(model.TagMismatch, t.Path, "file carries no tags"),
			model.NewParseError(model.MissingCover, t.Path, "no embedded cover"),
		}
	}
	if err != nil {
		return []*model.ParseError{model.NewParseError(model.TagIOFailure, t.Path, err.Error())}
	}

	i.readExtras(t, m)

	var errs []*model.ParseError
	for _, field := range Fields(t) {
		if field.Value == "" {
			continue
		}
		got, ok := current(m, field.Name)
		if !ok || got == field.Value {
			continue
		}
		errs = append(errs, model.NewParseError(model.TagMismatch, t.Path,
			fmt.Sprintf("%s is %q, expected %q", field.Name, got, field.Value)))
	}

	return append(errs, i.inspectCover(t, m.Picture())...)
}

func (i *Inspector) inspectCover(t *model.Track, pic *tag.Picture) []*model.ParseError {
	if pic == nil || len(pic.Data) == 0 {
		t.HasCover = false
		return []*model.ParseError{model.NewParseError(model.MissingCover, t.Path, "no embedded cover")}
	}

	t.HasCover = true
	t.CoverData = pic.Data
	t.CoverMIME = pic.MIMEType

	w, h, _, err := ioutils.Dimensions(pic.Data)
	if err != nil {
		return []*model.ParseError{model.NewParseError(model.CoverDimensionMismatch, t.Path,
			fmt.Sprintf("unreadable embedded cover: %v", err))}
	}
	if w != i.coverSize || h != i.coverSize {
		return []*model.ParseError{model.NewParseError(model.CoverDimensionMismatch, t.Path,
			fmt.Sprintf("embedded cover is %dx%d, expected %dx%d", w, h, i.coverSize, i.coverSize))}
	}
	return nil
}

// current returns the value of a tag as read by the generic reader. Tags it
// cannot expose are reported as absent so they are never compared.
func current(m tag.Metadata, name string) (string, bool) {
	switch name {
	case TagTitle:
		return m.Title(), true
	case TagAlbum:
		return m.Album(), true
	case TagArtist:
		return m.Artist(), true
	case TagAlbumArtist:
		return m.AlbumArtist(), true
	case TagDate:
		return positive(m.Year()), true
	case TagTrackNumber:
		n, _ := m.Track()
		return positive(n), true
	case TagDiscNumber:
		n, _ := m.Disc()
		return positive(n), true
	default:
		return "", false
	}
}

func (i *Inspector) readExtras(t *model.Track, m tag.Metadata) {
	raw := m.Raw()
	t.Composer = m.Composer()
	t.Producer = rawString(raw, "producer", "PRODUCER")
	t.Label = rawString(raw, "label", "organization", "TPUB")
	t.BPM = rawString(raw, "bpm", "TBPM")
	t.Language = rawString(raw, "language", "TLAN")
}

// rawString returns the first raw tag among keys holding a usable value.
func rawString(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}
