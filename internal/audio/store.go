package audio

import (
	"errors"
	"fmt"

	"github.com/handiism/mzk-ostrich-remover/internal/model"
)

// Tag names used by the tool. They follow the Vorbis comment names; the MP3
// store maps them onto ID3v2 frames.
const (
	TagTitle       = "TITLE"
	TagDate        = "DATE"
	TagAlbum       = "ALBUM"
	TagArtist      = "ARTIST"
	TagAlbumArtist = "ALBUMARTIST"
	TagPerformer   = "PERFORMER"
	TagTrackNumber = "TRACKNUMBER"
	TagTrackTotal  = "TRACKTOTAL"
	TagDiscNumber  = "DISCNUMBER"
	TagDiscTotal   = "DISCTOTAL"
	TagComposer    = "COMPOSER"
	TagProducer    = "PRODUCER"
	TagLabel       = "LABEL"
	TagBPM         = "BPM"
	TagLanguage    = "LANGUAGE"
)

// ValueSeparator joins multi-valued tags such as ARTIST and PERFORMER.
const ValueSeparator = "; "

// ErrUnsupportedFormat is returned by Open for files that are neither FLAC
// nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Picture is an embedded cover image.
type Picture struct {
	Data        []byte
	MIME        string
	Width       int
	Height      int
	ColorDepth  int
	Description string
}

// IsSquare returns true if the picture is exactly size x size pixels.
func (p *Picture) IsSquare(size int) bool {
	return p != nil && p.Width == size && p.Height == size
}

// TagStore is a key-value view over the tags of one audio file.
//
// Names are Vorbis comment names (see the Tag constants). Values are single
// strings; multi-valued tags are stored joined with ValueSeparator.
// Changes are only written to disk by Save.
//
// Example:
//
//	store, err := audio.Open(track.Path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	if title, ok := store.Get(audio.TagTitle); !ok || title != track.Title {
//	    store.Set(audio.TagTitle, track.Title)
//	}
//	return store.Save()
type TagStore interface {
	// Get returns the value of a tag and whether it is present.
	Get(name string) (string, bool)

	// Set replaces the value of a tag.
	Set(name, value string)

	// Clear removes the given tags. Missing tags are ignored.
	Clear(names ...string)

	// Cover returns the first embedded picture.
	Cover() (*Picture, bool)

	// ClearPictures removes every embedded picture.
	ClearPictures()

	// EmbedCover replaces the embedded pictures with a front cover.
	EmbedCover(pic *Picture) error

	// Save writes the tags back to the file.
	Save() error

	// Close releases the file.
	Close() error
}

// Open opens the tag store of the audio file at path, picking the container
// from the file extension.
func Open(path string) (TagStore, error) {
	switch model.FileTypeOf(path) {
	case model.FileTypeFLAC:
		return openFLAC(path)
	case model.FileTypeMP3:
		return openMP3(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
