package model

import (
	"path/filepath"
	"strings"
)

// FileType identifies the tag container of a track.
type FileType int

const (
	// FileTypeUnknown is any file that is neither FLAC nor MP3.
	FileTypeUnknown FileType = iota

	// FileTypeFLAC is a FLAC file tagged with Vorbis comments.
	FileTypeFLAC

	// FileTypeMP3 is an MP3 file tagged with ID3v2 frames.
	FileTypeMP3
)

// String returns the upper-case container name.
func (ft FileType) String() string {
	switch ft {
	case FileTypeFLAC:
		return "FLAC"
	case FileTypeMP3:
		return "MP3"
	default:
		return "UNKNOWN"
	}
}

// FileTypeOf returns the FileType matching the file extension.
// The comparison is case-insensitive.
func FileTypeOf(fileName string) FileType {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".flac":
		return FileTypeFLAC
	case ".mp3":
		return FileTypeMP3
	default:
		return FileTypeUnknown
	}
}

// Track represents one audio file and the metadata derived from its name.
//
// A conformant track file name has six fields:
//
//	<Release Artists> - <Year> - <Album> - <Disc><Track> - <Artists> - <Title>.<ext>
//
// Track is created during folder traversal, populated by a single parse pass
// and discarded once its album folder has been processed.
type Track struct {
	// Album is a reference to the parent album.
	Album *Album

	// FileName is the raw file name, extension included.
	FileName string

	// Path is the full path of the file.
	Path string

	// Type is the tag container of the file.
	Type FileType

	// PathFields holds the folder components leading to the file
	// (artist folder, album folder).
	PathFields []string

	// FileNameFields holds the file name split on the field separator.
	FileNameFields []string

	// Conformant is true when FileNameFields has exactly six fields.
	Conformant bool

	// Title is the track title, extension removed.
	Title string

	// Artists is the sorted set of track artists.
	Artists []string

	// Performers is the sorted set of artists and featured artists.
	Performers []string

	// ComposedPerformers lists featured artists then artists, for display.
	ComposedPerformers []string

	// Featuring lists the featured artists in file name order.
	Featuring []string

	// Remixers lists the remix artists in file name order.
	Remixers []string

	TrackNumber string
	TotalTrack  int
	DiscNumber  string
	TotalDisc   int
	Year        string

	// Composer, Producer, Label, BPM and Language are never derived from the
	// file name. They are only read back from existing tags.
	Composer string
	Producer string
	Label    string
	BPM      string
	Language string

	// HasCover reports whether the file carries an embedded picture.
	HasCover  bool
	CoverData []byte
	CoverMIME string
}

// NewTrack creates a Track for fileName inside album.
func NewTrack(album *Album, fileName string) *Track {
	t := &Track{
		Album:    album,
		FileName: fileName,
		Type:     FileTypeOf(fileName),
	}
	if album != nil {
		t.Path = filepath.Join(album.Path, fileName)
		t.PathFields = []string{album.Artist, album.FolderName}
	}
	return t
}
