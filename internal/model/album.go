package model

import (
	"path/filepath"
	"strings"
)

// YearUnknown is the album year once tracks disagree on it, or before any
// conformant track has been seen.
const YearUnknown = ""

// Album represents one album folder of the library.
//
// An album folder lives two levels below the library root and follows the
// naming convention:
//
//	<Album Artist>/<Year> - <Album Title>/
//
// Album holds the facts that are shared by every track of the folder:
//   - Artist and Title, taken from the folder path
//   - Year, agreed upon by all tracks (YearUnknown when they disagree)
//   - TotalTrack and TotalDisc, accumulated while the tracks are parsed
//   - the cover image file found next to the tracks
//
// Example:
//
//	album := NewAlbum("/music/Artist/2020 - Album")
//	// album.Artist = "Artist"
//	// album.FolderName = "2020 - Album"
type Album struct {
	// Artist is the album artist, i.e. the name of the parent folder.
	Artist string

	// Title is the album title parsed from the folder name.
	// Empty when the folder name does not follow the convention.
	Title string

	// Year is the release year shared by the album tracks.
	Year string

	// TotalTrack is the number of conformant audio files in the folder.
	TotalTrack int

	// TotalDisc is the highest disc number found in the track file names.
	TotalDisc int

	// HasCover reports whether an image file was found in the folder.
	HasCover bool

	// CoverFileName is the first image file found in the folder.
	CoverFileName string

	// FolderName is the raw album folder name.
	FolderName string

	// FolderNameFields holds the folder name split on the field separator
	// (year and album title once normalized).
	FolderNameFields []string

	// Path is the album folder path.
	Path string
}

// NewAlbum creates an Album for the folder at path.
//
// Artist and FolderName are taken from the last two path components,
// everything else is filled while the folder is aggregated.
func NewAlbum(path string) *Album {
	clean := strings.TrimRight(path, `/\`)
	return &Album{
		Artist:     filepath.Base(filepath.Dir(clean)),
		FolderName: filepath.Base(clean),
		Year:       YearUnknown,
		Path:       clean,
	}
}

// CoverPath returns the full path of the folder cover, or an empty string
// when the album has no cover file.
func (a *Album) CoverPath() string {
	if !a.HasCover {
		return ""
	}
	return filepath.Join(a.Path, a.CoverFileName)
}

// HasYear returns true if all tracks agreed on a release year.
func (a *Album) HasYear() bool {
	return a.Year != YearUnknown
}
