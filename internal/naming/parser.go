package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FieldSeparator separates the fields of file and folder names.
const FieldSeparator = " - "

const (
	// FileNameFieldCount is the number of fields of a conformant file name.
	FileNameFieldCount = 6

	// FolderNameFieldCount is the number of fields of a conformant album folder name.
	FolderNameFieldCount = 2
)

// Indexes of the file name fields.
const (
	FieldReleaseArtists = iota
	FieldYear
	FieldAlbumTitle
	FieldCode
	FieldArtists
	FieldTitle
)

// Indexes of the folder name fields.
const (
	FolderFieldYear = iota
	FolderFieldAlbumTitle
)

var (
	// ErrNamingConvention is returned when a name does not split into the
	// expected number of fields.
	ErrNamingConvention = errors.New("naming convention violation")

	// ErrDiscNumber is returned when the disc digit of a disc/track code is
	// missing or not numeric.
	ErrDiscNumber = errors.New("invalid disc number")

	// ErrTrackNumber is returned when the track part of a disc/track code is
	// not numeric.
	ErrTrackNumber = errors.New("invalid track number")
)

// forbiddenTokens are album title suffixes that legitimately follow the
// field separator ("Album - Single").
var forbiddenTokens = map[string]bool{
	"Single":    true,
	"Intro":     true,
	"ÉPILOGUE":  true,
	"25":        true,
	"Interlude": true,
}

// IsForbiddenToken reports whether s is an album title suffix that is glued
// back to the album title when it follows the field separator.
func IsForbiddenToken(s string) bool {
	return forbiddenTokens[s]
}

// SplitFileName splits a track file name into its six fields.
//
// The expected form is:
//
//	<Release Artists> - <Year> - <Album> - <Disc><Track> - <Artists> - <Title>.<ext>
//
// When the album title itself ends with " - Single" (or another forbidden
// token), the name has one extra field and the token sits at index 3: fields
// 2 and 3 are joined back together. Other separators embedded in a field
// cannot be told apart and yield ErrNamingConvention.
//
// Example:
//
//	fields, err := SplitFileName("A - 2020 - Hit - Single - 101 - A - Hit.flac")
//	// fields[2] = "Hit - Single"
func SplitFileName(fileName string) ([]string, error) {
	fields := strings.Split(fileName, FieldSeparator)
	if len(fields) > FileNameFieldCount && IsForbiddenToken(fields[FieldCode]) {
		fields = joinFields(fields, FieldAlbumTitle)
	}
	if len(fields) != FileNameFieldCount {
		return fields, fmt.Errorf("%w: file name %q has %d fields, want %d",
			ErrNamingConvention, fileName, len(fields), FileNameFieldCount)
	}
	return fields, nil
}

// SplitFolderName splits an album folder name into year and album title.
//
// The same forbidden token heuristic as SplitFileName applies: a folder named
// "2020 - Hit - Single" gives ["2020", "Hit - Single"].
func SplitFolderName(folderName string) ([]string, error) {
	fields := strings.Split(folderName, FieldSeparator)
	if len(fields) == FolderNameFieldCount+1 && IsForbiddenToken(fields[FolderNameFieldCount]) {
		fields = joinFields(fields, FolderFieldAlbumTitle)
	}
	if len(fields) != FolderNameFieldCount {
		return fields, fmt.Errorf("%w: folder name %q has %d fields, want %d",
			ErrNamingConvention, folderName, len(fields), FolderNameFieldCount)
	}
	return fields, nil
}

// joinFields merges fields[i] and fields[i+1] with the field separator.
func joinFields(fields []string, i int) []string {
	out := make([]string, 0, len(fields)-1)
	out = append(out, fields[:i]...)
	out = append(out, fields[i]+FieldSeparator+fields[i+1])
	out = append(out, fields[i+2:]...)
	return out
}

// Title returns the title field of a split file name, extension removed.
// It returns an empty string when fields is not conformant.
func Title(fields []string) string {
	if len(fields) != FileNameFieldCount {
		return ""
	}
	title := fields[FieldTitle]
	return strings.TrimSuffix(title, filepath.Ext(title))
}

// TrackCode is the disc/track code of a file name ("101" is disc 1, track 01).
type TrackCode struct {
	// Disc is the first character of the code.
	Disc string

	// Track is the rest of the code, kept as written.
	Track string
}

// ParseTrackCode splits a disc/track code.
//
// The first character is the disc number and must be a digit. The remainder
// is the track number; it is not validated here, use TrackNumber to convert it.
func ParseTrackCode(code string) (TrackCode, error) {
	if code == "" {
		return TrackCode{}, fmt.Errorf("%w: empty disc/track code", ErrDiscNumber)
	}
	tc := TrackCode{Disc: code[:1], Track: code[1:]}
	if _, err := strconv.Atoi(tc.Disc); err != nil {
		return tc, fmt.Errorf("%w: %q in code %q", ErrDiscNumber, tc.Disc, code)
	}
	return tc, nil
}

// DiscNumber returns the disc number as an int.
func (tc TrackCode) DiscNumber() (int, error) {
	n, err := strconv.Atoi(tc.Disc)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDiscNumber, tc.Disc)
	}
	return n, nil
}

// TrackNumber returns the track number as an int.
func (tc TrackCode) TrackNumber() (int, error) {
	n, err := strconv.Atoi(tc.Track)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTrackNumber, tc.Track)
	}
	return n, nil
}
