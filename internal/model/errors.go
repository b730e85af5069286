package model

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies a naming convention or tagging problem.
//
// Every kind is recoverable: problems are counted and reported, they never
// stop the traversal of the library.
type ErrorKind int

const (
	// NamingConventionViolation is a file or folder name with the wrong
	// number of fields.
	NamingConventionViolation ErrorKind = iota + 1

	// YearInconsistency is an album whose tracks disagree on the year.
	YearInconsistency

	// DiscNumberParseFailure is a disc/track code whose disc digit is not numeric.
	DiscNumberParseFailure

	// MissingCover is an album folder (or a track) without a cover image.
	MissingCover

	// CoverDimensionMismatch is an embedded cover that is not square at the
	// canonical size. It is a warning: the cover gets replaced on fill.
	CoverDimensionMismatch

	// TagMismatch is an existing tag that differs from the value derived
	// from the file and folder names.
	TagMismatch

	// TagIOFailure is a tag container that could not be read or written.
	TagIOFailure
)

var errorKindNames = map[ErrorKind]string{
	NamingConventionViolation: "NamingConventionViolation",
	YearInconsistency:         "YearInconsistency",
	DiscNumberParseFailure:    "DiscNumberParseFailure",
	MissingCover:              "MissingCover",
	CoverDimensionMismatch:    "CoverDimensionMismatch",
	TagMismatch:               "TagMismatch",
	TagIOFailure:              "TagIOFailure",
}

// errorCodes keeps the numbering of the report format. 17 is the historical
// code for year inconsistencies.
var errorCodes = map[ErrorKind]int{
	NamingConventionViolation: 1,
	DiscNumberParseFailure:    2,
	MissingCover:              3,
	CoverDimensionMismatch:    4,
	TagMismatch:               5,
	TagIOFailure:              6,
	YearInconsistency:         17,
}

// String returns the kind name.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Code returns the numeric report code of the kind.
func (k ErrorKind) Code() int {
	return errorCodes[k]
}

// IsWarning returns true for kinds that are reported but not counted as errors.
func (k ErrorKind) IsWarning() bool {
	return k == CoverDimensionMismatch
}

// MarshalJSON encodes the kind as its name.
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ParseError is one violation found while processing a library.
type ParseError struct {
	Kind   ErrorKind `json:"kind"`
	Code   int       `json:"code"`
	Path   string    `json:"path"`
	Detail string    `json:"detail"`
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind ErrorKind, path, detail string) *ParseError {
	return &ParseError{
		Kind:   kind,
		Code:   kind.Code(),
		Path:   path,
		Detail: detail,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (%d) %s: %s", e.Kind, e.Code, e.Path, e.Detail)
}

// CountErrors returns the number of entries that are not warnings.
func CountErrors(errs []*ParseError) int {
	n := 0
	for _, e := range errs {
		if !e.Kind.IsWarning() {
			n++
		}
	}
	return n
}
