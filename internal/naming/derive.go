package naming

import (
	"sort"
)

// Credits holds the artist related fields derived from a file name.
type Credits struct {
	// Artists is the sorted set of track artists. For a remix, the remixers.
	Artists []string

	// Performers is the sorted set of artists and featured artists.
	Performers []string

	// ComposedPerformers lists featured artists then artists, duplicates
	// removed. It is only used for display.
	ComposedPerformers []string

	// Featuring lists the featured artists in file name order.
	Featuring []string

	// Remixers lists the remix artists in file name order.
	Remixers []string
}

// IsRemix returns true if the file name carries a remix group.
func (c Credits) IsRemix() bool {
	return len(c.Remixers) > 0
}

// Derive computes the credits of a track from its split file name.
//
// Rules:
//   - without remix, the artists are the artists field split on ", "
//   - with a remix, the remixers replace the artists field entirely
//   - performers are the artists plus the featured artists
//
// Artists and Performers are deduplicated and sorted so that tagging is
// reproducible. fields may be non-conformant, the artists field is then
// considered empty.
func Derive(fields []string, fileName string) Credits {
	c := Credits{
		Featuring: Featuring(fileName),
		Remixers:  Remixers(fileName),
	}

	var base []string
	if c.IsRemix() {
		base = c.Remixers
	} else if len(fields) == FileNameFieldCount {
		base = splitNames(fields[FieldArtists])
	}

	c.Artists = sortedSet(base)
	c.Performers = sortedSet(base, c.Featuring)
	c.ComposedPerformers = orderedSet(c.Featuring, c.Artists)
	return c
}

// sortedSet returns the sorted union of lists without duplicates.
func sortedSet(lists ...[]string) []string {
	out := orderedSet(lists...)
	sort.Strings(out)
	return out
}

// orderedSet returns the union of lists without duplicates, keeping the
// first occurrence order.
func orderedSet(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
