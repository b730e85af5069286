package naming

import (
	"sort"
	"strings"
)

const (
	featuringPrefix = "feat."
	remixSuffix     = " Remix"

	// NameSeparator separates artist names inside a field or a group.
	NameSeparator = ", "
)

// group is a balanced parenthetical group of a string.
type group struct {
	// Open and Close are the byte offsets of the parentheses.
	Open  int
	Close int

	// Content is the text between the parentheses.
	Content string
}

// parenGroups returns every balanced parenthetical group of s, ordered by
// opening position. Nested groups are returned as well as their parents.
// Unmatched parentheses are ignored.
func parenGroups(s string) []group {
	var stack []int
	var groups []group
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			groups = append(groups, group{Open: open, Close: i, Content: s[open+1 : i]})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Open < groups[j].Open })
	return groups
}

// Featuring returns the featured artists of a file name, in file name order.
//
// The names come from the last "(feat. ...)" group and are separated by ", ".
// A featured name may contain its own parentheses:
//
//	Featuring("A - Song (feat. B, C(D)).flac") // ["B", "C(D)"]
//
// It returns nil when the file name has no featuring group.
func Featuring(fileName string) []string {
	var found *group
	groups := parenGroups(fileName)
	for i := range groups {
		if strings.HasPrefix(groups[i].Content, featuringPrefix) {
			found = &groups[i]
		}
	}
	if found == nil {
		return nil
	}
	names := strings.TrimPrefix(found.Content, featuringPrefix)
	names = strings.TrimPrefix(names, " ")
	return splitNames(names)
}

// Remixers returns the remix artists of a file name, in file name order.
//
// The names come from the group ending with " Remix)":
//
//	Remixers("A - Song (B, C Remix).flac") // ["B", "C"]
//
// When several groups match, the one closing last wins. It returns nil when
// the file name has no remix group.
func Remixers(fileName string) []string {
	var found *group
	groups := parenGroups(fileName)
	for i := range groups {
		if !strings.HasSuffix(groups[i].Content, remixSuffix) {
			continue
		}
		if found == nil || groups[i].Close > found.Close {
			found = &groups[i]
		}
	}
	if found == nil {
		return nil
	}
	return splitNames(strings.TrimSuffix(found.Content, remixSuffix))
}

// splitNames splits s on NameSeparator and drops empty names.
func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, NameSeparator) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
