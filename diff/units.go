package diff

import (
	"strings"

	"github.com/rivo/uniseg"
)

// clusters splits s into user-perceived characters (extended grapheme
// clusters). This is the character unit used consistently by Retain/Delete
// counts, the checksum, and the ASCII codec's line accounting (see spec
// design note on character-unit choice).
func clusters(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// join reassembles a cluster slice back into a string.
func join(cs []string) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c)
	}
	return b.String()
}

// clusterLen returns the number of character units in s.
func clusterLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func commonPrefixLen(a, b []string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffixLen(a, b []string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// commonOverlap reports how far a suffix of a matches a prefix of b (in
// character units).
func commonOverlap(a, b []string) int {
	n := min(len(a), len(b))
	for length := n; length > 0; length-- {
		if sliceEqual(a[len(a)-length:], b[:length]) {
			return length
		}
	}
	return 0
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
