package diff

import "strings"

// splitLines splits s on "\n", keeping the terminator attached to each line
// except possibly the last (per spec §9, trailing-newline presence is
// significant and must round-trip). A sole trailing "\r" before "\n" is
// preserved as line content; CRLF normalization is out of scope.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	// SplitAfter leaves a trailing "" element when s ends in "\n"; drop it,
	// since it carries no content and no terminator of its own.
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// lineText strips a single trailing "\n" from a line produced by
// splitLines, for display/codec purposes. A sole trailing "\r" is left in
// place as line content (per spec §9, CRLF normalization is out of scope).
func lineText(line string) string {
	return strings.TrimSuffix(line, "\n")
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
	}
	return b.String()
}
