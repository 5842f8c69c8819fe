// Package display renders a diff's ASCII-codec form with terminal colors,
// in the style of a diff overlay: retained lines in a neutral style,
// deletions and insertions in their own styles.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantarc/multidiff/diff"
)

// Styles bundles the three line styles a rendering needs, mirroring the
// add/delete/modify style triple a diff overlay carries.
type Styles struct {
	RetainStyle lipgloss.Style
	DeleteStyle lipgloss.Style
	InsertStyle lipgloss.Style
}

// DefaultStyles returns a reasonable default palette: green insertions, red
// deletions, and dim unchanged lines.
func DefaultStyles() Styles {
	return Styles{
		RetainStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DeleteStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		InsertStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

// Render colorizes a diff's ASCII-codec output line by line, classifying
// each line by its emitted prefix rather than re-walking d.Ops.
func Render(d diff.Diff, source string, styles Styles) (string, error) {
	ascii, err := diff.EmitASCII(d, source)
	if err != nil {
		return "", err
	}
	return RenderASCII(ascii, styles), nil
}

// RenderASCII colorizes an already-emitted ASCII patch.
func RenderASCII(ascii string, styles Styles) string {
	lines := strings.Split(ascii, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "📎 "):
			out[i] = styles.RetainStyle.Render(line)
		case strings.HasPrefix(line, "❌ "):
			out[i] = styles.DeleteStyle.Render(line)
		case strings.HasPrefix(line, "✅ "):
			out[i] = styles.InsertStyle.Render(line)
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}
