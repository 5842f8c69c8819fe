package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlash(t *testing.T) {
	for _, test := range []struct {
		name        string
		source, dst string
	}{
		{"identical multiline", "a\nb\nc\n", "a\nb\nc\n"},
		{"line appended", "a\nb\n", "a\nb\nc\n"},
		{"line removed", "a\nb\nc\n", "a\nb\n"},
		{"middle line changed", "a\nb\nc\n", "a\nB\nc\n"},
		{"no trailing newline", "a\nb", "a\nb\nc"},
		{"single line", "hello", "hello world"},
	} {
		ops := flash(test.source, test.dst)
		got, err := apply(test.source, ops)
		assert.NoError(t, err, test.name)
		assert.Equal(t, test.dst, got, test.name)
	}
}
