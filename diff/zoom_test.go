package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoom(t *testing.T) {
	for _, test := range []struct {
		name        string
		source, dst string
	}{
		{"identical", "hello world", "hello world"},
		{"pure insert", "hello", "hello world"},
		{"pure delete", "hello world", "hello"},
		{"prefix and suffix shared", "the quick fox", "the slow fox"},
		{"wholly different", "abc", "xyz"},
		{"empty source", "", "new content"},
		{"empty destination", "old content", ""},
		{"both empty", "", ""},
	} {
		ops := zoom(test.source, test.dst)
		got, err := apply(test.source, ops)
		assert.NoError(t, err, test.name)
		assert.Equal(t, test.dst, got, test.name)
	}
}

func TestZoomBoundaryInvariant(t *testing.T) {
	// The trimmed prefix and suffix must never overlap: p + suffixLen must
	// stay within both strings' lengths.
	source, dst := "aaaa", "aaa"
	ops := zoom(source, dst)
	got, err := apply(source, ops)
	assert.NoError(t, err)
	assert.Equal(t, dst, got)
}
