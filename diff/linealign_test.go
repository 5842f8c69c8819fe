package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignLinesGranularVsBlock(t *testing.T) {
	src := splitLines("a\nb\nc\nd\n")
	dst := splitLines("a\nX\nY\nd\n")

	granular := alignLines(src, dst, true)
	block := alignLines(src, dst, false)

	deletes, inserts := 0, 0
	for _, op := range granular {
		switch op.Type {
		case OpDelete:
			deletes++
		case OpInsert:
			inserts++
		}
	}
	assert.Equal(t, 2, deletes)
	assert.Equal(t, 2, inserts)

	deletes, inserts = 0, 0
	for _, op := range block {
		switch op.Type {
		case OpDelete:
			deletes++
		case OpInsert:
			inserts++
		}
	}
	assert.Equal(t, 1, deletes)
	assert.Equal(t, 1, inserts)
}

func TestSumClusterLen(t *testing.T) {
	assert.Equal(t, 0, sumClusterLen(nil))
	assert.Equal(t, 4, sumClusterLen([]string{"ab", "cd"}))
}

func TestCoalesceRetains(t *testing.T) {
	in := []Op{Retain(1), Retain(2), Delete(1), Retain(0), Retain(3)}
	want := []Op{Retain(3), Delete(1), Retain(3)}
	assert.Equal(t, want, coalesceRetains(in))
}
