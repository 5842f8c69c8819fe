package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUndoLaw(t *testing.T) {
	source := "alpha\nbeta\ngamma\n"
	dst := "alpha\nBETA\ngamma\ndelta\n"

	d := Create(source, dst, Megatron)
	applied, err := Apply(source, d)
	assert.NoError(t, err)
	assert.Equal(t, dst, applied)

	undo, ok := MakeUndo(d)
	assert.True(t, ok)

	restored, err := Apply(applied, undo)
	assert.NoError(t, err)
	assert.Equal(t, source, restored)
}

func TestMakeUndoRequiresStoredContent(t *testing.T) {
	_, ok := MakeUndo(Diff{Ops: []Op{Retain(1)}})
	assert.False(t, ok)
}

func TestUndoChainingRoundTrips(t *testing.T) {
	d := Create("one\ntwo\n", "one\nTWO\nthree\n", Megatron)

	undo, ok := MakeUndo(d)
	assert.True(t, ok)

	undoUndo, ok := MakeUndo(undo)
	assert.True(t, ok)

	assert.Equal(t, *d.Metadata.SourceContent, *undoUndo.Metadata.SourceContent)
	assert.Equal(t, *d.Metadata.DestinationContent, *undoUndo.Metadata.DestinationContent)

	got, err := Apply(*undoUndo.Metadata.SourceContent, undoUndo)
	assert.NoError(t, err)
	assert.Equal(t, *d.Metadata.DestinationContent, got)
}
