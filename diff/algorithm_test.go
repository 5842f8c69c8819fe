package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAllAlgorithmsAgree(t *testing.T) {
	source := "line one\nline two\nline three\n"
	dst := "line one\nLINE TWO\nline three\nline four\n"

	for _, algo := range []Algorithm{Zoom, Flash, Starscream, Optimus, Megatron} {
		d := Create(source, dst, algo)
		got, err := apply(source, d.Ops)
		assert.NoError(t, err, algo.String())
		assert.Equal(t, dst, got, algo.String())
	}
}

func TestAlgorithmString(t *testing.T) {
	for _, test := range []struct {
		a    Algorithm
		want string
	}{
		{Zoom, "zoom"},
		{Flash, "flash"},
		{Starscream, "starscream"},
		{Optimus, "optimus"},
		{Megatron, "megatron"},
		{Algorithm(99), "unknown"},
	} {
		assert.Equal(t, test.want, test.a.String())
	}
}

// Zoom is exempt from verification by construction (spec §4.3.7); confirm
// generateVerified honors that and reports it unchanged.
func TestGenerateVerifiedZoomBypassesVerification(t *testing.T) {
	source, destination := "hello world", "hello there"

	ops, algo := generateVerified(Zoom, source, destination)
	assert.Equal(t, Zoom, algo)
	got, err := apply(source, ops)
	assert.NoError(t, err)
	assert.Equal(t, destination, got)
}

func TestCreatePopulatesMetadata(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron)
	assert.NotNil(t, d.Metadata)
	assert.Equal(t, Megatron, d.Metadata.AlgorithmUsed)
	assert.NotEmpty(t, d.Metadata.DiffHash)
}

func TestCreateWithSourceStartLineHint(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron, 5)
	assert.NotNil(t, d.Metadata.SourceStartLine)
	assert.Equal(t, 5, *d.Metadata.SourceStartLine)
	assert.Equal(t, RequiresTruncatedSource, d.Metadata.ApplicationType)
}
