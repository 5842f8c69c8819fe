package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectnessAllAlgorithms(t *testing.T) {
	cases := []struct{ source, dst string }{
		{"hello world", "hello there"},
		{"a\nb\nc\n", "a\nB\nc\nd\n"},
		{"", "fresh content"},
		{"stale content", ""},
		{"same", "same"},
	}
	for _, c := range cases {
		for _, algo := range []Algorithm{Zoom, Flash, Starscream, Optimus, Megatron} {
			d := Create(c.source, c.dst, algo)
			got, err := Apply(c.source, d)
			assert.NoError(t, err)
			assert.Equal(t, c.dst, got)
		}
	}
}

func TestVerifyImmediatelyAfterCreate(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron)
	assert.True(t, d.Verify())
}

func TestVerifyFalseWithoutMetadata(t *testing.T) {
	d := Diff{Ops: []Op{Retain(3)}}
	assert.False(t, d.Verify())
}

func TestVerifyFullRoundTrip(t *testing.T) {
	d := Create("one\ntwo\nthree\n", "one\nTWO\nthree\n", Megatron)
	assert.True(t, d.VerifyFull())
}

func TestVerifyWithContent(t *testing.T) {
	d := Create("x", "y", Zoom)
	assert.True(t, d.VerifyWithContent("x", "y"))
	assert.False(t, d.VerifyWithContent("x", "z"))
}

func TestApplyDirectWhenDocumentMatchesSource(t *testing.T) {
	source := "alpha\nbeta\n"
	d := Create(source, "alpha\nBETA\n", Megatron)
	got, err := Apply(source, d)
	assert.NoError(t, err)
	assert.Equal(t, "alpha\nBETA\n", got)
}

func TestApplyWithoutMetadataSurfacesOverflow(t *testing.T) {
	d := Diff{Ops: []Op{Retain(100)}}
	_, err := Apply("short", d)
	assert.Error(t, err)
	var target *RetainOverflowError
	assert.ErrorAs(t, err, &target)
}

func TestVerifyDiagnoseReportsChecksumMismatch(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron)
	d.Metadata.DiffHash = "corrupt"

	err := d.VerifyDiagnose()
	assert.Error(t, err)
	var target *ChecksumMismatchError
	assert.ErrorAs(t, err, &target)
}

func TestVerifyDiagnoseReportsContentMismatch(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron)
	dst := "a\nsomething else\n"
	d.Metadata.DestinationContent = &dst

	err := d.VerifyDiagnose()
	assert.Error(t, err)
	var target *ContentMismatchError
	assert.ErrorAs(t, err, &target)
}

func TestVerifyDiagnoseOKWhenSound(t *testing.T) {
	d := Create("a\nb\n", "a\nB\n", Megatron)
	assert.NoError(t, d.VerifyDiagnose())
}

func TestApplyWithThresholdRejectsWeakCandidate(t *testing.T) {
	section := "alpha\nbeta\ngamma\n"
	d := Create(section, "alpha\nBETA\ngamma\n", Megatron)
	d.Metadata.SourceStartLine = nil

	document := "prefix\n" + section + "suffix\n"

	// A threshold above what even a perfect, unique match can reach (base
	// 1.0 + fraction 1.0 = 2.0) should make every candidate fail.
	_, err := ApplyWithThreshold(document, d, 2.5)
	assert.Error(t, err)
	var target *SectionNotFoundError
	assert.ErrorAs(t, err, &target)
}

func TestTruncatedApplication(t *testing.T) {
	section := "func greet() {\n\tprintln(\"hi\")\n}\n"
	prefix := "package main\n\n"
	suffix := "\nfunc main() { greet() }\n"
	document := prefix + section + suffix

	newSection := "func greet() {\n\tprintln(\"hello\")\n}\n"
	d := Create(section, newSection, Megatron)

	got, err := Apply(document, d)
	assert.NoError(t, err)
	assert.Equal(t, prefix+newSection+suffix, got)
}
