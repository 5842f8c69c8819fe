package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyWithLocatorUniqueSection(t *testing.T) {
	section := "func greet() {\n\tprintln(\"hi\")\n}\n"
	prefix := "package main\n\n"
	suffix := "\nfunc main() { greet() }\n"
	document := prefix + section + suffix

	newSection := "func greet() {\n\tprintln(\"hello\")\n}\n"
	d := Create(section, newSection, Megatron)

	got, err := applyWithLocator(document, d, DefaultLocatorThreshold)
	assert.NoError(t, err)
	assert.Equal(t, prefix+newSection+suffix, got)
}

func TestApplyWithLocatorSectionNotFound(t *testing.T) {
	section := "alpha\nbeta\ngamma\n"
	d := Create(section, "alpha\nBETA\ngamma\n", Megatron)

	document := "nothing\nmatches\nhere\nat\nall\n"
	_, err := applyWithLocator(document, d, DefaultLocatorThreshold)
	assert.Error(t, err)
	var target *SectionNotFoundError
	assert.ErrorAs(t, err, &target)
}

func TestApplyWithLocatorAmbiguousWithoutHint(t *testing.T) {
	section := "alpha\nbeta\ngamma\n"
	d := Create(section, "alpha\nBETA\ngamma\n", Megatron)
	d.Metadata.SourceStartLine = nil

	// Two identical copies of the section, so both candidates tie, and
	// there's no hint to break the tie.
	document := section + "\n---\n" + section
	_, err := applyWithLocator(document, d, DefaultLocatorThreshold)
	assert.Error(t, err)
	var target *AmbiguousMatchError
	assert.ErrorAs(t, err, &target)
}

func TestApplyWithLocatorHintDisambiguates(t *testing.T) {
	section := "alpha\nbeta\ngamma\n"
	d := Create(section, "alpha\nBETA\ngamma\n", Megatron)
	hint := 4
	d.Metadata.SourceStartLine = &hint

	document := section + "\n---\n" + section
	got, err := applyWithLocator(document, d, DefaultLocatorThreshold)
	assert.NoError(t, err)

	want := section + "\n---\n" + "alpha\nBETA\ngamma\n"
	assert.Equal(t, want, got)
}

func TestApplyDispatchesToLocatorWhenDocumentLarger(t *testing.T) {
	section := "one\ntwo\nthree\n"
	d := Create(section, "one\nTWO\nthree\n", Megatron)

	document := "before\n" + section + "after\n"
	got, err := Apply(document, d)
	assert.NoError(t, err)
	assert.Equal(t, "before\none\nTWO\nthree\nafter\n", got)
}
