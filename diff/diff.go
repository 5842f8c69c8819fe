package diff

// Diff is an ordered sequence of operations, optionally carrying metadata
// (spec §3). A Diff is immutable after construction. Create and ParseASCII
// both attach populated Metadata; callers may also build one by hand with
// Metadata left nil.
type Diff struct {
	Ops      []Op
	Metadata *Metadata
}

// Verify recomputes the checksum over Ops and compares it to
// Metadata.DiffHash (spec §4.4 Integrity verification, §6 Verify). A Diff
// with no metadata has nothing to verify against and reports false.
func (d Diff) Verify() bool {
	if d.Metadata == nil {
		return false
	}
	return checksum(d.Ops) == d.Metadata.DiffHash
}

// VerifyFull checks the checksum and additionally applies Ops to the
// stored SourceContent, confirming the result equals the stored
// DestinationContent (spec §6 verify_full).
func (d Diff) VerifyFull() bool {
	if !d.Verify() {
		return false
	}
	if d.Metadata.SourceContent == nil || d.Metadata.DestinationContent == nil {
		return false
	}
	result, err := apply(*d.Metadata.SourceContent, d.Ops)
	if err != nil {
		return false
	}
	return result == *d.Metadata.DestinationContent
}

// VerifyWithContent checks the checksum and applies Ops to the supplied
// src/dst pair instead of the diff's own stored snapshots (spec §4.4
// verify_with_content).
func (d Diff) VerifyWithContent(src, dst string) bool {
	if !d.Verify() {
		return false
	}
	result, err := apply(src, d.Ops)
	return err == nil && result == dst
}

// VerifyDiagnose runs the same checks as VerifyFull but reports which one
// failed, for callers (the CLI's verify subcommand) that want a specific
// error rather than a bare bool.
func (d Diff) VerifyDiagnose() error {
	if d.Metadata == nil {
		return &ChecksumMismatchError{Want: "", Got: ""}
	}
	if got := checksum(d.Ops); got != d.Metadata.DiffHash {
		return &ChecksumMismatchError{Want: d.Metadata.DiffHash, Got: got}
	}
	if d.Metadata.SourceContent == nil || d.Metadata.DestinationContent == nil {
		return &ContentMismatchError{}
	}
	result, err := apply(*d.Metadata.SourceContent, d.Ops)
	if err != nil {
		return err
	}
	if result != *d.Metadata.DestinationContent {
		return &ContentMismatchError{}
	}
	return nil
}

// Apply applies diff to document (spec §6 Apply). If the diff carries no
// metadata or no stored SourceContent, it attempts a direct application
// and surfaces whatever RetainOverflow/DeleteOverflow results, rather than
// invoking the context locator (spec §9, Open Question 3). Otherwise, if
// document matches the stored source exactly, it applies directly;
// otherwise it invokes the context locator to find the matching sub-range.
func Apply(document string, d Diff) (string, error) {
	return ApplyWithThreshold(document, d, DefaultLocatorThreshold)
}

// ApplyWithThreshold behaves like Apply but lets the caller override the
// context locator's minimum confidence score, for callers that expose it as
// a tunable (e.g. the CLI's configuration file).
func ApplyWithThreshold(document string, d Diff, threshold float64) (string, error) {
	if d.Metadata == nil || d.Metadata.SourceContent == nil {
		return apply(document, d.Ops)
	}
	if document == *d.Metadata.SourceContent {
		return apply(document, d.Ops)
	}
	return applyWithLocator(document, d, threshold)
}
