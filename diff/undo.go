package diff

// MakeUndo synthesizes a diff that reverses d (spec §4.4 make_undo). It does
// not invert d's operations in place; it re-runs d's own algorithm (or, if
// unavailable, Megatron) on the source/destination pair with their roles
// swapped, so the undo diff is a fresh, independently-verifiable Diff rather
// than a patched-up mirror of the original. It reports ok=false when d
// lacks the stored content required to do so.
func MakeUndo(d Diff) (undo Diff, ok bool) {
	if d.Metadata == nil || d.Metadata.SourceContent == nil || d.Metadata.DestinationContent == nil {
		return Diff{}, false
	}
	algo := d.Metadata.AlgorithmUsed
	return Create(*d.Metadata.DestinationContent, *d.Metadata.SourceContent, algo), true
}
