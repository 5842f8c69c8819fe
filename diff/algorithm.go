package diff

// Algorithm selects which generator Create uses (spec §4.3).
type Algorithm uint8

const (
	// Megatron is the hybrid line+character generator and the default
	// (spec §6).
	Megatron Algorithm = iota
	// Zoom is the bulk prefix/suffix generator (spec §4.3.1).
	Zoom
	// Flash is the line-aware variant of Zoom (spec §4.3.2).
	Flash
	// Starscream is the line-unit LCS generator (spec §4.3.3).
	Starscream
	// Optimus is the granular line-edit-script generator (spec §4.3.4).
	Optimus
)

func (a Algorithm) String() string {
	switch a {
	case Zoom:
		return "zoom"
	case Flash:
		return "flash"
	case Starscream:
		return "starscream"
	case Optimus:
		return "optimus"
	case Megatron:
		return "megatron"
	default:
		return "unknown"
	}
}

// Create computes a Diff transforming source into destination using the
// given algorithm (spec §6 Create). sourceStartLine is an optional 0-based
// line-index hint used for metadata's application-type inference; at most
// one value is read.
func Create(source, destination string, algo Algorithm, sourceStartLine ...int) Diff {
	var hint *int
	if len(sourceStartLine) > 0 {
		hint = &sourceStartLine[0]
	}
	ops, used := generateVerified(algo, source, destination)
	meta := captureMetadata(source, destination, ops, used, hint)
	return Diff{Ops: ops, Metadata: meta}
}

// generate dispatches to the requested algorithm's raw generator, with no
// verification.
func generate(algo Algorithm, source, destination string) []Op {
	switch algo {
	case Zoom:
		return zoom(source, destination)
	case Flash:
		return flash(source, destination)
	case Starscream:
		return starscream(source, destination)
	case Optimus:
		return optimus(source, destination)
	default:
		return megatron(source, destination)
	}
}

// generateVerified implements the verification-and-fallback wrapper (spec
// §4.3.7): any algorithm other than Zoom is applied to source and checked
// against destination before being trusted; on mismatch (or an apply
// error), it is silently replaced by Zoom, and the returned Algorithm
// reflects that substitution so callers can detect it via
// Diff.Metadata.AlgorithmUsed.
func generateVerified(algo Algorithm, source, destination string) ([]Op, Algorithm) {
	if algo == Zoom {
		return zoom(source, destination), Zoom
	}
	ops := generate(algo, source, destination)
	if result, err := apply(source, ops); err == nil && result == destination {
		return ops, algo
	}
	return zoom(source, destination), Zoom
}
