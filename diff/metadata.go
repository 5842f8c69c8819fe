package diff

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// ApplicationType hints whether a Diff was created against a full document
// or a section of one (spec §3, §4.4). It is advisory only: Apply always
// tries a direct match first regardless of this hint.
type ApplicationType uint8

const (
	// ApplicationUnknown means no hint is available (metadata absent or
	// field unset).
	ApplicationUnknown ApplicationType = iota
	// RequiresFullSource hints the diff was created against a complete
	// document.
	RequiresFullSource
	// RequiresTruncatedSource hints the diff was created against a section
	// of a larger document.
	RequiresTruncatedSource
)

func (t ApplicationType) String() string {
	switch t {
	case RequiresFullSource:
		return "requires_full_source"
	case RequiresTruncatedSource:
		return "requires_truncated_source"
	default:
		return "unknown"
	}
}

// Metadata is the optional record attached to a Diff (spec §3, §4.4). Every
// field is optional; a nil pointer or zero value signals "unknown" and
// disables the corresponding code path (e.g. no SourceContent means no
// undo and no context-located apply).
type Metadata struct {
	SourceStartLine    *int
	SourceTotalLines   int
	PrecedingContext   string
	FollowingContext   string
	SourceContent      *string
	DestinationContent *string
	AlgorithmUsed      Algorithm
	DiffHash           string
	ApplicationType    ApplicationType
}

// captureMetadata populates a Metadata record at generation time (spec
// §4.4 Capture).
func captureMetadata(source, destination string, ops []Op, algo Algorithm, sourceStartLine *int) *Metadata {
	lines := splitLines(source)

	var preceding, following string
	if len(lines) > 0 {
		preceding = lineText(lines[0])
		following = lineText(lines[len(lines)-1])
	}

	src := source
	dst := destination

	return &Metadata{
		SourceStartLine:    sourceStartLine,
		SourceTotalLines:   len(lines),
		PrecedingContext:   preceding,
		FollowingContext:   following,
		SourceContent:      &src,
		DestinationContent: &dst,
		AlgorithmUsed:      algo,
		DiffHash:           checksum(ops),
		ApplicationType:    inferApplicationType(sourceStartLine),
	}
}

// inferApplicationType implements spec §4.4's heuristic: a caller-supplied
// source_start_line greater than zero unconditionally marks the diff as
// requiring a truncated (section) source; otherwise it defaults to
// requiring the full source.
func inferApplicationType(sourceStartLine *int) ApplicationType {
	if sourceStartLine != nil && *sourceStartLine > 0 {
		return RequiresTruncatedSource
	}
	return RequiresFullSource
}

// checksum computes diff_hash: SHA-256 over the concatenation of each
// operation's type byte, a 4-byte big-endian count (Retain/Delete) or
// 4-byte big-endian byte-length followed by the UTF-8 bytes of the insert
// text (spec §4.4 Checksum).
func checksum(ops []Op) string {
	h := sha256.New()
	var buf [4]byte
	for _, op := range ops {
		switch op.Type {
		case OpRetain:
			h.Write([]byte{'R'})
			binary.BigEndian.PutUint32(buf[:], uint32(op.N))
			h.Write(buf[:])
		case OpDelete:
			h.Write([]byte{'D'})
			binary.BigEndian.PutUint32(buf[:], uint32(op.N))
			h.Write(buf[:])
		case OpInsert:
			h.Write([]byte{'I'})
			text := []byte(op.Text)
			binary.BigEndian.PutUint32(buf[:], uint32(len(text)))
			h.Write(buf[:])
			h.Write(text)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
