// Package envelope implements the JSON and Base64 collaborator contracts
// described in spec §6: external wrappers may serialize a diff.Diff using
// the short field names str, cnt, pre, fol, src, dst, alg, hsh, app. These
// formats sit outside the core diff package — the core only commits to a
// canonical in-memory Diff, so this package owns the translation to and
// from wire bytes.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/quantarc/multidiff/diff"
)

// opJSON is the canonical operation shape from spec §6:
// {"type": "retain"|"delete"|"insert", "count": N} or
// {"type": "insert", "text": "..."}.
type opJSON struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
	Text  string `json:"text,omitempty"`
}

// metadataJSON mirrors diff.Metadata with the field names spec §6 assigns
// to the envelope contract.
type metadataJSON struct {
	SourceStartLine    *int   `json:"str,omitempty"`
	SourceTotalLines   int    `json:"cnt"`
	PrecedingContext   string `json:"pre"`
	FollowingContext   string `json:"fol"`
	SourceContent      *string `json:"src,omitempty"`
	DestinationContent *string `json:"dst,omitempty"`
	AlgorithmUsed      string `json:"alg"`
	DiffHash           string `json:"hsh"`
	ApplicationType    string `json:"app"`
}

type envelopeJSON struct {
	Ops      []opJSON      `json:"ops"`
	Metadata *metadataJSON `json:"metadata,omitempty"`
}

// MarshalJSON renders d as the canonical envelope JSON.
func MarshalJSON(d diff.Diff) ([]byte, error) {
	env := envelopeJSON{Ops: make([]opJSON, len(d.Ops))}
	for i, op := range d.Ops {
		switch op.Type {
		case diff.OpRetain:
			env.Ops[i] = opJSON{Type: "retain", Count: op.N}
		case diff.OpDelete:
			env.Ops[i] = opJSON{Type: "delete", Count: op.N}
		case diff.OpInsert:
			env.Ops[i] = opJSON{Type: "insert", Text: op.Text}
		}
	}
	if d.Metadata != nil {
		m := d.Metadata
		env.Metadata = &metadataJSON{
			SourceStartLine:    m.SourceStartLine,
			SourceTotalLines:   m.SourceTotalLines,
			PrecedingContext:   m.PrecedingContext,
			FollowingContext:   m.FollowingContext,
			SourceContent:      m.SourceContent,
			DestinationContent: m.DestinationContent,
			AlgorithmUsed:      m.AlgorithmUsed.String(),
			DiffHash:           m.DiffHash,
			ApplicationType:    m.ApplicationType.String(),
		}
	}
	return json.Marshal(env)
}

// UnmarshalJSON parses the canonical envelope JSON back into a diff.Diff.
func UnmarshalJSON(data []byte) (diff.Diff, error) {
	var env envelopeJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return diff.Diff{}, err
	}

	ops := make([]diff.Op, len(env.Ops))
	for i, o := range env.Ops {
		switch o.Type {
		case "retain":
			ops[i] = diff.Retain(o.Count)
		case "delete":
			ops[i] = diff.Delete(o.Count)
		case "insert":
			ops[i] = diff.Insert(o.Text)
		default:
			return diff.Diff{}, fmt.Errorf("envelope: unknown operation type %q", o.Type)
		}
	}

	result := diff.Diff{Ops: ops}
	if env.Metadata == nil {
		return result, nil
	}
	m := env.Metadata
	result.Metadata = &diff.Metadata{
		SourceStartLine:    m.SourceStartLine,
		SourceTotalLines:   m.SourceTotalLines,
		PrecedingContext:   m.PrecedingContext,
		FollowingContext:   m.FollowingContext,
		SourceContent:      m.SourceContent,
		DestinationContent: m.DestinationContent,
		AlgorithmUsed:      algorithmFromString(m.AlgorithmUsed),
		DiffHash:           m.DiffHash,
		ApplicationType:    applicationTypeFromString(m.ApplicationType),
	}
	return result, nil
}

func algorithmFromString(s string) diff.Algorithm {
	switch s {
	case "zoom":
		return diff.Zoom
	case "flash":
		return diff.Flash
	case "starscream":
		return diff.Starscream
	case "optimus":
		return diff.Optimus
	default:
		return diff.Megatron
	}
}

func applicationTypeFromString(s string) diff.ApplicationType {
	switch s {
	case "requires_full_source":
		return diff.RequiresFullSource
	case "requires_truncated_source":
		return diff.RequiresTruncatedSource
	default:
		return diff.ApplicationUnknown
	}
}

// MarshalBase64 renders d as the canonical envelope JSON, Base64-encoded.
func MarshalBase64(d diff.Diff) (string, error) {
	data, err := MarshalJSON(d)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 decodes a Base64 envelope and parses the JSON within.
func UnmarshalBase64(encoded string) (diff.Diff, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return diff.Diff{}, err
	}
	return UnmarshalJSON(data)
}
