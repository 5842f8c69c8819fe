package main

import (
	"fmt"
	"os"

	"github.com/quantarc/multidiff/diff"
	"github.com/quantarc/multidiff/envelope"
)

// readPatch loads a patch file and parses it per format, auto-detecting
// between ascii/json/base64 when format is "auto".
func readPatch(path, format string) (diff.Diff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diff.Diff{}, fmt.Errorf("read patch: %w", err)
	}
	return parsePatch(string(data), format)
}

func parsePatch(content, format string) (diff.Diff, error) {
	switch format {
	case "ascii":
		return diff.ParseASCII(content)
	case "json":
		return envelope.UnmarshalJSON([]byte(content))
	case "base64":
		return envelope.UnmarshalBase64(content)
	case "auto", "":
		if d, err := envelope.UnmarshalJSON([]byte(content)); err == nil {
			return d, nil
		}
		if d, err := diff.ParseASCII(content); err == nil {
			return d, nil
		}
		return envelope.UnmarshalBase64(content)
	default:
		return diff.Diff{}, fmt.Errorf("unknown format %q", format)
	}
}
