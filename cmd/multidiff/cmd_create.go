package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantarc/multidiff/diff"
	"github.com/quantarc/multidiff/envelope"
)

var (
	createSource      string
	createDestination string
	createAlgorithm   string
	createOut         string
	createFormat      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a diff between a source and destination file",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(createSource)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		destination, err := os.ReadFile(createDestination)
		if err != nil {
			return fmt.Errorf("read destination: %w", err)
		}

		algo := createAlgorithm
		if algo == "" {
			algo = cfg.DefaultAlgorithm
		}
		a, err := parseAlgorithm(algo)
		if err != nil {
			return err
		}

		d := diff.Create(string(source), string(destination), a)

		// patch_id/created_at are an operator-facing provenance label only;
		// they never enter diff.Diff or diff.Metadata.
		patchID := uuid.New().String()
		logger.Info("diff created",
			zap.String("patch_id", patchID),
			zap.Time("created_at", time.Now()),
			zap.String("algorithm", d.Metadata.AlgorithmUsed.String()),
			zap.Int("ops", len(d.Ops)),
		)

		out, err := renderPatch(d, string(source), createFormat)
		if err != nil {
			return err
		}
		return writeOutput(createOut, out)
	},
}

func init() {
	createCmd.Flags().StringVar(&createSource, "source", "", "Path to the source file (required)")
	createCmd.Flags().StringVar(&createDestination, "destination", "", "Path to the destination file (required)")
	createCmd.Flags().StringVar(&createAlgorithm, "algorithm", "", "zoom|flash|starscream|optimus|megatron (default: config default_algorithm)")
	createCmd.Flags().StringVar(&createOut, "out", "", "Output file (default: stdout)")
	createCmd.Flags().StringVar(&createFormat, "format", "ascii", "ascii|json|base64")
	createCmd.MarkFlagRequired("source")
	createCmd.MarkFlagRequired("destination")
}

func parseAlgorithm(name string) (diff.Algorithm, error) {
	switch name {
	case "zoom":
		return diff.Zoom, nil
	case "flash":
		return diff.Flash, nil
	case "starscream":
		return diff.Starscream, nil
	case "optimus":
		return diff.Optimus, nil
	case "megatron", "":
		return diff.Megatron, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func renderPatch(d diff.Diff, source, format string) (string, error) {
	switch format {
	case "ascii":
		return diff.EmitASCII(d, source)
	case "json":
		data, err := envelope.MarshalJSON(d)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "base64":
		return envelope.MarshalBase64(d)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
