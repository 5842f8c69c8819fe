package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantarc/multidiff/diff"
)

var (
	applyDocument string
	applyPatch    string
	applyFormat   string
	applyOut      string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a patch to a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := os.ReadFile(applyDocument)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		d, err := readPatch(applyPatch, applyFormat)
		if err != nil {
			return err
		}

		result, err := diff.ApplyWithThreshold(string(document), d, cfg.LocatorThreshold)
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		return writeOutput(applyOut, result)
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyDocument, "document", "", "Path to the document to patch (required)")
	applyCmd.Flags().StringVar(&applyPatch, "patch", "", "Path to the patch file (required)")
	applyCmd.Flags().StringVar(&applyFormat, "format", "auto", "ascii|json|base64|auto")
	applyCmd.Flags().StringVar(&applyOut, "out", "", "Output file (default: stdout)")
	applyCmd.MarkFlagRequired("document")
	applyCmd.MarkFlagRequired("patch")
}
