package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantarc/multidiff/diff"
)

var (
	undoPatch  string
	undoFormat string
	undoOut    string
	undoAs     string
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Synthesize the reverse of a patch",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readPatch(undoPatch, undoFormat)
		if err != nil {
			return err
		}

		undo, ok := diff.MakeUndo(d)
		if !ok {
			return fmt.Errorf("patch has no stored source/destination content; cannot synthesize an undo")
		}

		out, err := renderPatch(undo, *d.Metadata.DestinationContent, undoAs)
		if err != nil {
			return err
		}
		return writeOutput(undoOut, out)
	},
}

func init() {
	undoCmd.Flags().StringVar(&undoPatch, "patch", "", "Path to the patch file (required)")
	undoCmd.Flags().StringVar(&undoFormat, "format", "auto", "ascii|json|base64|auto")
	undoCmd.Flags().StringVar(&undoOut, "out", "", "Output file (default: stdout)")
	undoCmd.Flags().StringVar(&undoAs, "as", "ascii", "ascii|json|base64")
	undoCmd.MarkFlagRequired("patch")
}
