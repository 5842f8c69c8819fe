package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantarc/multidiff/display"
)

var (
	showPatch  string
	showFormat string
	showColor  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a patch's ASCII form, colorized",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readPatch(showPatch, showFormat)
		if err != nil {
			return err
		}
		if d.Metadata == nil || d.Metadata.SourceContent == nil {
			return fmt.Errorf("patch has no stored source content to render against")
		}

		ascii, err := display.Render(d, *d.Metadata.SourceContent, colorStyles())
		if err != nil {
			return err
		}
		fmt.Println(ascii)
		return nil
	},
}

func colorStyles() display.Styles {
	if showColor && cfg.Color.Enabled {
		return display.DefaultStyles()
	}
	return display.Styles{}
}

func init() {
	showCmd.Flags().StringVar(&showPatch, "patch", "", "Path to the patch file (required)")
	showCmd.Flags().StringVar(&showFormat, "format", "auto", "ascii|json|base64|auto")
	showCmd.Flags().BoolVar(&showColor, "color", true, "Colorize output")
	showCmd.MarkFlagRequired("patch")
}
