package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verifyPatch  string
	verifyFormat string
	verifyFull   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a patch's integrity",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readPatch(verifyPatch, verifyFormat)
		if err != nil {
			return err
		}

		var diagErr error
		if verifyFull {
			diagErr = d.VerifyDiagnose()
		} else if !d.Verify() {
			diagErr = fmt.Errorf("checksum mismatch")
		}

		logger.Info("verify result", zap.Bool("ok", diagErr == nil), zap.Bool("full", verifyFull))
		if diagErr != nil {
			return fmt.Errorf("verification failed: %w", diagErr)
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyPatch, "patch", "", "Path to the patch file (required)")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "auto", "ascii|json|base64|auto")
	verifyCmd.Flags().BoolVar(&verifyFull, "full", false, "Also round-trip apply against stored content")
	verifyCmd.MarkFlagRequired("patch")
}
