// Package main implements the multidiff CLI: a thin wrapper around the
// diff library exposing create/apply/verify/undo/show as subcommands.
//
// File index:
//   - main.go       - entry point, rootCmd, global flags
//   - cmd_create.go - createCmd
//   - cmd_apply.go  - applyCmd
//   - cmd_verify.go - verifyCmd
//   - cmd_undo.go   - undoCmd
//   - cmd_show.go   - showCmd
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantarc/multidiff/internal/config"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "multidiff",
	Short: "Create, apply, and verify multi-line text diffs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = cfg.NewLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "multidiff.yaml", "Path to config file")

	rootCmd.AddCommand(createCmd, applyCmd, verifyCmd, undoCmd, showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
