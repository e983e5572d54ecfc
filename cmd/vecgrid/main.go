// SPDX-License-Identifier: MIT

// Command vecgrid demonstrates the grid package: a tic-tac-toe board, random
// and counter fills, and validation of persisted grid records.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vecgrid/internal/config"
	"github.com/katalvlaran/vecgrid/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vecgrid",
	Short: "vecgrid - dense two-dimensional grid demos",
	Long: `vecgrid exercises a row-major 2-D grid container.

Subcommands fill, print, persist and inspect grids. Logs go to stderr as JSON;
command output goes to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}
		if configPath == "" {
			cfg = config.DefaultConfig()
		} else if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Int("rows", cfg.Rows),
			zap.Int("columns", cfg.Columns),
			zap.String("order", cfg.Order),
			zap.String("format", cfg.Format))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: built-in defaults)")

	rootCmd.AddCommand(tictactoeCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
