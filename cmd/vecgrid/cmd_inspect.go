// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/vecgrid/grid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectOrder string

// inspectCmd validates a persisted record and prints its shape and rows.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Validate and print a persisted grid record",
	Long: `Decode a {buffer, num_rows, num_columns} record from FILE, reject it if
the buffer length disagrees with the shape, and print the grid.

The encoding follows the extension: .json, .yaml/.yml or .cbor.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectOrder, "order", "", "Flat order to print (default from config)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	order := cfg.GridOrder()
	if inspectOrder != "" {
		o, err := grid.ParseOrder(inspectOrder)
		if err != nil {
			return err
		}
		order = o
	}

	g, err := loadRecord[any](path)
	if err != nil {
		logger.Warn("record rejected", zap.String("path", path), zap.Error(err))
		return err
	}
	rows, cols := g.Shape()
	logger.Debug("record loaded", zap.String("path", path), zap.Int("rows", rows), zap.Int("columns", cols))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shape: %d×%d\n", rows, cols)

	return writeGrid(out, g, cfg.Format, order)
}
