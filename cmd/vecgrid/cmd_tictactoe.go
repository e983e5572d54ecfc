// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecgrid/grid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	boardSize      = 3
	boardEmpty     = " "
	boardColumnSep = "|"
	boardRowSep    = "\n-----\n"
)

var moves string

// tictactoeCmd prints an empty board, applies moves, and prints it again.
var tictactoeCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Place marks on a 3×3 board",
	Long: `Place marks on a 3×3 board and print it before and after.

Moves are "row,column:mark" separated by semicolons, e.g. "0,2:X;1,1:O".`,
	Args: cobra.NoArgs,
	RunE: runTicTacToe,
}

func init() {
	tictactoeCmd.Flags().StringVar(&moves, "moves", "0,2:X", "Moves to apply, row,column:mark;...")
}

// move is one parsed placement.
type move struct {
	row, col int
	mark     string
}

// parseMoves splits "r,c:m;r,c:m". Empty segments are skipped.
func parseMoves(s string) ([]move, error) {
	var out []move
	for _, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		pos, mark, ok := strings.Cut(seg, ":")
		if !ok || mark == "" {
			return nil, fmt.Errorf("move %q: want row,column:mark", seg)
		}
		rs, cs, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("move %q: want row,column:mark", seg)
		}
		r, err := strconv.Atoi(strings.TrimSpace(rs))
		if err != nil {
			return nil, fmt.Errorf("move %q: bad row: %w", seg, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(cs))
		if err != nil {
			return nil, fmt.Errorf("move %q: bad column: %w", seg, err)
		}
		out = append(out, move{row: r, col: c, mark: mark})
	}

	return out, nil
}

// formatBoard joins cells with "|" and rows with a dashed rule.
func formatBoard(board *grid.Grid[string]) string {
	lines := make([]string, 0, board.NumRows())
	for row := range board.Rows().All() {
		lines = append(lines, strings.Join(row.Collect(), boardColumnSep))
	}

	return strings.Join(lines, boardRowSep)
}

func runTicTacToe(cmd *cobra.Command, args []string) error {
	ms, err := parseMoves(moves)
	if err != nil {
		return err
	}
	board := grid.FilledWith(boardEmpty, boardSize, boardSize)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", formatBoard(board))

	for _, m := range ms {
		if err := board.Set(m.row, m.col, m.mark); err != nil {
			return fmt.Errorf("move %d,%d: %w", m.row, m.col, err)
		}
		logger.Debug("placed mark", zap.Int("row", m.row), zap.Int("column", m.col), zap.String("mark", m.mark))
	}
	fmt.Fprintf(out, "%s\n\n", formatBoard(board))

	return nil
}
