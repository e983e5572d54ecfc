// Package main contains unit tests for the vecgrid subcommands.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/vecgrid/grid"
	"github.com/katalvlaran/vecgrid/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setup installs a no-op logger and default config, and returns a command
// whose output is captured.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestParseMoves(t *testing.T) {
	ms, err := parseMoves("0,2:X; 1,1:O;;")
	require.NoError(t, err)
	require.Equal(t, []move{{row: 0, col: 2, mark: "X"}, {row: 1, col: 1, mark: "O"}}, ms)

	for _, bad := range []string{"0,2", "0:X", "a,1:X", "1,b:X", "1,1:"} {
		_, err := parseMoves(bad)
		require.Error(t, err, bad)
	}
}

func TestRunTicTacToe(t *testing.T) {
	cmd, buf := setup(t)
	moves = "0,2:X"
	defer func() { moves = "0,2:X" }()

	require.NoError(t, runTicTacToe(cmd, nil))
	empty := " | | \n-----\n | | \n-----\n | | "
	marked := " | |X\n-----\n | | \n-----\n | | "
	require.Equal(t, empty+"\n\n"+marked+"\n\n", buf.String())
}

func TestRunTicTacToe_OffBoard(t *testing.T) {
	cmd, _ := setup(t)
	moves = "3,0:X"
	defer func() { moves = "0,2:X" }()

	err := runTicTacToe(cmd, nil)
	require.ErrorIs(t, err, grid.ErrIndicesOutOfBounds)
}

func TestRunRandom(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runRandom(cmd, nil))
	require.Contains(t, buf.String(), "[1, 4]\n[2, 5]\n[3, 6]\nrow-major: [1 4 2 5 3 6]\n")

	// same seed, same digits
	first := buf.String()
	buf.Reset()
	require.NoError(t, runRandom(cmd, nil))
	require.Equal(t, first, buf.String())

	cfg.Order = "column-major"
	buf.Reset()
	require.NoError(t, runRandom(cmd, nil))
	require.Contains(t, buf.String(), "column-major: [1 2 3 4 5 6]\n")
}

func TestRunRandom_InvalidConfig(t *testing.T) {
	cmd, _ := setup(t)
	cfg.Format = "xml"
	require.ErrorContains(t, runRandom(cmd, nil), "invalid format")
}

func TestRunRandom_TooLarge(t *testing.T) {
	cmd, buf := setup(t)
	cmd.Flags().IntVar(&randomRows, "rows", 0, "")
	cmd.Flags().IntVar(&randomCols, "cols", 0, "")
	require.NoError(t, cmd.Flags().Set("rows", "1099511627776"))
	require.NoError(t, cmd.Flags().Set("cols", "1099511627776"))
	require.ErrorContains(t, runRandom(cmd, nil), "invalid dimensions")
	require.Empty(t, buf.String())
}

func TestRandomThenInspect(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".cbor"} {
		t.Run(ext, func(t *testing.T) {
			cmd, buf := setup(t)
			randomOut = filepath.Join(t.TempDir(), "digits"+ext)
			defer func() { randomOut = "" }()
			require.NoError(t, runRandom(cmd, nil))

			buf.Reset()
			require.NoError(t, runInspect(cmd, []string{randomOut}))
			require.True(t, strings.HasPrefix(buf.String(), "shape: 3×2\n"), buf.String())
		})
	}
}

func TestRunInspect(t *testing.T) {
	cmd, buf := setup(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"buffer":[1,2,3,4],"num_rows":2,"num_columns":2}`), 0o644))

	require.NoError(t, runInspect(cmd, []string{good}))
	require.Equal(t, "shape: 2×2\n[1, 2]\n[3, 4]\nrow-major: [1 2 3 4]\n\n", buf.String())

	inspectOrder = "column-major"
	defer func() { inspectOrder = "" }()
	buf.Reset()
	require.NoError(t, runInspect(cmd, []string{good}))
	require.Contains(t, buf.String(), "column-major: [1 3 2 4]\n")
}

func TestRunInspect_Rejects(t *testing.T) {
	cmd, _ := setup(t)
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.yaml")
	require.NoError(t, os.WriteFile(corrupt, []byte("buffer: [1, 2, 3]\nnum_rows: 2\nnum_columns: 2\n"), 0o644))
	require.ErrorIs(t, runInspect(cmd, []string{corrupt}), grid.ErrDimensionMismatch)

	unknown := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(unknown, []byte("x"), 0o644))
	require.ErrorIs(t, runInspect(cmd, []string{unknown}), errUnknownExt)

	require.Error(t, runInspect(cmd, []string{filepath.Join(dir, "missing.json")}))
}

func TestRootCommand_JSON(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"random", "--rows", "2", "--cols", "2", "--format", "json"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"buffer":[1,3,2,4],"num_rows":2,"num_columns":2}`, lines[1])
}

func TestRootCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecgrid.yaml")
	c := config.DefaultConfig()
	c.Rows, c.Columns = 1, 3
	require.NoError(t, c.Save(path))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", path, "tictactoe", "--moves", "1,1:O"})
	defer func() {
		rootCmd.SetArgs(nil)
		configPath = ""
		moves = "0,2:X"
	}()

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 1, cfg.Rows)
	require.Contains(t, buf.String(), " |O| ")
}
