// Package grid_test contains test helpers
//
// Purpose:
//   • Provide small deterministic fixtures shared by the table-driven tests.

package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/vecgrid/grid"
	"github.com/stretchr/testify/require"
)

// rows23 is the 2×3 fixture used throughout: [[1,2,3],[4,5,6]].
func rows23() [][]int { return [][]int{{1, 2, 3}, {4, 5, 6}} }

// mustFromRows builds a grid or aborts the test.
func mustFromRows[T any](tb testing.TB, rows [][]T) *grid.Grid[T] {
	tb.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(tb, err)

	return g
}

// requireRows compares g.AsRows() against want and prints a structural diff.
func requireRows[T any](tb testing.TB, want [][]T, g *grid.Grid[T]) {
	tb.Helper()
	if diff := cmp.Diff(want, g.AsRows()); diff != "" {
		tb.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// requireInvariant checks that the element count matches the shape.
func requireInvariant[T any](tb testing.TB, g *grid.Grid[T]) {
	tb.Helper()
	require.Equal(tb, g.NumRows()*g.NumColumns(), g.NumElements())
	require.Len(tb, g.AsRowMajor(), g.NumRows()*g.NumColumns())
}

// counter returns a generator yielding 1, 2, 3, ...
func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// collectNested materializes a cursor of cursors.
func collectNested[T any](c grid.Cursor[grid.Cursor[T]]) [][]T {
	out := [][]T{}
	for inner := range c.All() {
		out = append(out, inner.Collect())
	}

	return out
}

// derefAll reads every pointer in order.
func derefAll[T any](ps []*T) []T {
	out := make([]T, len(ps))
	for i, p := range ps {
		out[i] = *p
	}

	return out
}
