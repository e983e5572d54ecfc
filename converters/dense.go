// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/vecgrid/grid"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies g into a new rows×cols dense matrix.
//
// Implementation:
//   - Stage 1: reject degenerate shapes (mat.NewDense panics on them).
//   - Stage 2: hand gonum a row-major copy; Dense stores row-major too, so the
//     buffer is used as-is.
//
// Errors:
//   - ErrEmptyGrid when g is nil or has a zero dimension.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToDense(g *grid.Grid[float64]) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	rows, cols := g.Shape()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}

	return mat.NewDense(rows, cols, g.AsRowMajor()), nil
}

// FromMatrix reads m cell by cell into a new grid of the same shape.
// Any mat.Matrix works, including transposed and sliced views.
func FromMatrix(m mat.Matrix) *grid.Grid[float64] {
	rows, cols := m.Dims()
	i := 0
	next := func() float64 {
		v := m.At(i/cols, i%cols)
		i++
		return v
	}

	return grid.FilledByRowMajor(next, rows, cols)
}
