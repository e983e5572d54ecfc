// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/vecgrid/grid"
)

// NewGridGraph builds a GridGraph over a clone of g.
// Returns ErrEmptyGrid if g is nil or has no rows or no columns.
// Complexity: O(W×H) time and memory.
func NewGridGraph(g *grid.Grid[int], opts GridOptions) (*GridGraph, error) {
	if g == nil || g.NumRows() == 0 || g.NumColumns() == 0 {
		return nil, ErrEmptyGrid
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		cells:         g.Clone(),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// From2D builds a GridGraph from nested rows with default threshold and the
// given connectivity.
// Returns ErrEmptyGrid for no rows/columns, ErrNonRectangular for ragged input.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	g, err := grid.FromRows(values)
	if errors.Is(err, grid.ErrDimensionMismatch) {
		return nil, ErrNonRectangular
	}
	if err != nil {
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(g, opts)
}

// Width is the number of columns.
func (gg *GridGraph) Width() int { return gg.cells.NumColumns() }

// Height is the number of rows.
func (gg *GridGraph) Height() int { return gg.cells.NumRows() }

// Value returns the cell value at (x,y); ok is false outside the board.
func (gg *GridGraph) Value(x, y int) (v int, ok bool) {
	v, err := gg.cells.Get(y, x)

	return v, err == nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width() && y >= 0 && y < gg.Height()
}

// NeighborOffsets returns the (dx, dy) offsets for gg.Conn.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// index maps (x,y) to the grid's row-major index.
func (gg *GridGraph) index(x, y int) int {
	return grid.CoordToRowMajor(grid.Coord{Row: y, Column: x}, gg.Width())
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	c := grid.RowMajorToCoord(idx, gg.Width())

	return c.Column, c.Row
}

// isLand reports whether the cell at row-major index i is land.
func (gg *GridGraph) isLand(i int) bool {
	v, err := gg.cells.GetRowMajor(i)

	return err == nil && v >= gg.LandThreshold
}

// neighbors calls fn with the row-major index of every in-bounds neighbor of u.
func (gg *GridGraph) neighbors(u int, fn func(v int)) {
	ux, uy := gg.Coordinate(u)
	for _, d := range gg.offsets {
		vx, vy := ux+d[0], uy+d[1]
		if gg.InBounds(vx, vy) {
			fn(gg.index(vx, vy))
		}
	}
}
