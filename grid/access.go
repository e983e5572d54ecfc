// SPDX-License-Identifier: MIT

// Package grid - queries, index translation and bounds-checked accessors.
//
// Three addressing schemes reach the same physical cell:
//   - (row, column)        → offset row*cols + column
//   - row-major index i    → (i / cols, i % cols)
//   - column-major index j → (j % rows, j / rows)
//
// All Get/GetMut/Set forms return *Error on violation; only MustGet and
// MustGetMut panic, by contract.

package grid

import "fmt"

const panicMustGet = "grid: %s indices %d, %d out of bounds for %d×%d grid"

// NumRows returns the number of rows. Complexity: O(1).
func (g *Grid[T]) NumRows() int { return g.rows }

// NumColumns returns the number of columns. Complexity: O(1).
func (g *Grid[T]) NumColumns() int { return g.cols }

// NumElements returns NumRows()*NumColumns(). Complexity: O(1).
func (g *Grid[T]) NumElements() int { return g.rows * g.cols }

// RowLen is the number of elements in each row, i.e. NumColumns().
func (g *Grid[T]) RowLen() int { return g.cols }

// ColumnLen is the number of elements in each column, i.e. NumRows().
func (g *Grid[T]) ColumnLen() int { return g.rows }

// Shape packs NumRows() and NumColumns() into one call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.rows, g.cols }

// ---------- index translation ----------

// RowMajorToCoord converts a row-major index into a coordinate for a grid
// with cols columns. The caller checks bounds.
func RowMajorToCoord(i, cols int) Coord { return Coord{Row: i / cols, Column: i % cols} }

// ColumnMajorToCoord converts a column-major index into a coordinate for a
// grid with rows rows. The caller checks bounds.
func ColumnMajorToCoord(j, rows int) Coord { return Coord{Row: j % rows, Column: j / rows} }

// CoordToRowMajor is the inverse of RowMajorToCoord.
func CoordToRowMajor(c Coord, cols int) int { return c.Row*cols + c.Column }

// CoordToColumnMajor is the inverse of ColumnMajorToCoord.
func CoordToColumnMajor(c Coord, rows int) int { return c.Column*rows + c.Row }

// offset bounds-checks (row, col) and returns the row-major buffer offset.
// Complexity: O(1).
func (g *Grid[T]) offset(row, col int) (int, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}

	return row*g.cols + col, true
}

// columnMajorOffset bounds-checks a column-major index and maps it to the
// row-major buffer offset.
func (g *Grid[T]) columnMajorOffset(j int) (int, bool) {
	if j < 0 || j >= len(g.buf) {
		return 0, false
	}
	c := ColumnMajorToCoord(j, g.rows)

	return c.Row*g.cols + c.Column, true
}

// ---------- (row, column) ----------

// Get returns the element at (row, col).
//
// Errors:
//   - ErrIndicesOutOfBounds carrying both coordinates.
func (g *Grid[T]) Get(row, col int) (T, error) {
	off, ok := g.offset(row, col)
	if !ok {
		var zero T
		return zero, indicesErr(ctxGet, row, col)
	}

	return g.buf[off], nil
}

// GetMut returns a pointer to the element at (row, col). The pointer aliases
// the grid buffer and is invalidated by structural mutation.
func (g *Grid[T]) GetMut(row, col int) (*T, error) {
	off, ok := g.offset(row, col)
	if !ok {
		return nil, indicesErr(ctxGetMut, row, col)
	}

	return &g.buf[off], nil
}

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) error {
	off, ok := g.offset(row, col)
	if !ok {
		return indicesErr(ctxSet, row, col)
	}
	g.buf[off] = v

	return nil
}

// MustGet is the fail-fast accessor: it panics on out-of-bounds (row, col)
// with a message naming both coordinates. Use Get for recoverable access.
func (g *Grid[T]) MustGet(row, col int) T {
	off, ok := g.offset(row, col)
	if !ok {
		panic(fmt.Sprintf(panicMustGet, "MustGet", row, col, g.rows, g.cols))
	}

	return g.buf[off]
}

// MustGetMut is the fail-fast pointer accessor; see MustGet.
func (g *Grid[T]) MustGetMut(row, col int) *T {
	off, ok := g.offset(row, col)
	if !ok {
		panic(fmt.Sprintf(panicMustGet, "MustGetMut", row, col, g.rows, g.cols))
	}

	return &g.buf[off]
}

// ---------- row-major index ----------

// GetRowMajor returns the element at row-major index i.
//
// Errors:
//   - ErrIndexOutOfBounds carrying i.
func (g *Grid[T]) GetRowMajor(i int) (T, error) {
	if i < 0 || i >= len(g.buf) {
		var zero T
		return zero, indexErr(ctxGetRowMajor, i)
	}

	return g.buf[i], nil
}

// GetMutRowMajor returns a pointer to the element at row-major index i.
func (g *Grid[T]) GetMutRowMajor(i int) (*T, error) {
	if i < 0 || i >= len(g.buf) {
		return nil, indexErr(ctxGetMutRowMajor, i)
	}

	return &g.buf[i], nil
}

// SetRowMajor stores v at row-major index i.
func (g *Grid[T]) SetRowMajor(i int, v T) error {
	if i < 0 || i >= len(g.buf) {
		return indexErr(ctxSetRowMajor, i)
	}
	g.buf[i] = v

	return nil
}

// ---------- column-major index ----------

// GetColumnMajor returns the element at column-major index j.
//
// Errors:
//   - ErrIndexOutOfBounds carrying j.
func (g *Grid[T]) GetColumnMajor(j int) (T, error) {
	off, ok := g.columnMajorOffset(j)
	if !ok {
		var zero T
		return zero, indexErr(ctxGetColumnMajor, j)
	}

	return g.buf[off], nil
}

// GetMutColumnMajor returns a pointer to the element at column-major index j.
func (g *Grid[T]) GetMutColumnMajor(j int) (*T, error) {
	off, ok := g.columnMajorOffset(j)
	if !ok {
		return nil, indexErr(ctxGetMutColumnMajor, j)
	}

	return &g.buf[off], nil
}

// SetColumnMajor stores v at column-major index j.
func (g *Grid[T]) SetColumnMajor(j int, v T) error {
	off, ok := g.columnMajorOffset(j)
	if !ok {
		return indexErr(ctxSetColumnMajor, j)
	}
	g.buf[off] = v

	return nil
}
