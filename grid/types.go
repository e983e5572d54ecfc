// SPDX-License-Identifier: MIT

// Package grid: domain types.
// This file holds ONLY the data model (Grid, Coord, Cell, Order) and the
// method tags used by error wrappers. Errors live in errors.go.

package grid

import "fmt"

// ---------- error context tags ----------

const (
	ctxFromRows          = "FromRows"
	ctxFromColumns       = "FromColumns"
	ctxFromRowMajor      = "FromRowMajor"
	ctxFromColumnMajor   = "FromColumnMajor"
	ctxFromSeqRowMajor   = "FromSeqRowMajor"
	ctxFromSeqColMajor   = "FromSeqColumnMajor"
	ctxFromRecord        = "FromRecord"
	ctxGet               = "Grid.Get"
	ctxGetMut            = "Grid.GetMut"
	ctxSet               = "Grid.Set"
	ctxGetRowMajor       = "Grid.GetRowMajor"
	ctxGetMutRowMajor    = "Grid.GetMutRowMajor"
	ctxSetRowMajor       = "Grid.SetRowMajor"
	ctxGetColumnMajor    = "Grid.GetColumnMajor"
	ctxGetMutColumnMajor = "Grid.GetMutColumnMajor"
	ctxSetColumnMajor    = "Grid.SetColumnMajor"
	ctxRow               = "Grid.Row"
	ctxRowMut            = "Grid.RowMut"
	ctxColumn            = "Grid.Column"
	ctxColumnMut         = "Grid.ColumnMut"
	ctxInsertRow         = "Grid.InsertRow"
	ctxInsertRows        = "Grid.InsertRows"
	ctxRemoveRows        = "Grid.RemoveRows"
	ctxInsertColumn      = "Grid.InsertColumn"
)

// Grid is a dynamically sized, rectangular, dense two-dimensional container.
//   - buf holds rows*cols elements in row-major order: (r, c) lives at r*cols + c.
//   - rows and cols are non-negative; either may be zero.
//
// Invariant: len(buf) == rows*cols before and after every exported method.
//
// The zero value is a valid 0×0 grid. A Grid is not safe for concurrent
// mutation; cursors and pointers handed out by *Mut methods alias buf and are
// valid only until the next structural mutation (InsertRow(s), AppendRows,
// RemoveRow(s), InsertColumn).
type Grid[T any] struct {
	buf  []T // contiguous row-major storage
	rows int // number of rows (column length)
	cols int // number of columns (row length)
}

// Coord names one logical cell.
type Coord struct {
	Row    int
	Column int
}

// String renders "(row, column)".
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Column) }

// Cell pairs a visitation-order coordinate with the element found there.
type Cell[T any] struct {
	Coord
	Value T
}

// Order selects a linear interpretation of the grid.
type Order uint8

const (
	// RowMajor visits all of row 0, then all of row 1, ...
	RowMajor Order = iota
	// ColumnMajor visits all of column 0, then all of column 1, ...
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// ParseOrder accepts "row-major"/"row" and "column-major"/"column"/"col".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "row-major", "row", "":
		return RowMajor, nil
	case "column-major", "column", "col":
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("grid: unknown order %q", s)
	}
}
