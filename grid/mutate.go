// SPDX-License-Identifier: MIT

// Package grid - structural mutation: row insertion/removal, column insertion.
//
// Rows are contiguous in storage, so row operations are one splice at
// at*cols: O(elements from the splice point to the end). Columns interleave,
// so InsertColumn re-flattens the whole buffer column-major, splices, and
// re-flattens row-major: O(rows*cols).
//
// Every method validates first and mutates second; on error the grid is
// untouched.

package grid

import "slices"

// InsertRow splices row in front of row at, shifting later rows down.
// MAIN DESCRIPTION:
//   - Interior insertion only: 0 ≤ at < NumRows(). Use AppendRows or
//     InsertRows(…, NumRows()) to add at the end.
//
// Errors:
//   - ErrDimensionMismatch when len(row) != NumColumns() (checked first).
//   - ErrIndexOutOfBounds(at) when at is not an existing row.
//
// Complexity:
//   - Time O((rows-at)*cols + cols), amortized.
func (g *Grid[T]) InsertRow(row []T, at int) error {
	if len(row) != g.cols {
		return dimensionErr(ctxInsertRow)
	}
	if at < 0 || at >= g.rows {
		return indexErr(ctxInsertRow, at)
	}
	g.buf = slices.Insert(g.buf, at*g.cols, row...)
	g.rows++

	return nil
}

// InsertRows splices all rows, in order, as one contiguous block in front of
// row at. at == NumRows() appends.
//
// Errors:
//   - ErrDimensionMismatch when any row length differs from NumColumns() (checked first).
//   - ErrIndexOutOfBounds(at) unless 0 ≤ at ≤ NumRows().
//
// Complexity:
//   - Time O(len(rows)*cols + (rows-at)*cols), amortized.
func (g *Grid[T]) InsertRows(rows [][]T, at int) error {
	for _, row := range rows {
		if len(row) != g.cols {
			return dimensionErr(ctxInsertRows)
		}
	}
	if at < 0 || at > g.rows {
		return indexErr(ctxInsertRows, at)
	}
	block := make([]T, 0, len(rows)*g.cols)
	for _, row := range rows {
		block = append(block, row...)
	}
	g.buf = slices.Insert(g.buf, at*g.cols, block...)
	g.rows += len(rows)

	return nil
}

// AppendRows adds rows after the last row; see InsertRows.
func (g *Grid[T]) AppendRows(rows [][]T) error {
	return g.InsertRows(rows, g.rows)
}

// RemoveRow drops row at; see RemoveRows.
func (g *Grid[T]) RemoveRow(at int) error {
	return g.RemoveRows(at, 1)
}

// RemoveRows drops n consecutive rows starting at row at.
// MAIN DESCRIPTION:
//   - Every requested row must exist: 0 ≤ at and at+n ≤ NumRows().
//   - n == 0 is a no-op for any at in [0, NumRows()].
//
// Errors:
//   - ErrDimensionMismatch when n < 0.
//   - ErrIndexOutOfBounds(k), k being the first requested row that does not
//     exist: at itself when negative or past the end, NumRows() otherwise.
//
// Complexity:
//   - Time O((rows-at)*cols).
func (g *Grid[T]) RemoveRows(at, n int) error {
	if n < 0 {
		return dimensionErr(ctxRemoveRows)
	}
	if at < 0 || at > g.rows {
		return indexErr(ctxRemoveRows, at)
	}
	if at+n > g.rows {
		return indexErr(ctxRemoveRows, g.rows)
	}
	start := at * g.cols
	g.buf = slices.Delete(g.buf, start, start+n*g.cols)
	g.rows -= n

	return nil
}

// InsertColumn splices column in front of column at; at == NumColumns()
// appends.
// Implementation:
//   - Stage 1: validate length and position.
//   - Stage 2: flatten column-major, where the new column is one contiguous block.
//   - Stage 3: splice at at*rows, then transpose back to row-major.
//
// Errors:
//   - ErrDimensionMismatch when len(column) != NumRows() (checked first).
//   - ErrIndexOutOfBounds(at) unless 0 ≤ at ≤ NumColumns().
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols); strictly costlier than InsertRow.
func (g *Grid[T]) InsertColumn(column []T, at int) error {
	if len(column) != g.rows {
		return dimensionErr(ctxInsertColumn)
	}
	if at < 0 || at > g.cols {
		return indexErr(ctxInsertColumn, at)
	}
	colMajor := transposeToColumnMajor(g.buf, g.rows, g.cols)
	colMajor = slices.Insert(colMajor, at*g.rows, column...)
	g.buf = transposeToRowMajor(colMajor, g.rows, g.cols+1)
	g.cols++

	return nil
}
