// SPDX-License-Identifier: MIT

// Package grid - construction paths.
//
// Every constructor returns either a grid satisfying len(buf) == rows*cols or a
// *Error; a partially valid Grid is never observable.
//
// Complexity quicksheet:
//   - FromRows/FromColumns/FromColumnMajor: O(r*c) copy.
//   - FromRowMajor: O(1), takes ownership of the slice.
//   - FilledWith/FilledBy*: O(r*c).
//   - FromSeq*: O(r*c), pulls at most r*c items.

package grid

import (
	"fmt"
	"iter"
	"math"
)

const (
	panicNegativeDims = "grid: invalid dimensions %d×%d"
	panicFilledBy     = "grid: FilledByColumnMajor should never fail: %v"
)

// seqPrealloc caps the up-front capacity when draining a sequence.
const seqPrealloc = 1 << 12

// checkDims reports whether rows×cols is a representable shape: both
// dimensions non-negative and rows*cols within int.
func checkDims(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return rows == 0 || cols <= math.MaxInt/rows
}

// mustDims panics on invalid dimensions (programmer error, not user input).
func mustDims(rows, cols int) {
	if !checkDims(rows, cols) {
		panic(fmt.Sprintf(panicNegativeDims, rows, cols))
	}
}

// New returns a rows×cols grid of zero values.
// Panics on negative dimensions or when rows*cols overflows int.
func New[T any](rows, cols int) *Grid[T] {
	mustDims(rows, cols)

	return &Grid[T]{buf: make([]T, rows*cols), rows: rows, cols: cols}
}

// FromRows builds a grid from a slice of equally long rows.
// MAIN DESCRIPTION:
//   - The column count is taken from the first row; zero rows means zero columns.
//
// Implementation:
//   - Stage 1: start from an empty 0×len(rows[0]) grid.
//   - Stage 2: AppendRows, which validates every row and splices them in one block.
//
// Errors:
//   - ErrDimensionMismatch when any row length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	var rowLen int
	if len(rows) > 0 {
		rowLen = len(rows[0])
	}
	g := &Grid[T]{cols: rowLen}
	if err := g.AppendRows(rows); err != nil {
		return nil, dimensionErr(ctxFromRows)
	}

	return g, nil
}

// FromColumns builds a grid from a slice of equally long columns, transposing
// them into row-major storage.
//
// Errors:
//   - ErrDimensionMismatch when any column length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromColumns[T any](columns [][]T) (*Grid[T], error) {
	var colLen int
	if len(columns) > 0 {
		colLen = len(columns[0])
	}
	for _, column := range columns {
		if len(column) != colLen {
			return nil, dimensionErr(ctxFromColumns)
		}
	}
	rows, cols := colLen, len(columns)
	buf := make([]T, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ { // walk row-major, read column-wise
		for c = 0; c < cols; c++ {
			buf = append(buf, columns[c][r])
		}
	}

	return &Grid[T]{buf: buf, rows: rows, cols: cols}, nil
}

// FromRowMajor wraps a flat row-major slice. The grid takes ownership of
// elements; the caller must not reuse it.
//
// Errors:
//   - ErrDimensionMismatch when len(elements) != rows*cols, a dimension is negative,
//     or rows*cols overflows int.
func FromRowMajor[T any](elements []T, rows, cols int) (*Grid[T], error) {
	if !checkDims(rows, cols) || len(elements) != rows*cols {
		return nil, dimensionErr(ctxFromRowMajor)
	}
	if elements == nil {
		elements = []T{}
	}

	return &Grid[T]{buf: elements, rows: rows, cols: cols}, nil
}

// FromColumnMajor builds a grid from a flat column-major slice: element j of
// the input lands at (j % rows, j / rows).
//
// Errors:
//   - ErrDimensionMismatch when len(elements) != rows*cols, a dimension is negative,
//     or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromColumnMajor[T any](elements []T, rows, cols int) (*Grid[T], error) {
	if !checkDims(rows, cols) || len(elements) != rows*cols {
		return nil, dimensionErr(ctxFromColumnMajor)
	}

	return &Grid[T]{buf: transposeToRowMajor(elements, rows, cols), rows: rows, cols: cols}, nil
}

// transposeToRowMajor reorders a column-major buffer into a fresh row-major one.
// Caller guarantees len(src) == rows*cols.
func transposeToRowMajor[T any](src []T, rows, cols int) []T {
	dst := make([]T, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			dst = append(dst, src[c*rows+r])
		}
	}

	return dst
}

// transposeToColumnMajor reorders a row-major buffer into a fresh column-major one.
func transposeToColumnMajor[T any](src []T, rows, cols int) []T {
	dst := make([]T, 0, rows*cols)
	var r, c int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			dst = append(dst, src[r*cols+c])
		}
	}

	return dst
}

// FilledWith returns a rows×cols grid with v in every cell.
// Panics on negative or overflowing dimensions.
func FilledWith[T any](v T, rows, cols int) *Grid[T] {
	mustDims(rows, cols)
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = v
	}

	return &Grid[T]{buf: buf, rows: rows, cols: cols}
}

// FilledByRowMajor calls gen exactly rows*cols times, storing results in
// row-major order: the k-th call fills (k / cols, k % cols).
// Panics on negative or overflowing dimensions.
func FilledByRowMajor[T any](gen func() T, rows, cols int) *Grid[T] {
	mustDims(rows, cols)
	n := rows * cols
	buf := make([]T, 0, n)
	for k := 0; k < n; k++ {
		buf = append(buf, gen())
	}

	return &Grid[T]{buf: buf, rows: rows, cols: cols}
}

// FilledByColumnMajor calls gen exactly rows*cols times walking column-major
// order: the k-th call fills (k % rows, k / rows). Storage stays row-major.
// The call order of gen is part of the contract.
// Panics on negative or overflowing dimensions.
func FilledByColumnMajor[T any](gen func() T, rows, cols int) *Grid[T] {
	mustDims(rows, cols)
	n := rows * cols
	colMajor := make([]T, 0, n)
	for k := 0; k < n; k++ {
		colMajor = append(colMajor, gen())
	}
	// Length equals rows*cols by construction; a failure here is a bug.
	g, err := FromColumnMajor(colMajor, rows, cols)
	if err != nil {
		panic(fmt.Sprintf(panicFilledBy, err))
	}

	return g
}

// FromSeqRowMajor fills a rows×cols grid in row-major order from seq.
// Items beyond rows*cols are never pulled.
//
// Errors:
//   - ErrNotEnoughElements when seq ends early.
//   - ErrDimensionMismatch on negative dimensions or when rows*cols overflows int.
func FromSeqRowMajor[T any](seq iter.Seq[T], rows, cols int) (*Grid[T], error) {
	if !checkDims(rows, cols) {
		return nil, dimensionErr(ctxFromSeqRowMajor)
	}
	buf, ok := take(seq, rows*cols)
	if !ok {
		return nil, notEnoughErr(ctxFromSeqRowMajor)
	}

	return &Grid[T]{buf: buf, rows: rows, cols: cols}, nil
}

// FromSeqColumnMajor fills a rows×cols grid in column-major order from seq.
// Items beyond rows*cols are never pulled.
//
// Errors:
//   - ErrNotEnoughElements when seq ends early.
//   - ErrDimensionMismatch on negative dimensions or when rows*cols overflows int.
func FromSeqColumnMajor[T any](seq iter.Seq[T], rows, cols int) (*Grid[T], error) {
	if !checkDims(rows, cols) {
		return nil, dimensionErr(ctxFromSeqColMajor)
	}
	colMajor, ok := take(seq, rows*cols)
	if !ok {
		return nil, notEnoughErr(ctxFromSeqColMajor)
	}

	return &Grid[T]{buf: transposeToRowMajor(colMajor, rows, cols), rows: rows, cols: cols}, nil
}

// take pulls up to n items from seq and stops the producer as soon as the
// n-th arrives. Reports false when seq ended first.
func take[T any](seq iter.Seq[T], n int) ([]T, bool) {
	buf := make([]T, 0, min(n, seqPrealloc))
	if n == 0 {
		return buf, true
	}
	for v := range seq {
		buf = append(buf, v)
		if len(buf) == n {
			break
		}
	}

	return buf, len(buf) == n
}

// Clone returns a deep copy of the grid's storage (elements are copied by value).
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.buf))
	copy(cp, g.buf)

	return &Grid[T]{buf: cp, rows: g.rows, cols: g.cols}
}
