// SPDX-License-Identifier: MIT

// Package grid - conversion out of the grid.
// Every As* method allocates fresh output and leaves the grid unchanged.

package grid

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// AsRows copies the grid into a slice of rows.
// Complexity: O(r*c).
func (g *Grid[T]) AsRows() [][]T {
	out := make([][]T, g.rows)
	for r := range out {
		out[r] = make([]T, g.cols)
		copy(out[r], g.buf[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// AsColumns copies the grid into a slice of columns.
// Complexity: O(r*c).
func (g *Grid[T]) AsColumns() [][]T {
	out := make([][]T, g.cols)
	for c := range out {
		l := g.columnLane(c)
		column := make([]T, l.n)
		for i := range column {
			column[i] = g.buf[l.offsetAt(i)]
		}
		out[c] = column
	}

	return out
}

// AsRowMajor copies the buffer in row-major order.
func (g *Grid[T]) AsRowMajor() []T {
	out := make([]T, len(g.buf))
	copy(out, g.buf)

	return out
}

// AsColumnMajor copies the buffer in column-major order.
func (g *Grid[T]) AsColumnMajor() []T {
	return transposeToColumnMajor(g.buf, g.rows, g.cols)
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.buf, b.buf)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Grid[T], b *Grid[U], eq func(T, U) bool) bool {
	return a.rows == b.rows && a.cols == b.cols && slices.EqualFunc(a.buf, b.buf, eq)
}

// String renders one bracketed line per row for diagnostics.
// Complexity: O(r*c).
func (g *Grid[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < g.rows; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * g.cols
		for c = 0; c < g.cols; c++ {
			fmt.Fprintf(&b, "%v", g.buf[base+c])
			if c+1 < g.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
