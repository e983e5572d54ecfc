// SPDX-License-Identifier: MIT

// Package grid - element, row and column iteration.
//
// Purpose:
//   - Rows and columns are not stored; they are lanes computed on demand:
//     lane{start, stride, n} covers offsets start, start+stride, ..., start+(n-1)*stride.
//   - Row r      → lane{r*cols, 1, cols}   (a contiguous interval).
//   - Column c   → lane{c, cols, rows}     (every cols-th offset from c).
//
// Disjointness of mutable views:
//   - Row lanes of one grid are the intervals [r*cols, (r+1)*cols): pairwise
//     disjoint for distinct r.
//   - Column lanes hold offsets ≡ c (mod cols) with 0 ≤ c < cols: pairwise
//     disjoint for distinct c since each offset has exactly one residue.
//   - Within one lane, offsets differ by multiples of stride ≥ 1, so no lane
//     repeats an offset. RowsMut/ColumnsMut compute every lane of the family up
//     front from these fixed strides before handing out any pointer, hence the
//     pointers produced by one call never alias one cell.
//   - A column lane with cols == 0 never exists (there are no columns), so the
//     stride is always ≥ 1 when used.
//
// Views capture the buffer at call time. Element writes through them are
// visible in the grid; after InsertRow(s)/RemoveRow(s)/InsertColumn they are stale.

package grid

// lane is an arithmetic description of one row or column inside buf.
type lane struct {
	start  int // offset of the first element
	stride int // distance between consecutive elements
	n      int // element count
}

// offsetAt maps a lane position to a buffer offset.
func (l lane) offsetAt(i int) int { return l.start + i*l.stride }

func (g *Grid[T]) rowLane(r int) lane    { return lane{start: r * g.cols, stride: 1, n: g.cols} }
func (g *Grid[T]) columnLane(c int) lane { return lane{start: c, stride: g.cols, n: g.rows} }

// rowLanes computes every row lane of the grid, in row order.
func (g *Grid[T]) rowLanes() []lane {
	lanes := make([]lane, g.rows)
	for r := range lanes {
		lanes[r] = g.rowLane(r)
	}

	return lanes
}

// columnLanes computes every column lane of the grid, in column order.
func (g *Grid[T]) columnLanes() []lane {
	lanes := make([]lane, g.cols)
	for c := range lanes {
		lanes[c] = g.columnLane(c)
	}

	return lanes
}

// laneValues projects a lane into a value cursor over buf.
func laneValues[T any](buf []T, l lane) Cursor[T] {
	return newCursor(l.n, func(i int) T { return buf[l.offsetAt(i)] })
}

// lanePointers projects a lane into a pointer cursor over buf.
func lanePointers[T any](buf []T, l lane) Cursor[*T] {
	return newCursor(l.n, func(i int) *T { return &buf[l.offsetAt(i)] })
}

// ---------- all elements ----------

// ElementsRowMajor yields every element in row-major order.
func (g *Grid[T]) ElementsRowMajor() Cursor[T] {
	return laneValues(g.buf, lane{start: 0, stride: 1, n: len(g.buf)})
}

// ElementsRowMajorMut yields a pointer to every element in row-major order.
func (g *Grid[T]) ElementsRowMajorMut() Cursor[*T] {
	return lanePointers(g.buf, lane{start: 0, stride: 1, n: len(g.buf)})
}

// ElementsColumnMajor yields every element in column-major order.
func (g *Grid[T]) ElementsColumnMajor() Cursor[T] {
	buf, rows, cols := g.buf, g.rows, g.cols

	return newCursor(len(buf), func(j int) T {
		return buf[(j%rows)*cols+j/rows]
	})
}

// ElementsColumnMajorMut yields a pointer to every element in column-major order.
// The map j → (j%rows)*cols + j/rows is a bijection on [0, rows*cols).
func (g *Grid[T]) ElementsColumnMajorMut() Cursor[*T] {
	buf, rows, cols := g.buf, g.rows, g.cols

	return newCursor(len(buf), func(j int) *T {
		return &buf[(j%rows)*cols+j/rows]
	})
}

// ---------- single row / column ----------

// Row yields the elements of row r, left to right.
//
// Errors:
//   - ErrIndicesOutOfBounds(r, 0) when r is not a row of the grid.
//
// Only r is validated: on an N×0 grid, Row(0) succeeds with an empty cursor.
func (g *Grid[T]) Row(r int) (Cursor[T], error) {
	if r < 0 || r >= g.rows {
		return Cursor[T]{}, indicesErr(ctxRow, r, 0)
	}

	return laneValues(g.buf, g.rowLane(r)), nil
}

// RowMut yields pointers to the elements of row r.
func (g *Grid[T]) RowMut(r int) (Cursor[*T], error) {
	if r < 0 || r >= g.rows {
		return Cursor[*T]{}, indicesErr(ctxRowMut, r, 0)
	}

	return lanePointers(g.buf, g.rowLane(r)), nil
}

// Column yields the elements of column c, top to bottom.
//
// Errors:
//   - ErrIndicesOutOfBounds(0, c) when c is not a column of the grid.
//
// Only c is validated: on a 0×N grid, Column(0) succeeds with an empty cursor.
func (g *Grid[T]) Column(c int) (Cursor[T], error) {
	if c < 0 || c >= g.cols {
		return Cursor[T]{}, indicesErr(ctxColumn, 0, c)
	}

	return laneValues(g.buf, g.columnLane(c)), nil
}

// ColumnMut yields pointers to the elements of column c.
func (g *Grid[T]) ColumnMut(c int) (Cursor[*T], error) {
	if c < 0 || c >= g.cols {
		return Cursor[*T]{}, indicesErr(ctxColumnMut, 0, c)
	}

	return lanePointers(g.buf, g.columnLane(c)), nil
}

// ---------- all rows / columns ----------

// Rows yields one cursor per row, top to bottom.
func (g *Grid[T]) Rows() Cursor[Cursor[T]] {
	buf, lanes := g.buf, g.rowLanes()

	return newCursor(len(lanes), func(r int) Cursor[T] { return laneValues(buf, lanes[r]) })
}

// RowsMut yields one pointer cursor per row. Distinct rows never share a cell.
func (g *Grid[T]) RowsMut() Cursor[Cursor[*T]] {
	buf, lanes := g.buf, g.rowLanes()

	return newCursor(len(lanes), func(r int) Cursor[*T] { return lanePointers(buf, lanes[r]) })
}

// Columns yields one cursor per column, left to right.
func (g *Grid[T]) Columns() Cursor[Cursor[T]] {
	buf, lanes := g.buf, g.columnLanes()

	return newCursor(len(lanes), func(c int) Cursor[T] { return laneValues(buf, lanes[c]) })
}

// ColumnsMut yields one pointer cursor per column. Columns interleave in
// storage, but distinct columns never share a cell (see the package notes).
func (g *Grid[T]) ColumnsMut() Cursor[Cursor[*T]] {
	buf, lanes := g.buf, g.columnLanes()

	return newCursor(len(lanes), func(c int) Cursor[*T] { return lanePointers(buf, lanes[c]) })
}
