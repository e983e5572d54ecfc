// SPDX-License-Identifier: MIT

package grid

// IndicesRowMajor yields every (row, column) pair of a rows×cols shape in
// row-major order. It touches no data and is handy for zipping with other
// sequences. Negative dimensions yield an empty cursor.
func IndicesRowMajor(rows, cols int) Cursor[Coord] {
	if rows < 0 || cols < 0 {
		return Cursor[Coord]{}
	}

	return newCursor(rows*cols, func(i int) Coord { return RowMajorToCoord(i, cols) })
}

// IndicesColumnMajor yields every (row, column) pair of a rows×cols shape in
// column-major order.
func IndicesColumnMajor(rows, cols int) Cursor[Coord] {
	if rows < 0 || cols < 0 {
		return Cursor[Coord]{}
	}

	return newCursor(rows*cols, func(j int) Coord { return ColumnMajorToCoord(j, rows) })
}

// IndicesRowMajor yields the grid's coordinates in row-major order.
func (g *Grid[T]) IndicesRowMajor() Cursor[Coord] { return IndicesRowMajor(g.rows, g.cols) }

// IndicesColumnMajor yields the grid's coordinates in column-major order.
func (g *Grid[T]) IndicesColumnMajor() Cursor[Coord] { return IndicesColumnMajor(g.rows, g.cols) }

// EnumerateRowMajor pairs each coordinate with its element, row-major.
func (g *Grid[T]) EnumerateRowMajor() Cursor[Cell[T]] {
	buf, cols := g.buf, g.cols

	return newCursor(len(buf), func(i int) Cell[T] {
		return Cell[T]{Coord: RowMajorToCoord(i, cols), Value: buf[i]}
	})
}

// EnumerateColumnMajor pairs each coordinate with its element, column-major.
func (g *Grid[T]) EnumerateColumnMajor() Cursor[Cell[T]] {
	buf, rows, cols := g.buf, g.rows, g.cols

	return newCursor(len(buf), func(j int) Cell[T] {
		c := ColumnMajorToCoord(j, rows)
		return Cell[T]{Coord: c, Value: buf[CoordToRowMajor(c, cols)]}
	})
}
