// Package vecgrid is a dense, rectangular two-dimensional container for Go,
// plus a few small companions built on top of it.
//
// 🚀 What is vecgrid?
//
//	One generic type, grid.Grid[T], that stores rows*cols elements in a
//	single row-major slice and hands out:
//		• O(1) access by (row, column), row-major index or column-major index
//		• Lazy double-ended cursors over elements, rows, columns and coordinates
//		• Pointer cursors for in-place writes, with disjoint lanes per row/column
//		• Whole-row insert/remove and column insert that keep the shape rectangular
//		• A three-field persisted record in JSON, YAML and CBOR
//
// ✨ Why choose vecgrid?
//
//   - No jagged rows: the shape invariant is enforced by every method
//   - Errors, not panics: bounds and shape failures are typed *grid.Error values
//   - Go-native iteration: every cursor ranges with iter.Seq
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/         Grid[T], Cursor[T], errors and the persisted record
//	gridgraph/    connected components and 0-1 BFS bridging on Grid[int] boards
//	converters/   Grid[float64] to and from gonum mat.Dense
//	cmd/vecgrid/  demo CLI: tic-tac-toe board, random fills, record inspection
//
// Quick example:
//
//	g, _ := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	v, _ := g.GetColumnMajor(4) // 3
//	for row := range g.RowsMut().All() {
//		for p := range row.All() {
//			*p *= 10
//		}
//	}
//
// See grid's package documentation for the full API.
package vecgrid
