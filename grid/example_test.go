// Package grid_test contains runnable examples for the grid package.
package grid_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/vecgrid/grid"
)

// ExampleFromRows builds a 2×3 grid and reads it back in both orders.
func ExampleFromRows() {
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.AsRowMajor())
	fmt.Println(g.AsColumnMajor())
	v, _ := g.GetColumnMajor(4)
	fmt.Println(v)
	// Output:
	// [1 2 3 4 5 6]
	// [1 4 2 5 3 6]
	// 3
}

// ExampleGrid_Get shows the bounds-checked accessor and its error.
func ExampleGrid_Get() {
	g := grid.FilledWith("·", 2, 2)
	_ = g.Set(1, 0, "X")
	v, _ := g.Get(1, 0)
	fmt.Println(v)
	_, err := g.Get(2, 0)
	fmt.Println(err)
	// Output:
	// X
	// Grid.Get(2,0): grid: indices out of bounds
}

// ExampleGrid_RowsMut writes through every row at once.
func ExampleGrid_RowsMut() {
	g := grid.New[int](2, 3)
	for r, row := range g.RowsMut().Enumerate() {
		for p := range row.All() {
			*p = r + 1
		}
	}
	fmt.Print(g)
	// Output:
	// [1, 1, 1]
	// [2, 2, 2]
}

// ExampleFilledByColumnMajor fills a grid column by column.
func ExampleFilledByColumnMajor() {
	n := 0
	g := grid.FilledByColumnMajor(func() int { n++; return n }, 2, 3)
	fmt.Print(g)
	// Output:
	// [1, 3, 5]
	// [2, 4, 6]
}

// ExampleFromSeqRowMajor builds a grid from a lazy sequence.
func ExampleFromSeqRowMajor() {
	g, err := grid.FromSeqRowMajor(slices.Values([]string{"a", "b", "c", "d"}), 2, 2)
	fmt.Println(g.AsRows(), err)
	_, err = grid.FromSeqRowMajor(slices.Values([]string{"a"}), 2, 2)
	fmt.Println(err)
	// Output:
	// [[a b] [c d]] <nil>
	// FromSeqRowMajor: grid: not enough elements
}

// ExampleCursor_Rev iterates a column back to front.
func ExampleCursor_Rev() {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	column, _ := g.Column(1)
	fmt.Println(column.Rev().Collect())
	// Output:
	// [6 4 2]
}

// ExampleGrid_RemoveRows removes a block of rows.
func ExampleGrid_RemoveRows() {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
	fmt.Println(g.RemoveRows(1, 2), g.AsRows())
	fmt.Println(g.RemoveRows(1, 5))
	// Output:
	// <nil> [[1 2] [7 8]]
	// Grid.RemoveRows(2): grid: index out of bounds
}
