// Package grid_test provides benchmarks for traversal and structural edits.
package grid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vecgrid/grid"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkS []int
)

func BenchmarkElementsRowMajor(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := grid.FilledByRowMajor(counter(), n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := 0
				for v := range g.ElementsRowMajor().All() {
					s += v
				}
				sinkI = s
			}
		})
	}
}

func BenchmarkElementsColumnMajor(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := grid.FilledByRowMajor(counter(), n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := 0
				for v := range g.ElementsColumnMajor().All() {
					s += v
				}
				sinkI = s
			}
		})
	}
}

func BenchmarkColumnsMut(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := grid.New[int](n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for column := range g.ColumnsMut().All() {
					for p := range column.All() {
						*p++
					}
				}
			}
		})
	}
}

func BenchmarkInsertRemoveRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := grid.New[int](n, n)
			row := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := g.InsertRow(row, n/2); err != nil {
					b.Fatal(err)
				}
				if err := g.RemoveRow(n / 2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsertColumn(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			column := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g := grid.New[int](n, n)
				if err := g.InsertColumn(column, n/2); err != nil {
					b.Fatal(err)
				}
				sinkS = g.AsRowMajor()
			}
		})
	}
}
