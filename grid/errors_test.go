// Package grid_test contains unit tests for the error taxonomy.
package grid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/vecgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestKindString pins the diagnostic names, including an unknown kind.
func TestKindString(t *testing.T) {
	require.Equal(t, "IndicesOutOfBounds", grid.KindIndicesOutOfBounds.String())
	require.Equal(t, "IndexOutOfBounds", grid.KindIndexOutOfBounds.String())
	require.Equal(t, "DimensionMismatch", grid.KindDimensionMismatch.String())
	require.Equal(t, "NotEnoughElements", grid.KindNotEnoughElements.String())
	require.Equal(t, "Kind(9)", grid.Kind(9).String())
}

// TestErrorMessages checks the payload rendering per kind.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *grid.Error
		want string
	}{
		{&grid.Error{Op: "Grid.Get", Kind: grid.KindIndicesOutOfBounds, Row: 2, Column: 5},
			"Grid.Get(2,5): grid: indices out of bounds"},
		{&grid.Error{Op: "Grid.GetRowMajor", Kind: grid.KindIndexOutOfBounds, Index: 7},
			"Grid.GetRowMajor(7): grid: index out of bounds"},
		{&grid.Error{Op: "FromRows", Kind: grid.KindDimensionMismatch},
			"FromRows: grid: dimension mismatch"},
		{&grid.Error{Op: "FromSeqRowMajor", Kind: grid.KindNotEnoughElements},
			"FromSeqRowMajor: grid: not enough elements"},
		{&grid.Error{Op: "X", Kind: 0}, "X: Kind(0)"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.err.Error())
	}
}

// TestErrorMatching: errors.Is/As and KindOf see through wrapping.
func TestErrorMatching(t *testing.T) {
	g := mustFromRows(t, rows23())
	_, err := g.Get(3, 0)
	wrapped := fmt.Errorf("loading board: %w", err)

	require.ErrorIs(t, wrapped, grid.ErrIndicesOutOfBounds)
	require.NotErrorIs(t, wrapped, grid.ErrIndexOutOfBounds)
	require.Equal(t, grid.KindIndicesOutOfBounds, grid.KindOf(wrapped))

	var ge *grid.Error
	require.True(t, errors.As(wrapped, &ge))
	require.Equal(t, "Grid.Get", ge.Op)
	require.Equal(t, 3, ge.Row)

	require.Equal(t, grid.Kind(0), grid.KindOf(errors.New("other")))
	require.Equal(t, grid.Kind(0), grid.KindOf(nil))
}
