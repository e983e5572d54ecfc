// SPDX-License-Identifier: MIT

// Package gridgraph treats a *grid.Grid[int] game board as a graph, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a rectangular integer grid with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Cells are addressed as (x, y) = (column, row) and numbered by the grid's
// row-major linear index, so results can be fed straight back into
// grid.GetRowMajor or grid.RowMajorToCoord.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (From2D only).
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
