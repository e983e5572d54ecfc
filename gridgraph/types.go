// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/vecgrid/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Neighbor offsets as (dx, dy), clockwise from north.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// GridOptions contains tunable parameters for board analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph views a private copy of an integer grid as a graph.
// It is immutable once built.
type GridGraph struct {
	cells         *grid.Grid[int]
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
}
