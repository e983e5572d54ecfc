// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; each holds
// row-major cell indices in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.cells.NumElements())
	var comps [][]int

	for i := range seen {
		if seen[i] || !gg.isLand(i) {
			continue
		}
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			gg.neighbors(queue[qi], func(v int) {
				if !seen[v] && gg.isLand(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			})
		}
		comps = append(comps, queue)
	}

	return comps
}
