package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of walkable
// cells (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in arbitrary order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, count := gg.label()
	comps := make([][]int, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}

	return comps
}

// Reachable reports whether an agent standing on a could walk to b.
// A cell always reaches itself; otherwise both cells must be walkable and
// belong to the same component.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	if a.X == b.X && a.Y == b.Y {
		return true
	}
	if !gg.IsLand(b.X, b.Y) || !gg.InBounds(a.X, a.Y) {
		return false
	}
	// An agent may start on an obstacle; it can leave through any walkable neighbor.
	labels, _ := gg.label()
	target := labels[gg.index(b.X, b.Y)]
	if gg.IsLand(a.X, a.Y) {
		return labels[gg.index(a.X, a.Y)] == target
	}
	for _, d := range gg.neighborOffsets {
		nx, ny := a.X+d[0], a.Y+d[1]
		if gg.IsLand(nx, ny) && labels[gg.index(nx, ny)] == target {
			return true
		}
	}

	return false
}

// label assigns a component number to every walkable cell (-1 for obstacles)
// with a BFS flood fill, and returns the number of components.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	count := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // obstacle
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			labels[i0] = count

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = count
						queue = append(queue, vi)
					}
				}
			}
			count++
		}
	}

	return labels, count
}
