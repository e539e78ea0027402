package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmapf/core"
)

var _ core.Position = Cell{}

// Grid returns the grid the cell belongs to.
func (c Cell) Grid() *GridGraph { return c.grid }

// HeuristicDistance is the straight-line distance to 'to'.
// Positions that are not cells are infinitely far away.
func (c Cell) HeuristicDistance(to core.Position) float64 {
	o, ok := to.(Cell)
	if !ok {
		return math.Inf(1)
	}

	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Adjacent returns the cell itself followed by every walkable neighbor
// under the grid's connectivity.
// A cell outside the grid can only wait.
// Complexity: O(d).
func (c Cell) Adjacent() []core.Position {
	if !c.grid.InBounds(c.X, c.Y) {
		return []core.Position{c}
	}
	offsets := c.grid.NeighborOffsets()
	adj := make([]core.Position, 0, len(offsets)+1)
	adj = append(adj, c)
	for _, d := range offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if c.grid.IsLand(nx, ny) {
			adj = append(adj, Cell{grid: c.grid, X: nx, Y: ny})
		}
	}

	return adj
}

// Equals reports whether other is a cell with the same coordinates.
func (c Cell) Equals(other core.Position) bool {
	o, ok := other.(Cell)

	return ok && o.X == c.X && o.Y == c.Y
}

// Intersects reports whether two simultaneous one-step moves collide:
// same target cell, a swap, or two diagonals crossing in one 2×2 block.
// A swap and a diagonal cross are exactly the pairs whose endpoint sums
// coincide. Segments with non-cell endpoints never intersect.
func (c Cell) Intersects(a, b core.Segment) bool {
	as, aok := a.From.(Cell)
	ae, aok2 := a.To.(Cell)
	bs, bok := b.From.(Cell)
	be, bok2 := b.To.(Cell)
	if !aok || !aok2 || !bok || !bok2 {
		return false
	}

	if ae.X == be.X && ae.Y == be.Y {
		return true
	}

	return as.X+ae.X == bs.X+be.X && as.Y+ae.Y == bs.Y+be.Y
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
