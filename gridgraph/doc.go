// Package gridgraph treats a 2D grid of cells as a discretized space that
// agents move through, and provides the grid implementation of the
// core.Position contract.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are walkable ("land"); the rest are
//     obstacles ("water").
//   - Cell is a core.Position: Euclidean heuristic, 4- or 8-connected
//     adjacency that always includes the cell itself (wait), and a
//     collision test for simultaneous moves.
//   - ConnectedComponents and Reachable answer static reachability
//     questions without running a search.
//
// Coordinates:
//
//	CellValues[y][x] holds the value of cell (x,y); x grows along a row,
//	y grows down the rows. Cell.String renders "(x,y)".
//
// Collisions:
//
//	Two simultaneous moves collide when they end on the same cell, when
//	they swap cells, or when two diagonal moves cross inside one 2×2
//	block. Following an agent into the cell it is vacating is allowed.
//
// Complexity:
//
//   - Cell.Adjacent:        O(d), d = 4 or 8.
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//   - Reachable:            O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a requested cell lies outside the grid.
package gridgraph
