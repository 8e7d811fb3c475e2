// Package gridgraph treats a 2D grid of terrain costs as a core.Space, so
// any search strategy can route across it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a start and goal cell.
//   - Entering a cell costs its value; cells below Threshold are blocked.
//   - Conn4 moves N/E/S/W; Conn8 adds the diagonals at the same price.
//   - Heuristic returns an admissible distance estimate for A*.
//
// Why:
//
//   - Game maps and robot floor plans with uneven terrain.
//   - A compact benchmark for informed versus uninformed search.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (the grid is deep-copied).
//   - Successors:   O(d) per call, d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//   - ErrBlocked: start or goal is a blocked cell.
//   - ErrBadThreshold: Threshold is negative.
package gridgraph
