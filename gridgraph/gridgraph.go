package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold for a
// negative threshold, and ErrOutOfBounds or ErrBlocked if from or to is not
// an enterable cell.
func NewGridGraph(values [][]int, from, to Point, opts GridOptions) (*GridGraph, error) {
	if opts.Threshold < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.Threshold)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minCost, seen := 0, false
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.Threshold && (!seen || v < minCost) {
				minCost, seen = v, true
			}
		}
	}
	// Offsets follow the directions table; Conn4 keeps every other one.
	offsets := [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.Threshold,
		From:            from,
		To:              to,
		neighborOffsets: offsets,
		minCost:         minCost,
	}
	for _, p := range []Point{from, to} {
		if !gg.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, p, w, h)
		}
		if !gg.Passable(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is inside the grid and not blocked.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.Threshold
}

// Start implements core.Space.
func (gg *GridGraph) Start() Point { return gg.From }

// IsGoal implements core.Space.
func (gg *GridGraph) IsGoal(p Point) bool { return p == gg.To }

// Successors implements core.Space. Moves are listed clockwise from north
// and cost the value of the cell entered.
func (gg *GridGraph) Successors(p Point) []core.Transition[Point, int] {
	step := 2
	if gg.Conn == Conn8 {
		step = 1
	}
	out := make([]core.Transition[Point, int], 0, 8/step)
	for i := 0; i < len(gg.neighborOffsets); i += step {
		d := gg.neighborOffsets[i]
		next := Point{p.X + d[0], p.Y + d[1]}
		if !gg.Passable(next) {
			continue
		}
		out = append(out, core.Transition[Point, int]{
			Action: directions[i],
			From:   p,
			To:     next,
			Cost:   gg.CellValues[next.Y][next.X],
		})
	}

	return out
}

// Heuristic returns the move-count lower bound to the goal, scaled by the
// cheapest enterable cell: Manhattan distance under Conn4, Chebyshev under
// Conn8. It never overestimates.
func (gg *GridGraph) Heuristic() core.Heuristic[Point, int] {
	return func(p Point) int {
		dx, dy := abs(gg.To.X-p.X), abs(gg.To.Y-p.Y)
		moves := dx + dy
		if gg.Conn == Conn8 {
			moves = max(dx, dy)
		}
		return moves * gg.minCost
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
