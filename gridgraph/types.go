package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point outside the grid")
	// ErrBlocked indicates a start or goal on a blocked cell.
	ErrBlocked = errors.New("gridgraph: point is blocked")
	// ErrBadThreshold indicates a negative Threshold, which would make
	// negative-cost cells enterable.
	ErrBadThreshold = errors.New("gridgraph: threshold must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a search state: a cell position.
type Point struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid routing.
type GridOptions struct {
	// Threshold is the minimum cell value that can be entered. Must be >= 0.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Threshold=1 (zero cells are walls), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// GridGraph is an immutable terrain grid with a start and a goal.
// CellValues[y][x] holds the cost of entering (x,y).
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	Threshold     int
	From, To      Point

	neighborOffsets [][2]int
	minCost         int // cheapest passable cell, for Heuristic
}

// direction names, indexed like the Conn8 offsets.
var directions = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
