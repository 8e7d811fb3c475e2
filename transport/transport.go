// Package transport is the city-blocks toy problem used to exercise the
// search strategies.
//
// Blocks are numbered 1..N. From block s a traveller may walk to s+1 for
// cost 1, or take the tram to 2s for cost 2, never past N. The trip starts at
// block 1 and ends at block N.
package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// Action labels.
const (
	Walk = "walk"
	Tram = "tram"
)

// ErrBadBlocks is returned by New for fewer than one block.
var ErrBadBlocks = errors.New("transport: number of blocks must be at least 1")

// Problem is a transport instance with N blocks.
type Problem struct {
	N int
}

// New returns a Problem with n blocks.
func New(n int) (Problem, error) {
	if n < 1 {
		return Problem{}, fmt.Errorf("%w: got %d", ErrBadBlocks, n)
	}

	return Problem{N: n}, nil
}

// Start implements core.Space.
func (p Problem) Start() int { return 1 }

// IsGoal implements core.Space.
func (p Problem) IsGoal(s int) bool { return s == p.N }

// Successors implements core.Space.
func (p Problem) Successors(s int) []core.Transition[int, int] {
	out := make([]core.Transition[int, int], 0, 2)
	if s+1 <= p.N {
		out = append(out, core.Transition[int, int]{Action: Walk, From: s, To: s + 1, Cost: 1})
	}
	if 2*s <= p.N {
		out = append(out, core.Transition[int, int]{Action: Tram, From: s, To: 2 * s, Cost: 2})
	}

	return out
}

// Manhattan returns the block-distance estimate |s - N|.
//
// It overestimates whenever a tram ride would help (the ride from 5 to 10
// costs 2 but the estimate is 5), so A* with it can return a suboptimal trip.
func Manhattan(p Problem) core.Heuristic[int, int] {
	return func(s int) int {
		if s > p.N {
			return s - p.N
		}
		return p.N - s
	}
}

// Admissible returns 0 at the goal and 1 anywhere else: every move costs at
// least 1. It never overestimates and is consistent.
func Admissible(p Problem) core.Heuristic[int, int] {
	return func(s int) int {
		if p.IsGoal(s) {
			return 0
		}
		return 1
	}
}
