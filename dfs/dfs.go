// Package dfs implements depth-first search over a core.Space with an
// explicit stack.
//
// The search pops a frame (state, path, cost); a goal ends the search
// immediately, otherwise one frame per outgoing transition is pushed. The
// last declared successor is therefore explored first. The result is the
// first goal reached in stack order, not necessarily the cheapest.
//
// Each state records the depth it was expanded at and is skipped if popped
// again, so the search terminates on every finite space, cyclic or not.
// Under WithMaxDepth a state popped again at a smaller depth is expanded
// once more, since its subtree now has more depth budget left.
// Infinite spaces need WithMaxDepth or WithMaxExpansions.
//
// Complexity:
//
//   - Time:   O(V + E) over the reached states and transitions.
//   - Memory: O(E · d) for the stack, where d is the depth of a frame's path.
package dfs

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Name identifies depth-first search in Solutions, logs and metrics.
const Name = "dfs"

// frame is one stack entry.
type frame[S comparable, C core.Cost] struct {
	state S
	path  []core.Transition[S, C]
	cost  C
}

// Search returns the first goal path found in depth-first order.
// If the stack empties without a goal the Solution has Reachable == false.
func Search[S comparable, C core.Cost](sp core.Space[S, C], opts ...core.Option) (core.Solution[S, C], error) {
	if sp == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilSpace
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	cfg := run.Options()

	start := sp.Start()
	stack := []frame[S, C]{{state: start}}
	visited := make(map[S]int) // depth at which a state was last expanded
	seen := func(s S, depth int) bool {
		d, ok := visited[s]
		return ok && (cfg.MaxDepth == core.Unlimited || d <= depth)
	}

	for len(stack) > 0 {
		// 1) Pop.
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen(f.state, len(f.path)) {
			continue
		}
		if err := run.Expand(); err != nil {
			return telemetry.Finish(run, core.Solution[S, C]{Start: start}, err)
		}
		visited[f.state] = len(f.path)

		// 2) Goal test on extraction.
		if sp.IsGoal(f.state) {
			return telemetry.Finish(run, core.Solution[S, C]{
				Start:     start,
				Cost:      f.cost,
				Path:      f.path,
				Reachable: true,
			}, nil)
		}

		// 3) Push children, each with its own copy of the path.
		if cfg.DepthExceeded(len(f.path) + 1) {
			continue
		}
		for _, t := range sp.Successors(f.state) {
			if seen(t.To, len(f.path)+1) {
				continue
			}
			t.From = f.state
			path := make([]core.Transition[S, C], len(f.path), len(f.path)+1)
			copy(path, f.path)
			stack = append(stack, frame[S, C]{
				state: t.To,
				path:  append(path, t),
				cost:  f.cost + t.Cost,
			})
		}
	}

	return telemetry.Finish(run, core.Unreachable[S, C](Name, start, 0), nil)
}
