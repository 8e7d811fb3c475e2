// Package backtrack implements exhaustive backtracking search over a
// core.Space.
//
// Every path from the start state is followed until it reaches a goal; the
// cheapest goal path seen is kept. There is no pruning and no memoisation, so
// the running time is exponential in depth. It is the reference the other
// strategies are checked against on small spaces.
//
// The best path is carried as a value returned by each recursive call and
// folded into its parent's result; no state outlives the call.
//
// Termination:
//
//   - Recursion stops at goal states and dead ends only, so the space must be
//     acyclic along every explored path. A transition back to a state still on
//     the current path fails the search with core.ErrCycleDetected.
//   - WithMaxDepth prunes longer paths; WithMaxExpansions caps total work.
//
// Ties keep the first path found, in Successors order.
package backtrack

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Name identifies backtracking search in Solutions, logs and metrics.
const Name = "backtrack"

// best is the running minimum folded over the explored goal paths.
type best[S comparable, C core.Cost] struct {
	found bool
	cost  C
	path  []core.Transition[S, C]
}

// better returns whichever of a and b is cheaper, preferring a on ties.
func better[S comparable, C core.Cost](a, b best[S, C]) best[S, C] {
	if !b.found || (a.found && a.cost <= b.cost) {
		return a
	}
	return b
}

// walker holds the current path while the recursion unwinds.
type walker[S comparable, C core.Cost] struct {
	space  core.Space[S, C]
	run    *telemetry.Run
	path   []core.Transition[S, C]
	onPath map[S]struct{}
}

// Search enumerates every terminating path of sp and returns the cheapest.
// If no goal is reachable the Solution has Reachable == false.
func Search[S comparable, C core.Cost](sp core.Space[S, C], opts ...core.Option) (core.Solution[S, C], error) {
	if sp == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilSpace
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	w := &walker[S, C]{
		space:  sp,
		run:    run,
		onPath: make(map[S]struct{}),
	}

	start := sp.Start()
	var zero C
	b, err := w.recurse(start, zero)
	if err != nil {
		return telemetry.Finish(run, core.Solution[S, C]{Start: start}, err)
	}
	if !b.found {
		return telemetry.Finish(run, core.Unreachable[S, C](Name, start, 0), nil)
	}

	return telemetry.Finish(run, core.Solution[S, C]{
		Start:     start,
		Cost:      b.cost,
		Path:      b.path,
		Reachable: true,
	}, nil)
}

// recurse explores the subtree under s, reached at accumulated cost, and
// returns the cheapest goal path found in it.
func (w *walker[S, C]) recurse(s S, cost C) (best[S, C], error) {
	if err := w.run.Expand(); err != nil {
		return best[S, C]{}, err
	}

	// 1) A goal ends the branch: snapshot the current path.
	if w.space.IsGoal(s) {
		return best[S, C]{found: true, cost: cost, path: slices.Clone(w.path)}, nil
	}

	// 2) Respect the depth budget before extending the path.
	if w.run.Options().DepthExceeded(len(w.path) + 1) {
		return best[S, C]{}, nil
	}

	w.onPath[s] = struct{}{}
	defer delete(w.onPath, s)

	// 3) Fold every child subtree into the running best.
	var acc best[S, C]
	for _, t := range w.space.Successors(s) {
		if _, cyc := w.onPath[t.To]; cyc {
			return best[S, C]{}, fmt.Errorf("%w: %s reached %v again from %v", core.ErrCycleDetected, Name, t.To, s)
		}

		t.From = s
		w.path = append(w.path, t)
		sub, err := w.recurse(t.To, cost+t.Cost)
		w.path = w.path[:len(w.path)-1]
		if err != nil {
			return best[S, C]{}, err
		}

		acc = better(acc, sub)
	}

	return acc, nil
}
