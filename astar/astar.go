// Package astar implements A* search over a core.Space.
//
// A* is uniform-cost search whose frontier is ordered by g(s) + h(s): the
// known path cost plus a caller-supplied estimate of the remaining cost.
// The returned Solution.Cost is always the true path cost g, never the
// heuristic-inflated priority.
//
// Heuristic obligations (not checked):
//
//   - Admissible: h never overestimates the remaining cost. Required for the
//     result to be optimal.
//   - Consistent: h(u) <= cost(u, v) + h(v) for every transition. Required
//     for extracted states to be final, which this implementation assumes.
//
// With core.ZeroHeuristic the search is exactly ucs.Search: same cost, same
// path, same expansion count.
//
// Errors:
//
//   - core.ErrNilSpace, core.ErrNilHeuristic  invalid arguments.
//   - core.ErrNegativeCost                    negative transition cost.
//   - core.ErrNegativeHeuristic               h returned a negative value.
//   - core.ErrExpansionLimit, context errors  run was stopped early.
package astar

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/frontier"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Name identifies A* in Solutions, logs and metrics.
const Name = "astar"

// Search returns a path from sp.Start() to a goal, guided by h.
func Search[S comparable, C core.Cost](sp core.Space[S, C], h core.Heuristic[S, C], opts ...core.Option) (core.Solution[S, C], error) {
	if sp == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilSpace
	}
	if h == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilHeuristic
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	sol, err := frontier.Search(run, sp, h)

	return telemetry.Finish(run, sol, err)
}
