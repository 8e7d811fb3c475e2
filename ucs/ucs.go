// Package ucs implements uniform-cost search (Dijkstra's algorithm on an
// implicit graph) over a core.Space.
//
// The frontier is a pqueue.Queue keyed by the best known path cost. The
// cheapest state is extracted first; if it is a goal the search stops, since
// no undiscovered path can be cheaper when all costs are non-negative.
// Otherwise every outgoing transition is relaxed with decrease-key.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the V states and E transitions reached
//     before the first goal is extracted.
//   - Space: O(V) for the frontier, cost and parent maps.
//
// Errors:
//
//   - core.ErrNilSpace        if the space is nil.
//   - core.ErrNegativeCost    if a relaxed transition has a negative cost.
//   - core.ErrExpansionLimit  if WithMaxExpansions runs out.
//   - context errors          if the WithContext context is done.
//
// An exhausted frontier is not an error: Search returns a Solution with
// Reachable == false.
package ucs

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/frontier"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Name identifies uniform-cost search in Solutions, logs and metrics.
const Name = "ucs"

// Search returns a minimum-cost path from sp.Start() to the nearest goal.
func Search[S comparable, C core.Cost](sp core.Space[S, C], opts ...core.Option) (core.Solution[S, C], error) {
	if sp == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilSpace
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	sol, err := frontier.Search(run, sp, core.ZeroHeuristic[S, C]())

	return telemetry.Finish(run, sol, err)
}
