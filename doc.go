// Package statespace finds minimum-cost paths through implicit, possibly
// infinite state spaces.
//
// A caller describes the problem once, as a core.Space (start state, goal
// predicate, successor function), and hands it to one of five strategies:
//
//	backtrack/  exhaustive enumeration of every terminating path
//	dynprog/    memoised future cost per state, for acyclic spaces
//	ucs/        uniform-cost search (Dijkstra on the implicit graph)
//	dfs/        explicit-stack depth-first search, first goal wins
//	astar/      uniform-cost search guided by a heuristic
//
// Supporting packages:
//
//	core/        Space, Transition, Solution, options, sentinel errors
//	pqueue/      min-priority queue with decrease-key, used by ucs and astar
//	graphspace/  explicit adjacency-list Space builder
//	gridgraph/   terrain grid Space with walls, entry costs and a distance heuristic
//	transport/   the city-blocks toy problem (walk +1 for 1, tram ×2 for 2)
//	promstats/   Prometheus export of search runs
//
// Every strategy is a pure function of its Space: no state survives a call,
// runs are single-threaded, and an unreachable goal is reported as a Solution
// with Reachable == false, not as an error.
//
// Quick example:
//
//	p, _ := transport.New(10)
//	sol, err := ucs.Search[int, int](p)
//	// sol.Cost == 6
//
//	go get github.com/katalvlaran/statespace
package statespace
