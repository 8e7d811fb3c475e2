// Package core defines the contract shared by every search strategy in
// statespace: the Space a caller describes, the Transition steps a search
// walks through, the Solution it hands back, and the functional options that
// bound a run.
//
// Overview:
//
//   - Space[S, C] is an implicit graph. Start() names the root state, IsGoal()
//     recognises terminal states and Successors() enumerates the outgoing
//     Transitions of a state. The graph may be infinite; algorithms only ever
//     materialise the states they touch.
//   - S is any comparable type, so states can key maps (memo tables,
//     frontiers, visited sets). C is any built-in numeric type (Cost).
//   - Solution[S, C] is a standalone value. Reachable == false is the
//     "unreachable" outcome; it is a result, never an error.
//
// Contract obligations (caller side, not enforced):
//
//   - Successors must be a pure function of the state. Memoisation in the
//     dynamic-programming search and re-relaxation in uniform-cost / A*
//     silently break otherwise.
//   - Uniform-cost, A* and dynamic programming need non-negative costs;
//     they fail fast with ErrNegativeCost when they meet a negative one.
//   - Heuristics passed to A* must be admissible for the result to be
//     optimal, and consistent for no state to need re-expansion.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per expansion.
//   - WithMaxExpansions(n)    stop with ErrExpansionLimit after n expansions.
//   - WithMaxDepth(d)         prune paths longer than d transitions
//     (backtracking, depth-first, dynamic programming).
//   - WithLogger(l)           debug logging of run start/finish.
//   - WithObserver(o)         per-run Report callback (see promstats).
//
// Errors:
//
//   - ErrNilSpace, ErrNilHeuristic       misuse of the entry points.
//   - ErrNegativeCost, ErrNegativeHeuristic  cost-sign violations.
//   - ErrCycleDetected                   a state was revisited on the
//     current recursion path (non-terminating space).
//   - ErrExpansionLimit                  WithMaxExpansions budget exhausted.
//   - ErrInvalidPath                     ValidatePath rejected a Solution.
package core
