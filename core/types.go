package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors shared by all search strategies.
var (
	// ErrNilSpace indicates that a nil Space was passed to a search.
	ErrNilSpace = errors.New("statespace: space is nil")

	// ErrNilHeuristic indicates that A* was called without a heuristic.
	ErrNilHeuristic = errors.New("statespace: heuristic is nil")

	// ErrNegativeCost indicates a transition with a negative cost in a search
	// that requires non-negative costs.
	ErrNegativeCost = errors.New("statespace: negative transition cost")

	// ErrNegativeHeuristic indicates that a heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("statespace: negative heuristic estimate")

	// ErrCycleDetected indicates that a state was reached again while it was
	// still on the current recursion path, so the explored region is not
	// acyclic and the search would never terminate.
	ErrCycleDetected = errors.New("statespace: cycle detected")

	// ErrExpansionLimit indicates that the WithMaxExpansions budget ran out
	// before the search could finish.
	ErrExpansionLimit = errors.New("statespace: expansion limit exceeded")

	// ErrBadLimit indicates a negative value passed to WithMaxExpansions or WithMaxDepth.
	ErrBadLimit = errors.New("statespace: limit must be non-negative")

	// ErrInvalidPath indicates that a Solution does not describe a valid walk
	// through its Space.
	ErrInvalidPath = errors.New("statespace: invalid solution path")
)

// Cost is the set of numeric types usable as transition costs. The zero value
// is the additive identity; + and < are the only operations the searches use.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Transition is one step of a path: taking Action in state From leads to To
// and costs Cost. Action is a label for the caller and is never compared.
//
// Spaces only need to fill Action, To and Cost; searches set From when they
// copy a transition into a Solution.
type Transition[S comparable, C Cost] struct {
	Action string
	From   S
	To     S
	Cost   C
}

// Space describes a search problem.
//
// Successors may return an empty slice for a dead end. Implementations must
// not mutate shared state from any method.
type Space[S comparable, C Cost] interface {
	// Start returns the initial state.
	Start() S

	// IsGoal reports whether s terminates a search.
	IsGoal(s S) bool

	// Successors lists the outgoing transitions of s.
	Successors(s S) []Transition[S, C]
}

// Funcs adapts three plain functions to the Space interface.
type Funcs[S comparable, C Cost] struct {
	StartFn      func() S
	IsGoalFn     func(S) bool
	SuccessorsFn func(S) []Transition[S, C]
}

// Start calls StartFn.
func (f Funcs[S, C]) Start() S { return f.StartFn() }

// IsGoal calls IsGoalFn.
func (f Funcs[S, C]) IsGoal(s S) bool { return f.IsGoalFn(s) }

// Successors calls SuccessorsFn.
func (f Funcs[S, C]) Successors(s S) []Transition[S, C] { return f.SuccessorsFn(s) }

// Heuristic estimates the remaining cost from a state to the nearest goal.
type Heuristic[S comparable, C Cost] func(s S) C

// ZeroHeuristic returns a Heuristic that always estimates zero. A* with it
// behaves exactly like uniform-cost search.
func ZeroHeuristic[S comparable, C Cost]() Heuristic[S, C] {
	return func(S) C { return 0 }
}

// Solution is the outcome of a search.
//
// Reachable reports whether a goal was found. When it is false, Cost is the
// zero value and Path is nil. Expanded counts the states the search examined
// and is meant for diagnostics and comparisons between strategies.
type Solution[S comparable, C Cost] struct {
	Algorithm string
	Start     S
	Cost      C
	Path      []Transition[S, C]
	Reachable bool
	Expanded  int
}

// Unreachable builds the "no goal reachable" Solution for algorithm.
func Unreachable[S comparable, C Cost](algorithm string, start S, expanded int) Solution[S, C] {
	return Solution[S, C]{
		Algorithm: algorithm,
		Start:     start,
		Expanded:  expanded,
	}
}

// States returns the visited states in traversal order, starting with Start.
// It returns nil for an unreachable Solution.
func (s Solution[S, C]) States() []S {
	if !s.Reachable {
		return nil
	}
	out := make([]S, 0, len(s.Path)+1)
	out = append(out, s.Start)
	for _, t := range s.Path {
		out = append(out, t.To)
	}

	return out
}

// Goal returns the last state of the path and true, or the zero state and
// false when the Solution is unreachable.
func (s Solution[S, C]) Goal() (S, bool) {
	if !s.Reachable {
		var zero S
		return zero, false
	}
	if len(s.Path) == 0 {
		return s.Start, true
	}

	return s.Path[len(s.Path)-1].To, true
}
