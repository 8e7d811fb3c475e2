// Package dynprog implements memoised dynamic-programming search over an
// acyclic core.Space.
//
// For every state reachable from the start it computes
//
//	futureCost(s) = 0                                        if s is a goal
//	futureCost(s) = min over s->t of cost(s, t) + futureCost(t)  otherwise
//
// caching each value for the duration of the call. States with no path to a
// goal (dead ends) have no future cost and are skipped by their parents.
// The transition chosen at each state is remembered, so Search also returns
// the optimal path, not only its cost.
//
// Requirements:
//
//   - The region reachable from the start must be a DAG. States are colored
//     white (unseen), gray (on the recursion stack) and black (memoised);
//     reaching a gray state fails with core.ErrCycleDetected.
//   - Costs must be non-negative (core.ErrNegativeCost otherwise).
//
// With WithMaxDepth(d) the memo is keyed by (state, remaining depth), since
// the best future cost then depends on how many transitions are left.
//
// Complexity: O(V + E) memoised evaluations over the reachable DAG.
package dynprog

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Name identifies the dynamic-programming search in Solutions, logs and metrics.
const Name = "dp"

// Visitation colors for cycle detection.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // future cost memoised
)

// key addresses a memo entry. remaining is core.Unlimited without a depth bound.
type key[S comparable] struct {
	state     S
	remaining int
}

// entry is the memoised future cost of a state.
type entry[S comparable, C core.Cost] struct {
	ok   bool // a goal is reachable
	cost C
	next core.Transition[S, C] // chosen transition; unset for goals
	goal bool
}

// solver holds the memo table of one run.
type solver[S comparable, C core.Cost] struct {
	space core.Space[S, C]
	run   *telemetry.Run
	color map[S]int
	memo  map[key[S]]entry[S, C]
}

// Search computes the optimal cost and path from sp.Start() to a goal.
func Search[S comparable, C core.Cost](sp core.Space[S, C], opts ...core.Option) (core.Solution[S, C], error) {
	if sp == nil {
		return core.Solution[S, C]{Algorithm: Name}, core.ErrNilSpace
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	d := newSolver(sp, run)

	start := sp.Start()
	root := key[S]{state: start, remaining: run.Options().MaxDepth}
	e, err := d.future(root)
	if err != nil {
		return telemetry.Finish(run, core.Solution[S, C]{Start: start}, err)
	}
	if !e.ok {
		return telemetry.Finish(run, core.Unreachable[S, C](Name, start, 0), nil)
	}

	return telemetry.Finish(run, core.Solution[S, C]{
		Start:     start,
		Cost:      e.cost,
		Path:      d.path(root),
		Reachable: true,
	}, nil)
}

// FutureCosts evaluates the space from sp.Start() and returns the memo
// table: the minimum cost to a goal for every explored state that can reach
// one. Dead-end states are absent.
func FutureCosts[S comparable, C core.Cost](sp core.Space[S, C], opts ...core.Option) (map[S]C, error) {
	if sp == nil {
		return nil, core.ErrNilSpace
	}

	run := telemetry.Begin(Name, core.NewOptions(opts...))
	d := newSolver(sp, run)

	start := sp.Start()
	e, err := d.future(key[S]{state: start, remaining: run.Options().MaxDepth})
	if _, err = telemetry.Finish(run, core.Solution[S, C]{Start: start, Cost: e.cost, Reachable: e.ok}, err); err != nil {
		return nil, err
	}

	table := make(map[S]C, len(d.memo))
	for k, v := range d.memo {
		if !v.ok {
			continue
		}
		if cur, seen := table[k.state]; !seen || v.cost < cur {
			table[k.state] = v.cost
		}
	}

	return table, nil
}

func newSolver[S comparable, C core.Cost](sp core.Space[S, C], run *telemetry.Run) *solver[S, C] {
	return &solver[S, C]{
		space: sp,
		run:   run,
		color: make(map[S]int),
		memo:  make(map[key[S]]entry[S, C]),
	}
}

// future returns the memoised future cost of k, computing it on a miss.
func (d *solver[S, C]) future(k key[S]) (entry[S, C], error) {
	if d.color[k.state] == gray {
		return entry[S, C]{}, fmt.Errorf("%w: %s reached %v while it was still being evaluated",
			core.ErrCycleDetected, Name, k.state)
	}
	if e, hit := d.memo[k]; hit {
		return e, nil
	}

	if err := d.run.Expand(); err != nil {
		return entry[S, C]{}, err
	}

	// 1) Base case.
	if d.space.IsGoal(k.state) {
		e := entry[S, C]{ok: true, goal: true}
		d.memo[k] = e
		d.color[k.state] = black
		return e, nil
	}

	// 2) No transitions left in the depth budget.
	if k.remaining == 0 {
		e := entry[S, C]{}
		d.memo[k] = e
		d.color[k.state] = black
		return e, nil
	}

	// 3) Minimise over successors.
	d.color[k.state] = gray
	var e entry[S, C]
	for _, t := range d.space.Successors(k.state) {
		if t.Cost < 0 {
			return entry[S, C]{}, fmt.Errorf("%w: %v->%v cost=%v", core.ErrNegativeCost, k.state, t.To, t.Cost)
		}

		sub, err := d.future(child(k, t.To))
		if err != nil {
			return entry[S, C]{}, err
		}
		if !sub.ok {
			continue
		}

		if cand := t.Cost + sub.cost; !e.ok || cand < e.cost {
			t.From = k.state
			e = entry[S, C]{ok: true, cost: cand, next: t}
		}
	}

	d.memo[k] = e
	d.color[k.state] = black

	return e, nil
}

// path follows the chosen transitions from k down to a goal.
func (d *solver[S, C]) path(k key[S]) []core.Transition[S, C] {
	var out []core.Transition[S, C]
	for {
		e := d.memo[k]
		if !e.ok || e.goal {
			return out
		}
		out = append(out, e.next)
		k = child(k, e.next.To)
	}
}

// child returns the memo key for moving one transition down from k.
func child[S comparable](k key[S], to S) key[S] {
	rem := k.remaining
	if rem != core.Unlimited {
		rem--
	}

	return key[S]{state: to, remaining: rem}
}
