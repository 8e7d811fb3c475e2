// Package frontier implements the best-first loop shared by uniform-cost
// search and A*.
//
// States are queued by g(s) + h(s), where g is the best known path cost from
// the start. A popped state is reopened when a strictly cheaper path to it
// turns up later, which only happens when h is admissible but inconsistent;
// with h = 0 or a consistent h every state is expanded once. With non-negative
// costs and an admissible h the first goal popped carries an optimal cost.
// The loop checks for an empty frontier
// before every extraction and reports the space as unreachable instead of
// underflowing the queue.
package frontier

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/pqueue"
)

// searcher holds the mutable state of one best-first run.
type searcher[S comparable, C core.Cost] struct {
	space  core.Space[S, C]
	h      core.Heuristic[S, C]
	run    *telemetry.Run
	queue  *pqueue.Queue[S, C]
	g      map[S]C                     // best known path cost, queued or popped
	parent map[S]core.Transition[S, C] // transition that produced g[s]
}

// Search runs best-first search over sp with heuristic h and returns the
// first goal extracted from the frontier.
func Search[S comparable, C core.Cost](run *telemetry.Run, sp core.Space[S, C], h core.Heuristic[S, C]) (core.Solution[S, C], error) {
	s := &searcher[S, C]{
		space:  sp,
		h:      h,
		run:    run,
		queue:  pqueue.New[S, C](),
		g:      make(map[S]C),
		parent: make(map[S]core.Transition[S, C]),
	}

	return s.process()
}

// process seeds the frontier with the start state and drains it.
func (s *searcher[S, C]) process() (core.Solution[S, C], error) {
	start := s.space.Start()

	est, err := s.estimate(start)
	if err != nil {
		return core.Unreachable[S, C]("", start, 0), err
	}
	var zero C
	s.g[start] = zero
	s.queue.Update(start, est)

	for s.queue.Len() > 0 {
		if err = s.run.Expand(); err != nil {
			return core.Unreachable[S, C]("", start, 0), err
		}

		// Len() > 0 was checked above, PopMin cannot underflow.
		u, _, _ := s.queue.PopMin()
		gu := s.g[u]

		if s.space.IsGoal(u) {
			return core.Solution[S, C]{
				Start:     start,
				Cost:      gu,
				Path:      s.pathTo(start, u),
				Reachable: true,
			}, nil
		}

		if err = s.relax(u, gu); err != nil {
			return core.Unreachable[S, C]("", start, 0), err
		}
	}

	return core.Unreachable[S, C]("", start, 0), nil
}

// relax pushes every successor of u whose path cost through u improves on
// its best known cost, reopening it if it was already popped.
func (s *searcher[S, C]) relax(u S, gu C) error {
	for _, t := range s.space.Successors(u) {
		if t.Cost < 0 {
			return fmt.Errorf("%w: %v->%v cost=%v", core.ErrNegativeCost, u, t.To, t.Cost)
		}
		cand := gu + t.Cost
		if old, seen := s.g[t.To]; seen && cand >= old {
			continue
		}

		est, err := s.estimate(t.To)
		if err != nil {
			return err
		}
		if s.queue.Done(t.To) {
			s.queue.Reopen(t.To, cand+est)
		} else if !s.queue.Update(t.To, cand+est) {
			continue
		}

		t.From = u
		s.g[t.To] = cand
		s.parent[t.To] = t
	}

	return nil
}

// estimate evaluates the heuristic and rejects negative values.
func (s *searcher[S, C]) estimate(v S) (C, error) {
	est := s.h(v)
	if est < 0 {
		return est, fmt.Errorf("%w: h(%v)=%v", core.ErrNegativeHeuristic, v, est)
	}

	return est, nil
}

// pathTo follows parent links back from goal and returns the transitions in
// traversal order.
func (s *searcher[S, C]) pathTo(start, goal S) []core.Transition[S, C] {
	var rev []core.Transition[S, C]
	for cur := goal; cur != start; {
		t, ok := s.parent[cur]
		if !ok {
			break
		}
		rev = append(rev, t)
		cur = t.From
	}

	path := make([]core.Transition[S, C], len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}
