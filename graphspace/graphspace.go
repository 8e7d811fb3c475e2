// Package graphspace provides an explicit, adjacency-list core.Space.
//
// Use it when the states and transitions are known up front: road maps,
// dependency DAGs, test fixtures. Edges are directed; add both directions for
// an undirected road. Successors come back in insertion order as a fresh
// slice, so callers cannot mutate the graph through a search.
//
// A Graph is built once and then read; it is not safe to add edges while a
// search runs on it.
package graphspace

import (
	"github.com/katalvlaran/statespace/core"
)

// Graph is a directed multigraph with a start state and a goal set.
type Graph[S comparable, C core.Cost] struct {
	start S
	goals map[S]struct{}
	adj   map[S][]core.Transition[S, C]
	order []S // states in first-seen order
}

// New returns a graph rooted at start with the given goal states.
func New[S comparable, C core.Cost](start S, goals ...S) *Graph[S, C] {
	g := &Graph[S, C]{
		start: start,
		goals: make(map[S]struct{}, len(goals)),
		adj:   make(map[S][]core.Transition[S, C]),
	}
	g.touch(start)
	for _, s := range goals {
		g.AddGoal(s)
	}

	return g
}

// AddGoal marks s as a goal state.
func (g *Graph[S, C]) AddGoal(s S) *Graph[S, C] {
	g.touch(s)
	g.goals[s] = struct{}{}

	return g
}

// AddEdge adds a directed transition from → to labelled action.
// Parallel edges and self-loops are allowed.
func (g *Graph[S, C]) AddEdge(from, to S, action string, cost C) *Graph[S, C] {
	g.touch(from)
	g.touch(to)
	g.adj[from] = append(g.adj[from], core.Transition[S, C]{
		Action: action,
		From:   from,
		To:     to,
		Cost:   cost,
	})

	return g
}

// touch registers s as a known state.
func (g *Graph[S, C]) touch(s S) {
	if _, ok := g.adj[s]; ok {
		return
	}
	g.adj[s] = nil
	g.order = append(g.order, s)
}

// States returns every known state in first-seen order.
func (g *Graph[S, C]) States() []S {
	out := make([]S, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of known states.
func (g *Graph[S, C]) Len() int { return len(g.order) }

// Start implements core.Space.
func (g *Graph[S, C]) Start() S { return g.start }

// IsGoal implements core.Space.
func (g *Graph[S, C]) IsGoal(s S) bool {
	_, ok := g.goals[s]
	return ok
}

// Successors implements core.Space.
func (g *Graph[S, C]) Successors(s S) []core.Transition[S, C] {
	edges := g.adj[s]
	out := make([]core.Transition[S, C], len(edges))
	copy(out, edges)

	return out
}
