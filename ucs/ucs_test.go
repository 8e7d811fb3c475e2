package ucs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/graphspace"
	"github.com/katalvlaran/statespace/transport"
	"github.com/katalvlaran/statespace/ucs"
)

func TestSearch_NilSpace(t *testing.T) {
	sol, err := ucs.Search[string, int](nil)
	assert.ErrorIs(t, err, core.ErrNilSpace)
	assert.False(t, sol.Reachable)
}

func TestSearch_Triangle(t *testing.T) {
	// A→B(1), B→C(2), A→C(5): the detour through B is cheaper.
	g := graphspace.New[string, int]("A", "C").
		AddEdge("A", "B", "ab", 1).
		AddEdge("B", "C", "bc", 2).
		AddEdge("A", "C", "ac", 5)

	sol, err := ucs.Search[string, int](g)
	require.NoError(t, err)
	require.True(t, sol.Reachable)
	assert.Equal(t, ucs.Name, sol.Algorithm)
	assert.Equal(t, 3, sol.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, sol.States())
	assert.NoError(t, core.ValidatePath[string, int](g, sol))
}

func TestSearch_DecreaseKeyUpdatesParent(t *testing.T) {
	// D is first discovered from A at 10, then improved through C at 3.
	g := graphspace.New[string, float64]("A", "E").
		AddEdge("A", "D", "ad", 10).
		AddEdge("A", "C", "ac", 1).
		AddEdge("C", "D", "cd", 2).
		AddEdge("D", "E", "de", 1)

	sol, err := ucs.Search[string, float64](g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, sol.Cost)
	assert.Equal(t, []string{"A", "C", "D", "E"}, sol.States())
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := graphspace.New[string, int]("A", "A").AddEdge("A", "B", "x", 1)

	sol, err := ucs.Search[string, int](g)
	require.NoError(t, err)
	assert.True(t, sol.Reachable)
	assert.Equal(t, 0, sol.Cost)
	assert.Empty(t, sol.Path)
	assert.Equal(t, 1, sol.Expanded)
}

func TestSearch_UnreachableOnCycle(t *testing.T) {
	// A cyclic component that never reaches the goal must drain, not hang.
	g := graphspace.New[string, int]("A", "Z").
		AddEdge("A", "B", "ab", 1).
		AddEdge("B", "C", "bc", 1).
		AddEdge("C", "A", "ca", 1).
		AddGoal("Z")

	sol, err := ucs.Search[string, int](g)
	require.NoError(t, err)
	assert.False(t, sol.Reachable)
	assert.Nil(t, sol.Path)
	assert.Equal(t, 3, sol.Expanded)
}

func TestSearch_NegativeCost(t *testing.T) {
	g := graphspace.New[string, int]("A", "B").AddEdge("A", "B", "ab", -1)

	_, err := ucs.Search[string, int](g)
	assert.ErrorIs(t, err, core.ErrNegativeCost)
}

func TestSearch_Transport(t *testing.T) {
	p, err := transport.New(10)
	require.NoError(t, err)

	sol, err := ucs.Search[int, int](p)
	require.NoError(t, err)
	assert.Equal(t, 6, sol.Cost)
	assert.NoError(t, core.ValidatePath[int, int](p, sol))
}

func TestSearch_ExpansionLimit(t *testing.T) {
	p, _ := transport.New(1000)

	sol, err := ucs.Search[int, int](p, core.WithMaxExpansions(5))
	assert.ErrorIs(t, err, core.ErrExpansionLimit)
	assert.False(t, sol.Reachable)
	assert.Equal(t, 5, sol.Expanded)
}

func TestSearch_Cancelled(t *testing.T) {
	p, _ := transport.New(50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ucs.Search[int, int](p, core.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_Idempotent(t *testing.T) {
	p, _ := transport.New(40)

	a, err := ucs.Search[int, int](p)
	require.NoError(t, err)
	b, err := ucs.Search[int, int](p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
