package dynprog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/dynprog"
	"github.com/katalvlaran/statespace/graphspace"
	"github.com/katalvlaran/statespace/transport"
)

func TestSearch_NilSpace(t *testing.T) {
	_, err := dynprog.Search[int, int](nil)
	assert.ErrorIs(t, err, core.ErrNilSpace)

	_, err = dynprog.FutureCosts[int, int](nil)
	assert.ErrorIs(t, err, core.ErrNilSpace)
}

func TestFutureCosts_Transport10(t *testing.T) {
	p, _ := transport.New(10)

	table, err := dynprog.FutureCosts[int, int](p)
	require.NoError(t, err)

	// Worked backwards from block 10.
	want := map[int]int{10: 0, 9: 1, 8: 2, 7: 3, 6: 4, 5: 2, 4: 3, 3: 4, 2: 5, 1: 6}
	assert.Equal(t, want, table)
}

func TestSearch_ReconstructsPath(t *testing.T) {
	p, _ := transport.New(10)

	sol, err := dynprog.Search[int, int](p)
	require.NoError(t, err)
	require.True(t, sol.Reachable)
	assert.Equal(t, dynprog.Name, sol.Algorithm)
	assert.Equal(t, 6, sol.Cost)
	assert.NoError(t, core.ValidatePath[int, int](p, sol))
	assert.Equal(t, 10, sol.Expanded, "each block is evaluated once")
}

func TestSearch_DeadEndsAreSkipped(t *testing.T) {
	g := graphspace.New[string, int]("S", "G").
		AddEdge("S", "D", "dead", 1).
		AddEdge("S", "G", "long", 7)

	sol, err := dynprog.Search[string, int](g)
	require.NoError(t, err)
	assert.Equal(t, 7, sol.Cost)
	assert.Equal(t, []string{"S", "G"}, sol.States())

	table, err := dynprog.FutureCosts[string, int](g)
	require.NoError(t, err)
	assert.NotContains(t, table, "D")
}

func TestSearch_Unreachable(t *testing.T) {
	g := graphspace.New[string, int]("S", "G").AddEdge("S", "A", "sa", 1)

	sol, err := dynprog.Search[string, int](g)
	require.NoError(t, err)
	assert.False(t, sol.Reachable)
	assert.Nil(t, sol.Path)
}

func TestSearch_CycleDetected(t *testing.T) {
	g := graphspace.New[string, int]("A", "G").
		AddEdge("A", "B", "ab", 1).
		AddEdge("B", "C", "bc", 1).
		AddEdge("C", "A", "ca", 1).
		AddEdge("C", "G", "cg", 1)

	_, err := dynprog.Search[string, int](g)
	assert.ErrorIs(t, err, core.ErrCycleDetected)
}

func TestSearch_SharedSubproblemIsNotACycle(t *testing.T) {
	g := graphspace.New[string, int]("A", "E").
		AddEdge("A", "B", "ab", 1).
		AddEdge("A", "C", "ac", 2).
		AddEdge("B", "D", "bd", 5).
		AddEdge("C", "D", "cd", 1).
		AddEdge("D", "E", "de", 1)

	sol, err := dynprog.Search[string, int](g)
	require.NoError(t, err)
	assert.Equal(t, 4, sol.Cost)
	assert.Equal(t, []string{"A", "C", "D", "E"}, sol.States())
	assert.Equal(t, 5, sol.Expanded, "D must be memoised")
}

func TestSearch_NegativeCost(t *testing.T) {
	g := graphspace.New[string, int]("A", "B").AddEdge("A", "B", "ab", -3)

	_, err := dynprog.Search[string, int](g)
	assert.ErrorIs(t, err, core.ErrNegativeCost)
}

func TestSearch_MaxDepthKeysMemo(t *testing.T) {
	// Cheap route needs 3 moves, expensive one 1. With a 2-move budget only
	// the expensive route fits, even though B was first evaluated deeper.
	g := graphspace.New[string, int]("S", "G").
		AddEdge("S", "A", "sa", 1).
		AddEdge("A", "B", "ab", 1).
		AddEdge("B", "G", "bg", 1).
		AddEdge("S", "B", "sb", 1).
		AddEdge("S", "G", "sg", 10)

	sol, err := dynprog.Search[string, int](g, core.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 2, sol.Cost)
	assert.Equal(t, []string{"S", "B", "G"}, sol.States())

	sol, err = dynprog.Search[string, int](g, core.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 10, sol.Cost)
}
