package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/transport"
)

func TestNew(t *testing.T) {
	p, err := transport.New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, p.N)

	_, err = transport.New(0)
	assert.ErrorIs(t, err, transport.ErrBadBlocks)
}

func TestProblem_Successors(t *testing.T) {
	p, _ := transport.New(10)

	assert.Equal(t, 1, p.Start())
	assert.True(t, p.IsGoal(10))
	assert.False(t, p.IsGoal(9))

	assert.Equal(t, []core.Transition[int, int]{
		{Action: transport.Walk, From: 3, To: 4, Cost: 1},
		{Action: transport.Tram, From: 3, To: 6, Cost: 2},
	}, p.Successors(3))

	// The tram never overshoots the last block.
	assert.Equal(t, []core.Transition[int, int]{
		{Action: transport.Walk, From: 6, To: 7, Cost: 1},
	}, p.Successors(6))
	assert.Empty(t, p.Successors(10))
}

func TestProblem_SingleBlock(t *testing.T) {
	p, _ := transport.New(1)

	assert.True(t, p.IsGoal(p.Start()))
	assert.Empty(t, p.Successors(1))
}

func TestHeuristics(t *testing.T) {
	p, _ := transport.New(10)

	m := transport.Manhattan(p)
	assert.Equal(t, 9, m(1))
	assert.Equal(t, 0, m(10))
	assert.Equal(t, 5, m(5), "overestimates the single tram ride from 5")

	a := transport.Admissible(p)
	assert.Equal(t, 0, a(10))
	for s := 1; s < 10; s++ {
		assert.Equal(t, 1, a(s))
	}
}
