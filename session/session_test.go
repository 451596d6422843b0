package session_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/game"
	"github.com/vancomm/minesweeper-tui/session"
	"github.com/vancomm/minesweeper-tui/solver"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testParams() game.Params {
	return game.Params{Width: 9, Height: 9, MineCount: 10}
}

func TestBoardIsCreatedOnFirstReveal(t *testing.T) {
	s := session.New(testParams(), testRand())
	assert.False(t, s.Started())

	// Flags before the first reveal have nothing to act on.
	res, err := s.Apply(game.ToggleFlag(game.Position{Row: 0, Col: 0}))
	require.NoError(t, err)
	assert.False(t, s.Started())
	assert.Equal(t, 10, res.FlagsRemaining)

	res, err = s.Apply(game.Reveal(game.Position{Row: 4, Col: 4}))
	require.NoError(t, err)
	assert.True(t, s.Started())
	assert.Equal(t, game.InProgress, res.Status)

	// The first reveal is guaranteed safe and opens at least the safe
	// block around it.
	v := s.SolverView()
	assert.Equal(t, game.Revealed, v.At(game.Position{Row: 4, Col: 4}).State)
	for _, n := range v.Neighbors(game.Position{Row: 4, Col: 4}) {
		assert.Equal(t, game.Revealed, v.At(n).State, "cell %v", n)
	}
}

func TestPreStartViewIsAllHidden(t *testing.T) {
	s := session.New(testParams(), testRand())
	v := s.SolverView()
	assert.Equal(t, 9, v.Width)
	assert.Equal(t, 10, v.MineCount)
	for p := range v.Positions {
		assert.Equal(t, game.Hidden, v.At(p).State)
	}
}

type fixedSource struct {
	move game.Move
}

func (f fixedSource) NextMove(game.SolverView) game.Move { return f.move }

func TestRejectedMoveLeavesStateUnchanged(t *testing.T) {
	s := session.New(testParams(), testRand())
	_, err := s.Apply(game.Reveal(game.Position{Row: 4, Col: 4}))
	require.NoError(t, err)

	before := s.Snapshot()
	c := session.NewController(s, fixedSource{game.Reveal(game.Position{Row: -1, Col: 0})})

	_, err = c.Step()
	assert.ErrorIs(t, err, game.ErrOutOfBounds)
	assert.Equal(t, before, s.Snapshot())
}

func TestControllerRefusesStepsAfterGameOver(t *testing.T) {
	s := session.New(testParams(), testRand())
	c := session.NewController(s, solver.New())

	for s.Status() == game.InProgress {
		_, err := c.Step()
		require.NoError(t, err)
	}

	_, err := c.Step()
	assert.ErrorIs(t, err, game.ErrGameOver)
}

func TestRunGamesPlaysEveryGameToCompletion(t *testing.T) {
	stats := session.RunGames(5, testParams(), solver.New(), testRand())

	assert.Equal(t, 5, stats.Played)
	assert.Equal(t, 5, stats.Won+stats.Lost)
	assert.InDelta(t, float64(stats.Won)/5, stats.WinRate(), 1e-9)
}
