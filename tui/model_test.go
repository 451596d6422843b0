package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/game"
)

func testModel() Model {
	return New(
		game.Params{Width: 5, Height: 5, MineCount: 2},
		rand.New(rand.NewPCG(1, 2)),
		false,
	)
}

func pressKey(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: k})
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestCursorStartsCentered(t *testing.T) {
	m := testModel()
	assert.Equal(t, game.Position{Row: 2, Col: 2}, m.cursor)
}

func TestCursorMovesAndClampsAtEdges(t *testing.T) {
	m := testModel()

	m = pressKey(t, m, tea.KeyRight)
	assert.Equal(t, game.Position{Row: 2, Col: 3}, m.cursor)

	for range 10 {
		m = pressKey(t, m, tea.KeyUp)
	}
	assert.Equal(t, game.Position{Row: 0, Col: 3}, m.cursor)

	for range 10 {
		m = pressKey(t, m, tea.KeyLeft)
	}
	assert.Equal(t, game.Position{Row: 0, Col: 0}, m.cursor)
}

func TestRevealKeyStartsTheGame(t *testing.T) {
	m := testModel()
	m = pressKey(t, m, tea.KeySpace)
	assert.True(t, m.sess.Started())
	// The first reveal is guaranteed safe.
	assert.NotEqual(t, game.Lost, m.sess.Status())
}

func TestViewShowsFlagCounter(t *testing.T) {
	m := testModel()
	assert.Contains(t, m.View(), "[2/2]")
}

func TestRenderCellGlyphs(t *testing.T) {
	glyph, _ := renderCell(game.DisplayCell{State: game.Hidden})
	assert.Equal(t, glyphHidden, glyph)

	glyph, _ = renderCell(game.DisplayCell{State: game.Flagged})
	assert.Equal(t, glyphFlag, glyph)

	glyph, _ = renderCell(game.DisplayCell{State: game.Revealed, Mined: true})
	assert.Equal(t, glyphMine, glyph)

	glyph, _ = renderCell(game.DisplayCell{State: game.Revealed, AdjacentMines: 3})
	assert.Equal(t, "3", glyph)

	glyph, _ = renderCell(game.DisplayCell{State: game.Revealed})
	assert.Equal(t, glyphEmpty, glyph)
}

func TestViewRendersWholeBoard(t *testing.T) {
	m := testModel()
	board := m.renderBoard(m.sess.Snapshot())
	assert.Equal(t, 5, len(strings.Split(board, "\n")))
}
