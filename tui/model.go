package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-tui/game"
	"github.com/vancomm/minesweeper-tui/session"
	"github.com/vancomm/minesweeper-tui/solver"
)

// thinkDelay paces autoplay so the solver's moves are watchable.
const thinkDelay = 100 * time.Millisecond

type autoMoveMsg struct{}

func autoTick() tea.Cmd {
	return tea.Tick(thinkDelay, func(time.Time) tea.Msg {
		return autoMoveMsg{}
	})
}

type Model struct {
	params  game.Params
	rnd     *rand.Rand
	sess    *session.Session
	ai      *solver.Solver
	KeyMap  KeyMap
	cursor  game.Position
	auto    bool
	started time.Time
	elapsed time.Duration // frozen on game over
	width   int
	height  int
}

func New(params game.Params, rnd *rand.Rand, auto bool) Model {
	return Model{
		params:  params,
		rnd:     rnd,
		sess:    session.New(params, rnd),
		ai:      solver.New(),
		KeyMap:  Keys,
		cursor:  game.Position{Row: params.Height / 2, Col: params.Width / 2},
		auto:    auto,
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.auto {
		return autoTick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.NewGame):
			next := New(m.params, m.rnd, m.auto)
			next.width, next.height = m.width, m.height
			return next, next.Init()

		case key.Matches(msg, m.KeyMap.Autoplay):
			m.auto = !m.auto
			if m.auto {
				return m, autoTick()
			}

		case key.Matches(msg, m.KeyMap.Up):
			m.cursor = m.clamp(game.Position{Row: m.cursor.Row - 1, Col: m.cursor.Col})

		case key.Matches(msg, m.KeyMap.Down):
			m.cursor = m.clamp(game.Position{Row: m.cursor.Row + 1, Col: m.cursor.Col})

		case key.Matches(msg, m.KeyMap.Left):
			m.cursor = m.clamp(game.Position{Row: m.cursor.Row, Col: m.cursor.Col - 1})

		case key.Matches(msg, m.KeyMap.Right):
			m.cursor = m.clamp(game.Position{Row: m.cursor.Row, Col: m.cursor.Col + 1})

		case key.Matches(msg, m.KeyMap.Reveal):
			m.apply(game.Reveal(m.cursor))

		case key.Matches(msg, m.KeyMap.Flag):
			m.apply(game.ToggleFlag(m.cursor))
		}

	case autoMoveMsg:
		if !m.auto || m.sess.Status() != game.InProgress {
			return m, nil
		}
		m.apply(m.ai.NextMove(m.sess.SolverView()))
		if m.sess.Status() == game.InProgress {
			return m, autoTick()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	return m, nil
}

func (m *Model) apply(mv game.Move) {
	// Rejected moves (flagged cell, finished game) change nothing; the
	// player simply picks another one.
	_, _ = m.sess.Apply(mv)
	if m.sess.Status() != game.InProgress && m.elapsed == 0 {
		m.elapsed = time.Since(m.started)
	}
}

func (m Model) clamp(p game.Position) game.Position {
	p.Row = min(m.params.Height-1, max(p.Row, 0))
	p.Col = min(m.params.Width-1, max(p.Col, 0))
	return p
}

func (m Model) View() string {
	snap := m.sess.Snapshot()

	header := titleStyle.Render("MineSweeper") +
		fmt.Sprintf("  [%d/%d]  %s", snap.FlagsRemaining, m.params.MineCount, m.timer())

	board := m.renderBoard(snap)

	var footer string
	switch snap.Status {
	case game.Won:
		footer = victoryStyle.Render("VICTORY!") + helpStyle.Render("  n new game • q quit")
	case game.Lost:
		footer = defeatStyle.Render("DEFEAT") + helpStyle.Render("  n new game • q quit")
	default:
		footer = helpStyle.Render("↑↓←→ move • space reveal • f flag • a autoplay • n new • q quit")
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, boxStyle.Render(board), footer)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) timer() string {
	elapsed := m.elapsed
	if elapsed == 0 {
		elapsed = time.Since(m.started)
	}
	return fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
}

func (m Model) renderBoard(snap game.Snapshot) string {
	var b strings.Builder
	for r := 0; r < snap.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < snap.Width; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			p := game.Position{Row: r, Col: c}
			glyph, style := renderCell(snap.At(p))
			if p == m.cursor && snap.Status == game.InProgress {
				style = cursorStyle
			}
			b.WriteString(style.Render(glyph))
		}
	}
	return b.String()
}

func renderCell(cell game.DisplayCell) (string, lipgloss.Style) {
	switch cell.State {
	case game.Flagged:
		return glyphFlag, flagStyle
	case game.Revealed:
		if cell.Mined {
			return glyphMine, mineStyle
		}
		if cell.AdjacentMines == 0 {
			return glyphEmpty, hiddenStyle
		}
		return fmt.Sprintf("%d", cell.AdjacentMines), numberStyles[cell.AdjacentMines]
	default:
		return glyphHidden, hiddenStyle
	}
}
