// Package session sequences turns between a move source and the game
// engine. It owns no timing: the rendering side decides when the next
// move is pulled.
package session

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-tui/game"
)

var log = logrus.New()

// SetLogger redirects session logging, e.g. into the rotating file a TUI
// process logs to.
func SetLogger(l *logrus.Logger) { log = l }

// MoveSource produces the next move for the current position. The solver
// implements it; a human input adapter does too.
type MoveSource interface {
	NextMove(v game.SolverView) game.Move
}

// Result is what the rendering side needs after every applied move.
type Result struct {
	Status         game.GameStatus
	FlagsRemaining int
}

// Session defers board generation until the first reveal so that the
// revealed cell can anchor the mine-free start block. Until then the board
// is all hidden and flag moves are ignored.
type Session struct {
	params game.Params
	rnd    *rand.Rand
	g      *game.Game
}

func New(params game.Params, rnd *rand.Rand) *Session {
	return &Session{params: params, rnd: rnd}
}

func (s *Session) Started() bool { return s.g != nil }

func (s *Session) Status() game.GameStatus {
	if s.g == nil {
		return game.InProgress
	}
	return s.g.Status()
}

func (s *Session) FlagsRemaining() int {
	if s.g == nil {
		return s.params.MineCount
	}
	return s.g.FlagsRemaining()
}

func (s *Session) SolverView() game.SolverView {
	if s.g == nil {
		return game.AllHiddenView(s.params.Width, s.params.Height, s.params.MineCount)
	}
	return s.g.SolverView()
}

func (s *Session) Snapshot() game.Snapshot {
	if s.g == nil {
		return game.Snapshot{
			Width:          s.params.Width,
			Height:         s.params.Height,
			FlagsRemaining: s.params.MineCount,
			Cells:          make([]game.DisplayCell, s.params.Width*s.params.Height),
		}
	}
	return s.g.Snapshot()
}

// Apply runs one move through the engine. A rejected move leaves all state
// unchanged and is reported back through the error.
func (s *Session) Apply(m game.Move) (Result, error) {
	if s.g == nil {
		if m.Kind != game.MoveReveal {
			// Nothing to flag before the mines exist.
			return s.result(), nil
		}
		board, err := game.NewBoard(
			s.params.Width, s.params.Height, s.params.MineCount, m.Pos, s.rnd,
		)
		if err != nil {
			return s.result(), err
		}
		s.g = game.New(board)
	}
	if err := s.g.Apply(m); err != nil {
		return s.result(), err
	}
	return s.result(), nil
}

func (s *Session) result() Result {
	return Result{Status: s.Status(), FlagsRemaining: s.FlagsRemaining()}
}

// Controller pulls moves from a source and applies them, one full move per
// Step. Once the game is terminal it refuses further steps.
type Controller struct {
	session *Session
	source  MoveSource
}

func NewController(s *Session, source MoveSource) *Controller {
	return &Controller{session: s, source: source}
}

func (c *Controller) Session() *Session { return c.session }

func (c *Controller) Step() (Result, error) {
	if c.session.Status() != game.InProgress {
		return c.session.result(), game.ErrGameOver
	}
	move := c.source.NextMove(c.session.SolverView())
	res, err := c.session.Apply(move)
	if err != nil {
		log.WithFields(logrus.Fields{
			"move": move, "error": err,
		}).Warn("move rejected")
	}
	return res, err
}

// Stats aggregates the outcomes of a benchmark run.
type Stats struct {
	Played, Won, Lost int
}

func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// RunGames plays n fresh games with the given source and reports the
// outcomes. Used by the headless benchmark mode.
func RunGames(n int, params game.Params, source MoveSource, rnd *rand.Rand) Stats {
	var stats Stats
	for range n {
		c := NewController(New(params, rnd), source)
		for c.session.Status() == game.InProgress {
			if _, err := c.Step(); err != nil {
				log.WithField("error", err).Error("benchmark game aborted")
				break
			}
		}
		stats.Played++
		switch c.session.Status() {
		case game.Won:
			stats.Won++
		case game.Lost:
			stats.Lost++
		}
	}
	return stats
}
