package game

import (
	"errors"

	"github.com/gammazero/deque"
)

var ErrGameOver = errors.New("game is over")

type GameStatus int

const (
	InProgress GameStatus = iota
	Won
	Lost
)

type MoveKind int

const (
	MoveReveal MoveKind = iota
	MoveToggleFlag
)

type Move struct {
	Kind MoveKind
	Pos  Position
}

func Reveal(p Position) Move { return Move{Kind: MoveReveal, Pos: p} }

func ToggleFlag(p Position) Move { return Move{Kind: MoveToggleFlag, Pos: p} }

// Game owns its Board exclusively. Everyone else sees projections built by
// SolverView and Snapshot.
type Game struct {
	board    *Board
	status   GameStatus
	revealed int
	flagged  int
}

func New(board *Board) *Game {
	return &Game{board: board}
}

func (g *Game) Status() GameStatus { return g.status }

// FlagsRemaining is display-only and may go negative when the player
// over-flags. It never participates in the win or loss conditions.
func (g *Game) FlagsRemaining() int {
	return g.board.mineCount - g.flagged
}

func (g *Game) Apply(m Move) error {
	switch m.Kind {
	case MoveReveal:
		return g.Reveal(m.Pos)
	case MoveToggleFlag:
		return g.ToggleFlag(m.Pos)
	default:
		return ErrOutOfBounds
	}
}

// Reveal opens a cell. Opening a mine loses the game and uncovers every
// mine for the end screen. Opening a zero-count cell floods outwards
// through further zero-count cells, stopping at numbered ones. Flagged and
// already-revealed cells are left untouched.
func (g *Game) Reveal(p Position) error {
	if !g.board.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.status != InProgress {
		return ErrGameOver
	}

	cell := g.board.at(p)
	if cell.state != Hidden {
		return nil
	}

	if cell.mined {
		g.status = Lost
		for i := range g.board.cells {
			if g.board.cells[i].mined {
				g.board.cells[i].state = Revealed
			}
		}
		return nil
	}

	g.flood(p)

	if g.revealed == len(g.board.cells)-g.board.mineCount {
		g.status = Won
		for i := range g.board.cells {
			if g.board.cells[i].mined && g.board.cells[i].state == Hidden {
				g.board.cells[i].state = Flagged
				g.flagged++
			}
		}
	}
	return nil
}

func (g *Game) flood(start Position) {
	var work deque.Deque[Position]
	work.PushBack(start)
	for work.Len() > 0 {
		p := work.PopFront()
		cell := g.board.at(p)
		if cell.state != Hidden {
			continue
		}
		cell.state = Revealed
		g.revealed++
		if cell.mineCount > 0 {
			continue
		}
		for _, n := range g.board.Neighbors(p) {
			if g.board.at(n).state == Hidden {
				work.PushBack(n)
			}
		}
	}
}

// ToggleFlag flips a cell between Hidden and Flagged. Revealed cells are
// left untouched.
func (g *Game) ToggleFlag(p Position) error {
	if !g.board.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.status != InProgress {
		return ErrGameOver
	}

	cell := g.board.at(p)
	switch cell.state {
	case Hidden:
		cell.state = Flagged
		g.flagged++
	case Flagged:
		cell.state = Hidden
		g.flagged--
	}
	return nil
}
