package solver

import (
	"github.com/vancomm/minesweeper-tui/game"
)

// Solver is a stateless automated player. Every call to NextMove sees only a
// SolverView and produces exactly one move; identical views always produce
// identical moves.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) NextMove(v game.SolverView) game.Move {
	var (
		hidden   []game.Position // hidden and unflagged, row-major
		flagged  []game.Position
		revealed int
	)
	for p := range v.Positions {
		switch v.At(p).State {
		case game.Hidden:
			hidden = append(hidden, p)
		case game.Flagged:
			flagged = append(flagged, p)
		case game.Revealed:
			revealed++
		}
	}

	// No constraints exist before the first reveal; open the center, where
	// a zero-count flood has the most room.
	if revealed == 0 && len(hidden) > 0 {
		return game.Reveal(s.opening(v, hidden))
	}
	// Degenerate position: every undecided cell carries a player flag.
	// Free the first one so there is always a move to make.
	if len(hidden) == 0 {
		return game.ToggleFlag(flagged[0])
	}

	cons := extract(v)
	mines, safe := deduce(cons)

	// Certain moves first: flag a proven mine, then open a proven safe
	// cell. Constraint cells never include flagged ones, so a flag move
	// here is never a re-flag.
	if p, ok := lowest(mines); ok {
		return game.ToggleFlag(p)
	}
	if p, ok := lowest(safe); ok {
		return game.Reveal(p)
	}

	return game.Reveal(s.guess(v, cons, hidden, len(flagged)))
}

func (s *Solver) opening(v game.SolverView, hidden []game.Position) game.Position {
	center := game.Position{Row: v.Height / 2, Col: v.Width / 2}
	if v.InBounds(center) && v.At(center).State == game.Hidden {
		return center
	}
	return hidden[0]
}

// guess estimates each undecided cell's mine probability and opens the
// least risky one. Cells under constraints take the worst ratio among
// their constraints; untouched cells take the global prior. Ties fall to
// the lowest position in row-major order.
func (s *Solver) guess(v game.SolverView, cons []constraint, hidden []game.Position, flaggedCount int) game.Position {
	remaining := v.MineCount - flaggedCount
	if remaining < 0 {
		remaining = 0
	}
	prior := float64(remaining) / float64(len(hidden))

	local := make(map[game.Position]float64)
	for _, c := range cons {
		ratio := float64(c.mines) / float64(len(c.cells))
		if ratio < 0 {
			ratio = 0
		} else if ratio > 1 {
			ratio = 1
		}
		for _, p := range c.cells {
			if ratio > local[p] {
				local[p] = ratio
			}
		}
	}

	best, bestProb := hidden[0], 2.0
	for _, p := range hidden {
		prob, constrained := local[p]
		if !constrained {
			prob = prior
		}
		if prob < bestProb {
			best, bestProb = p, prob
		}
	}
	return best
}
