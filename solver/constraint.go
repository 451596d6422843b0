package solver

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-tui/game"
)

// constraint records that exactly mines of cells are mined. One is built
// per revealed numbered cell, with flagged neighbors already subtracted;
// further constraints are derived from overlaps. Everything is recomputed
// from scratch on each solver call, which keeps the solver stateless and
// immune to stale bookkeeping.
type constraint struct {
	origin game.Position
	cells  []game.Position // hidden unflagged cells, row-major
	mines  int
}

func (c constraint) key() string {
	var b strings.Builder
	for _, p := range c.cells {
		fmt.Fprintf(&b, "%d,%d;", p.Row, p.Col)
	}
	fmt.Fprintf(&b, "#%d", c.mines)
	return b.String()
}

// reduce drops cells already known to be mines or safe, adjusting the mine
// requirement. ok is false once nothing is left to decide.
func (c constraint) reduce(mines, safe posSet) (r constraint, ok bool) {
	r = constraint{origin: c.origin, mines: c.mines}
	for _, p := range c.cells {
		switch {
		case mines.has(p):
			r.mines--
		case safe.has(p):
		default:
			r.cells = append(r.cells, p)
		}
	}
	return r, len(r.cells) > 0
}

// extract builds one constraint per revealed cell with a nonzero adjacency
// count that still has undecided neighbors.
func extract(v game.SolverView) []constraint {
	var cons []constraint
	for p := range v.Positions {
		cell := v.At(p)
		if cell.State != game.Revealed || cell.AdjacentMines == 0 {
			continue
		}
		c := constraint{origin: p, mines: cell.AdjacentMines}
		for _, n := range v.Neighbors(p) {
			switch v.At(n).State {
			case game.Hidden:
				c.cells = append(c.cells, n)
			case game.Flagged:
				c.mines--
			}
		}
		if len(c.cells) > 0 {
			cons = append(cons, c)
		}
	}
	return cons
}

// deduce runs certain-move inference to a fixed point: single-constraint
// saturation (all cells mined or none), then the subset rule, which splits
// an enclosing constraint against a contained one and often cracks
// positions single constraints cannot.
func deduce(cons []constraint) (mines, safe posSet) {
	mines, safe = make(posSet), make(posSet)

	seen := make(map[string]bool, len(cons))
	for _, c := range cons {
		seen[c.key()] = true
	}

	for changed := true; changed; {
		changed = false

		reduced := make([]constraint, 0, len(cons))
		for _, c := range cons {
			r, ok := c.reduce(mines, safe)
			if !ok {
				continue
			}
			switch {
			case r.mines <= 0:
				for _, p := range r.cells {
					if !safe.has(p) {
						safe.add(p)
						changed = true
					}
				}
			case r.mines >= len(r.cells):
				for _, p := range r.cells {
					if !mines.has(p) {
						mines.add(p)
						changed = true
					}
				}
			default:
				reduced = append(reduced, r)
			}
		}

		for i := range reduced {
			for j := range reduced {
				if i == j || len(reduced[i].cells) >= len(reduced[j].cells) {
					continue
				}
				if !subset(reduced[i].cells, reduced[j].cells) {
					continue
				}
				d := constraint{
					origin: reduced[j].origin,
					cells:  difference(reduced[j].cells, reduced[i].cells),
					mines:  reduced[j].mines - reduced[i].mines,
				}
				if !seen[d.key()] {
					seen[d.key()] = true
					cons = append(cons, d)
					changed = true
				}
			}
		}
	}
	return mines, safe
}
