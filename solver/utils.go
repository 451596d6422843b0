package solver

import "github.com/vancomm/minesweeper-tui/game"

type void struct{}

type posSet map[game.Position]void

func (s posSet) add(p game.Position) { s[p] = void{} }

func (s posSet) has(p game.Position) bool {
	_, ok := s[p]
	return ok
}

// lowest returns the row-major minimum of the set, keeping move selection
// independent of map iteration order.
func lowest(s posSet) (best game.Position, ok bool) {
	for p := range s {
		if !ok || p.Less(best) {
			best, ok = p, true
		}
	}
	return
}

// subset reports whether every element of a is in b.
func subset(a, b []game.Position) bool {
	hash := make(posSet, len(b))
	for _, p := range b {
		hash.add(p)
	}
	for _, p := range a {
		if !hash.has(p) {
			return false
		}
	}
	return true
}

// difference returns the elements of a not in b, preserving a's order.
func difference(a, b []game.Position) (result []game.Position) {
	hash := make(posSet, len(b))
	for _, p := range b {
		hash.add(p)
	}
	for _, p := range a {
		if !hash.has(p) {
			result = append(result, p)
		}
	}
	return
}
