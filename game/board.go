package game

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be greater than 1")
	ErrInvalidMineCount  = errors.New("mine count does not fit the board")
	ErrOutOfBounds       = errors.New("position is outside the board")
)

type Position struct {
	Row, Col int
}

// Less orders positions row-major, top-left first. Deduction and
// tie-breaking rules rely on this order being total and stable.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

type cell struct {
	state     CellState
	mined     bool
	mineCount int
}

type Board struct {
	width, height int
	mineCount     int
	cells         []cell
}

// NewBoard plants mineCount mines uniformly at random, never inside the
// 3x3 block around safeStart so the first reveal cannot lose and always
// opens some area. The reserved block is why mineCount may not exceed
// width*height-9.
func NewBoard(width, height, mineCount int, safeStart Position, rnd *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(width, height, mineCount)
	if err != nil {
		return nil, err
	}
	// The reserved block around safeStart claims 9 cells for itself.
	if mineCount > width*height-9 {
		return nil, ErrInvalidMineCount
	}
	if !b.InBounds(safeStart) {
		return nil, ErrOutOfBounds
	}

	safe := make(map[int]bool, 9)
	safe[b.index(safeStart)] = true
	for _, n := range b.Neighbors(safeStart) {
		safe[b.index(n)] = true
	}

	for planted := 0; planted < mineCount; {
		i := rnd.IntN(len(b.cells))
		if safe[i] || b.cells[i].mined {
			continue
		}
		b.cells[i].mined = true
		planted++
		for _, n := range b.Neighbors(b.position(i)) {
			b.cells[b.index(n)].mineCount++
		}
	}
	return b, nil
}

// NewBoardWithMines places mines at exact positions. Useful for replaying
// known layouts; no safe-start block is reserved.
func NewBoardWithMines(width, height int, mines []Position) (*Board, error) {
	b, err := newEmptyBoard(width, height, len(mines))
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, ErrOutOfBounds
		}
		if b.cells[b.index(p)].mined {
			return nil, ErrInvalidMineCount
		}
		b.cells[b.index(p)].mined = true
		for _, n := range b.Neighbors(p) {
			b.cells[b.index(n)].mineCount++
		}
	}
	return b, nil
}

func newEmptyBoard(width, height, mineCount int) (*Board, error) {
	if width <= 1 || height <= 1 {
		return nil, ErrInvalidDimensions
	}
	// At least one cell must stay mine-free or the board is unwinnable.
	if mineCount < 0 || mineCount >= width*height {
		return nil, ErrInvalidMineCount
	}
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]cell, width*height),
	}, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(p Position) bool {
	return 0 <= p.Row && p.Row < b.height && 0 <= p.Col && p.Col < b.width
}

func (b *Board) index(p Position) int {
	return p.Row*b.width + p.Col
}

func (b *Board) position(index int) Position {
	return Position{Row: index / b.width, Col: index % b.width}
}

func (b *Board) at(p Position) *cell {
	return &b.cells[b.index(p)]
}

func (b *Board) neighborRange(p Position) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, p.Row-1), min(p.Row+1, b.height-1)
	fromCol, toCol = max(0, p.Col-1), min(p.Col+1, b.width-1)
	return
}

// Neighbors returns the up-to-8 grid-adjacent positions in row-major order.
func (b *Board) Neighbors(p Position) []Position {
	fromRow, toRow, fromCol, toCol := b.neighborRange(p)
	neighbors := make([]Position, 0, 8)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			n := Position{Row: r, Col: c}
			if n != p {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}
