package game

// SolverView is the projection handed to an automated player. It carries
// cell states and the adjacency numbers of revealed cells, never the mine
// identity of hidden cells, so a solver cannot cheat even by accident.
type SolverView struct {
	Width, Height int
	MineCount     int
	Cells         []ViewCell
}

type ViewCell struct {
	State         CellState
	AdjacentMines int // meaningful only when State == Revealed
}

func (g *Game) SolverView() SolverView {
	v := SolverView{
		Width:     g.board.width,
		Height:    g.board.height,
		MineCount: g.board.mineCount,
		Cells:     make([]ViewCell, len(g.board.cells)),
	}
	for i, c := range g.board.cells {
		v.Cells[i].State = c.state
		if c.state == Revealed {
			v.Cells[i].AdjacentMines = c.mineCount
		}
	}
	return v
}

// AllHiddenView describes a board that exists only as dimensions, before
// the first reveal has planted any mines.
func AllHiddenView(width, height, mineCount int) SolverView {
	return SolverView{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		Cells:     make([]ViewCell, width*height),
	}
}

func (v SolverView) InBounds(p Position) bool {
	return 0 <= p.Row && p.Row < v.Height && 0 <= p.Col && p.Col < v.Width
}

func (v SolverView) At(p Position) ViewCell {
	return v.Cells[p.Row*v.Width+p.Col]
}

func (v SolverView) Neighbors(p Position) []Position {
	fromRow, toRow := max(0, p.Row-1), min(p.Row+1, v.Height-1)
	fromCol, toCol := max(0, p.Col-1), min(p.Col+1, v.Width-1)
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

// Positions yields every position in row-major order.
func (v SolverView) Positions(yield func(Position) bool) {
	for r := 0; r < v.Height; r++ {
		for c := 0; c < v.Width; c++ {
			if !yield(Position{Row: r, Col: c}) {
				return
			}
		}
	}
}

// Snapshot is the display projection: like SolverView but it also marks
// revealed mines so a lost game can render them.
type Snapshot struct {
	Width, Height  int
	Status         GameStatus
	FlagsRemaining int
	Cells          []DisplayCell
}

type DisplayCell struct {
	State         CellState
	AdjacentMines int
	Mined         bool // only ever true for revealed cells
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:          g.board.width,
		Height:         g.board.height,
		Status:         g.status,
		FlagsRemaining: g.FlagsRemaining(),
		Cells:          make([]DisplayCell, len(g.board.cells)),
	}
	for i, c := range g.board.cells {
		s.Cells[i].State = c.state
		if c.state == Revealed {
			s.Cells[i].AdjacentMines = c.mineCount
			s.Cells[i].Mined = c.mined
		}
	}
	return s
}

func (s Snapshot) At(p Position) DisplayCell {
	return s.Cells[p.Row*s.Width+p.Col]
}
