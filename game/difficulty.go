package game

import "errors"

var ErrInvalidDifficulty = errors.New("difficulty must be between 0 and 40")

// Difficulty scales mine density in steps of 2.5%: 0 is a minefield with a
// single mine, 40 would cover the whole board (and gets clamped so the
// safe-start block survives).
const (
	DensityStep   = 0.025
	MaxDifficulty = int(1.0 / DensityStep)

	DefaultDifficulty = 3
	DefaultWidth      = 32
	DefaultHeight     = 16
)

type Params struct {
	Width, Height int
	MineCount     int
}

// DifficultyParams maps a difficulty level to board parameters. Explicit
// width/height override the defaults; zero means "use the default". Mine
// count always derives from difficulty density over the chosen area.
func DifficultyParams(difficulty, width, height int) (Params, error) {
	if difficulty < 0 || difficulty > MaxDifficulty {
		return Params{}, ErrInvalidDifficulty
	}
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width <= 1 || height <= 1 {
		return Params{}, ErrInvalidDimensions
	}

	limit := width*height - 9
	if limit < 1 {
		return Params{}, ErrInvalidMineCount
	}

	density := DensityStep * float64(difficulty)
	mineCount := int(density * float64(width*height-1))
	if mineCount < 1 {
		mineCount = 1
	}
	if mineCount > limit {
		mineCount = limit
	}
	return Params{Width: width, Height: height, MineCount: mineCount}, nil
}
