package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyParams(t *testing.T) {
	testCases := []struct {
		name       string
		difficulty int
		w, h       int
		want       Params
	}{
		{"zero difficulty still plants a mine", 0, 0, 0,
			Params{Width: 32, Height: 16, MineCount: 1}},
		{"default difficulty on default board", 3, 0, 0,
			Params{Width: 32, Height: 16, MineCount: 38}},
		{"explicit dims override defaults", 3, 10, 10,
			Params{Width: 10, Height: 10, MineCount: 7}},
		{"max difficulty clamps to safe block", 40, 10, 10,
			Params{Width: 10, Height: 10, MineCount: 91}},
		{"tiny board keeps at least one mine", 0, 2, 5,
			Params{Width: 2, Height: 5, MineCount: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DifficultyParams(tc.difficulty, tc.w, tc.h)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDifficultyParamsErrors(t *testing.T) {
	testCases := []struct {
		name       string
		difficulty int
		w, h       int
		want       error
	}{
		{"negative difficulty", -1, 0, 0, ErrInvalidDifficulty},
		{"difficulty past max", 41, 0, 0, ErrInvalidDifficulty},
		{"degenerate width", 3, 1, 10, ErrInvalidDimensions},
		{"degenerate height", 3, 10, 1, ErrInvalidDimensions},
		{"board too small for safe block", 3, 3, 3, ErrInvalidMineCount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DifficultyParams(tc.difficulty, tc.w, tc.h)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
