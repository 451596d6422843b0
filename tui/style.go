package tui

import "github.com/charmbracelet/lipgloss"

// Cell glyphs follow the classic curses look.
const (
	glyphHidden = "·"
	glyphFlag   = "†"
	glyphMine   = "¤"
	glyphEmpty  = " "
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	flagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	mineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220"))

	victoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	defeatStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// One style per adjacency count, roughly the classic palette.
	numberStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("20")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)
