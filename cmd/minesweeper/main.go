package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-tui/game"
	"github.com/vancomm/minesweeper-tui/session"
	"github.com/vancomm/minesweeper-tui/solver"
	"github.com/vancomm/minesweeper-tui/tui"
)

var log = logrus.New()

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// initLogging sends all logs to a rotating file. The TUI owns the
// terminal, so nothing may write to stdout or stderr while it runs.
func initLogging(debug bool) error {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "minesweeper.log",
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     7, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.SetOutput(io.Discard)
	log.SetLevel(level)
	log.AddHook(hook)
	return nil
}

func main() {
	var (
		difficulty = flag.Int("difficulty", game.DefaultDifficulty,
			fmt.Sprintf("mine density, 0..%d", game.MaxDifficulty))
		width  = flag.Int("width", 0, "board width (default 32)")
		height = flag.Int("height", 0, "board height (default 16)")
		auto   = flag.Bool("auto", false, "let the AI play")
		games  = flag.Int("games", 0, "play N games headless and report AI win rate")
		debug  = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	if err := initLogging(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
	session.SetLogger(log)

	params, err := game.DifficultyParams(*difficulty, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	rnd := createRand()

	if *games > 0 {
		stats := session.RunGames(*games, params, solver.New(), rnd)
		fmt.Printf("Victories: %d\tDefeats: %d\t%% Wins: %.2f\n",
			stats.Won, stats.Lost, stats.WinRate()*100)
		return
	}

	program := tea.NewProgram(tui.New(params, rnd, *auto), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.WithField("error", err).Error("tui crashed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
