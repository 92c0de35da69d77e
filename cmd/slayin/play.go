package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/eventlog"
	"github.com/vovakirdan/tui-slayin/internal/platform/tui"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Walk (direction sticks until changed)
  Up/W/Space       - Jump
  P                - Pause
  R                - Restart
  Esc/Q/Ctrl+C     - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Slower spawns, more health
  normal - Spawns speed up every 10 kills
  hard   - Fast spawns, less health
  fixed  - Spawn rate never changes

Examples:
  slayin play
  slayin play --difficulty easy
  slayin play --config ./arena.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	loadArena()

	logger, closer := openLogger("slayin")
	defer closer.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "error", err)
		store = nil
	}

	game := slayin.New()
	game.SetEventSink(eventlog.NewSink(logger))

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", flagDifficulty)
	last, runErr := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}

	fmt.Printf("Score %d, survived %s\n", last.Score, tui.FormatDuration(last.Elapsed))
}
