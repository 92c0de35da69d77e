package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/eventlog"
	"github.com/vovakirdan/tui-slayin/internal/platform/tui"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, then play or browse the run history.
After a game ends, you return to the menu to play again.

Examples:
  slayin menu
  slayin menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	loadArena()

	logger, closer := openLogger("slayin")
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

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
	preset := config.ParsePreset(flagDifficulty)

	for {
		best := 0
		if store != nil {
			best, _ = store.HighScore(slayin.GameID)
		}

		result, err := tui.RunMenu(cfg, preset, best)
		if err != nil {
			fail("%v", err)
		}
		cfg = result.Config
		preset = result.Preset

		switch result.Choice {
		case tui.MenuScores:
			if store == nil {
				continue
			}
			if err := tui.RunScoreboard(store, slayin.GameID, "Slayin", cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		case tui.MenuPlay:
		default:
			return
		}

		slayin.SetDifficultyPreset(string(preset))
		game := slayin.New()
		game.SetEventSink(eventlog.NewSink(logger))

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", preset)
		if _, err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
