package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/eventlog"
	"github.com/vovakirdan/tui-slayin/internal/platform/gui"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

var (
	flagSound bool
	flagScale int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the arena in a desktop window at its native 640x320 resolution,
scaled up by --scale. Controls match the terminal version.

Examples:
  slayin window
  slayin window --sound --scale 3`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Play tones for hits, medkits and kills")
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	loadArena()

	logger, closer := openLogger("slayin-window")
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	game := slayin.New()
	sinks := slayin.Fanout{eventlog.NewSink(logger)}
	if flagSound {
		tones := gui.NewToneSink()
		if err := tones.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			logger.Warn("sound disabled", "error", err)
		} else {
			defer tones.Close()
			sinks = append(sinks, tones)
		}
	}
	game.SetEventSink(sinks)

	w := gui.NewWindow(game, core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed})
	w.OnGameOver = func(st core.GameState) {
		if store == nil {
			return
		}
		if _, err := store.SaveRun(slayin.GameID, "", st.Score, st.Elapsed); err != nil {
			logger.Error("could not save run", "error", err)
		}
	}

	if err := gui.Run(w, flagScale); err != nil {
		fail("%v", err)
	}
}
