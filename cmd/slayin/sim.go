package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/eventlog"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

var (
	flagSimDuration float64
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot session",
	Long: `Play one session with the built-in autopilot and no display.

Game time is fast-forwarded one tick per loop iteration, so a long session
finishes in well under a second. The session ends when the bot dies or
--duration game seconds have passed.

Examples:
  slayin sim --seed 42
  slayin sim --duration 120 --difficulty hard --save
  slayin sim --log - --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimDuration, "duration", 300, "Stop after this many seconds of game time (0 = until death)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the history database")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadArena()

	logger, closer := openLogger("slayin-sim")
	defer closer.Close()

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = 60
	}

	clock := &slayin.ManualClock{}
	session := slayin.NewSession(cfg, clock, slayin.NewRand(flagSeed), eventlog.NewSink(logger))
	loop := slayin.NewLoop(session, clock, tickRate)
	host := slayin.NewHeadless(clock, tickRate, flagSimDuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err := slayin.Run(ctx, loop, host)
	if err != nil && !errors.Is(err, context.Canceled) {
		fail("simulation: %v", err)
	}

	elapsed := session.Elapsed()
	fmt.Printf("Bot score %d, survived %.1fs of game time (%d ticks, %d spawns) in %s\n",
		session.Score, elapsed, session.Ticks(), session.Spawner().Events(),
		time.Since(start).Round(time.Millisecond))

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	duration := time.Duration(elapsed * float64(time.Second))
	if _, err := store.SaveRun(slayin.GameID, "autopilot", session.Score, duration); err != nil {
		fail("saving run: %v", err)
	}
	logger.Info("run saved", "score", session.Score, "duration", duration)
}
