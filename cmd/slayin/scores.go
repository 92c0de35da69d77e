package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/tui"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display recorded runs: best runs by score and the most recent ones.

In a terminal this opens an interactive table (Tab switches between best and
recent runs). Use --plain for text output.

Examples:
  slayin scores
  slayin scores --plain --limit 5
  slayin scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(slayin.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, slayin.GameID, "Slayin", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(slayin.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Slayin")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slayin play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "Rank", "Score", "Survived", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "----", "-----", "--------", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-9s  %-12s  %s\n",
			i+1, r.Score, tui.FormatDuration(r.Duration), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(slayin.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest: %s\n",
		stats.Runs, stats.BestScore, stats.AvgScore, tui.FormatDuration(stats.LongestRun))
}
