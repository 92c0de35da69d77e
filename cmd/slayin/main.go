// slayin is a side-view arena brawler for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	slayin                  - Play in the terminal
//	slayin play             - Play in the terminal
//	slayin window           - Play in a desktop window
//	slayin serve            - Start SSH server for remote play
//	slayin scores           - Show run history
//	slayin sim              - Run a headless bot session
//	slayin config           - Print the effective arena config
//	slayin menu             - Title menu with difficulty picker
//	slayin list             - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.slayin/slayin.db)
//	--config <path>       - Custom arena config YAML
//	--difficulty <name>   - easy, normal, hard, fixed
//	--log <path>          - Log file, "-" for stderr (default: ~/.slayin/slayin.log)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
	"github.com/vovakirdan/tui-slayin/internal/platform/eventlog"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slayin",
	Short: "Slayin - slash your way through an endless arena",
	Long: `Slayin is a side-view arena brawler. Walk, jump and swing your sword at
ground and flying enemies, grab falling medkits, and survive as long as you can.
The spawn rate rises with your score.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View run history
  sim      - Run a headless bot session
  config   - Print the effective arena config
  menu     - Title menu with difficulty picker

Examples:
  slayin
  slayin play --difficulty hard
  slayin window --sound
  slayin serve --ssh :2222
  slayin scores --plain`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slayin/slayin.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", eventlog.DefaultLogPath, `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(menuCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openLogger opens the log destination chosen by --log and --log-level.
func openLogger(prefix string) (*log.Logger, io.Closer) {
	w, err := eventlog.OpenFile(flagLogPath)
	if err != nil {
		fail("%v", err)
	}
	logger, err := eventlog.NewLogger(w, prefix, flagLogLevel)
	if err != nil {
		w.Close()
		fail("%v", err)
	}
	return logger, w
}

// loadArena validates --config and --difficulty, hands them to the game
// package, and returns the effective arena config.
func loadArena() config.SlayinConfig {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	slayin.SetConfigPath(flagConfig)
	slayin.SetDifficultyPreset(flagDifficulty)
	return cfg
}
