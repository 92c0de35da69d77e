// Package eventlog turns session notifications into structured log lines.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
)

// DefaultLogPath is where the terminal host writes its log; stderr belongs
// to the alt screen while a game is running.
const DefaultLogPath = "~/.slayin/slayin.log"

// NewLogger creates a timestamped logger. An empty level means info.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("eventlog: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating it and its directory.
// "-" selects stderr.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("eventlog: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("eventlog: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eventlog: cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Sink logs every session notification.
type Sink struct {
	logger *log.Logger
}

var (
	_ slayin.EventSink      = (*Sink)(nil)
	_ slayin.ConfigReporter = (*Sink)(nil)
)

// NewSink logs through logger.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{logger: logger}
}

func (s *Sink) Hit(remainingHealth int) {
	s.logger.Info("hit", "health", remainingHealth)
}

func (s *Sink) Healed(newHealth int) {
	s.logger.Info("medkit", "health", newHealth)
}

func (s *Sink) Slain(newScore int) {
	s.logger.Debug("enemy slain", "score", newScore)
}

func (s *Sink) SessionEnded(elapsedSeconds float64, finalScore int) {
	s.logger.Info("session ended",
		"score", finalScore,
		"survived", time.Duration(elapsedSeconds*float64(time.Second)).Round(time.Millisecond),
	)
}

func (s *Sink) ConfigFailed(err error) {
	s.logger.Warn("config not loaded", "error", err)
}
