// Package tui runs the arena in a terminal with Bubble Tea, locally or over SSH.
// It handles input mapping, frame pacing, and run history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the game for a simulation tick.
type TickMsg time.Time

// framesPerTick is how many frames the host sends per simulation tick. The
// game's own tick gate decides when a tick is due.
const framesPerTick = 2

// tickCmd returns a Bubble Tea command that sends frame messages for the
// given simulation rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate*framesPerTick)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
