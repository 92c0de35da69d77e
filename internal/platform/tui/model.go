package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/registry"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

// Options configure a terminal game model beyond the game itself.
type Options struct {
	Store  *storage.Store // Optional run history
	Logger *log.Logger    // Optional; nil discards
	Player string         // Recorded with each run; SSH user or empty
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current session has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// arenaRows leaves the last terminal row for the help footer.
func arenaRows(height int) int {
	return max(height-1, 1)
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.finish(core.ActionQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionNone:
		return m, nil

	default:
		m.inputFrame.Set(action)
		return m, nil
	}
}

// handleTick feeds the buffered input to the game and records the run once
// it is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.saveRun()
	}
	return m, tickCmd(m.config.TickRate)
}

// finish ends a running session with the given action and records it.
func (m *Model) finish(action core.Action) {
	if !m.gameState.GameOver {
		in := core.NewInputFrame()
		in.Set(action)
		m.gameState = m.game.Step(in).State
	}
	m.saveRun()
}

// restart records the current session, even if unfinished, and starts a
// new one.
func (m *Model) restart() {
	m.finish(core.ActionQuit)
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.inputFrame.Clear()
	m.opts.Logger.Info("restart")
}

func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	st := m.gameState
	m.opts.Logger.Info("run over", "score", st.Score, "survived", st.Elapsed.Round(time.Millisecond))
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRun(m.game.ID(), m.opts.Player, st.Score, st.Elapsed); err != nil {
		m.opts.Logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.slayin/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".slayin", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the arena and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays the game in the current terminal until the user quits and
// returns the state of the last session.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return core.GameState{}, nil
}
