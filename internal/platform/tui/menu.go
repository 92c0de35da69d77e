package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// menuItems are the selectable rows, in display order.
var menuItems = []struct {
	choice MenuChoice
	label  string
}{
	{MenuPlay, "Play"},
	{MenuScores, "Run history"},
	{MenuQuit, "Quit"},
}

// Presets cycled by left/right on the title menu.
var menuPresets = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuKeyMap defines the key bindings for the title menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down", "move")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("left", "difficulty")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("right", "difficulty")),
		Select: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("172"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor int
	preset int
	keys   MenuKeyMap
	config core.RuntimeConfig
	best   int
	choice MenuChoice
}

// NewMenuModel creates a title menu. best is shown under the title when positive.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) MenuModel {
	m := MenuModel{keys: DefaultMenuKeyMap(), config: cfg, best: best}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = MenuQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Prev):
			m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)
		case key.Matches(msg, m.keys.Next):
			m.preset = (m.preset + 1) % len(menuPresets)
		case key.Matches(msg, m.keys.Select):
			m.choice = menuItems[m.cursor].choice
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S L A Y I N"), width))
	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best score %d", m.best)), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.label)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< Difficulty: %s >", m.Preset()), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Move  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"), width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what was picked, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu shows the title menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, preset, best), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Preset: preset, Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Preset: preset, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Preset: m.Preset(), Config: m.Config()}, nil
}
