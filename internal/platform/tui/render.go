package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slayin/internal/core"
)

// colorStyles maps the arena palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorBackground:  lipgloss.NewStyle().Foreground(lipgloss.Color("194")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	core.ColorPlayerHurt:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorWeapon:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorEnemy:       lipgloss.NewStyle().Foreground(lipgloss.Color("68")),
	core.ColorFlyingEnemy: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	core.ColorPickup:      lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
