package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

// colorStyles maps the palette to 256-colour lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorChocolate: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorIndigo:    lipgloss.NewStyle().Foreground(lipgloss.Color("55")),
	core.ColorViolet:    lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
}

// Shared text styles of the list views.
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("220"))

var selectedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("55"))

var dimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245"))

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("94")).
	Padding(0, 2)

// RenderScreen converts a Screen buffer to a styled string. Adjacent cells
// of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text, which may span several lines, within width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
