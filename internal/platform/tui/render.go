package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenRenderer turns screen buffers into styled strings for one output.
// SSH sessions get their own renderer so color support follows the client.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	footer lipgloss.Style
}

// NewScreenRenderer builds styles on r, or on the default renderer if r is nil.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	return &ScreenRenderer{
		styles: styles,
		footer: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := sr.styles[startColor]
			if !ok {
				style = sr.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Footer renders a dimmed status line.
func (sr *ScreenRenderer) Footer(text string) string {
	return sr.footer.Render(text)
}
