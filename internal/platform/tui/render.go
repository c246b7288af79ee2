package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

// styles caches one lipgloss style per color in use.
var styles sync.Map // core.Color -> lipgloss.Style

// styleFor returns the foreground style for c.
func styleFor(c core.Color) lipgloss.Style {
	if v, ok := styles.Load(c); ok {
		return v.(lipgloss.Style)
	}
	style := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	styles.Store(c, style)
	return style
}

// Paint renders text in color c.
func Paint(text string, c core.Color) string {
	if c == core.ColorDefault {
		return text
	}
	return styleFor(c).Render(text)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each same-color run is styled once to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, span := range s.Spans(y) {
			sb.WriteString(Paint(span.Text, span.Color))
		}
	}
	return sb.String()
}
