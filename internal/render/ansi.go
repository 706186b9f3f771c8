package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/aquarium/internal/aquarium"
)

// ANSI styles runs of equally colored cells with lipgloss for terminals.
type ANSI struct{}

func (ANSI) Encode(g *aquarium.Grid) string {
	if g == nil {
		return ""
	}
	lines := make([]string, 0, g.Rows)
	var run strings.Builder
	for _, row := range g.Cells {
		var line strings.Builder
		color := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, c := range row {
			if c.Color != color {
				flush()
				color = c.Color
			}
			run.WriteRune(c.Char)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
