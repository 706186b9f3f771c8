package render

import (
	"strings"

	"github.com/san-kum/aquarium/internal/aquarium"
)

// HTML writes one inline-colored span per cell, rows separated by '\n'.
// It is a full redraw; the host replaces its content with the result.
type HTML struct{}

func (HTML) Encode(g *aquarium.Grid) string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols*40 + 1))
	for _, row := range g.Cells {
		for _, c := range row {
			b.WriteString(`<span style="color: `)
			b.WriteString(c.Color)
			b.WriteString(`">`)
			b.WriteString(EscapeRune(c.Char))
			b.WriteString(`</span>`)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EscapeRune escapes characters with markup meaning. Sprites contain '<'
// and '>' so every cell goes through here.
func EscapeRune(ch rune) string {
	switch ch {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	}
	return string(ch)
}
