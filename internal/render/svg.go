package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/aquarium/internal/aquarium"
)

// SVG draws every ink cell as a <text> element over a background rect.
type SVG struct {
	CellWidth  float64
	CellHeight float64
	Background string
}

func (s SVG) Encode(g *aquarium.Grid) string {
	if g == nil {
		return ""
	}
	cw, ch := s.CellWidth, s.CellHeight
	if cw <= 0 {
		cw = 10
	}
	if ch <= 0 {
		ch = 20
	}
	bg := s.Background
	if bg == "" {
		bg = "#0a0a0a"
	}

	width := float64(g.Cols) * cw
	height := float64(g.Rows) * ch

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.0f">
`, width, height, width, height, bg, ch*0.8))

	for y, row := range g.Cells {
		for x, c := range row {
			if c.Char == ' ' {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, float64(x)*cw, float64(y+1)*ch-ch*0.2, c.Color, EscapeRune(c.Char)))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
