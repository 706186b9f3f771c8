// Package render serializes an aquarium grid for a display surface.
package render

import (
	"strings"

	"github.com/san-kum/aquarium/internal/aquarium"
)

// Encoder turns a composited grid into the surface's native markup.
type Encoder interface {
	Encode(g *aquarium.Grid) string
}

// Text writes the bare characters, one line per row.
type Text struct{}

func (Text) Encode(g *aquarium.Grid) string {
	if g == nil {
		return ""
	}
	return g.String()
}

// ByName returns the encoder for a format name.
func ByName(name string) (Encoder, bool) {
	switch strings.ToLower(name) {
	case "html":
		return HTML{}, true
	case "ansi":
		return ANSI{}, true
	case "svg":
		return SVG{CellWidth: 10, CellHeight: 20}, true
	case "text", "txt":
		return Text{}, true
	}
	return nil, false
}
