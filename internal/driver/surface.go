package driver

import "github.com/san-kum/aquarium/internal/geometry"

// Surface is the host display the aquarium paints into.
type Surface interface {
	geometry.Prober
	// Bounds returns the surface size in pixels.
	Bounds() (width, height float64)
	// Replace swaps the visible content for markup.
	Replace(markup string)
}

const (
	// monospace advance width as a fraction of the font size
	advanceRatio      = 0.6
	defaultLineHeight = 1.2
)

// PageSurface is an offline page element: it has a pixel size, a font, and
// keeps the last markup it was given.
type PageSurface struct {
	Width, Height float64
	FontSize      float64
	LineHeight    float64

	Markup string
	Frames int
}

func (p *PageSurface) Bounds() (float64, float64) { return p.Width, p.Height }

// Probe estimates the glyph box from the font metrics. A zero font size
// measures as zero, which the geometry prober treats as a failed probe.
func (p *PageSurface) Probe(rune) (float64, float64) {
	lh := p.LineHeight
	if lh <= 0 {
		lh = defaultLineHeight
	}
	return p.FontSize * advanceRatio, p.FontSize * lh
}

func (p *PageSurface) Replace(markup string) {
	p.Markup = markup
	p.Frames++
}
