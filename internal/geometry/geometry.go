// Package geometry converts a host surface's pixel size into grid rows and
// columns.
package geometry

import "math"

const (
	DefaultCellWidth  = 14.0
	DefaultCellHeight = 16.0

	MinCellWidth  = 6.0
	MaxCellWidth  = 40.0
	MinCellHeight = 8.0
	MaxCellHeight = 60.0

	MinCols = 10
	MinRows = 6

	// ProbeGlyph is the representative character measured on the surface.
	ProbeGlyph = 'M'
)

// Prober measures the rendered box of a single glyph. Implementations create
// a hidden probe, measure it and discard it; a failed measurement is reported
// as zero.
type Prober interface {
	Probe(glyph rune) (width, height float64)
}

// Measure returns the cell size in pixels. It never fails: unusable
// measurements fall back to the defaults and the result is clamped.
func Measure(p Prober) (width, height float64) {
	width, height = DefaultCellWidth, DefaultCellHeight
	if p != nil {
		width, height = p.Probe(ProbeGlyph)
	}
	if !usable(width) {
		width = DefaultCellWidth
	}
	if !usable(height) {
		height = DefaultCellHeight
	}
	return clamp(width, MinCellWidth, MaxCellWidth), clamp(height, MinCellHeight, MaxCellHeight)
}

// GridSize converts a surface size into columns and rows of cellW x cellH.
func GridSize(surfaceW, surfaceH, cellW, cellH float64) (cols, rows int) {
	cols, rows = MinCols, MinRows
	if usable(surfaceW) && cellW > 0 {
		cols = max(MinCols, int(math.Floor(surfaceW/cellW)))
	}
	if usable(surfaceH) && cellH > 0 {
		rows = max(MinRows, int(math.Floor(surfaceH/cellH)))
	}
	return cols, rows
}

func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
