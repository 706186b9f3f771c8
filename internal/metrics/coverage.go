package metrics

import "github.com/san-kum/aquarium/internal/aquarium"

// Coverage is the mean fraction of grid cells carrying ink.
type Coverage struct {
	name    string
	samples int
	total   float64
	series  []float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(s *aquarium.Scene) {
	g := s.Grid
	if g.Cols == 0 || g.Rows == 0 {
		return
	}
	frac := float64(g.Ink()) / float64(g.Cols*g.Rows)
	c.total += frac
	c.samples++
	c.series = append(c.series, frac)
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

// Series returns the per-frame coverage.
func (c *Coverage) Series() []float64 { return c.series }

func (c *Coverage) Reset() {
	c.samples = 0
	c.total = 0
	c.series = c.series[:0]
}
