package metrics

import (
	"math"

	"github.com/san-kum/aquarium/internal/aquarium"
)

// VisibleFish is the mean number of fish whose whole sprite is on the grid.
type VisibleFish struct {
	name    string
	samples int
	total   int
}

func NewVisibleFish() *VisibleFish {
	return &VisibleFish{name: "visible_fish"}
}

func (v *VisibleFish) Name() string { return v.name }

func (v *VisibleFish) Observe(s *aquarium.Scene) {
	v.samples++
	for _, f := range s.Fish {
		x := int(math.Floor(f.X))
		y := int(math.Floor(f.Y))
		if s.Grid.In(x, y) && s.Grid.In(x+f.Width-1, y+f.Height-1) {
			v.total++
		}
	}
}

func (v *VisibleFish) Value() float64 {
	if v.samples == 0 {
		return 0
	}
	return float64(v.total) / float64(v.samples)
}

func (v *VisibleFish) Reset() {
	v.samples = 0
	v.total = 0
}

// Recycles counts bubbles sent back below the grid.
type Recycles struct {
	name  string
	count int
}

func NewRecycles() *Recycles {
	return &Recycles{name: "bubble_recycles"}
}

func (r *Recycles) Name() string { return r.name }

func (r *Recycles) Observe(s *aquarium.Scene) { r.count += s.Recycled }

func (r *Recycles) Value() float64 { return float64(r.count) }

func (r *Recycles) Reset() { r.count = 0 }
