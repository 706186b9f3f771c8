package aquarium

import (
	"math"

	"github.com/san-kum/aquarium/internal/sprite"
)

// Fish is a swimming sprite instance.
type Fish struct {
	Name      string
	X, Y      float64
	Right     []sprite.InkCell
	Left      []sprite.InkCell
	Width     int
	Height    int
	Color     string
	Speed     float64
	Direction int
	// Forced fish keep their direction and wrap around instead of bouncing.
	Forced    bool
	WavePhase float64
}

// Cells returns the ink cells for the current heading.
func (f *Fish) Cells() []sprite.InkCell {
	if f.Direction > 0 {
		return f.Right
	}
	return f.Left
}

// Advance moves the fish one tick. ms is the wall-clock phase in milliseconds.
func (f *Fish) Advance(cols, rows int, ms float64) {
	f.X += f.Speed * float64(f.Direction)

	right := float64(cols - f.Width)
	switch {
	case f.Forced:
		if f.Direction > 0 && f.X > float64(cols) {
			f.X = -float64(f.Width)
		} else if f.Direction < 0 && f.X < -float64(f.Width) {
			f.X = float64(cols)
		}
	case f.X < 0 || f.X > right:
		f.Direction = -f.Direction
		f.X = math.Max(0, math.Min(right, f.X))
	}

	f.Y += math.Sin(ms/1000+f.WavePhase) * 0.1
	f.Y = math.Max(1, math.Min(float64(rows-f.Height-1), f.Y))
}

// Paint draws the fish onto g, dropping cells that fall off the grid.
func (f *Fish) Paint(g *Grid) {
	x := int(math.Floor(f.X))
	y := int(math.Floor(f.Y))
	for _, c := range f.Cells() {
		g.Set(x+c.X, y+c.Y, c.Char, f.Color)
	}
}

// Bubble rises from below the grid and is recycled once it leaves the top.
type Bubble struct {
	X, Y  float64
	Speed float64
	Char  rune
	Color string
}

// Rise moves the bubble up one tick and reports whether it was recycled.
func (b *Bubble) Rise(cols, rows int, rnd Rand) bool {
	b.Y -= b.Speed
	if b.Y >= -2 {
		return false
	}
	b.Y = float64(rows) + rnd.Float64()*5
	b.X = rnd.Float64() * float64(cols)
	return true
}

func (b *Bubble) Paint(g *Grid) {
	g.Set(int(math.Floor(b.X)), int(math.Floor(b.Y)), b.Char, b.Color)
}

// Seaweed is a stalk anchored to the bottom row that sways with time.
type Seaweed struct {
	X      int
	Height int
	Body   rune
	Tip    rune
	Color  string
	Phase  int
}

// SwayX returns the column of the stalk at wall-clock phase ms.
func (s *Seaweed) SwayX(ms float64) int {
	return int(math.Floor(float64(s.X) + math.Sin(ms/2000+float64(s.Phase))*0.5))
}

func (s *Seaweed) Paint(g *Grid, ms float64) {
	x := s.SwayX(ms)
	for i := 0; i < s.Height; i++ {
		ch := s.Body
		if i == s.Height-1 {
			ch = s.Tip
		}
		g.Set(x, g.Rows-1-i, ch, s.Color)
	}
}
