package aquarium

import (
	"time"

	"github.com/san-kum/aquarium/internal/palette"
	"github.com/san-kum/aquarium/internal/sprite"
)

const coralSpacing = 15

var coralGlyphs = []rune{',', '.', '`', '\''}

// Scene is the simulation context: grid, entities and random source.
type Scene struct {
	Grid    *Grid
	Palette palette.Palette
	Catalog []sprite.Definition
	Fish    []*Fish
	Bubbles []Bubble
	Seaweed []Seaweed

	// Frames counts completed steps; Recycled counts bubbles recycled during
	// the last step.
	Frames   int
	Recycled int

	rnd Rand
}

// NewScene builds a populated scene using the default catalog for pal.
func NewScene(cols, rows int, pal palette.Palette, rnd Rand) *Scene {
	s, _ := NewSceneWithCatalog(cols, rows, pal, sprite.Catalog(pal), rnd)
	return s
}

// NewSceneWithCatalog builds a populated scene spawning fish from defs.
// The scene is usable even when the catalog is empty; it just has no fish.
func NewSceneWithCatalog(cols, rows int, pal palette.Palette, defs []sprite.Definition, rnd Rand) (*Scene, error) {
	s := &Scene{
		Grid:    NewGrid(cols, rows, pal.Wave),
		Palette: pal,
		Catalog: defs,
		rnd:     rnd,
	}
	return s, s.Populate()
}

// Populate discards every entity and spawns a fresh population.
func (s *Scene) Populate() error {
	s.SpawnSeaweed()
	err := s.SpawnFish()
	s.SpawnBubbles()
	return err
}

// Step composites one frame at wall-clock time now. Layers are painted in
// order seaweed, coral, fish, bubbles; later layers win.
func (s *Scene) Step(now time.Time) {
	ms := float64(now.UnixMilli())

	s.Grid.Reset(s.Palette.Wave)
	s.paintSeaweed(ms)
	s.paintCoral()
	s.paintFish(ms)
	s.paintBubbles()
	s.Frames++
}

func (s *Scene) paintSeaweed(ms float64) {
	for i := range s.Seaweed {
		s.Seaweed[i].Paint(s.Grid, ms)
	}
}

// paintCoral re-rolls the glyphs every frame, so coral flickers.
func (s *Scene) paintCoral() {
	y := s.Grid.Rows - 1
	for x := 0; x < s.Grid.Cols; x += coralSpacing {
		s.Grid.Set(x, y, coralGlyphs[s.rnd.Intn(len(coralGlyphs))], s.Palette.Coral)
	}
}

func (s *Scene) paintFish(ms float64) {
	cols, rows := s.Grid.Cols, s.Grid.Rows
	for _, f := range s.Fish {
		f.Advance(cols, rows, ms)
		f.Paint(s.Grid)
	}
}

func (s *Scene) paintBubbles() {
	cols, rows := s.Grid.Cols, s.Grid.Rows
	s.Recycled = 0
	for i := range s.Bubbles {
		b := &s.Bubbles[i]
		if b.Rise(cols, rows, s.rnd) {
			s.Recycled++
		}
		b.Paint(s.Grid)
	}
}
