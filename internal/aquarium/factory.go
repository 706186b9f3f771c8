package aquarium

import (
	"math"

	"github.com/san-kum/aquarium/internal/sprite"
)

const (
	minFish = 6
	maxFish = 14

	fishAreaPerFish     = 650
	bubbleAreaPerBubble = 800
	colsPerSeaweed      = 8
)

var seaweedPatterns = []string{"|/", "\\|/", "|"}

// FishCount caps fish so large multi-line sprites do not crowd the grid.
func FishCount(cols, rows int) int {
	return max(minFish, min(maxFish, cols*rows/fishAreaPerFish))
}

func BubbleCount(cols, rows int) int { return cols * rows / bubbleAreaPerBubble }

func SeaweedCount(cols int) int { return cols / colsPerSeaweed }

// SpawnFish replaces the fish population.
func (s *Scene) SpawnFish() error {
	if len(s.Catalog) == 0 {
		s.Fish = nil
		return ErrEmptyCatalog
	}
	cols, rows := s.Grid.Cols, s.Grid.Rows
	n := FishCount(cols, rows)
	s.Fish = make([]*Fish, 0, n)
	for i := 0; i < n; i++ {
		s.Fish = append(s.Fish, s.newFish(sprite.Pick(s.Catalog, s.rnd)))
	}
	return nil
}

func (s *Scene) newFish(def sprite.Definition) *Fish {
	cols, rows := s.Grid.Cols, s.Grid.Rows
	right, left := def.Shapes()

	speed := s.rnd.Float64()*0.25 + 0.08
	direction := def.ForceDirection
	if !def.Forced() {
		direction = -1
		if s.rnd.Float64() > 0.5 {
			direction = 1
		}
	}

	return &Fish{
		Name:      def.Name,
		X:         s.rnd.Float64() * float64(max(1, cols-max(1, right.Width))),
		Y:         1 + s.rnd.Float64()*float64(max(1, rows-right.Height-2)),
		Right:     right.Cells,
		Left:      left.Cells,
		Width:     right.Width,
		Height:    right.Height,
		Color:     def.Color,
		Speed:     speed,
		Direction: direction,
		Forced:    def.Forced(),
		WavePhase: s.rnd.Float64() * math.Pi * 2,
	}
}

// SpawnBubbles replaces the bubbles. They start below the visible grid.
func (s *Scene) SpawnBubbles() {
	cols, rows := s.Grid.Cols, s.Grid.Rows
	n := BubbleCount(cols, rows)
	s.Bubbles = make([]Bubble, 0, n)
	for i := 0; i < n; i++ {
		b := Bubble{
			X:     s.rnd.Float64() * float64(cols),
			Y:     float64(rows) + s.rnd.Float64()*10,
			Speed: s.rnd.Float64()*0.5 + 0.2,
			Char:  'o',
			Color: s.Palette.Bubble,
		}
		if s.rnd.Float64() > 0.5 {
			b.Char = 'O'
		}
		s.Bubbles = append(s.Bubbles, b)
	}
}

// SpawnSeaweed replaces the seaweed.
func (s *Scene) SpawnSeaweed() {
	cols := s.Grid.Cols
	n := SeaweedCount(cols)
	s.Seaweed = make([]Seaweed, 0, n)
	for i := 0; i < n; i++ {
		x := s.rnd.Intn(cols)
		height := s.rnd.Intn(5) + 3
		pattern := []rune(seaweedPatterns[s.rnd.Intn(len(seaweedPatterns))])
		s.Seaweed = append(s.Seaweed, Seaweed{
			X:      x,
			Height: height,
			Body:   '|',
			Tip:    pattern[len(pattern)-1],
			Color:  s.Palette.Seaweed,
			Phase:  s.rnd.Intn(3),
		})
	}
}
