package aquarium

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/san-kum/aquarium/internal/palette"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		cols, rows           int
		fish, bubbles, weeds int
	}{
		{10, 6, 6, 0, 1},
		{80, 24, 6, 2, 10},
		{120, 60, 11, 9, 15},
		{300, 100, 14, 37, 37},
	}
	for _, tt := range tests {
		if got := FishCount(tt.cols, tt.rows); got != tt.fish {
			t.Errorf("%dx%d: expected %d fish, got %d", tt.cols, tt.rows, tt.fish, got)
		}
		if got := BubbleCount(tt.cols, tt.rows); got != tt.bubbles {
			t.Errorf("%dx%d: expected %d bubbles, got %d", tt.cols, tt.rows, tt.bubbles, got)
		}
		if got := SeaweedCount(tt.cols); got != tt.weeds {
			t.Errorf("%d cols: expected %d seaweed, got %d", tt.cols, tt.weeds, got)
		}
	}
}

func TestNewScenePopulation(t *testing.T) {
	s := NewScene(120, 60, palette.Reef, rand.New(rand.NewSource(1)))

	if len(s.Fish) != 11 || len(s.Bubbles) != 9 || len(s.Seaweed) != 15 {
		t.Fatalf("unexpected population: %d fish, %d bubbles, %d seaweed",
			len(s.Fish), len(s.Bubbles), len(s.Seaweed))
	}

	for _, f := range s.Fish {
		if f.Speed < 0.08 || f.Speed >= 0.33 {
			t.Errorf("%s: speed %f out of range", f.Name, f.Speed)
		}
		if f.Direction != 1 && f.Direction != -1 {
			t.Errorf("%s: bad direction %d", f.Name, f.Direction)
		}
		if f.Forced && f.Direction != 1 {
			t.Errorf("%s: forced fish should swim right", f.Name)
		}
		if f.X < 0 || f.X > float64(120-f.Width) {
			t.Errorf("%s: x %f off grid", f.Name, f.X)
		}
		if f.Y < 1 || f.Y > float64(60-f.Height-1) {
			t.Errorf("%s: y %f off grid", f.Name, f.Y)
		}
		if len(f.Right) != len(f.Left) {
			t.Errorf("%s: variants differ in size", f.Name)
		}
	}

	for _, b := range s.Bubbles {
		if b.Y < 60 || b.Y >= 70 {
			t.Errorf("bubble y %f should start below the grid", b.Y)
		}
		if b.Char != 'o' && b.Char != 'O' {
			t.Errorf("bad bubble glyph %q", b.Char)
		}
		if b.Speed < 0.2 || b.Speed >= 0.7 {
			t.Errorf("bubble speed %f out of range", b.Speed)
		}
	}

	for _, w := range s.Seaweed {
		if w.Height < 3 || w.Height > 7 {
			t.Errorf("seaweed height %d out of range", w.Height)
		}
		if w.Phase < 0 || w.Phase > 2 {
			t.Errorf("seaweed phase %d out of range", w.Phase)
		}
		if w.Tip != '/' && w.Tip != '|' {
			t.Errorf("unexpected seaweed tip %q", w.Tip)
		}
		if w.X < 0 || w.X >= 120 {
			t.Errorf("seaweed x %d off grid", w.X)
		}
	}
}

func TestPopulateReplaces(t *testing.T) {
	s := NewScene(80, 24, palette.Reef, rand.New(rand.NewSource(2)))
	first := s.Fish[0]

	if err := s.Populate(); err != nil {
		t.Fatalf("populate failed: %v", err)
	}
	if len(s.Fish) != FishCount(80, 24) {
		t.Errorf("expected %d fish after repopulating, got %d", FishCount(80, 24), len(s.Fish))
	}
	for _, f := range s.Fish {
		if f == first {
			t.Error("expected old fish to be discarded")
		}
	}
}

func TestEmptyCatalog(t *testing.T) {
	s, err := NewSceneWithCatalog(40, 10, palette.Reef, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if len(s.Fish) != 0 {
		t.Error("expected no fish")
	}
	s.Step(epoch)
}

func TestGridSetBounds(t *testing.T) {
	g := NewGrid(4, 3, "#000")
	if g.Set(-1, 0, 'x', "") || g.Set(4, 0, 'x', "") || g.Set(0, 3, 'x', "") {
		t.Error("expected off-grid writes to be dropped")
	}
	if !g.Set(3, 2, 'x', "#fff") {
		t.Error("expected on-grid write to succeed")
	}
	if g.Ink() != 1 {
		t.Errorf("expected 1 ink cell, got %d", g.Ink())
	}
	if (g.At(9, 9) != Cell{}) {
		t.Error("expected zero cell off grid")
	}
}
