package aquarium

import (
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aquarium/internal/palette"
	"github.com/san-kum/aquarium/internal/sprite"
)

var epoch = time.UnixMilli(0)

func tinyFish() sprite.Shape { return sprite.Normalize([]string{"><>"}) }

var _ = Describe("Fish", func() {
	var shape sprite.Shape

	BeforeEach(func() {
		shape = tinyFish()
	})

	Context("without a forced direction", func() {
		It("bounces off the right edge and stays on the grid", func() {
			f := &Fish{X: 16.9, Y: 2, Right: shape.Cells, Left: shape.Mirrored().Cells,
				Width: 3, Height: 1, Speed: 0.2, Direction: 1}

			f.Advance(20, 10, 0)
			Expect(f.Direction).To(Equal(-1))
			Expect(f.X).To(Equal(17.0))

			f.Advance(20, 10, 0)
			Expect(f.X).To(BeNumerically(">=", 0))
			Expect(f.X).To(BeNumerically("<=", 17))
		})

		It("bounces off the left edge", func() {
			f := &Fish{X: 0.1, Y: 2, Width: 3, Height: 1, Speed: 0.3, Direction: -1}

			f.Advance(20, 10, 0)
			Expect(f.Direction).To(Equal(1))
			Expect(f.X).To(Equal(0.0))
		})

		It("never leaves the grid over many frames", func() {
			f := &Fish{X: 5, Y: 3, Width: 3, Height: 1, Speed: 0.33, Direction: 1}
			for i := 0; i < 1000; i++ {
				f.Advance(20, 10, float64(i*16))
				Expect(f.X).To(BeNumerically(">=", 0))
				Expect(f.X).To(BeNumerically("<=", 17))
			}
		})
	})

	Context("with a forced direction", func() {
		It("wraps to the left edge once fully past the right edge", func() {
			f := &Fish{X: 9.9, Y: 2, Width: 3, Height: 1, Speed: 0.2, Direction: 1, Forced: true}

			f.Advance(10, 10, 0)
			Expect(f.X).To(Equal(-3.0))
			Expect(f.Direction).To(Equal(1))

			for f.X < 0 {
				f.Advance(10, 10, 0)
			}
			Expect(f.X).To(BeNumerically("<", 1))
		})

		It("keeps swimming through the edge instead of bouncing", func() {
			f := &Fish{X: 7, Y: 2, Width: 3, Height: 1, Speed: 0.2, Direction: 1, Forced: true}

			f.Advance(10, 10, 0)
			Expect(f.Direction).To(Equal(1))
			Expect(f.X).To(BeNumerically("~", 7.2, 1e-9))
		})

		It("wraps leftward swimmers to the right edge", func() {
			f := &Fish{X: -2.9, Y: 2, Width: 3, Height: 1, Speed: 0.2, Direction: -1, Forced: true}

			f.Advance(10, 10, 0)
			Expect(f.X).To(Equal(10.0))
		})
	})

	It("clamps vertical drift inside a one-row margin", func() {
		f := &Fish{X: 2, Y: 0, Width: 3, Height: 2, Speed: 0, Direction: 1}
		f.Advance(20, 10, 0)
		Expect(f.Y).To(Equal(1.0))

		f.Y = 50
		f.Advance(20, 10, 0)
		Expect(f.Y).To(Equal(7.0))
	})

	It("paints the sprite for its heading", func() {
		g := NewGrid(10, 4, "#000")
		f := &Fish{X: 1.7, Y: 1.2, Right: shape.Cells, Left: shape.Mirrored().Cells,
			Width: 3, Height: 1, Color: "#f00", Direction: -1}

		f.Paint(g)
		Expect(g.String()).To(Equal("          \n <><      \n          \n          \n"))
		Expect(g.At(1, 1).Color).To(Equal("#f00"))
	})

	It("drops cells that fall off the grid", func() {
		g := NewGrid(10, 4, "#000")
		f := &Fish{X: -2, Y: 1, Right: shape.Cells, Width: 3, Height: 1, Direction: 1}

		Expect(func() { f.Paint(g) }).NotTo(Panic())
		Expect(g.Ink()).To(Equal(1))
	})
})

var _ = Describe("Oscillation", func() {
	It("sways seaweed half a column either way", func() {
		w := &Seaweed{X: 5, Height: 3, Body: '|', Tip: '/'}
		Expect(w.SwayX(3000 * math.Pi)).To(Equal(4))
		Expect(w.SwayX(1000 * math.Pi)).To(Equal(5))
	})

	It("shifts the sway by the stalk's phase", func() {
		w := &Seaweed{X: 5, Phase: 1}
		ms := 2000 * (1.5*math.Pi - 1)
		Expect(w.SwayX(ms)).To(Equal(4))
	})

	It("drops a stalk swayed off the left edge", func() {
		g := NewGrid(10, 8, "#000")
		w := &Seaweed{X: 0, Height: 4, Body: '|', Tip: '/', Color: "#0f0"}
		w.Paint(g, 3000*math.Pi)
		Expect(g.Ink()).To(Equal(0))
	})

	It("drifts fish vertically by a tenth of a row at peak phase", func() {
		f := &Fish{X: 2, Y: 3, Width: 3, Height: 1, Direction: 1, WavePhase: math.Pi / 2}
		f.Advance(20, 10, 0)
		Expect(f.Y).To(BeNumerically("~", 3.1, 1e-12))
		f = &Fish{X: 2, Y: 3, Width: 3, Height: 1, Direction: 1}
		f.Advance(20, 10, 1500*math.Pi)
		Expect(f.Y).To(BeNumerically("~", 2.9, 1e-12))
	})
})

var _ = Describe("Bubble", func() {
	It("recycles below the grid once above row -2", func() {
		rnd := rand.New(rand.NewSource(3))
		for i := 0; i < 200; i++ {
			b := &Bubble{X: 4, Y: -1.9, Speed: 0.2, Char: 'o'}
			Expect(b.Rise(30, 12, rnd)).To(BeTrue())
			Expect(b.Y).To(BeNumerically(">=", 12))
			Expect(b.Y).To(BeNumerically("<=", 17))
			Expect(b.X).To(BeNumerically(">=", 0))
			Expect(b.X).To(BeNumerically("<", 30))
		}
	})

	It("keeps rising while at or above row -2", func() {
		b := &Bubble{X: 4, Y: 0, Speed: 0.5}
		Expect(b.Rise(30, 12, rand.New(rand.NewSource(1)))).To(BeFalse())
		Expect(b.Y).To(Equal(-0.5))
	})
})

var _ = Describe("Scene", func() {
	var scene *Scene

	BeforeEach(func() {
		scene = NewScene(60, 20, palette.Reef, rand.New(rand.NewSource(11)))
	})

	It("paints later layers over earlier ones", func() {
		scene.Fish = []*Fish{{X: 2, Y: 2, Right: tinyFish().Cells, Width: 3, Height: 1, Color: "#f00", Direction: 1}}
		scene.Bubbles = []Bubble{{X: 3, Y: 2, Char: 'O', Color: "#00f"}}
		scene.Seaweed = []Seaweed{{X: 0, Height: 3, Body: '|', Tip: '/', Color: "#0f0"}}

		scene.Step(epoch)

		Expect(scene.Grid.At(3, 2)).To(Equal(Cell{Char: 'O', Color: "#00f"}))
		Expect(scene.Grid.At(2, 2).Char).To(Equal('>'))
		Expect(scene.Grid.At(0, 19).Color).To(Equal(palette.Reef.Coral))
		Expect(scene.Grid.At(0, 18).Char).To(Equal('|'))
		Expect(scene.Grid.At(0, 17).Char).To(Equal('/'))
	})

	It("places coral on every fifteenth column of the bottom row", func() {
		scene.Fish, scene.Bubbles, scene.Seaweed = nil, nil, nil
		scene.Step(epoch)

		for x := 0; x < scene.Grid.Cols; x++ {
			c := scene.Grid.At(x, scene.Grid.Rows-1)
			if x%15 == 0 {
				Expect(string(coralGlyphs)).To(ContainSubstring(string(c.Char)))
				Expect(c.Color).To(Equal(palette.Reef.Coral))
			} else {
				Expect(c.Char).To(Equal(' '))
			}
		}
	})

	It("resets every cell to the background each frame", func() {
		scene.Step(epoch)
		scene.Fish, scene.Bubbles, scene.Seaweed = nil, nil, nil
		scene.Step(epoch.Add(time.Second))

		Expect(scene.Grid.Ink()).To(Equal(4))
		Expect(scene.Grid.At(5, 5)).To(Equal(Cell{Char: ' ', Color: palette.Reef.Wave}))
	})

	It("keeps every entity inside its allowed zone", func() {
		now := epoch
		for i := 0; i < 500; i++ {
			now = now.Add(16 * time.Millisecond)
			scene.Step(now)
			for _, f := range scene.Fish {
				Expect(f.Y).To(BeNumerically(">=", 1))
				if !f.Forced {
					Expect(f.X).To(BeNumerically(">=", 0))
					Expect(f.X).To(BeNumerically("<=", float64(scene.Grid.Cols-f.Width)))
				}
			}
			for _, b := range scene.Bubbles {
				Expect(b.Y).To(BeNumerically(">=", -2.7))
			}
		}
		Expect(scene.Frames).To(Equal(500))
	})

	It("is deterministic under a fixed seed", func() {
		a := NewScene(60, 20, palette.Reef, rand.New(rand.NewSource(5)))
		b := NewScene(60, 20, palette.Reef, rand.New(rand.NewSource(5)))
		for i := 0; i < 50; i++ {
			now := epoch.Add(time.Duration(i) * 16 * time.Millisecond)
			a.Step(now)
			b.Step(now)
		}
		Expect(a.Grid.Cells).To(Equal(b.Grid.Cells))
	})
})
