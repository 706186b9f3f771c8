package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/san-kum/aquarium/internal/aquarium"
	"github.com/san-kum/aquarium/internal/geometry"
	"github.com/san-kum/aquarium/internal/palette"
	"github.com/san-kum/aquarium/internal/render"
	"github.com/san-kum/aquarium/internal/sprite"
)

// Observer is notified after every rendered frame.
type Observer interface {
	OnFrame(s *aquarium.Scene)
}

// Driver owns the scene and connects it to a surface.
type Driver struct {
	surface   Surface
	palette   palette.Palette
	catalog   []sprite.Definition
	rnd       aquarium.Rand
	encoder   render.Encoder
	logger    *log.Logger
	debounce  *Debouncer
	observers []Observer

	scene        *aquarium.Scene
	cellW, cellH float64
	generation   int
}

type Option func(*Driver)

func WithPalette(p palette.Palette) Option { return func(d *Driver) { d.palette = p } }

// WithCatalog overrides the sprite catalog built from the palette.
func WithCatalog(defs []sprite.Definition) Option { return func(d *Driver) { d.catalog = defs } }

func WithRand(r aquarium.Rand) Option { return func(d *Driver) { d.rnd = r } }

func WithSeed(seed int64) Option {
	return func(d *Driver) { d.rnd = rand.New(rand.NewSource(seed)) }
}

func WithEncoder(e render.Encoder) Option { return func(d *Driver) { d.encoder = e } }

func WithLogger(l *log.Logger) Option { return func(d *Driver) { d.logger = l } }

func WithDebounce(delay time.Duration) Option {
	return func(d *Driver) { d.debounce = NewDebouncer(delay) }
}

func WithObserver(o Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

// New creates a driver for surface. A nil surface yields a driver whose Run
// does nothing.
func New(surface Surface, opts ...Option) *Driver {
	d := &Driver{
		surface: surface,
		palette: palette.Default,
		encoder: render.HTML{},
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.catalog == nil {
		d.catalog = sprite.Catalog(d.palette)
	}
	if d.rnd == nil {
		d.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.debounce == nil {
		d.debounce = NewDebouncer(DefaultDebounce)
	}
	return d
}

// Init measures the surface and rebuilds the scene, discarding all entity
// state. An empty catalog is reported but leaves a usable, fishless scene.
func (d *Driver) Init() error {
	if d.surface == nil {
		return aquarium.ErrNoSurface
	}

	d.cellW, d.cellH = geometry.Measure(d.surface)
	w, h := d.surface.Bounds()
	cols, rows := geometry.GridSize(w, h, d.cellW, d.cellH)

	scene, err := aquarium.NewSceneWithCatalog(cols, rows, d.palette, d.catalog, d.rnd)
	d.scene = scene
	d.generation++
	d.logger.Printf("init #%d: %dx%d grid (cell %.1fx%.1f px), %d fish, %d bubbles, %d seaweed",
		d.generation, cols, rows, d.cellW, d.cellH, len(scene.Fish), len(scene.Bubbles), len(scene.Seaweed))
	if err != nil {
		return fmt.Errorf("init scene: %w", err)
	}
	return nil
}

// Frame composites and renders one frame at now and hands it to the surface.
// It returns the markup, or "" before the first Init.
func (d *Driver) Frame(now time.Time) string {
	if d.scene == nil || d.surface == nil {
		return ""
	}
	d.scene.Step(now)
	markup := d.encoder.Encode(d.scene.Grid)
	d.surface.Replace(markup)
	for _, o := range d.observers {
		o.OnFrame(d.scene)
	}
	return markup
}

// Resize schedules a re-initialization after the debounce quiet period.
// Safe to call from any goroutine.
func (d *Driver) Resize() { d.debounce.Trigger() }

// Run initializes the scene and renders one frame per tick. It returns nil
// when ctx is cancelled or ticks is closed.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	if d.surface == nil {
		return nil
	}
	if err := d.Reinit(); err != nil {
		return err
	}
	defer d.debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.debounce.C():
			if err := d.Reinit(); err != nil {
				return err
			}
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			d.Frame(now)
		}
	}
}

// Reinit is Init for hosts: an empty catalog is logged as a warning and the
// fishless scene kept.
func (d *Driver) Reinit() error {
	err := d.Init()
	if errors.Is(err, aquarium.ErrEmptyCatalog) {
		d.logger.Printf("warning: %v", err)
		return nil
	}
	return err
}

// Scene returns the current scene, nil before Init.
func (d *Driver) Scene() *aquarium.Scene { return d.scene }

// CellSize returns the last measured glyph box in pixels.
func (d *Driver) CellSize() (float64, float64) { return d.cellW, d.cellH }

// Generation counts initializations.
func (d *Driver) Generation() int { return d.generation }

// Ticker returns a frame clock at fps and its stop function.
func Ticker(fps int) (<-chan time.Time, func()) {
	if fps <= 0 {
		fps = 60
	}
	t := time.NewTicker(time.Second / time.Duration(fps))
	return t.C, t.Stop
}
