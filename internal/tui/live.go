package tui

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/san-kum/aquarium/internal/driver"
)

const (
	clearScreen = "\033[2J\033[H"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	sizePollInterval = 200 * time.Millisecond
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (cols, rows int, err error)

// LiveRenderer writes ANSI frames straight to a terminal without a TUI
// framework. It is itself the driver's surface.
type LiveRenderer struct {
	*Surface
	out  io.Writer
	size SizeFunc

	mu      sync.Mutex
	cleared bool
}

func NewLiveRenderer(out io.Writer, size SizeFunc) *LiveRenderer {
	cols, rows := 80, 24
	if size != nil {
		if c, r, err := size(); err == nil {
			cols, rows = c, r
		}
	}
	return &LiveRenderer{
		Surface: NewSurface(cols, rows),
		out:     out,
		size:    size,
	}
}

// Replace draws the frame from the home position; the first frame clears
// the screen.
func (r *LiveRenderer) Replace(markup string) {
	r.Surface.Replace(markup)
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := cursorHome
	if !r.cleared {
		prefix = clearScreen
		r.cleared = true
	}
	io.WriteString(r.out, prefix+markup)
}

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }

// Run drives d at fps until ctx is cancelled, polling the terminal size and
// forwarding changes as resize signals.
func (r *LiveRenderer) Run(ctx context.Context, d *driver.Driver, fps int) error {
	r.Start()
	defer r.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if r.size != nil {
		go r.watch(ctx, d)
	}

	ticks, stop := driver.Ticker(fps)
	defer stop()
	return d.Run(ctx, ticks)
}

func (r *LiveRenderer) watch(ctx context.Context, d *driver.Driver) {
	t := time.NewTicker(sizePollInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			cols, rows, err := r.size()
			if err != nil {
				continue
			}
			if r.SetSize(cols, rows) {
				r.mu.Lock()
				r.cleared = false
				r.mu.Unlock()
				d.Resize()
			}
		}
	}
}
