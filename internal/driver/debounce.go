package driver

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last resize signal.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces bursts of triggers into one signal delivered after the
// quiet period. Each trigger resets the timer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fired chan struct{}
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		delay: delay,
		fired: make(chan struct{}, 1),
	}
}

// Trigger (re)starts the quiet period. Safe for concurrent use.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		select {
		case d.fired <- struct{}{}:
		default:
		}
	})
}

// C delivers one value per settled burst.
func (d *Debouncer) C() <-chan struct{} { return d.fired }

// Stop cancels a pending signal.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Delay() time.Duration { return d.delay }
