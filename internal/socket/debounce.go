package socket

import (
	"sync"
	"time"
)

// debouncer runs only the last function triggered within wait
type debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func newDebouncer(wait time.Duration) *debouncer {
	return &debouncer{wait: wait}
}

// Trigger schedules fn, cancelling any pending call. A zero wait runs fn
// immediately on the caller's goroutine.
func (d *debouncer) Trigger(fn func()) {
	if d.wait <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels a pending call
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
