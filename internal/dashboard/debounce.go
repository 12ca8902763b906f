package dashboard

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to search keystrokes
// before a suggestion fetch is issued.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer delays a function call until a quiet period has elapsed.
// Re-triggering before the timer fires cancels the pending call, so at
// most one call corresponds to the latest trigger. A stale timer is
// stopped, never merely ignored.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given quiet period.
// A non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously scheduled call that has not fired yet. fn runs on its own
// goroutine (the timer's).
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
