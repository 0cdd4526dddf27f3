package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for keyword input
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs the most recently triggered function once no new trigger has
// arrived for the configured delay. It is safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64 // incremented on every arm/cancel so stale timers can tell they lost
	stopped bool
}

// New creates a debouncer. A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending call and schedules fn to run after the delay.
// It returns false when the debouncer has been stopped.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.cancelLocked()

	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A newer trigger, Cancel or Stop happened after this timer was armed
		if d.gen != gen || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.gen++
		d.mu.Unlock()

		fn()
	})
	return true
}

// Cancel drops the pending call, if any
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop cancels the pending call and refuses future triggers
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stopped reports whether Stop has been called
func (d *Debouncer) Stopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
