// Package driver turns host frame callbacks into simulation ticks: it measures
// the time between callbacks, runs tick then draw, and goes quiet once stopped.
package driver

import (
	"sync/atomic"
	"time"
)

// DefaultMaxElapsed bounds the time fed to a single tick, so a stalled host
// (suspended laptop, paused terminal) does not deliver one enormous step.
const DefaultMaxElapsed = 250 * time.Millisecond

var lastID atomic.Uint64

// Driver is not safe for concurrent use; hosts call it from their own loop.
type Driver struct {
	id         uint64
	tick       func(elapsed time.Duration)
	draw       func()
	maxElapsed time.Duration

	last    time.Time
	primed  bool
	stopped bool
	frames  uint64
}

// Option configures a Driver.
type Option func(*Driver)

// WithMaxElapsed caps the elapsed time per tick. Zero or negative disables the cap.
func WithMaxElapsed(d time.Duration) Option {
	return func(dr *Driver) {
		dr.maxElapsed = d
	}
}

// New creates a driver. Either callback may be nil.
func New(tick func(elapsed time.Duration), draw func(), opts ...Option) *Driver {
	d := &Driver{
		id:         lastID.Add(1),
		tick:       tick,
		draw:       draw,
		maxElapsed: DefaultMaxElapsed,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID identifies this driver among all drivers in the process. Hosts tag
// scheduled frames with it and drop frames addressed to a replaced driver.
func (d *Driver) ID() uint64 {
	return d.id
}

// Step runs one frame at host time now and reports whether the host should
// schedule another. The first step only primes the clock and ticks with zero
// elapsed. Time going backwards counts as zero.
func (d *Driver) Step(now time.Time) bool {
	if d.stopped {
		return false
	}

	var elapsed time.Duration
	if d.primed {
		elapsed = max(now.Sub(d.last), 0)
		if d.maxElapsed > 0 {
			elapsed = min(elapsed, d.maxElapsed)
		}
	}
	d.last = now
	d.primed = true

	if d.tick != nil {
		d.tick(elapsed)
	}
	if d.draw != nil {
		d.draw()
	}
	d.frames++
	return !d.stopped
}

// Stop ends the loop. It is safe to call from inside tick or draw.
func (d *Driver) Stop() {
	d.stopped = true
}

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool {
	return d.stopped
}

// Frames returns how many steps have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}
