package throttle

import (
	"time"

	"github.com/angristan/huefx/internal/models"
)

const (
	// DefaultInterval is the minimum time between two immediate sends
	DefaultInterval = 250 * time.Millisecond
	// DefaultSettle is how long an input must stay the newest before a
	// deferred send goes out
	DefaultSettle = 200 * time.Millisecond
)

// Check is a deferred send scheduled for an input that arrived during
// cooldown. It owns a private copy of the payload taken when it was created.
type Check struct {
	Payload   models.Payload
	Scheduled time.Time

	seq uint64
}

// Throttle limits the rate of commands sent to a light while making sure the
// last input is always delivered.
//
// Inputs arriving more than Interval after the last command are sent at once.
// Inputs arriving sooner produce a Check that the caller fires after Settle;
// the check only sends if no newer input arrived in the meantime.
//
// A Throttle is not safe for concurrent use. It belongs to one event loop,
// and staleness is decided by timestamps so checks never need cancelling.
type Throttle struct {
	interval time.Duration
	settle   time.Duration

	lastInput   time.Time
	lastCommand time.Time
	// seq numbers inputs so checks sharing a timestamp can still be ordered
	seq uint64
}

// New creates a throttle. Non-positive durations fall back to the defaults.
func New(interval, settle time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Throttle{
		interval: interval,
		settle:   settle,
	}
}

// Interval returns the minimum gap between immediate sends
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Settle returns the delay after which a Check should be fired
func (t *Throttle) Settle() time.Duration {
	return t.settle
}

// Input registers a new payload at time now. It returns send=true when the
// payload should go out immediately, otherwise a Check to fire after Settle.
func (t *Throttle) Input(p models.Payload, now time.Time) (send bool, check *Check) {
	t.lastInput = now
	t.seq++

	if now.Sub(t.lastCommand) > t.interval {
		t.lastCommand = now
		return true, nil
	}

	return false, &Check{
		Payload:   p.Clone(),
		Scheduled: now,
		seq:       t.seq,
	}
}

// Fire evaluates a deferred check at time now. It reports whether the
// check's payload should be sent; stale checks return false.
func (t *Throttle) Fire(c Check, now time.Time) bool {
	if now.Sub(t.lastInput) < t.settle {
		return false
	}
	if c.seq != t.seq {
		return false
	}
	t.lastCommand = now
	return true
}
