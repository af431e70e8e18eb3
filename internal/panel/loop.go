package panel

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/models"
	"github.com/angristan/huefx/internal/throttle"
)

// Sender delivers a payload to the light. Failures are the sender's concern.
type Sender func(ctx context.Context, p models.Payload)

// Scheduler calls fire once, after at least d, with the time it ran
type Scheduler func(d time.Duration, fire func(at time.Time))

// AfterFunc is the Scheduler backed by time.AfterFunc
func AfterFunc(d time.Duration, fire func(at time.Time)) {
	time.AfterFunc(d, func() { fire(time.Now()) })
}

type dueCheck struct {
	check throttle.Check
	at    time.Time
}

// Loop drives a Controller from a channel of inputs. Deferred checks are
// delivered back into the loop, so only the loop goroutine touches the
// controller.
type Loop struct {
	ctrl     *Controller
	send     Sender
	schedule Scheduler
	now      func() time.Time
	observe  func(*Controller)
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithScheduler replaces the timer used for deferred checks
func WithScheduler(s Scheduler) LoopOption {
	return func(l *Loop) { l.schedule = s }
}

// WithClock replaces the clock used for inputs without a timestamp
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// WithObserver registers a callback run after every handled input
func WithObserver(fn func(*Controller)) LoopOption {
	return func(l *Loop) { l.observe = fn }
}

// NewLoop creates a loop for ctrl that sends commands through send
func NewLoop(ctrl *Controller, send Sender, opts ...LoopOption) *Loop {
	l := &Loop{
		ctrl:     ctrl,
		send:     send,
		schedule: AfterFunc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes inputs in order until the channel is closed and every
// deferred check has fired, or until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, inputs <-chan Input) error {
	due := make(chan dueCheck)
	pending := 0

	for inputs != nil || pending > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			at := in.At
			if at.IsZero() {
				at = l.now()
			}

			d := l.ctrl.Handle(in, at)
			if l.observe != nil {
				l.observe(l.ctrl)
			}
			if d.Send != nil {
				l.dispatch(ctx, *d.Send, "immediate")
			}
			if d.Check != nil {
				pending++
				check := *d.Check
				l.schedule(l.ctrl.Settle(), func(firedAt time.Time) {
					select {
					case due <- dueCheck{check: check, at: firedAt}:
					case <-ctx.Done():
					}
				})
			}

		case dc := <-due:
			pending--
			if p, ok := l.ctrl.Fire(dc.check, dc.at); ok {
				l.dispatch(ctx, p, "deferred")
			}
		}
	}

	return nil
}

func (l *Loop) dispatch(ctx context.Context, p models.Payload, path string) {
	log.Debug().
		Str("light", l.ctrl.LightID()).
		Str("payload", p.String()).
		Str("path", path).
		Msg("Sending command")
	l.send(ctx, p)
}
