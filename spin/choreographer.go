// Package spin drives a set of reels through the spin-then-land choreography.
//
// Every reel runs in its own goroutine: a fixed number of blind rotations, a stagger wait
// proportional to the reel index, then rotation until the payline shows its target digit.
// Completion is a join over all reel tasks, so the status only returns to idle once every
// reel has actually landed.
package spin

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/reel-spin/core"
	"github.com/lixenwraith/reel-spin/events"
	"github.com/lixenwraith/reel-spin/reel"
	"github.com/lixenwraith/reel-spin/status"
)

// Option configures a Choreographer
type Option func(*Choreographer)

// WithPublisher sets the event sink, typically the frame loop's event queue
func WithPublisher(p events.Publisher) Option {
	return func(c *Choreographer) {
		if p != nil {
			c.pub = p
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Choreographer) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics sets the counters updated during spins
func WithMetrics(m *status.SpinMetrics) Option {
	return func(c *Choreographer) {
		if m != nil {
			c.metrics = m
		}
	}
}

// Choreographer owns the reels for the duration of each spin
type Choreographer struct {
	reels   []*reel.Reel
	request Request
	timing  Timing

	machine *fsm.FSM

	pub     events.Publisher
	log     *zap.Logger
	metrics *status.SpinMetrics

	current atomic.Pointer[Session]
}

// New validates the default request and timing against reels
// A target digit absent from its reel is rejected here, never left to spin forever
func New(reels []*reel.Reel, req Request, timing Timing, opts ...Option) (*Choreographer, error) {
	if err := req.Validate(reels); err != nil {
		return nil, err
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	c := &Choreographer{
		reels:   append([]*reel.Reel(nil), reels...),
		request: req.clone(),
		timing:  timing,
		pub:     events.Discard,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = status.NewSpinMetrics(status.NewRegistry())
	}
	c.machine = newStateMachine(c.onTransition)

	return c, nil
}

func (c *Choreographer) onTransition(from, to Status) {
	c.metrics.Active.Store(to == StatusSpinning)
	c.log.Debug("spin status", zap.Stringer("from", from), zap.Stringer("to", to))
}

// Request returns the configured default request
func (c *Choreographer) Request() Request {
	return c.request.clone()
}

// Status returns the current lifecycle state
func (c *Choreographer) Status() Status {
	return parseStatus(c.machine.Current())
}

// Current returns the most recent session, nil before the first spin
func (c *Choreographer) Current() *Session {
	return c.current.Load()
}

// Metrics returns the spin counters
func (c *Choreographer) Metrics() *status.SpinMetrics {
	return c.metrics
}

// Spin starts a session with the configured request
func (c *Choreographer) Spin(ctx context.Context) (*Session, error) {
	return c.start(ctx, c.request)
}

// SpinWith starts a session with a per-call request, validated before anything moves
func (c *Choreographer) SpinWith(ctx context.Context, req Request) (*Session, error) {
	if err := req.Validate(c.reels); err != nil {
		return nil, err
	}
	return c.start(ctx, req)
}

// start returns ErrSpinInProgress without side effects on the reels unless idle
func (c *Choreographer) start(ctx context.Context, req Request) (*Session, error) {
	// Caller cancellation must neither refuse nor abort a spin
	runCtx := context.WithoutCancel(ctx)

	if err := c.machine.Event(runCtx, eventSpin); err != nil {
		var busy fsm.InvalidEventError
		if !errors.As(err, &busy) {
			c.log.Error("spin transition failed", zap.Error(err))
			return nil, fmt.Errorf("spin: start: %w", err)
		}
		c.metrics.Rejected.Add(1)
		c.pub.Push(events.SpinEvent{Type: events.EventSpinRejected, Timestamp: time.Now()})
		c.log.Debug("spin rejected", zap.Stringer("status", c.Status()), zap.Error(err))
		return nil, ErrSpinInProgress
	}

	s := newSession(req)
	c.current.Store(s)
	c.metrics.Started.Add(1)
	c.metrics.SessionID.Store(&s.ID)

	c.pub.Push(events.SpinEvent{
		Type:      events.EventSpinStarted,
		Payload:   &events.SpinPayload{SessionID: s.ID, Targets: s.Request.Targets},
		Timestamp: s.Started,
	})
	c.log.Info("spin started",
		zap.String("session", s.ID),
		zap.Ints("targets", s.Request.Targets),
		zap.Duration("stagger", s.Request.Stagger),
	)

	core.Go(func() { c.run(runCtx, s) })

	return s, nil
}

// run launches one task per reel and joins them
func (c *Choreographer) run(ctx context.Context, s *Session) {
	var g errgroup.Group
	for i, r := range c.reels {
		g.Go(func() error {
			defer core.Recover()
			c.spinReel(s, i, r)
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(s.Started)

	if err := c.machine.Event(ctx, eventLand); err != nil {
		c.log.Error("land transition failed", zap.String("session", s.ID), zap.Error(err))
	}

	c.metrics.Completed.Add(1)
	c.metrics.Duration.Store(int64(elapsed))
	c.pub.Push(events.SpinEvent{
		Type:      events.EventSpinCompleted,
		Payload:   &events.SpinPayload{SessionID: s.ID, Targets: s.Request.Targets, Elapsed: elapsed},
		Timestamp: time.Now(),
	})
	c.log.Info("spin complete", zap.String("session", s.ID), zap.Duration("elapsed", elapsed))

	if err := c.machine.Event(ctx, eventSettle); err != nil {
		c.log.Error("settle transition failed", zap.String("session", s.ID), zap.Error(err))
	}

	s.finish(elapsed)
}

// spinReel runs the blind, stagger and landing phases for reel idx
// The task is the only writer of r until it returns
func (c *Choreographer) spinReel(s *Session, idx int, r *reel.Reel) {
	target := s.Request.Targets[idx]

	for n := 0; n < c.timing.BlindRotations; n++ {
		c.rotate(s, idx, r)
		sleep(c.timing.RotationInterval)
	}
	blindEnd := time.Now()

	sleep(time.Duration(idx) * s.Request.Stagger)
	landingStart := time.Now()

	c.pub.Push(events.SpinEvent{
		Type: events.EventReelLanding,
		Payload: &events.LandingPayload{
			SessionID:    s.ID,
			Reel:         idx,
			BlindEnd:     blindEnd,
			LandingStart: landingStart,
		},
		Timestamp: landingStart,
	})

	// Validation guarantees the target is on the strip, so one period always suffices
	for n := 0; !r.IsLandedOn(target); n++ {
		if n >= r.Len() {
			c.log.Error("reel cannot land", zap.String("session", s.ID), zap.Int("reel", idx), zap.Int("target", target))
			return
		}
		c.rotate(s, idx, r)
	}

	c.metrics.Landed.Add(1)
	c.pub.Push(events.SpinEvent{
		Type:      events.EventReelLanded,
		Payload:   &events.ReelPayload{SessionID: s.ID, Reel: idx, Front: r.Front()},
		Timestamp: time.Now(),
	})
	c.log.Debug("reel landed", zap.String("session", s.ID), zap.Int("reel", idx), zap.Int("front", r.Front()))
}

func (c *Choreographer) rotate(s *Session, idx int, r *reel.Reel) {
	r.RotateOnce()
	c.metrics.Rotations.Add(1)
	c.pub.Push(events.SpinEvent{
		Type:      events.EventReelRotated,
		Payload:   &events.ReelPayload{SessionID: s.ID, Reel: idx, Front: r.Front(), Steps: 1},
		Timestamp: time.Now(),
	})
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
