package spin

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session is one spin cycle from trigger to all reels landed
type Session struct {
	ID      string
	Request Request
	Started time.Time

	elapsed atomic.Int64
	done    chan struct{}
}

func newSession(req Request) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Request: req.clone(),
		Started: time.Now(),
		done:    make(chan struct{}),
	}
}

// Done is closed after every reel has landed and the choreographer is idle again
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the session finishes or ctx ends
// Ending ctx stops the wait only; the spin itself always runs to completion
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Elapsed returns the trigger-to-join duration, zero while still spinning
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsed.Load())
}

func (s *Session) finish(elapsed time.Duration) {
	s.elapsed.Store(int64(elapsed))
	close(s.done)
}
