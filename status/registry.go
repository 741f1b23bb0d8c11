package status

import (
	"sync/atomic"
	"time"
)

// Metric keys written by the choreographer and the event queue
const (
	KeySpinsStarted   = "spin.started"
	KeySpinsRejected  = "spin.rejected"
	KeySpinsCompleted = "spin.completed"
	KeyReelsLanded    = "reel.landed"
	KeyRotations      = "reel.rotations"
	KeyEventsDropped  = "events.dropped"
	KeyLastDuration   = "spin.last_duration_ns"
	KeySpinActive     = "spin.active"
	KeyLastSessionID  = "spin.last_session"
)

// Registry groups the metric maps by value type
type Registry struct {
	Bools    *MetricMap[atomic.Bool]
	Ints     *MetricMap[atomic.Int64]
	Sessions *MetricMap[atomic.Pointer[string]]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:    NewMetricMap[atomic.Bool](),
		Ints:     NewMetricMap[atomic.Int64](),
		Sessions: NewMetricMap[atomic.Pointer[string]](),
	}
}

// SpinMetrics holds cached pointers to the spin counters
type SpinMetrics struct {
	Started   *atomic.Int64
	Rejected  *atomic.Int64
	Completed *atomic.Int64
	Landed    *atomic.Int64
	Rotations *atomic.Int64
	Dropped   *atomic.Int64 // Events lost to queue overflow
	Duration  *atomic.Int64 // Nanoseconds of the last completed spin
	Active    *atomic.Bool
	SessionID *atomic.Pointer[string]
}

// NewSpinMetrics registers (or reuses) the spin counters in r
func NewSpinMetrics(r *Registry) *SpinMetrics {
	return &SpinMetrics{
		Started:   r.Ints.Get(KeySpinsStarted),
		Rejected:  r.Ints.Get(KeySpinsRejected),
		Completed: r.Ints.Get(KeySpinsCompleted),
		Landed:    r.Ints.Get(KeyReelsLanded),
		Rotations: r.Ints.Get(KeyRotations),
		Dropped:   r.Ints.Get(KeyEventsDropped),
		Duration:  r.Ints.Get(KeyLastDuration),
		Active:    r.Bools.Get(KeySpinActive),
		SessionID: r.Sessions.Get(KeyLastSessionID),
	}
}

// Snapshot is a point-in-time copy of the spin counters for display
type Snapshot struct {
	Started      int64
	Rejected     int64
	Completed    int64
	Landed       int64
	Rotations    int64
	Dropped      int64
	LastDuration time.Duration
	Active       bool
	SessionID    string
}

// Snapshot reads every counter once
func (m *SpinMetrics) Snapshot() Snapshot {
	s := Snapshot{
		Started:      m.Started.Load(),
		Rejected:     m.Rejected.Load(),
		Completed:    m.Completed.Load(),
		Landed:       m.Landed.Load(),
		Rotations:    m.Rotations.Load(),
		Dropped:      m.Dropped.Load(),
		LastDuration: time.Duration(m.Duration.Load()),
		Active:       m.Active.Load(),
	}
	if id := m.SessionID.Load(); id != nil {
		s.SessionID = *id
	}
	return s
}
