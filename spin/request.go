package spin

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/reel-spin/reel"
)

var (
	ErrNoReels        = errors.New("spin: no reels")
	ErrTargetCount    = errors.New("spin: target count does not match reel count")
	ErrTargetAbsent   = errors.New("spin: target digit absent from reel")
	ErrInvalidTiming  = errors.New("spin: invalid timing")
	ErrSpinInProgress = errors.New("spin: spin already in progress")
)

// Request is the policy for one spin: where each reel stops and how stops cascade
type Request struct {
	// Targets holds one winning digit per reel, left to right
	Targets []int
	// Stagger is the extra stop delay added per reel index
	Stagger time.Duration
}

// Validate checks the request against the reels it will drive
// A target missing from its strip would make the landing phase never terminate
func (r Request) Validate(reels []*reel.Reel) error {
	if len(reels) == 0 {
		return ErrNoReels
	}
	if len(r.Targets) != len(reels) {
		return fmt.Errorf("%w: %d reels, %d targets", ErrTargetCount, len(reels), len(r.Targets))
	}
	if r.Stagger < 0 {
		return fmt.Errorf("%w: negative stagger %v", ErrInvalidTiming, r.Stagger)
	}
	for i, rl := range reels {
		if rl == nil {
			return fmt.Errorf("%w: reel %d is nil", ErrNoReels, i)
		}
		if !rl.Contains(r.Targets[i]) {
			return fmt.Errorf("%w: reel %d has no digit %d", ErrTargetAbsent, i, r.Targets[i])
		}
	}
	return nil
}

// clone detaches the targets from the caller's slice
func (r Request) clone() Request {
	r.Targets = append([]int(nil), r.Targets...)
	return r
}

// Timing is the target-independent blind phase shared by every reel
type Timing struct {
	// BlindRotations is the number of rotations before the stagger wait
	BlindRotations int
	// RotationInterval is the pause after each blind rotation
	RotationInterval time.Duration
}

// Validate rejects negative values
func (t Timing) Validate() error {
	if t.BlindRotations < 0 || t.RotationInterval < 0 {
		return fmt.Errorf("%w: blind_rotations=%d rotation_interval=%v", ErrInvalidTiming, t.BlindRotations, t.RotationInterval)
	}
	return nil
}
