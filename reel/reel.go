package reel

import (
	"errors"
	"sync/atomic"
)

// ErrEmptyReel is returned when a reel is built from an empty digit strip
var ErrEmptyReel = errors.New("reel: empty digit strip")

// Reel is one circular strip of digits; index 0 is the visible payline position
// The strip itself is immutable after construction, rotation only moves the front offset
// Thread-Safety:
//   - RotateOnce: single writer (the spin task owning the reel)
//   - Front/Snapshot/Window: any number of concurrent readers
type Reel struct {
	digits []int
	front  atomic.Int64 // Index into digits currently shown at position 0
}

// New creates a reel with the given initial ordering, front first
// The slice is copied so callers may reuse it for several reels
func New(digits []int) (*Reel, error) {
	if len(digits) == 0 {
		return nil, ErrEmptyReel
	}
	strip := make([]int, len(digits))
	copy(strip, digits)
	return &Reel{digits: strip}, nil
}

// Len returns the strip length, which is also the rotation period
func (r *Reel) Len() int {
	return len(r.digits)
}

// RotateOnce moves the last digit to the front. O(1)
func (r *Reel) RotateOnce() {
	n := int64(len(r.digits))
	r.front.Store((r.front.Load() + n - 1) % n)
}

// Front returns the digit on the payline
func (r *Reel) Front() int {
	return r.digits[r.front.Load()]
}

// IsLandedOn reports whether the payline shows target
func (r *Reel) IsLandedOn(target int) bool {
	return r.Front() == target
}

// Contains reports whether d appears anywhere on the strip
func (r *Reel) Contains(d int) bool {
	for _, v := range r.digits {
		if v == d {
			return true
		}
	}
	return false
}

// at returns the digit at logical position i from front, wrapping in both directions
func (r *Reel) at(front int64, i int) int {
	n := int64(len(r.digits))
	idx := (front + int64(i)) % n
	if idx < 0 {
		idx += n
	}
	return r.digits[idx]
}

// Snapshot returns the current ordering, front first
// The returned slice is a copy taken at a single front offset
func (r *Reel) Snapshot() []int {
	front := r.front.Load()
	out := make([]int, len(r.digits))
	for i := range out {
		out[i] = r.at(front, i)
	}
	return out
}

// Window returns the digits around the payline: above digits wrapping from the strip tail,
// the front, then below digits. Index `above` of the result is the payline
func (r *Reel) Window(above, below int) []int {
	front := r.front.Load()
	out := make([]int, 0, above+1+below)
	for i := -above; i <= below; i++ {
		out = append(out, r.at(front, i))
	}
	return out
}

// NewSet builds count reels that share the same initial ordering
func NewSet(count int, digits []int) ([]*Reel, error) {
	reels := make([]*Reel, 0, count)
	for i := 0; i < count; i++ {
		r, err := New(digits)
		if err != nil {
			return nil, err
		}
		reels = append(reels, r)
	}
	return reels, nil
}
