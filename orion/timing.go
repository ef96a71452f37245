package orion

import "time"

// FrameTiming is the frame gate of the loop. A frame only advances once
// the target frame time has passed since the last accepted frame.
type FrameTiming struct {
	last   time.Time
	target time.Duration
}

// NewFrameTiming creates a gate for the given frame rate, starting at now.
// A frame rate of zero is treated as one frame per second.
func NewFrameTiming(targetFPS uint32, now time.Time) FrameTiming {
	return FrameTiming{
		last:   now,
		target: time.Second / time.Duration(max(targetFPS, 1)),
	}
}

func (t *FrameTiming) Target() time.Duration {
	return t.target
}

// Advance reports whether a new frame is due at now. If so, it returns the
// time since the last accepted frame and moves the gate to now. Time spent in
// slow frames is not carried over into following frames.
func (t *FrameTiming) Advance(now time.Time) (time.Duration, bool) {
	delta := now.Sub(t.last)
	if delta < t.target {
		return 0, false
	}

	t.last = now
	return delta, true
}

// Remaining returns the time until the gate opens, zero if a frame is already due.
func (t *FrameTiming) Remaining(now time.Time) time.Duration {
	return max(t.target-now.Sub(t.last), 0)
}
