package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimingAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timing := NewFrameTiming(50, start)

	assert.Equal(t, 20*time.Millisecond, timing.Target())

	_, ok := timing.Advance(start.Add(19 * time.Millisecond))
	assert.False(t, ok)

	delta, ok := timing.Advance(start.Add(20 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, 20*time.Millisecond, delta)

	// slow frames are not carried over
	delta, ok = timing.Advance(start.Add(120 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, delta)

	_, ok = timing.Advance(start.Add(121 * time.Millisecond))
	assert.False(t, ok)
}

func TestFrameTimingRemaining(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timing := NewFrameTiming(50, start)

	assert.Equal(t, 20*time.Millisecond, timing.Remaining(start))
	assert.Equal(t, 5*time.Millisecond, timing.Remaining(start.Add(15*time.Millisecond)))
	assert.Equal(t, time.Duration(0), timing.Remaining(start.Add(time.Second)))
}

func TestFrameTimingZeroFPS(t *testing.T) {
	timing := NewFrameTiming(0, time.Time{})
	assert.Equal(t, time.Second, timing.Target())
}

func TestFrameTimesTick(t *testing.T) {
	var stats FrameTimes

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var reports int
	for range 120 {
		if stats.Tick(now) {
			reports += 1
		}

		now = now.Add(10 * time.Millisecond)
	}

	assert.Equal(t, 2, reports)
	assert.Equal(t, uint64(120), stats.FrameCount)
	assert.InDelta(t, 100.0, stats.FPS(), 0.01)
	assert.Equal(t, 10*time.Millisecond, stats.MaxDuration)
}
