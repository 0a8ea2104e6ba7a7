package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		h := NewFrameHistory(4)
		assert.Zero(t, h.AverageMillis())
		assert.Zero(t, h.FPS())
	})

	t.Run("averages only recorded frames", func(t *testing.T) {
		h := NewFrameHistory(DefaultHistoryFrames)
		h.Record(0.010)
		h.Record(0.030)

		assert.Equal(t, 2, h.Count())
		assert.InDelta(t, 20, h.AverageMillis(), 1e-4)
		assert.InDelta(t, 50, h.FPS(), 1e-2)
	})

	t.Run("ring buffer overwrites the oldest frame", func(t *testing.T) {
		h := NewFrameHistory(2)
		h.Record(0.100)
		h.Record(0.010)
		h.Record(0.010)
		h.Record(0)

		assert.Equal(t, 2, h.Count())
		assert.InDelta(t, 10, h.AverageMillis(), 1e-4)
	})
}

func TestFrameTimer(t *testing.T) {
	base := time.Unix(100, 0)
	ticks := []time.Time{base.Add(16 * time.Millisecond), base.Add(48 * time.Millisecond)}
	timer := &FrameTimer{last: base, now: func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}}

	assert.InDelta(t, 0.016, timer.Delta(), 1e-6)
	assert.InDelta(t, 0.032, timer.Delta(), 1e-6)
}
