package overlay

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// DefaultHistoryFrames is the frame-time window averaged for the FPS readout.
const DefaultHistoryFrames = 100

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(historyFrames int) FrameHistory {
	if historyFrames <= 0 {
		historyFrames = DefaultHistoryFrames
	}
	return FrameHistory{samples: make([]float32, historyFrames)}
}

// Record stores one frame time given in seconds. Non-positive values are ignored.
func (h *FrameHistory) Record(deltaSeconds float32) {
	if deltaSeconds <= 0 || len(h.samples) == 0 {
		return
	}
	h.samples[h.index] = deltaSeconds * 1000
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Count returns the number of recorded samples, up to the history size.
func (h *FrameHistory) Count() int {
	return h.filled
}

// AverageMillis returns the mean recorded frame time.
func (h *FrameHistory) AverageMillis() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range h.samples[:h.filled] {
		sum += ft
	}
	return sum / float32(h.filled)
}

// FPS returns the frame rate implied by AverageMillis.
func (h *FrameHistory) FPS() float32 {
	avg := h.AverageMillis()
	if avg == 0 {
		return 0
	}
	return 1000 / avg
}

// FPSWindow returns an item that draws the frame statistics in the top-right area.
func FPSWindow(history *FrameHistory, screenWidth func() int) Item {
	return Item{
		Name: "FPS",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(float32(screenWidth())-230, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(220, 120), imgui.CondOnce)

			if !imgui.BeginV("FPS", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", history.AverageMillis(), history.FPS()))
			if len(history.samples) > 0 {
				imgui.PlotLinesFloatPtr("##frametime", &history.samples[0], int32(len(history.samples)))
			}
			imgui.End()
		},
	}
}

// FrameTimer measures wall-clock time between calls to Delta.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

// Delta returns the seconds elapsed since the previous call (or construction).
func (t *FrameTimer) Delta() float32 {
	now := t.now()
	delta := float32(now.Sub(t.last).Seconds())
	t.last = now
	return delta
}
