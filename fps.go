package mrbinaer

import (
	"fmt"
	"time"
)

// FrameClock measures the wall time between frames for the frame-time
// readout. It never influences animation pacing, which counts frames.
type FrameClock struct {
	last time.Time
}

// NewFrameClock starts a clock at now.
func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{last: now}
}

// Tick ends the current frame at now and returns its duration in whole
// milliseconds and the resulting frames per second. A frame shorter than a
// millisecond reports 0 FPS instead of dividing by zero.
func (c *FrameClock) Tick(now time.Time) (frameMs, fps int) {
	frameMs = int(now.Sub(c.last).Milliseconds())
	c.last = now
	if frameMs > 0 {
		fps = 1000 / frameMs
	}
	return frameMs, fps
}

// Title formats the window title shown by the frontends.
func Title(frameMs, fps int) string {
	return fmt.Sprintf("Frametime: %d, FPS: %d", frameMs, fps)
}
