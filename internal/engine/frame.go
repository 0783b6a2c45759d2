package engine

import (
	"time"

	"github.com/tartampluch/go-daynight/internal/config"
)

// FrameDriver converts successive Clock readings into the deltaSeconds fed
// to DayCycle.Advance. It owns pause and speed, keeping the clock itself
// free of host concerns.
type FrameDriver struct {
	Clock Clock

	// Speed multiplies real elapsed time. 1 is real time.
	Speed float64

	// MaxDelta caps a single frame (in real seconds) so a suspended process
	// does not jump the day forward on resume. Zero disables the cap.
	MaxDelta float64

	paused  bool
	started bool
	last    time.Time
}

// NewFrameDriver returns a driver running at real-time speed.
func NewFrameDriver(c Clock) *FrameDriver {
	if c == nil {
		c = RealClock{}
	}
	return &FrameDriver{
		Clock:    c,
		Speed:    config.DefaultSpeed,
		MaxDelta: config.MaxFrameDelta,
	}
}

// Tick returns the simulated seconds elapsed since the previous Tick.
// The first Tick only records the reference instant and returns 0, as does
// every Tick while paused.
func (f *FrameDriver) Tick() float64 {
	now := f.Clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}

	dt := now.Sub(f.last).Seconds()
	f.last = now

	if f.paused || dt <= 0 {
		return 0
	}
	if f.MaxDelta > 0 && dt > f.MaxDelta {
		dt = f.MaxDelta
	}
	return dt * f.Speed
}

// Pause stops time from accumulating until Resume.
func (f *FrameDriver) Pause() { f.paused = true }

// Resume restarts accumulation. Time spent paused is discarded.
func (f *FrameDriver) Resume() { f.paused = false }

// Paused reports whether the driver is paused.
func (f *FrameDriver) Paused() bool { return f.paused }
