package engine

import (
	"log/slog"
	"math"

	"github.com/tartampluch/go-daynight/internal/config"
)

// wrapEpsilon absorbs the rounding left by accumulating many small deltas,
// so a day of N equal ticks ends exactly on the rollover instead of one
// ulp short of it. The snap only applies to a clock already past midday:
// a single step from early in the day that lands just short of 1 is kept.
const (
	wrapEpsilon  = 1e-9
	snapFromHalf = 0.5
)

// DayCycle is a fractional day clock. It advances from elapsed real time,
// raises hour and day events, and publishes the overlay and celestial
// transforms to a bound Renderer.
//
// A DayCycle is not safe for concurrent use. The host must drive Advance,
// SetDayLength and the subscription methods from a single goroutine.
type DayCycle struct {
	opts     Options
	renderer Renderer

	timeOfDay         float64
	dayCount          int
	executionsThisDay int
	lastHour          int

	dayHandlers  registry[int]
	hourHandlers registry[int]

	log *slog.Logger
}

// State is a read-only snapshot of the clock and its derived outputs.
type State struct {
	TimeOfDay       float64
	Hour            int
	DayCount        int
	HoursFiredToday int
	LastHour        int
	Overlay         float64
	Celestial       CelestialTransform
}

// New creates an unbound DayCycle at midnight of day 0.
func New(opts ...Option) *DayCycle {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &DayCycle{
		opts:     o,
		lastHour: config.NoHourFired,
		log:      slog.With(config.LogKeyComponent, config.CompEngine),
	}
}

// Bind associates the clock with a host renderer and asks it to build its
// primitives. It returns the receiver so construction can be chained.
// Binding nil detaches the host and turns Advance back into a no-op.
func (c *DayCycle) Bind(r Renderer, hints LayoutHints) *DayCycle {
	c.renderer = r
	if r == nil {
		return c
	}

	r.Setup(SetupParams{
		BodyLayerDepth: hints.BackLayerDepth - 1,
		OverlayDepth:   hints.OverlayDepth,
		SunColor:       c.opts.SunColor,
		MoonColor:      c.opts.MoonColor,
		SunAlpha:       0,
		MoonAlpha:      1,
		OverlayAlpha:   c.opts.MinDarkAlpha,
	})

	c.log.Debug(config.MsgBound,
		config.LogKeyWidth, r.Width(),
		config.LogKeyDayLength, c.opts.DayLengthSeconds,
	)
	return c
}

// Bound reports whether a renderer is attached.
func (c *DayCycle) Bound() bool {
	return c.renderer != nil
}

// Advance moves the clock forward by deltaSeconds of real time.
//
// Only the hour the clock lands on is detected: a delta that skips several
// hour boundaries fires a single hour event, and skipped hours are never
// back-filled. At most 24 hour events fire between two day rollovers.
// Handlers run synchronously; a panicking handler aborts the tick.
func (c *DayCycle) Advance(deltaSeconds float64) {
	if c.renderer == nil {
		return
	}

	prev := c.timeOfDay
	c.timeOfDay = snapWrap(normalize(c.timeOfDay+deltaSeconds/c.opts.DayLengthSeconds), prev)

	if c.timeOfDay < prev {
		c.executionsThisDay = 0
		c.dayCount++
		c.log.Info(config.MsgDayComplete,
			config.LogKeyDay, c.dayCount,
			config.LogKeyTimeOfDay, c.timeOfDay,
			config.LogKeyEvents, c.dayHandlers.len(),
		)
		c.dayHandlers.notify(c.dayCount)
	}

	hour := hourOf(c.timeOfDay)
	if hour != c.lastHour {
		c.lastHour = hour
		if c.executionsThisDay < config.HoursPerDay {
			c.executionsThisDay++
			c.log.Debug(config.MsgHourElapsed,
				config.LogKeyDay, c.dayCount,
				config.LogKeyHour, hour,
			)
			c.hourHandlers.notify(hour)
		}
	}

	c.publish()
}

// publish pushes the derived visual state to the renderer.
func (c *DayCycle) publish() {
	c.renderer.SetOverlayAlpha(OverlayAlpha(c.timeOfDay, c.opts))

	ct := Celestials(c.timeOfDay, c.opts, c.renderer.Width())
	c.renderer.SetSunTransform(ct.Sun.Position, ct.Sun.Alpha)
	c.renderer.SetMoonTransform(ct.Moon.Position, ct.Moon.Alpha)
}

// OnDayComplete registers a handler called with the new day count on every rollover.
func (c *DayCycle) OnDayComplete(fn func(day int)) Subscription {
	return c.dayHandlers.subscribe(fn)
}

// OnHourElapsed registers a handler called with the hour (0-23) on every hour event.
func (c *DayCycle) OnHourElapsed(fn func(hour int)) Subscription {
	return c.hourHandlers.subscribe(fn)
}

// TimeOfDay returns the fraction of the current day elapsed, in [0,1).
func (c *DayCycle) TimeOfDay() float64 {
	return c.timeOfDay
}

// DayCount returns the number of rollovers since construction.
func (c *DayCycle) DayCount() int {
	return c.dayCount
}

// HoursFiredToday returns how many hour events fired since the last rollover.
func (c *DayCycle) HoursFiredToday() int {
	return c.executionsThisDay
}

// Options returns a copy of the current configuration.
func (c *DayCycle) Options() Options {
	return c.opts
}

// SetDayLength changes the real duration of a day. The elapsed fraction is
// kept as is; only future Advance calls run at the new rate.
func (c *DayCycle) SetDayLength(seconds float64) {
	if seconds == c.opts.DayLengthSeconds {
		return
	}
	c.log.Info(config.MsgDayLength,
		config.LogKeyOld, c.opts.DayLengthSeconds,
		config.LogKeyNew, seconds,
	)
	c.opts.DayLengthSeconds = seconds
}

// Snapshot returns the current state and its derived outputs. Without a
// renderer the celestial positions are computed for a zero-width viewport.
func (c *DayCycle) Snapshot() State {
	width := 0.0
	if c.renderer != nil {
		width = c.renderer.Width()
	}
	return State{
		TimeOfDay:       c.timeOfDay,
		Hour:            hourOf(c.timeOfDay),
		DayCount:        c.dayCount,
		HoursFiredToday: c.executionsThisDay,
		LastHour:        c.lastHour,
		Overlay:         OverlayAlpha(c.timeOfDay, c.opts),
		Celestial:       Celestials(c.timeOfDay, c.opts, width),
	}
}

// normalize folds v into [0,1).
func normalize(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	// -1e-17 + 1 rounds to exactly 1.
	if v >= 1 {
		v = 0
	}
	return v
}

// snapWrap treats t as the rollover when it sits within wrapEpsilon of 1 and
// the clock was already in the second half of the day.
func snapWrap(t, prev float64) float64 {
	if prev > snapFromHalf && 1-t < wrapEpsilon {
		return 0
	}
	return t
}

func hourOf(t float64) int {
	return int(math.Floor(t * config.HoursPerDay))
}
