package engine

import (
	"math"

	"github.com/tartampluch/go-daynight/internal/config"
)

// Position is a point in scene pixels, Y growing downwards.
type Position struct {
	X, Y float64
}

// Body is the derived transform of one celestial token.
type Body struct {
	Position Position
	Alpha    float64
}

// CelestialTransform is recomputed from the clock on every tick.
type CelestialTransform struct {
	Sun  Body
	Moon Body
}

// OverlayAlpha maps a time of day to the darkness overlay opacity.
//
// The curve is a raised cosine: MinDarkAlpha at t=0, MaxLightAlpha at t=0.5.
// It ignores the sunrise/sunset windows on purpose, so the overlay and the
// celestial bodies are tuned independently.
func OverlayAlpha(t float64, o Options) float64 {
	return o.MinDarkAlpha + (o.MaxLightAlpha-o.MinDarkAlpha)*0.5*(1-math.Cos(t*2*math.Pi))
}

// Celestials computes the sun and moon transforms for time t across a
// viewport of the given width.
//
// Both bodies follow a half-sine arc: they start on the baseline, peak in the
// middle of their window and return to the baseline. The sun is only placed
// while it is up; outside [SunriseStart, SunsetEnd] its position is left at
// the zero value with alpha 0. The moon is always placed.
func Celestials(t float64, o Options, width float64) CelestialTransform {
	var out CelestialTransform

	if t >= o.SunriseStart && t <= o.SunsetEnd {
		sunT := clamp01((t - o.SunriseStart) / (o.SunsetEnd - o.SunriseStart))
		out.Sun.Position = arcPosition(sunT, width)

		switch {
		case t < o.SunriseEnd:
			out.Sun.Alpha = EaseInOutQuad((t - o.SunriseStart) / (o.SunriseEnd - o.SunriseStart))
		case t > o.SunsetStart:
			out.Sun.Alpha = EaseInOutQuad(1 - (t-o.SunsetStart)/(o.SunsetEnd-o.SunsetStart))
		default:
			out.Sun.Alpha = 1
		}
	}

	// The night wraps across midnight.
	nightLength := (1 - o.SunsetEnd) + o.SunriseStart
	var moonT float64
	if t >= o.SunsetEnd {
		moonT = (t - o.SunsetEnd) / nightLength
	} else {
		moonT = (t + (1 - o.SunsetEnd)) / nightLength
	}
	out.Moon.Position = arcPosition(moonT, width)

	switch {
	case t >= o.SunsetStart && t <= o.SunsetEnd:
		out.Moon.Alpha = EaseInOutQuad((t - o.SunsetStart) / (o.SunsetEnd - o.SunsetStart))
	case t >= o.SunriseStart && t <= o.SunriseEnd:
		out.Moon.Alpha = EaseInOutQuad(1 - (t-o.SunriseStart)/(o.SunriseEnd-o.SunriseStart))
	case t <= o.SunriseStart || t >= o.SunsetEnd:
		out.Moon.Alpha = 1
	}

	return out
}

// EaseInOutQuad is the symmetric quadratic ease: 2p² below 0.5, 1-2(1-p)² above.
func EaseInOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := 1 - p
	return 1 - 2*q*q
}

func arcPosition(progress, width float64) Position {
	angle := progress * math.Pi
	return Position{
		X: width * progress,
		Y: config.ArcBaseY - math.Sin(angle)*config.ArcHeight,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
