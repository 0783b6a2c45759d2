package engine

import (
	"image/color"

	"github.com/tartampluch/go-daynight/internal/config"
)

// Options holds the static configuration of a DayCycle.
//
// Window boundaries are fractions of a day and are expected to satisfy
// SunriseStart < SunriseEnd <= SunsetStart < SunsetEnd. Nothing enforces it:
// out-of-range or misordered values are accepted and only degrade the
// visual output.
type Options struct {
	DayLengthSeconds float64

	SunriseStart float64
	SunriseEnd   float64
	SunsetStart  float64
	SunsetEnd    float64

	// MinDarkAlpha is the overlay opacity at midnight, MaxLightAlpha at noon.
	MinDarkAlpha  float64
	MaxLightAlpha float64

	SunColor  color.NRGBA
	MoonColor color.NRGBA
}

// Option overrides a single aspect of the default Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		DayLengthSeconds: config.DefaultDayLengthSeconds,
		SunriseStart:     config.DefaultSunriseStart,
		SunriseEnd:       config.DefaultSunriseEnd,
		SunsetStart:      config.DefaultSunsetStart,
		SunsetEnd:        config.DefaultSunsetEnd,
		MinDarkAlpha:     config.DefaultMinDarkAlpha,
		MaxLightAlpha:    config.DefaultMaxLightAlpha,
		SunColor:         RGB(config.DefaultSunColor),
		MoonColor:        RGB(config.DefaultMoonColor),
	}
}

// WithDayLength sets the number of real seconds in one simulated day.
func WithDayLength(seconds float64) Option {
	return func(o *Options) { o.DayLengthSeconds = seconds }
}

// WithSunrise sets the sunrise fade window.
func WithSunrise(start, end float64) Option {
	return func(o *Options) {
		o.SunriseStart = start
		o.SunriseEnd = end
	}
}

// WithSunset sets the sunset fade window.
func WithSunset(start, end float64) Option {
	return func(o *Options) {
		o.SunsetStart = start
		o.SunsetEnd = end
	}
}

// WithAlphaRange sets the overlay opacity at midnight (minDark) and noon (maxLight).
func WithAlphaRange(minDark, maxLight float64) Option {
	return func(o *Options) {
		o.MinDarkAlpha = minDark
		o.MaxLightAlpha = maxLight
	}
}

// WithColors sets the display colors of the sun and moon tokens.
func WithColors(sun, moon color.NRGBA) Option {
	return func(o *Options) {
		o.SunColor = sun
		o.MoonColor = moon
	}
}

// WithOptions replaces every field at once, typically with values loaded from a scene file.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// OptionsFromScene maps a loaded scene file onto engine Options.
func OptionsFromScene(s config.Scene) Options {
	return Options{
		DayLengthSeconds: s.DayLengthSeconds,
		SunriseStart:     s.SunriseStart,
		SunriseEnd:       s.SunriseEnd,
		SunsetStart:      s.SunsetStart,
		SunsetEnd:        s.SunsetEnd,
		MinDarkAlpha:     s.MinDarkAlpha,
		MaxLightAlpha:    s.MaxLightAlpha,
		SunColor:         RGB(uint32(s.SunColor)),
		MoonColor:        RGB(uint32(s.MoonColor)),
	}
}

// RGB converts a 0xRRGGBB value to an opaque color.
func RGB(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}
