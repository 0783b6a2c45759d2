package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-daynight/internal/engine"
)

const width = 1000.0

func TestOverlayAlpha_Extremes(t *testing.T) {
	o := engine.DefaultOptions()

	assert.InDelta(t, o.MinDarkAlpha, engine.OverlayAlpha(0, o), 1e-12, "midnight is darkest")
	assert.InDelta(t, o.MaxLightAlpha, engine.OverlayAlpha(0.5, o), 1e-12, "noon is lightest")
	assert.InDelta(t, 0.275, engine.OverlayAlpha(0.25, o), 1e-12, "dawn is half way")
	assert.InDelta(t, engine.OverlayAlpha(0.25, o), engine.OverlayAlpha(0.75, o), 1e-12, "curve is symmetric")
}

func TestOverlayAlpha_IgnoresVisibilityWindows(t *testing.T) {
	a := engine.DefaultOptions()
	b := engine.DefaultOptions()
	b.SunriseStart, b.SunriseEnd = 0.05, 0.10
	b.SunsetStart, b.SunsetEnd = 0.90, 0.95

	for _, tod := range []float64{0, 0.1, 0.3, 0.6, 0.9} {
		assert.Equal(t, engine.OverlayAlpha(tod, a), engine.OverlayAlpha(tod, b))
	}
}

func TestOverlayAlpha_ReversedRange(t *testing.T) {
	o := engine.DefaultOptions()
	o.MinDarkAlpha, o.MaxLightAlpha = 0.1, 0.9

	assert.InDelta(t, 0.1, engine.OverlayAlpha(0, o), 1e-12)
	assert.InDelta(t, 0.9, engine.OverlayAlpha(0.5, o), 1e-12)
}

func TestOverlayAlpha_DecreasesUntilNoon(t *testing.T) {
	o := engine.DefaultOptions()
	prev := engine.OverlayAlpha(0, o)
	for i := 1; i <= 50; i++ {
		cur := engine.OverlayAlpha(float64(i)/100, o)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, engine.EaseInOutQuad(tt.p), 1e-12, "p=%v", tt.p)
	}

	for p := 0.0; p <= 1.0; p += 0.05 {
		assert.InDelta(t, 1.0, engine.EaseInOutQuad(p)+engine.EaseInOutQuad(1-p), 1e-12, "symmetry at p=%v", p)
	}
}

func TestCelestials_SunHiddenOutsideWindow(t *testing.T) {
	o := engine.DefaultOptions()
	for _, tod := range []float64{0, 0.1, 0.1999, 0.8001, 0.95, 0.9999} {
		ct := engine.Celestials(tod, o, width)
		assert.Equal(t, 0.0, ct.Sun.Alpha, "t=%v", tod)
		assert.Equal(t, engine.Position{}, ct.Sun.Position, "t=%v", tod)
	}
}

func TestCelestials_SunPlateauAndArc(t *testing.T) {
	o := engine.DefaultOptions()

	noon := engine.Celestials((o.SunriseEnd+o.SunsetStart)/2, o, width)
	assert.Equal(t, 1.0, noon.Sun.Alpha)
	assert.InDelta(t, width/2, noon.Sun.Position.X, 1e-9)
	assert.InDelta(t, 40.0, noon.Sun.Position.Y, 1e-9, "peak is baseY - arc")

	rise := engine.Celestials(o.SunriseStart, o, width)
	assert.Equal(t, 0.0, rise.Sun.Alpha)
	assert.Equal(t, engine.Position{X: 0, Y: 120}, rise.Sun.Position)

	set := engine.Celestials(o.SunsetEnd, o, width)
	assert.Equal(t, 0.0, set.Sun.Alpha)
	assert.InDelta(t, width, set.Sun.Position.X, 1e-9)
	assert.InDelta(t, 120.0, set.Sun.Position.Y, 1e-9)
}

func TestCelestials_SunFades(t *testing.T) {
	o := engine.DefaultOptions()

	assert.InDelta(t, 0.5, engine.Celestials(0.25, o, width).Sun.Alpha, 1e-9, "half way through sunrise")
	assert.InDelta(t, 0.5, engine.Celestials(0.75, o, width).Sun.Alpha, 1e-9, "half way through sunset")
	assert.Equal(t, 1.0, engine.Celestials(o.SunriseEnd, o, width).Sun.Alpha, "plateau starts at sunriseEnd")
	assert.Equal(t, 1.0, engine.Celestials(o.SunsetStart, o, width).Sun.Alpha, "plateau ends at sunsetStart")

	early := engine.Celestials(0.22, o, width).Sun.Alpha
	late := engine.Celestials(0.28, o, width).Sun.Alpha
	assert.Less(t, early, late, "sun brightens through sunrise")
}

func TestCelestials_MoonOpacity(t *testing.T) {
	o := engine.DefaultOptions()

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"Midnight", 0, 1},
		{"LateNight", 0.9999, 1},
		{"SunsetEnd", o.SunsetEnd, 1},
		{"SunriseStart", o.SunriseStart, 1},
		{"SunriseEnd", o.SunriseEnd, 0},
		{"SunsetStart", o.SunsetStart, 0},
		{"DayPlateauMidpoint", (o.SunriseEnd + o.SunsetStart) / 2, 0},
		{"DayPlateau", 0.4, 0},
		{"HalfSunset", 0.75, 0.5},
		{"HalfSunrise", 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.Celestials(tt.t, o, width).Moon.Alpha, 1e-9)
		})
	}
}

func TestCelestials_MoonArcWrapsMidnight(t *testing.T) {
	o := engine.DefaultOptions()

	start := engine.Celestials(o.SunsetEnd, o, width).Moon.Position
	assert.InDelta(t, 0, start.X, 1e-9)
	assert.InDelta(t, 120, start.Y, 1e-9)

	// Night spans 0.8 -> 1.2, so midnight is its midpoint.
	mid := engine.Celestials(0, o, width).Moon.Position
	assert.InDelta(t, width/2, mid.X, 1e-9)
	assert.InDelta(t, 40, mid.Y, 1e-9)

	end := engine.Celestials(o.SunriseStart, o, width).Moon.Position
	assert.InDelta(t, width, end.X, 1e-9)
	assert.InDelta(t, 120, end.Y, 1e-9)

	// Always positioned, even in full daylight.
	day := engine.Celestials(0.5, o, width).Moon.Position
	assert.NotEqual(t, engine.Position{}, day)
}

func TestCelestials_AlphaBounds(t *testing.T) {
	o := engine.DefaultOptions()
	for i := 0; i < 1000; i++ {
		ct := engine.Celestials(float64(i)/1000, o, width)
		assert.GreaterOrEqual(t, ct.Sun.Alpha, 0.0)
		assert.LessOrEqual(t, ct.Sun.Alpha, 1.0)
		assert.GreaterOrEqual(t, ct.Moon.Alpha, 0.0)
		assert.LessOrEqual(t, ct.Moon.Alpha, 1.0)
	}
}

func TestMappings_ArePure(t *testing.T) {
	o := engine.DefaultOptions()
	for _, tod := range []float64{0, 0.21, 0.5, 0.77, 0.93} {
		assert.Equal(t, engine.Celestials(tod, o, width), engine.Celestials(tod, o, width))
		assert.Equal(t, engine.OverlayAlpha(tod, o), engine.OverlayAlpha(tod, o))
	}
}

func TestRGB(t *testing.T) {
	c := engine.RGB(0x123456)
	assert.Equal(t, uint8(0x12), c.R)
	assert.Equal(t, uint8(0x34), c.G)
	assert.Equal(t, uint8(0x56), c.B)
	assert.Equal(t, uint8(0xFF), c.A)
}
