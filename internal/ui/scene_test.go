package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-daynight/internal/config"
	"github.com/tartampluch/go-daynight/internal/engine"
)

func newBoundScene(t *testing.T, hints engine.LayoutHints) (*SceneHost, *engine.DayCycle) {
	t.Helper()
	test.NewApp()

	host := NewSceneHost(hints)
	w := test.NewWindow(host.Content())
	w.Resize(fyne.NewSize(800, 600))
	t.Cleanup(w.Close)

	cycle := engine.New().Bind(host, hints)
	return host, cycle
}

func TestSceneHost_StacksByDepth(t *testing.T) {
	host, _ := newBoundScene(t, engine.DefaultLayoutHints())

	objs := host.root.Objects
	require.Len(t, objs, 5)
	assert.Same(t, host.sky, objs[0])
	assert.Same(t, host.sun, objs[1], "bodies sit one layer behind the ground")
	assert.Same(t, host.moon, objs[2])
	assert.Same(t, host.ground, objs[3])
	assert.Same(t, host.overlay, objs[4])
}

func TestSceneHost_OverlayBelowGroundWhenHinted(t *testing.T) {
	host, _ := newBoundScene(t, engine.LayoutHints{BackLayerDepth: 50, OverlayDepth: 10})

	objs := host.root.Objects
	require.Len(t, objs, 5)
	assert.Same(t, host.sky, objs[0], "the sky is always at the bottom")
	assert.Same(t, host.overlay, objs[1])
	assert.Same(t, host.ground, objs[4])
}

func TestSceneHost_SetupState(t *testing.T) {
	host, cycle := newBoundScene(t, engine.DefaultLayoutHints())

	assert.Equal(t, uint8(0), host.sun.FillColor.(color.NRGBA).A, "sun starts hidden")
	assert.Equal(t, 0.0, host.moon.Translucency, "moon starts opaque")

	overlay := host.overlay.FillColor.(color.NRGBA)
	assert.Equal(t, withAlpha(color.NRGBA{A: 0xFF}, cycle.Options().MinDarkAlpha), overlay)
}

func TestSceneHost_WidthAndLayout(t *testing.T) {
	host := NewSceneHost(engine.DefaultLayoutHints())
	assert.Equal(t, float64(config.SceneWidth), host.Width(), "fallback before layout")

	host.Layout(nil, fyne.NewSize(640, 100))
	assert.Equal(t, 640.0, host.Width())
	assert.Equal(t, fyne.NewSize(640, 100), host.sky.Size())
	assert.Equal(t, fyne.NewSize(640, 100), host.ground.Size(), "ground is clamped to the scene height")
	assert.Equal(t, fyne.NewPos(0, 0), host.ground.Position())

	host.Layout(nil, fyne.NewSize(640, 480))
	assert.Equal(t, fyne.NewPos(0, 480-config.GroundHeight), host.ground.Position())
}

func TestSceneHost_Transforms(t *testing.T) {
	host, _ := newBoundScene(t, engine.DefaultLayoutHints())

	host.SetSunTransform(engine.Position{X: 400, Y: 40}, 1)
	assert.Equal(t, fyne.NewPos(400-config.SunRadius, 40-config.SunRadius), host.sun.Position())
	assert.Equal(t, uint8(0xFF), host.sun.FillColor.(color.NRGBA).A)

	host.SetMoonTransform(engine.Position{X: 100, Y: 120}, 0.25)
	assert.Equal(t, fyne.NewPos(100-config.MoonSize/2, 120-config.MoonSize/2), host.moon.Position())
	assert.InDelta(t, 0.75, host.moon.Translucency, 1e-9)

	host.SetOverlayAlpha(2)
	assert.Equal(t, uint8(0xFF), host.overlay.FillColor.(color.NRGBA).A, "alpha is clamped")
}

func TestSceneHost_DrivenByCycle(t *testing.T) {
	host, cycle := newBoundScene(t, engine.DefaultLayoutHints())

	cycle.Advance(cycle.Options().DayLengthSeconds / 2) // noon
	st := cycle.Snapshot()

	assert.Equal(t, uint8(0xFF), host.sun.FillColor.(color.NRGBA).A)
	assert.Equal(t, 1.0, host.moon.Translucency, "moon is hidden at noon")
	assert.Equal(t, withAlpha(color.NRGBA{A: 0xFF}, st.Overlay), host.overlay.FillColor)

	want := centered(st.Celestial.Sun.Position, 2*config.SunRadius)
	assert.Equal(t, want, host.sun.Position())
}

func TestSceneHost_UnboundTransformsAreIgnored(t *testing.T) {
	host := NewSceneHost(engine.DefaultLayoutHints())

	assert.NotPanics(t, func() {
		host.SetSunTransform(engine.Position{}, 1)
		host.SetMoonTransform(engine.Position{}, 1)
		host.SetOverlayAlpha(1)
	})
}

func TestCrescent(t *testing.T) {
	moon := color.NRGBA{R: 0xCF, G: 0xE3, B: 0xFF, A: 0xFF}
	img := crescent(moon, config.MoonSize, config.MoonShadowDX)

	assert.Equal(t, config.MoonSize, img.Bounds().Dx())

	// Left limb is lit, center and right are shadowed, corners are empty.
	assert.Equal(t, moon, img.At(2, config.MoonSize/2))
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.At(config.MoonSize/2, config.MoonSize/2))
	assert.Equal(t, color.NRGBA{}, img.At(0, 0))
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}

	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0}, withAlpha(c, -1))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 128}, withAlpha(c, 0.5))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, withAlpha(c, 1))
}
