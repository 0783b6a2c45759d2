package ui

import (
	"image"
	"image/color"
	"math"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-daynight/internal/config"
	"github.com/tartampluch/go-daynight/internal/engine"
)

// layer is one canvas object placed at a depth. Lower depths draw first.
type layer struct {
	depth float64
	obj   fyne.CanvasObject
}

// SceneHost draws the day cycle with Fyne canvas primitives.
// It implements engine.Renderer and fyne.Layout; every method must run on
// the Fyne main goroutine.
type SceneHost struct {
	hints engine.LayoutHints

	root    *fyne.Container
	sky     *canvas.Rectangle
	ground  *canvas.Rectangle
	sun     *canvas.Circle
	moon    *canvas.Image
	overlay *canvas.Rectangle

	sunColor color.NRGBA
	size     fyne.Size
}

var _ engine.Renderer = (*SceneHost)(nil)

// NewSceneHost creates an empty scene. The ground is placed at
// hints.BackLayerDepth; the bodies and overlay arrive with Setup.
func NewSceneHost(hints engine.LayoutHints) *SceneHost {
	s := &SceneHost{
		hints:  hints,
		sky:    canvas.NewRectangle(engine.RGB(config.SkyColor)),
		ground: canvas.NewRectangle(engine.RGB(config.GroundColor)),
	}
	s.root = container.New(s, s.stack(nil)...)
	return s
}

// Content returns the canvas object to place in a window.
func (s *SceneHost) Content() fyne.CanvasObject {
	return s.root
}

// Setup builds the sun, moon and overlay and restacks the scene by depth.
func (s *SceneHost) Setup(p engine.SetupParams) {
	s.sunColor = p.SunColor
	s.sun = canvas.NewCircle(withAlpha(p.SunColor, p.SunAlpha))
	s.sun.Resize(fyne.NewSquareSize(2 * config.SunRadius))

	s.moon = canvas.NewImageFromImage(crescent(p.MoonColor, config.MoonSize, config.MoonShadowDX))
	s.moon.FillMode = canvas.ImageFillOriginal
	s.moon.ScaleMode = canvas.ImageScalePixels
	s.moon.Translucency = 1 - clampAlpha(p.MoonAlpha)
	s.moon.Resize(fyne.NewSquareSize(config.MoonSize))

	s.overlay = canvas.NewRectangle(withAlpha(engine.RGB(config.OverlayColor), p.OverlayAlpha))

	s.root.Objects = s.stack([]layer{
		{depth: p.BodyLayerDepth, obj: s.sun},
		{depth: p.BodyLayerDepth, obj: s.moon},
		{depth: p.OverlayDepth, obj: s.overlay},
	})
	s.Layout(s.root.Objects, s.root.Size())
	s.root.Refresh()
}

// stack orders the fixed layers and the given ones by depth. The sky is
// always the bottom layer.
func (s *SceneHost) stack(extra []layer) []fyne.CanvasObject {
	layers := append([]layer{{depth: s.hints.BackLayerDepth, obj: s.ground}}, extra...)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].depth < layers[j].depth })

	objs := make([]fyne.CanvasObject, 0, len(layers)+1)
	objs = append(objs, s.sky)
	for _, l := range layers {
		objs = append(objs, l.obj)
	}
	return objs
}

// Width returns the laid out scene width, or the configured scene width
// before the first layout pass.
func (s *SceneHost) Width() float64 {
	if s.size.Width <= 0 {
		return config.SceneWidth
	}
	return float64(s.size.Width)
}

// SetSunTransform centers the sun on pos.
func (s *SceneHost) SetSunTransform(pos engine.Position, alpha float64) {
	if s.sun == nil {
		return
	}
	s.sun.FillColor = withAlpha(s.sunColor, alpha)
	s.sun.Move(centered(pos, 2*config.SunRadius))
	s.sun.Refresh()
}

// SetMoonTransform centers the moon on pos.
func (s *SceneHost) SetMoonTransform(pos engine.Position, alpha float64) {
	if s.moon == nil {
		return
	}
	s.moon.Translucency = 1 - clampAlpha(alpha)
	s.moon.Move(centered(pos, config.MoonSize))
	s.moon.Refresh()
}

// SetOverlayAlpha sets the darkness of the full-scene overlay.
func (s *SceneHost) SetOverlayAlpha(alpha float64) {
	if s.overlay == nil {
		return
	}
	s.overlay.FillColor = withAlpha(engine.RGB(config.OverlayColor), alpha)
	s.overlay.Refresh()
}

// Layout stretches the sky and overlay over the scene and pins the ground to
// the bottom edge. Body positions are owned by the transforms.
func (s *SceneHost) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	s.size = size

	s.sky.Move(fyne.NewPos(0, 0))
	s.sky.Resize(size)

	groundH := float32(math.Min(config.GroundHeight, float64(size.Height)))
	s.ground.Move(fyne.NewPos(0, size.Height-groundH))
	s.ground.Resize(fyne.NewSize(size.Width, groundH))

	if s.overlay != nil {
		s.overlay.Move(fyne.NewPos(0, 0))
		s.overlay.Resize(size)
	}
}

// MinSize is the default scene size.
func (s *SceneHost) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(config.SceneWidth, config.SceneHeight)
}

// crescent renders a size×size disc of c with a dark disc offset by shadowDX
// drawn over it.
func crescent(c color.NRGBA, size, shadowDX int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	shadow := engine.RGB(config.OverlayColor)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if math.Hypot(px-r, py-r) > r {
				continue
			}
			if math.Hypot(px-r-float64(shadowDX), py-r) <= r {
				img.SetNRGBA(x, y, shadow)
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func centered(pos engine.Position, size float64) fyne.Position {
	return fyne.NewPos(float32(pos.X-size/2), float32(pos.Y-size/2))
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clampAlpha(alpha) * 0xFF))
	return c
}

func clampAlpha(a float64) float64 {
	return math.Max(0, math.Min(1, a))
}
