package engine

import (
	"image/color"

	"github.com/tartampluch/go-daynight/internal/config"
)

// Renderer is the host side of the clock: whatever scene graph draws the
// sun, the moon and the darkness overlay. The engine never touches visual
// primitives directly.
type Renderer interface {
	// Setup builds the host primitives. Called once per Bind.
	Setup(p SetupParams)

	// Width is the current viewport width used to map arc progress to X.
	Width() float64

	SetSunTransform(pos Position, alpha float64)
	SetMoonTransform(pos Position, alpha float64)
	SetOverlayAlpha(alpha float64)
}

// LayoutHints carries host depth hints for Bind.
type LayoutHints struct {
	// BackLayerDepth is the depth of the scene's back layer (clouds, skyline);
	// the celestial bodies are placed one unit behind it.
	BackLayerDepth float64
	OverlayDepth   float64
}

// DefaultLayoutHints returns the default depths.
func DefaultLayoutHints() LayoutHints {
	return LayoutHints{
		BackLayerDepth: config.DefaultBackLayerDepth,
		OverlayDepth:   config.DefaultOverlayDepth,
	}
}

// SetupParams describes the primitives a Renderer should create.
type SetupParams struct {
	BodyLayerDepth float64
	OverlayDepth   float64

	SunColor  color.NRGBA
	MoonColor color.NRGBA

	// Initial opacities before the first Advance.
	SunAlpha     float64
	MoonAlpha    float64
	OverlayAlpha float64
}
