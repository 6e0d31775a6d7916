package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/invite/parameter/visual"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero color
var RGBBlack = RGB{0, 0, 0}

// FromVisual converts a palette entry
func FromVisual(c visual.RGB) RGB {
	return RGB{c.R, c.G, c.B}
}

// FromNRGBA drops the alpha channel, returning it separately in [0, 1]
func FromNRGBA(c color.NRGBA) (RGB, float64) {
	return RGB{c.R, c.G, c.B}, float64(c.A) / 255
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv + 0.5),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv + 0.5),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv + 0.5),
	}
}

// Fade mixes from toward to in Lab space; t=0 is from, t=1 is to
// Used for the overlay fade so the sky dissolves into the page without a muddy midpoint
func Fade(from, to RGB, t float64) RGB {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	r, g, b := from.colorful().BlendLab(to.colorful(), t).Clamped().RGB255()
	return RGB{r, g, b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
