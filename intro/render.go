package intro

import (
	"image/color"
	"math"
	"time"

	"github.com/lixenwraith/invite/parameter"
	"github.com/lixenwraith/invite/parameter/visual"
)

// RenderState is the projection geometry, recomputed on resize
type RenderState struct {
	Width, Height float64
	CX, CY        float64
	Radius        float64
	PixelRatio    float64
	Parallax      Parallax
}

// Resize recomputes centre and radius from the viewport; parallax is kept
func (r *RenderState) Resize(v Viewport) {
	r.Width = max(v.Width, 0)
	r.Height = max(v.Height, 0)
	r.CX = r.Width / 2
	r.CY = r.Height / 2
	r.Radius = max(r.Width, r.Height) * parameter.FieldRadiusFactor
	r.PixelRatio = max(1, v.PixelRatio)
}

// Boost is the radial expansion factor at warp progress p
func Boost(p float64, reducedMotion bool) float64 {
	if reducedMotion {
		return 1 + p*parameter.BoostReducedSlope
	}
	return 1 + p*p*parameter.BoostWarpFactor
}

// TwinkleAlpha is a star's alpha at t seconds
func TwinkleAlpha(twinkle, phase, t float64) float64 {
	return twinkle * (parameter.TwinkleBase + math.Sin(t+phase)*parameter.TwinkleSwing)
}

// Renderer paints the star field onto a canvas
type Renderer struct {
	Field         []Particle
	State         *RenderState
	ReducedMotion bool

	// Origin is the zero of the twinkle clock
	Origin time.Time
}

// Draw clears the canvas and paints every particle at warp progress p
// warping enables trails; it stays set through the fade
func (r *Renderer) Draw(c Canvas, now time.Time, p float64, warping bool) {
	c.Clear()

	st := r.State
	boost := Boost(p, r.ReducedMotion)
	trailLen := parameter.TrailBase + p*parameter.TrailGrowth
	trailBoost := max(1, boost-trailLen/100)
	t := now.Sub(r.Origin).Seconds()
	strength := parameter.ParallaxStrength

	for i := range r.Field {
		star := &r.Field[i]
		offX := st.Parallax.X * strength * star.Depth
		offY := st.Parallax.Y * strength * star.Depth
		sx := st.CX + star.X*st.Radius*boost + offX
		sy := st.CY + star.Y*st.Radius*boost + offY

		col := starColor(star.Accent, TwinkleAlpha(star.Twinkle, star.Phase, t))

		if warping && !r.ReducedMotion {
			px := st.CX + star.X*st.Radius*trailBoost + offX
			py := st.CY + star.Y*st.Radius*trailBoost + offY
			width := max(parameter.MinStroke, star.Size*(parameter.TrailWidthBase+p*parameter.TrailWidthGrowth))
			c.StrokeLine(px, py, sx, sy, width, col)
		}

		radius := max(parameter.MinStroke, star.Size*(parameter.StarRadiusBase+p*parameter.StarRadiusGrowth))
		c.FillCircle(sx, sy, radius, col)
	}
}

func starColor(accent bool, alpha float64) color.NRGBA {
	rgb := visual.RgbStar
	if accent {
		rgb = visual.RgbStarAccent
	}
	a := min(max(alpha, 0), 1)
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: uint8(math.Round(a * 255))}
}
