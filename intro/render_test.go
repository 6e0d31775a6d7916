package intro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invite/parameter"
)

func TestRenderState_Resize(t *testing.T) {
	var st RenderState
	st.Parallax.Set(0.5, 0.5)
	st.Resize(Viewport{Width: 800, Height: 600, PixelRatio: 0.5})

	assert.Equal(t, 400.0, st.CX)
	assert.Equal(t, 300.0, st.CY)
	assert.InDelta(t, 432, st.Radius, 1e-9)
	assert.Equal(t, 1.0, st.PixelRatio, "pixel ratio is at least 1")
	assert.Equal(t, Parallax{0.5, 0.5}, st.Parallax, "resize keeps parallax")
}

func TestBoost(t *testing.T) {
	assert.Equal(t, 1.0, Boost(0, false))
	assert.Equal(t, 1.0, Boost(0, true))
	assert.InDelta(t, 23.0, Boost(1, false), 1e-9)
	assert.InDelta(t, 3.4, Boost(1, true), 1e-9)
	assert.InDelta(t, 6.5, Boost(0.5, false), 1e-9)
}

func TestTwinkleAlpha(t *testing.T) {
	assert.InDelta(t, 0.74, TwinkleAlpha(1, 0, 0), 1e-9)
	assert.InDelta(t, 0.94*0.5, TwinkleAlpha(0.5, 1.5707963267948966, 0), 1e-9)
}

func newTestRenderer(field []Particle, reduced bool) (*Renderer, *RenderState) {
	st := &RenderState{}
	st.Resize(Viewport{Width: 1000, Height: 500, PixelRatio: 1})
	return &Renderer{Field: field, State: st, ReducedMotion: reduced, Origin: epoch}, st
}

func TestRenderer_IdleFrame(t *testing.T) {
	field := NewField(150, 0.1, seeded())
	r, _ := newTestRenderer(field, false)
	c := &recordingCanvas{}

	r.Draw(c, epoch, 0, false)

	assert.Equal(t, 1, c.clears)
	assert.Len(t, c.circles, len(field))
	assert.Empty(t, c.lines)

	for i, p := range field {
		assert.InDelta(t, 500+p.X*540, c.circles[i].x, 1e-9)
		assert.InDelta(t, 250+p.Y*540, c.circles[i].y, 1e-9)
		assert.GreaterOrEqual(t, c.circles[i].r, parameter.MinStroke)
	}
}

func TestRenderer_AccentColour(t *testing.T) {
	field := []Particle{
		{Size: 1, Twinkle: 1, Depth: 1, Accent: true},
		{Size: 1, Twinkle: 1, Depth: 1},
	}
	r, _ := newTestRenderer(field, false)
	c := &recordingCanvas{}
	r.Draw(c, epoch, 0, false)

	require.Len(t, c.circles, 2)
	assert.Equal(t, [3]uint8{255, 156, 35}, [3]uint8{c.circles[0].c.R, c.circles[0].c.G, c.circles[0].c.B})
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{c.circles[1].c.R, c.circles[1].c.G, c.circles[1].c.B})
	assert.Equal(t, uint8(189), c.circles[0].c.A)
}

func TestRenderer_WarpTrails(t *testing.T) {
	field := []Particle{{X: 0.5, Y: 0, Size: 2, Twinkle: 1, Depth: 1}}
	r, _ := newTestRenderer(field, false)
	c := &recordingCanvas{}

	r.Draw(c, epoch, 0.5, true)
	require.Len(t, c.lines, 1)

	// boost 6.5, trail 45% of boost behind
	l := c.lines[0]
	assert.InDelta(t, 500+0.5*540*6.05, l.x0, 1e-9)
	assert.InDelta(t, 500+0.5*540*6.5, l.x1, 1e-9)
	assert.InDelta(t, 2*(0.55+0.4), l.width, 1e-9)
	assert.InDelta(t, 2*(0.8+1.0), c.circles[0].r, 1e-9)
}

func TestRenderer_ReducedMotionHasNoTrails(t *testing.T) {
	field := NewField(150, 0.02, seeded())
	r, _ := newTestRenderer(field, true)
	c := &recordingCanvas{}

	r.Draw(c, epoch.Add(time.Second), 1, true)
	assert.Empty(t, c.lines)
	assert.Len(t, c.circles, len(field))
}

func TestRenderer_ParallaxOffsetScalesWithDepth(t *testing.T) {
	field := []Particle{
		{Size: 1, Twinkle: 1, Depth: 0.5},
		{Size: 1, Twinkle: 1, Depth: 1.5},
	}
	r, st := newTestRenderer(field, false)
	st.Parallax.Set(1, -1)
	c := &recordingCanvas{}
	r.Draw(c, epoch, 0, false)

	assert.InDelta(t, 500+17, c.circles[0].x, 1e-9)
	assert.InDelta(t, 250-17, c.circles[0].y, 1e-9)
	assert.InDelta(t, 500+51, c.circles[1].x, 1e-9)
}
