package intro

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/invite/config"
)

var epoch = time.Date(2026, 4, 26, 16, 0, 0, 0, time.UTC)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testSettings() config.IntroSettings {
	return config.IntroSettings{
		Enabled:        true,
		ShowEveryVisit: true,
		TitleLine1:     config.DefaultTitleLine1,
		TitleLine2:     config.DefaultTitleLine2,
		WarpDuration:   300 * time.Millisecond,
		FadeDuration:   200 * time.Millisecond,
		StarCount:      150,
		AccentRatio:    0.02,
	}
}

type line struct {
	x0, y0, x1, y1, width float64
}

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

// recordingCanvas keeps the draw calls of the last frame
type recordingCanvas struct {
	clears  int
	circles []circle
	lines   []line
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.circles = c.circles[:0]
	c.lines = c.lines[:0]
}

func (c *recordingCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	c.circles = append(c.circles, circle{x, y, r, col})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, _ color.NRGBA) {
	c.lines = append(c.lines, line{x0, y0, x1, y1, width})
}

type fakeHost struct {
	viewport Viewport
	canvas   *recordingCanvas
	err      error
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		viewport: Viewport{Width: 800, Height: 600, PixelRatio: 2},
		canvas:   &recordingCanvas{},
	}
}

func (h *fakeHost) Viewport() Viewport { return h.viewport }

func (h *fakeHost) Canvas() (Canvas, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.canvas, nil
}

type fakeProbe struct {
	capability Capability
	grant      bool

	requested int
	enabled   int
	disabled  int
}

func (p *fakeProbe) Capability() Capability { return p.capability }

func (p *fakeProbe) RequestPermission() bool {
	p.requested++
	return p.grant
}

func (p *fakeProbe) Enable() func() {
	p.enabled++
	return func() { p.disabled++ }
}

type fakeSound struct {
	warps    []time.Duration
	sparkles int
}

func (s *fakeSound) PlayWarp(d time.Duration) { s.warps = append(s.warps, d) }
func (s *fakeSound) PlaySparkle()             { s.sparkles++ }

type fakeMetrics struct {
	frames   int
	sparkles int
	phases   []string
	shown    []bool
}

func (m *fakeMetrics) FrameRendered()          { m.frames++ }
func (m *fakeMetrics) SparklesSpawned(n int)   { m.sparkles += n }
func (m *fakeMetrics) PhaseEntered(p string)   { m.phases = append(m.phases, p) }
func (m *fakeMetrics) OverlayShown(shown bool) { m.shown = append(m.shown, shown) }
