// Package window hosts the intro in a desktop or mobile window through ebiten
package window

import (
	"bytes"
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/invite/engine"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/page"
	"github.com/lixenwraith/invite/parameter/visual"
	"github.com/lixenwraith/invite/render"
)

// Logical font sizes, multiplied by the device scale factor at draw time
const (
	titleSize = 30.0
	bodySize  = 17.0
	hintSize  = 13.0
	lineStep  = 1.6
)

// Game implements ebiten.Game and intro.Host
// ebiten calls Update, Draw and Layout on one goroutine, which also runs the scheduler
type Game struct {
	sched  *engine.Scheduler
	clock  engine.Clock
	events *event.Dispatcher
	lock   *intro.InputLock

	overlay *intro.Overlay
	view    *page.View

	fonts  *text.GoTextFaceSource
	canvas imageCanvas
	devW   int
	devH   int
	scale  float64

	resized bool
	mouse   mouseTracker
	touches touchTracker
	ids     []ebiten.TouchID
	scroll  float64

	stopped atomic.Bool
}

// New creates a game with an initial logical size; Layout corrects it on the first tick
func New(sched *engine.Scheduler, clock engine.Clock, events *event.Dispatcher, lock *intro.InputLock, width, height int) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	g := &Game{
		sched:  sched,
		clock:  clock,
		events: events,
		lock:   lock,
		fonts:  src,
	}
	g.resize(width, height, 1)
	return g, nil
}

// Attach sets the overlay and the page shown after it
func (g *Game) Attach(overlay *intro.Overlay, view *page.View) {
	g.overlay = overlay
	g.view = view
	if view != nil && g.lock != nil {
		view.Locked = g.lock.Locked
	}
}

// Viewport reports the logical size and device scale
func (g *Game) Viewport() intro.Viewport {
	return intro.Viewport{
		Width:      float64(g.devW) / g.scale,
		Height:     float64(g.devH) / g.scale,
		PixelRatio: g.scale,
	}
}

// Canvas returns the offscreen star layer
func (g *Game) Canvas() (intro.Canvas, error) {
	if g.canvas.img == nil {
		return nil, intro.ErrNoCanvas
	}
	return &g.canvas, nil
}

func (g *Game) resize(w, h int, scale float64) {
	g.devW, g.devH, g.scale = w, h, scale
	g.canvas.resize(w, h, scale)
}

// Stop makes the next Update end the game; safe from any goroutine
func (g *Game) Stop() {
	g.stopped.Store(true)
}

func (g *Game) introActive() bool {
	return g.overlay != nil && g.overlay.Interactive()
}

// Layout renders at device resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	if w != g.devW || h != g.devH || scale != g.scale {
		g.resize(w, h, scale)
		g.resized = true
	}
	return w, h
}

// Update polls input, dispatches it and steps the scheduler
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.introActive() {
		return ebiten.Termination
	}
	if g.resized {
		g.resized = false
		g.events.Dispatch(event.Event{Type: event.Resize})
	}

	for _, ev := range g.pollInput() {
		g.events.Dispatch(ev)
	}

	if g.lock == nil || !g.lock.Locked() {
		_, dy := ebiten.Wheel()
		g.scroll = max(g.scroll-dy*bodySize*lineStep, 0)
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			g.scroll += bodySize * lineStep
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			g.scroll = max(g.scroll-bodySize*lineStep, 0)
		}
	}

	g.sched.AdvanceTo(g.clock.Now())
	return nil
}

func (g *Game) pollInput() []event.Event {
	cx, cy := ebiten.CursorPosition()
	out := g.mouse.update(g.logical(cx, cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.ids = ebiten.AppendTouchIDs(g.ids[:0])
	cur := make(map[ebiten.TouchID]point, len(g.ids))
	for _, id := range g.ids {
		cur[id] = g.logical(ebiten.TouchPosition(id))
	}
	out = append(out, g.touches.update(cur)...)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		out = append(out, event.Event{Type: event.KeyDown, Key: event.KeyEnter})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		out = append(out, event.Event{Type: event.KeyDown, Key: event.KeySpace})
	}
	return out
}

func (g *Game) logical(x, y int) point {
	return point{float64(x) / g.scale, float64(y) / g.scale}
}

// Draw paints the overlay while visible, then the page
func (g *Game) Draw(screen *ebiten.Image) {
	now := g.sched.Now()
	if g.overlay != nil && g.overlay.Visible() {
		g.drawOverlay(screen, now)
		return
	}
	screen.Fill(rgba(render.FromVisual(visual.RgbPageBackground)))
	if g.view != nil {
		g.drawPage(screen, now)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, now time.Time) {
	o := g.overlay
	opacity := o.Opacity(now)
	bg := render.Fade(render.FromVisual(visual.RgbBackground), render.FromVisual(visual.RgbPageBackground), 1-opacity)
	screen.Fill(rgba(bg))

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(g.canvas.img, op)

	s := o.Settings()
	mid := float64(g.devH) / 2
	title := titleSize * g.scale
	body := bodySize * g.scale
	g.centerText(screen, s.TitleLine1, titleSize, mid-2.4*title, visual.RgbTitle, opacity)
	g.centerText(screen, s.TitleLine2, titleSize, mid-1.2*title, visual.RgbTitle, opacity)
	g.centerText(screen, s.CoordsText, bodySize, mid+0.6*body, visual.RgbCoords, opacity)
	g.centerText(screen, s.DateLine, bodySize, mid+0.6*body+body*lineStep, visual.RgbDate, opacity)
	if o.Phase() == intro.PhaseIdle {
		g.centerText(screen, "нажмите, чтобы продолжить", hintSize, float64(g.devH)-3*hintSize*g.scale, visual.RgbHint, opacity)
	}

	for _, sp := range o.Sparkles() {
		g.drawSparkle(screen, sp, opacity)
	}
}

// drawSparkle strokes a four-pointed star; Go Regular has no dingbat glyphs
func (g *Game) drawSparkle(screen *ebiten.Image, sp intro.Sparkle, opacity float64) {
	col := sp.Color
	col.A = uint8(float64(col.A) * opacity)
	x, y := float32(sp.X*g.scale), float32(sp.Y*g.scale)
	r := float32(sp.Size * g.scale / 2)
	w := max(r/5, 1)
	vector.StrokeLine(screen, x-r, y, x+r, y, w, col, true)
	vector.StrokeLine(screen, x, y-r, x, y+r, w, col, true)
	vector.DrawFilledCircle(screen, x, y, w, col, true)
}

func (g *Game) drawPage(screen *ebiten.Image, now time.Time) {
	lines := g.view.Lines(now)
	step := bodySize * lineStep * g.scale
	maxScroll := max(float64(len(lines))*bodySize*lineStep-float64(g.devH)/g.scale, 0)
	g.scroll = min(g.scroll, maxScroll)

	y := step - g.scroll*g.scale
	for _, ln := range lines {
		if y > -step && y < float64(g.devH)+step && ln.Text != "" {
			c := page.ToneColor(ln.Tone)
			g.centerText(screen, ln.Text, bodySize, y, visual.RGB{R: c.R, G: c.G, B: c.B}, 1)
		}
		y += step
	}
}

func (g *Game) centerText(dst *ebiten.Image, s string, size, y float64, c visual.RGB, alpha float64) {
	if s == "" {
		return
	}
	face := &text.GoTextFace{Source: g.fonts, Size: size * g.scale}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.devW)/2, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
