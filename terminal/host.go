package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invite/core"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/page"
	"github.com/lixenwraith/invite/parameter/visual"
	"github.com/lixenwraith/invite/render"
)

// hintText is shown under the title while the overlay waits for input
const hintText = "клик · Enter · пробел"

// Host implements intro.Host on a tcell screen
// All methods except Fini must run on the scheduler goroutine
type Host struct {
	screen tcell.Screen
	mode   render.ColorMode
	events *event.Dispatcher
	lock   *intro.InputLock
	canvas *render.DotCanvas

	overlay *intro.Overlay
	page    *page.View

	input    inputState
	finiOnce sync.Once
}

// New wraps screen; call Init before use
func New(screen tcell.Screen, mode render.ColorMode, events *event.Dispatcher, lock *intro.InputLock) *Host {
	return &Host{
		screen: screen,
		mode:   mode,
		events: events,
		lock:   lock,
		canvas: render.NewDotCanvas(0, 0),
	}
}

// Init initializes the screen, enables mouse reporting and registers the crash screen
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()
	h.screen.Clear()
	core.SetCrashScreen(h.screen)
	h.resize()
	return nil
}

// Fini restores the terminal; safe from any goroutine and idempotent
func (h *Host) Fini() {
	h.finiOnce.Do(func() {
		core.SetCrashScreen(nil)
		h.screen.Fini()
	})
}

// Screen returns the underlying screen
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Viewport reports the screen size in dots
func (h *Host) Viewport() intro.Viewport {
	w, hgt := h.canvas.Size()
	return intro.Viewport{Width: float64(w), Height: float64(hgt), PixelRatio: 1}
}

// Canvas returns the braille raster; fails on a zero-sized screen
func (h *Host) Canvas() (intro.Canvas, error) {
	if w, hgt := h.canvas.Size(); w == 0 || hgt == 0 {
		return nil, intro.ErrNoCanvas
	}
	return h.canvas, nil
}

// Attach sets what Draw renders: the overlay while visible, then the page
func (h *Host) Attach(overlay *intro.Overlay, view *page.View) {
	h.overlay = overlay
	h.page = view
	if view != nil && h.lock != nil {
		view.Locked = h.lock.Locked
	}
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.canvas.Resize(cols, rows)
}

func (h *Host) introActive() bool {
	return h.overlay != nil && h.overlay.Interactive()
}

// HandleEvent translates and dispatches ev; returns false when the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case !h.introActive() && (ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')):
			return false
		}
		if h.page != nil {
			_, rows := h.screen.Size()
			h.page.HandleKey(ev, rows)
		}
	}

	for _, out := range h.input.translate(ev) {
		h.events.Dispatch(out)
	}
	return true
}

// Draw paints the current frame and shows it
func (h *Host) Draw(now time.Time) {
	switch {
	case h.overlay != nil && h.overlay.Visible():
		h.drawOverlay(now)
	case h.page != nil:
		h.page.Draw(h.screen, now, h.mode)
	default:
		h.screen.Clear()
	}
	h.screen.Show()
}

func (h *Host) drawOverlay(now time.Time) {
	o := h.overlay
	opacity := o.Opacity(now)
	bg := render.Fade(render.FromVisual(visual.RgbBackground), render.FromVisual(visual.RgbPageBackground), 1-opacity)

	h.canvas.Flush(h.screen, 0, 0, bg, opacity, h.mode)

	text := func(row int, s string, c visual.RGB, bold bool) {
		if s == "" {
			return
		}
		fg := bg.Blend(render.FromVisual(c), opacity)
		render.CenterText(h.screen, row, s, render.Style(fg, bg, h.mode).Bold(bold))
	}

	settings := o.Settings()
	_, rows := h.screen.Size()
	mid := rows / 2
	text(mid-3, settings.TitleLine1, visual.RgbTitle, true)
	text(mid-2, settings.TitleLine2, visual.RgbTitle, true)
	text(mid, settings.CoordsText, visual.RgbCoords, false)
	text(mid+1, settings.DateLine, visual.RgbDate, false)
	if o.Phase() == intro.PhaseIdle {
		text(rows-2, hintText, visual.RgbHint, false)
	}

	for _, s := range o.Sparkles() {
		src, a := render.FromNRGBA(s.Color)
		fg := bg.Blend(src, a*opacity)
		style := render.Style(fg, bg, h.mode).Bold(s.Size > 14)
		h.screen.SetContent(int(s.X)/2, int(s.Y)/4, s.Glyph, nil, style)
	}
}
