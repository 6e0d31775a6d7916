// Package intro implements the warp-intro splash: a reactive starfield overlay that
// accelerates into a warp on interaction and tears itself down through a timed transition
package intro

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/parameter"
)

// Deps are the host collaborators an overlay is mounted into
// Host, Events and Scheduler are required; every other field may be nil
type Deps struct {
	Host      Host
	Events    *event.Dispatcher
	Scheduler Scheduler

	Seen        SeenStore
	Lock        *InputLock
	Orientation OrientationProbe
	Sound       Sound
	Metrics     Metrics
	Rand        *rand.Rand
}

// Overlay is a mounted intro splash
// All methods must be called on the scheduler goroutine
type Overlay struct {
	settings      config.IntroSettings
	reducedMotion bool

	host    Host
	events  *event.Dispatcher
	sched   Scheduler
	seen    SeenStore
	sound   Sound
	metrics Metrics

	visible     bool
	interactive bool
	torn        bool

	canvas     Canvas
	state      RenderState
	renderer   *Renderer
	transition *Transition
	sparkles   *SparkleEmitter

	detach  []func()
	release func()

	orientation        *orientationBinding
	orientationTimeout time.Duration
}

// Mount evaluates the visibility gate and, when shown, builds the starfield, takes the
// input lock, attaches listeners and starts the render loop
//
// A missing Host, Events or Scheduler returns ErrUnavailable. A canvas failure leaves the
// overlay hidden with the lock released; it is logged, not returned
func Mount(ctx context.Context, settings config.IntroSettings, reducedMotion bool, deps Deps) (*Overlay, error) {
	if deps.Host == nil || deps.Events == nil || deps.Scheduler == nil {
		return nil, ErrUnavailable
	}

	o := &Overlay{
		settings:           settings,
		reducedMotion:      reducedMotion,
		host:               deps.Host,
		events:             deps.Events,
		sched:              deps.Scheduler,
		seen:               deps.Seen,
		sound:              deps.Sound,
		metrics:            deps.Metrics,
		orientationTimeout: parameter.OrientationSignalTimeout,
	}
	o.transition = NewTransition(o.sched, settings.WarpDuration, settings.FadeDuration, func() {
		o.teardown(true)
	})

	seen := false
	if o.seen != nil {
		seen = o.seen.Seen(ctx)
	}
	if !ShouldShow(settings.Enabled, settings.ShowEveryVisit, seen) {
		o.torn = true
		o.transition.Cancel()
		return o, nil
	}

	o.visible = true
	o.interactive = true
	o.release = func() {}
	if deps.Lock != nil {
		o.release = deps.Lock.Acquire()
	}

	canvas, err := o.host.Canvas()
	if err != nil || canvas == nil {
		log.Printf("intro: canvas unavailable, skipping animation: %v", err)
		o.teardown(false)
		return o, nil
	}
	o.canvas = canvas
	o.transition.OnPhase(o.phaseChanged)

	o.state.Resize(o.host.Viewport())
	o.state.Parallax.Set(0, 0)
	o.renderer = &Renderer{
		Field:         NewField(settings.StarCount, settings.AccentRatio, deps.Rand),
		State:         &o.state,
		ReducedMotion: reducedMotion,
		Origin:        o.sched.Now(),
	}
	o.sparkles = NewSparkleEmitter(o.sched, deps.Rand)
	o.sparkles.OnSpawn = o.sparklesSpawned

	o.on(event.PointerMove, o.onPointerMove)
	o.on(event.Click, func(event.Event) { o.Start() })
	o.on(event.KeyDown, o.onKeyDown)
	o.on(event.TouchStart, func(ev event.Event) { o.sparkles.TouchStart(ev.X, ev.Y) })
	o.on(event.TouchMove, func(ev event.Event) { o.sparkles.TouchMove(ev.X, ev.Y) })
	o.on(event.TouchEnd, func(ev event.Event) { o.sparkles.TouchEnd(ev.X, ev.Y) })
	o.on(event.TouchCancel, func(ev event.Event) { o.sparkles.TouchEnd(ev.X, ev.Y) })
	o.on(event.Resize, func(event.Event) { o.state.Resize(o.host.Viewport()) })
	o.bindOrientation(deps.Orientation)

	o.transition.RunFrames(o.drawFrame)

	if o.metrics != nil {
		o.metrics.OverlayShown(true)
	}
	return o, nil
}

func (o *Overlay) on(t event.Type, h event.Handler) func() {
	d := o.events.On(t, h)
	o.detach = append(o.detach, d)
	return d
}

func (o *Overlay) once(t event.Type, h event.Handler) func() {
	d := o.events.Once(t, h)
	o.detach = append(o.detach, d)
	return d
}

func (o *Overlay) bindOrientation(probe OrientationProbe) {
	if probe == nil {
		return
	}
	capability := probe.Capability()
	if capability == CapabilityUnavailable {
		return
	}

	b := &orientationBinding{probe: probe}
	o.orientation = b
	b.detach = append(b.detach, o.on(event.Orientation, func(ev event.Event) {
		if !ev.HasAngles {
			return
		}
		b.gotSignal = true
		o.state.Parallax.FromOrientation(ev.Gamma, ev.Beta)
	}))

	switch capability {
	case CapabilityGranted:
		b.enable(o)
	case CapabilityAvailable:
		b.detach = append(b.detach, o.once(event.PointerDown, func(event.Event) {
			if probe.RequestPermission() {
				b.enable(o)
			} else {
				b.shutdown()
			}
		}))
	}
}

func (o *Overlay) onPointerMove(ev event.Event) {
	if ev.Kind != event.PointerMouse {
		return
	}
	o.state.Parallax.FromPointer(ev.X, ev.Y, o.state.Width, o.state.Height)
}

func (o *Overlay) onKeyDown(ev event.Event) {
	if ev.Key != event.KeyEnter && ev.Key != event.KeySpace {
		return
	}
	o.Start()
}

func (o *Overlay) drawFrame(now time.Time) {
	o.renderer.Draw(o.canvas, now, o.transition.Progress(now), o.transition.Warping())
	if o.metrics != nil {
		o.metrics.FrameRendered()
	}
}

func (o *Overlay) phaseChanged(p Phase, _ time.Time) {
	if o.metrics != nil {
		o.metrics.PhaseEntered(p.String())
	}
}

func (o *Overlay) sparklesSpawned(n int) {
	if o.metrics != nil {
		o.metrics.SparklesSpawned(n)
	}
	if o.sound != nil {
		o.sound.PlaySparkle()
	}
}

// Start triggers the warp; no-op once past idle or after teardown
func (o *Overlay) Start() bool {
	if o.torn || !o.transition.Start() {
		return false
	}
	if o.sound != nil {
		o.sound.PlayWarp(o.settings.WarpDuration)
	}
	return true
}

// Close tears the overlay down immediately without persisting the seen flag
func (o *Overlay) Close() {
	o.transition.Cancel()
	o.teardown(false)
}

// teardown runs the cleanup steps once: frame task, listeners, sparkles, visibility,
// input lock and, on natural dismissal, the seen flag
func (o *Overlay) teardown(persist bool) {
	if o.torn {
		return
	}
	o.torn = true

	o.transition.Cancel()
	for _, d := range o.detach {
		d()
	}
	o.detach = nil
	if o.orientation != nil {
		o.orientation.shutdown()
	}
	if o.sparkles != nil {
		o.sparkles.Clear()
	}

	o.visible = false
	o.interactive = false
	if o.release != nil {
		o.release()
	}

	if persist && !o.settings.ShowEveryVisit && o.seen != nil {
		ctx, cancel := context.WithTimeout(context.Background(), parameter.StoreTimeout)
		o.seen.MarkSeen(ctx)
		cancel()
	}

	if o.metrics != nil && o.canvas != nil {
		o.metrics.OverlayShown(false)
	}
}

// OnPhase registers an observer for phase changes
func (o *Overlay) OnPhase(fn func(Phase, time.Time)) {
	o.transition.OnPhase(fn)
}

// Phase returns the transition phase; an overlay gated off at mount reports dismissed
func (o *Overlay) Phase() Phase {
	return o.transition.Phase()
}

// Visible reports whether the overlay is on screen
func (o *Overlay) Visible() bool {
	return o.visible
}

// Interactive reports whether the overlay accepts input
func (o *Overlay) Interactive() bool {
	return o.interactive
}

// Opacity is the overlay opacity hosts should composite with at now
func (o *Overlay) Opacity(now time.Time) float64 {
	if !o.visible {
		return 0
	}
	return o.transition.Opacity(now)
}

// Settings returns the settings the overlay was mounted with
func (o *Overlay) Settings() config.IntroSettings {
	return o.settings
}

// Sparkles returns the live sparkles in spawn order
func (o *Overlay) Sparkles() []Sparkle {
	if o.sparkles == nil {
		return nil
	}
	return o.sparkles.Live()
}

// Parallax returns the current parallax offset
func (o *Overlay) Parallax() Parallax {
	return o.state.Parallax
}

// State returns a copy of the projection geometry
func (o *Overlay) State() RenderState {
	return o.state
}

// Particles returns the star field; nil when the overlay never rendered
func (o *Overlay) Particles() []Particle {
	if o.renderer == nil {
		return nil
	}
	return o.renderer.Field
}

// Frames returns the number of rendered frames
func (o *Overlay) Frames() uint64 {
	if ft := o.transition.FrameTask(); ft != nil {
		return ft.Frames()
	}
	return 0
}
