package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/engine"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/render"
	"github.com/lixenwraith/invite/store"
)

type dotHost struct {
	canvas *render.DotCanvas
}

func (h *dotHost) Viewport() intro.Viewport {
	w, ht := h.canvas.Size()
	return intro.Viewport{Width: float64(w), Height: float64(ht), PixelRatio: 1}
}

func (h *dotHost) Canvas() (intro.Canvas, error) { return h.canvas, nil }

type countingProbe struct {
	enabled, disabled int
}

func (p *countingProbe) Capability() intro.Capability { return intro.CapabilityGranted }
func (p *countingProbe) RequestPermission() bool      { return true }

func (p *countingProbe) Enable() func() {
	p.enabled++
	return func() { p.disabled++ }
}

func newTestApp(probe intro.OrientationProbe, seen *store.SeenFlag) *app {
	cfg := config.Default()
	cfg.Intro.ShowEveryVisit = false

	a := &app{
		cfg:    cfg,
		sched:  engine.NewScheduler(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)),
		events: event.NewDispatcher(),
		lock:   &intro.InputLock{},
	}
	a.deps = intro.Deps{
		Events:      a.events,
		Scheduler:   a.sched,
		Seen:        seen,
		Lock:        a.lock,
		Orientation: probe,
	}
	return a
}

func TestWithIntro_InterruptClosesOverlay(t *testing.T) {
	probe := &countingProbe{}
	seen := store.NewSeenFlag(store.NewMemoryStore())
	a := newTestApp(probe, seen)
	host := &dotHost{canvas: render.NewDotCanvas(40, 12)}

	interrupted := errors.New("interrupted")
	var mounted *intro.Overlay
	err := a.withIntro(context.Background(), host, func(o *intro.Overlay) error {
		mounted = o
		require.True(t, o.Visible())
		require.True(t, a.lock.Locked())
		require.Equal(t, 1, probe.enabled)
		return interrupted
	})
	require.ErrorIs(t, err, interrupted)

	require.NotNil(t, mounted)
	assert.False(t, mounted.Visible())
	assert.Equal(t, intro.PhaseDismissed, mounted.Phase())
	assert.False(t, a.lock.Locked(), "lock released")
	assert.Equal(t, 1, probe.disabled, "sensor stopped")
	assert.Zero(t, a.events.Len(), "listeners detached")
	assert.Zero(t, a.sched.PendingFrames())
	assert.False(t, seen.Seen(context.Background()), "forced close does not persist")
}

func TestWithIntro_CloseAfterDismissalIsNoop(t *testing.T) {
	seen := store.NewSeenFlag(store.NewMemoryStore())
	a := newTestApp(nil, seen)
	host := &dotHost{canvas: render.NewDotCanvas(40, 12)}

	err := a.withIntro(context.Background(), host, func(o *intro.Overlay) error {
		a.events.Dispatch(event.Event{Type: event.Click, Kind: event.PointerMouse})
		a.sched.Advance(10 * time.Second)
		require.Equal(t, intro.PhaseDismissed, o.Phase())
		return nil
	})
	require.NoError(t, err)

	assert.True(t, seen.Seen(context.Background()), "natural dismissal persisted")
	assert.False(t, a.lock.Locked())
}
