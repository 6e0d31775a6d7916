package intro

import (
	"time"

	"github.com/lixenwraith/invite/engine"
)

// Phase is the overlay's position in the intro lifecycle; it only moves forward
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseWarping
	PhaseFading
	PhaseDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWarping:
		return "warping"
	case PhaseFading:
		return "fading"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Transition drives idle → warping → fading → dismissed and owns the render frame task
type Transition struct {
	sched Scheduler
	warp  time.Duration
	fade  time.Duration

	phase         Phase
	warpStartedAt time.Time
	fadeStartedAt time.Time

	fadeTimer    engine.Handle
	dismissTimer engine.Handle
	frame        *engine.FrameTask

	observers []func(Phase, time.Time)
	onDismiss func()
}

// NewTransition creates an idle transition; onDismiss runs once when the dismissal timer fires
func NewTransition(sched Scheduler, warp, fade time.Duration, onDismiss func()) *Transition {
	return &Transition{
		sched:     sched,
		warp:      warp,
		fade:      fade,
		onDismiss: onDismiss,
	}
}

// OnPhase registers an observer for every phase change
func (t *Transition) OnPhase(fn func(Phase, time.Time)) {
	t.observers = append(t.observers, fn)
}

// RunFrames starts the render frame task; no-op once running or dismissed
func (t *Transition) RunFrames(fn func(now time.Time)) {
	if t.phase == PhaseDismissed || (t.frame != nil && t.frame.Running()) {
		return
	}
	t.frame = engine.StartFrameTask(t.sched, fn)
}

// Start enters warping and schedules the fade and dismissal timers
// Returns false, scheduling nothing, once past idle
func (t *Transition) Start() bool {
	if t.phase != PhaseIdle {
		return false
	}
	now := t.sched.Now()
	t.warpStartedAt = now
	t.enter(PhaseWarping, now)

	t.fadeTimer = t.sched.AfterFunc(t.warp, t.beginFade)
	t.dismissTimer = t.sched.AfterFunc(t.warp+t.fade, t.dismiss)
	return true
}

func (t *Transition) beginFade() {
	if t.phase != PhaseWarping {
		return
	}
	now := t.sched.Now()
	t.fadeStartedAt = now
	t.enter(PhaseFading, now)
}

func (t *Transition) dismiss() {
	if !t.halt() {
		return
	}
	if t.onDismiss != nil {
		t.onDismiss()
	}
}

// Cancel forces the dismissed phase without running onDismiss
// Returns false if already dismissed
func (t *Transition) Cancel() bool {
	return t.halt()
}

// halt stops the frame task, cancels pending timers and enters dismissed
func (t *Transition) halt() bool {
	if t.phase == PhaseDismissed {
		return false
	}
	if t.frame != nil {
		t.frame.Stop()
	}
	if t.fadeTimer != nil {
		t.fadeTimer.Stop()
	}
	if t.dismissTimer != nil {
		t.dismissTimer.Stop()
	}
	t.enter(PhaseDismissed, t.sched.Now())
	return true
}

func (t *Transition) enter(p Phase, now time.Time) {
	t.phase = p
	for _, fn := range t.observers {
		fn(p, now)
	}
}

// Phase returns the current phase
func (t *Transition) Phase() Phase {
	return t.phase
}

// Warping reports whether trails and boost are active; stays true through the fade
func (t *Transition) Warping() bool {
	return t.phase == PhaseWarping || t.phase == PhaseFading
}

// WarpStartedAt returns the time Start entered warping; zero while idle
func (t *Transition) WarpStartedAt() time.Time {
	return t.warpStartedAt
}

// Progress is the warp progress in [0, 1] at now; 0 while idle
func (t *Transition) Progress(now time.Time) float64 {
	if t.phase == PhaseIdle || t.warp <= 0 {
		return 0
	}
	p := float64(now.Sub(t.warpStartedAt)) / float64(t.warp)
	return min(max(p, 0), 1)
}

// Opacity is the overlay opacity at now: 1 until fading, linear to 0 across the fade
func (t *Transition) Opacity(now time.Time) float64 {
	switch t.phase {
	case PhaseFading:
		if t.fade <= 0 {
			return 0
		}
		o := 1 - float64(now.Sub(t.fadeStartedAt))/float64(t.fade)
		return min(max(o, 0), 1)
	case PhaseDismissed:
		return 0
	default:
		return 1
	}
}

// FrameTask exposes the render task for inspection
func (t *Transition) FrameTask() *engine.FrameTask {
	return t.frame
}
