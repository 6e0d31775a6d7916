package intro

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/lixenwraith/invite/engine"
)

var (
	// ErrUnavailable is returned by Mount when a required host anchor is missing
	ErrUnavailable = errors.New("intro: host anchors unavailable")
	// ErrNoCanvas is returned by hosts that cannot provide a drawing surface
	ErrNoCanvas = errors.New("intro: canvas unavailable")
)

// Viewport is the overlay's size in logical canvas units
type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

// Canvas is a 2D immediate-mode drawing surface in logical units
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// Host provides the overlay's drawing surface and geometry
type Host interface {
	Viewport() Viewport
	Canvas() (Canvas, error)
}

// Scheduler is the subset of engine.Scheduler the overlay runs on
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) engine.Handle
	RequestFrame(fn func(now time.Time)) engine.Handle
}

// SeenStore reads and persists the dismissal flag; implementations swallow their own failures
type SeenStore interface {
	Seen(ctx context.Context) bool
	MarkSeen(ctx context.Context)
}

// Sound receives audio cues; nil disables audio
type Sound interface {
	PlayWarp(d time.Duration)
	PlaySparkle()
}

// Metrics receives overlay counters; nil disables metrics
type Metrics interface {
	FrameRendered()
	SparklesSpawned(n int)
	PhaseEntered(phase string)
	OverlayShown(shown bool)
}
