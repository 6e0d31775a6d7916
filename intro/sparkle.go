package intro

import (
	"image/color"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/invite/engine"
	"github.com/lixenwraith/invite/parameter"
	"github.com/lixenwraith/invite/parameter/visual"
)

// Sparkle is a short-lived glyph spawned near a touch point
type Sparkle struct {
	ID    uint64
	X, Y  float64
	Size  float64
	Layer float64
	Glyph rune
	Color color.NRGBA
	Born  time.Time
	TTL   time.Duration

	timer engine.Handle
}

// SparkleEmitter spawns layered sparkle bursts and removes each after its own TTL
type SparkleEmitter struct {
	sched Scheduler
	u     func() float64

	live   map[uint64]*Sparkle
	nextID uint64

	lastBurst time.Time
	hasBurst  bool

	// OnSpawn is called after every burst with the number of sparkles created
	OnSpawn func(n int)
}

// NewSparkleEmitter creates an emitter scheduling removals on sched
func NewSparkleEmitter(sched Scheduler, rnd *rand.Rand) *SparkleEmitter {
	return &SparkleEmitter{
		sched: sched,
		u:     uniform(rnd),
		live:  make(map[uint64]*Sparkle),
	}
}

// TouchStart spawns a burst and restarts the move throttle
func (e *SparkleEmitter) TouchStart(x, y float64) {
	e.Burst(x, y)
	e.lastBurst = e.sched.Now()
	e.hasBurst = true
}

// TouchMove spawns a burst unless one was spawned within the throttle window
func (e *SparkleEmitter) TouchMove(x, y float64) {
	now := e.sched.Now()
	if e.hasBurst && now.Sub(e.lastBurst) < parameter.SparkleThrottle {
		return
	}
	e.lastBurst = now
	e.hasBurst = true
	e.Burst(x, y)
}

// TouchEnd spawns a burst at the lift point; also used for cancel
func (e *SparkleEmitter) TouchEnd(x, y float64) {
	e.Burst(x, y)
}

// Burst spawns one sparkle per layer around (x, y)
func (e *SparkleEmitter) Burst(x, y float64) int {
	now := e.sched.Now()
	for _, layer := range parameter.SparkleLayers {
		spread := (1 - layer) * parameter.SparkleSpreadMax

		glyph := parameter.SparkleGlyph
		if e.u() > 1-parameter.SparkleAltGlyphChance {
			glyph = parameter.SparkleAltGlyph
		}
		offX := math.Round(e.u()*spread - spread/2)
		offY := math.Round(e.u()*spread - spread/2)
		size := parameter.SparkleSizeBase + e.u()*parameter.SparkleSizeSpread*layer

		tint := visual.RgbSparkle
		if e.u() > 1-parameter.SparkleAmberChance {
			tint = visual.RgbSparkleAmber
		}

		ttlMs := math.Round(e.u() * layer * float64(parameter.SparkleTTLSpread.Milliseconds()))
		ttl := max(parameter.SparkleTTLMin, time.Duration(ttlMs)*time.Millisecond)

		e.nextID++
		s := &Sparkle{
			ID:    e.nextID,
			X:     x + offX,
			Y:     y + offY,
			Size:  size,
			Layer: layer,
			Glyph: glyph,
			Color: e.jitter(tint),
			Born:  now,
			TTL:   ttl,
		}
		id := s.ID
		s.timer = e.sched.AfterFunc(ttl, func() {
			delete(e.live, id)
		})
		e.live[id] = s
	}

	n := len(parameter.SparkleLayers)
	if e.OnSpawn != nil {
		e.OnSpawn(n)
	}
	return n
}

// jitter shifts the tint's hue slightly so bursts don't look stamped
func (e *SparkleEmitter) jitter(rgb visual.RGB) color.NRGBA {
	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, s, v := c.Hsv()
	h = math.Mod(h+(e.u()*2-1)*parameter.SparkleHueJitter+360, 360)
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(visual.SparkleAlpha * 255))}
}

// Live returns the current sparkles in spawn order
func (e *SparkleEmitter) Live() []Sparkle {
	out := make([]Sparkle, 0, len(e.live))
	for _, s := range e.live {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of live sparkles
func (e *SparkleEmitter) Count() int {
	return len(e.live)
}

// Clear force-removes every sparkle and cancels their timers
func (e *SparkleEmitter) Clear() int {
	n := len(e.live)
	for id, s := range e.live {
		if s.timer != nil {
			s.timer.Stop()
		}
		delete(e.live, id)
	}
	return n
}
