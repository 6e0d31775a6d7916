// Package metrics exposes overlay counters through a prometheus registry
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements intro.Metrics and observes store failures
// Every metric carries the session label so textfiles from separate runs stay distinct
type Metrics struct {
	Registry *prometheus.Registry

	Frames      prometheus.Counter
	Sparkles    prometheus.Counter
	Phases      *prometheus.CounterVec
	Shown       prometheus.Gauge
	StoreErrors *prometheus.CounterVec
}

// New registers all metrics on a fresh registry
func New(session string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	labels := prometheus.Labels{"session": session}

	return &Metrics{
		Registry: reg,
		Frames: f.NewCounter(prometheus.CounterOpts{
			Name:        "invite_intro_frames_rendered_total",
			Help:        "Starfield frames drawn by the intro overlay",
			ConstLabels: labels,
		}),
		Sparkles: f.NewCounter(prometheus.CounterOpts{
			Name:        "invite_intro_sparkles_spawned_total",
			Help:        "Touch sparkles spawned",
			ConstLabels: labels,
		}),
		Phases: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "invite_intro_phase_transitions_total",
			Help:        "Transition phases entered, by phase",
			ConstLabels: labels,
		}, []string{"phase"}),
		Shown: f.NewGauge(prometheus.GaugeOpts{
			Name:        "invite_intro_overlay_shown",
			Help:        "1 while the intro overlay is visible",
			ConstLabels: labels,
		}),
		StoreErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "invite_store_errors_total",
			Help:        "Swallowed seen-store failures, by operation",
			ConstLabels: labels,
		}, []string{"op"}),
	}
}

// FrameRendered counts one drawn frame
func (m *Metrics) FrameRendered() {
	m.Frames.Inc()
}

// SparklesSpawned counts n new sparkles
func (m *Metrics) SparklesSpawned(n int) {
	if n > 0 {
		m.Sparkles.Add(float64(n))
	}
}

// PhaseEntered counts a transition into phase
func (m *Metrics) PhaseEntered(phase string) {
	m.Phases.WithLabelValues(phase).Inc()
}

// OverlayShown sets the visibility gauge
func (m *Metrics) OverlayShown(shown bool) {
	if shown {
		m.Shown.Set(1)
		return
	}
	m.Shown.Set(0)
}

// StoreError matches store.ErrorObserver
func (m *Metrics) StoreError(op string, _ error) {
	m.StoreErrors.WithLabelValues(op).Inc()
}

// WriteTextfile writes the registry in the node-exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
