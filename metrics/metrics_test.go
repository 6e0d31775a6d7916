package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("s1")

	m.FrameRendered()
	m.FrameRendered()
	m.SparklesSpawned(5)
	m.SparklesSpawned(0)
	m.PhaseEntered("warping")
	m.PhaseEntered("fading")
	m.PhaseEntered("warping")
	m.StoreError("read", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Frames))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Sparkles))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Phases.WithLabelValues("warping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Phases.WithLabelValues("fading")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("read")))
}

func TestMetrics_OverlayShown(t *testing.T) {
	m := New("s1")
	m.OverlayShown(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Shown))
	m.OverlayShown(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Shown))
}

func TestMetrics_IsolatedRegistries(t *testing.T) {
	a, b := New("a"), New("b")
	a.FrameRendered()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Frames))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New("abc")
	m.FrameRendered()
	m.OverlayShown(true)

	path := filepath.Join(t.TempDir(), "invite.prom")
	require.NoError(t, m.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `invite_intro_frames_rendered_total{session="abc"} 1`)
	assert.Contains(t, out, `invite_intro_overlay_shown{session="abc"} 1`)

	n, err := testutil.GatherAndCount(m.Registry)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "vectors are not exported until a label is used")

	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(`
# HELP invite_intro_overlay_shown 1 while the intro overlay is visible
# TYPE invite_intro_overlay_shown gauge
invite_intro_overlay_shown{session="abc"} 1
`), "invite_intro_overlay_shown"))
}
