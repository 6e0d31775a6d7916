package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invite/parameter"
)

// drain streams s to completion and returns the left channel
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func zeroCrossings(samples []float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			n++
		}
	}
	return n
}

// silentManager is initialized without opening a speaker
func silentManager(now func() time.Time) *SoundManager {
	sm := NewSoundManager()
	sm.initialized = true
	if now != nil {
		sm.now = now
	}
	return sm
}

func TestSoundManager_GracefulWithoutInit(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayWarp(time.Second)
		sm.PlaySparkle()
		sm.Cleanup()
	})
	assert.Zero(t, sm.Active())
}

func TestSoundManager_PlayWarp(t *testing.T) {
	sm := silentManager(nil)
	sm.PlayWarp(0)
	assert.Zero(t, sm.Active(), "zero duration plays nothing")

	sm.PlayWarp(500 * time.Millisecond)
	assert.Equal(t, 1, sm.Active())

	sm.Cleanup()
	assert.Zero(t, sm.Active())
}

func TestSoundManager_SparkleRateLimited(t *testing.T) {
	now := time.Date(2026, 4, 26, 16, 0, 0, 0, time.UTC)
	sm := silentManager(func() time.Time { return now })

	sm.PlaySparkle()
	sm.PlaySparkle()
	assert.Equal(t, 1, sm.Active(), "second blip inside the gap is dropped")

	now = now.Add(parameter.SparkleBlipGap)
	sm.PlaySparkle()
	assert.Equal(t, 2, sm.Active())
}

func TestCreateWarpSound_LengthAndRange(t *testing.T) {
	d := 400 * time.Millisecond
	samples := drain(t, CreateWarpSound(d, sampleRate))
	require.Len(t, samples, sampleRate.N(d))

	for _, v := range samples {
		require.False(t, math.IsNaN(v))
		require.LessOrEqual(t, math.Abs(v), 1.0)
	}
	assert.InDelta(t, 0, samples[0], 1e-9, "attack starts silent")
	assert.Nil(t, CreateWarpSound(-time.Second, sampleRate))
}

func TestSweep_FrequencyRises(t *testing.T) {
	d := time.Second
	samples := drain(t, NewSweep(100, 1000, d, 0, sampleRate))
	q := len(samples) / 4
	first := zeroCrossings(samples[:q])
	last := zeroCrossings(samples[len(samples)-q:])
	assert.Greater(t, last, first*3)
}

func TestEnvelope_ShortDuration(t *testing.T) {
	d := 10 * time.Millisecond
	src := &blip{freq: 440, total: sampleRate.N(d), rate: sampleRate}
	samples := drain(t, NewEnvelope(src, d, time.Second, time.Second, sampleRate))
	assert.Len(t, samples, sampleRate.N(d), "attack longer than the sound is clamped")
}

func TestCreateSparkleSound(t *testing.T) {
	samples := drain(t, CreateSparkleSound(sampleRate))
	assert.Len(t, samples, sampleRate.N(parameter.SparkleBlipDuration))
	assert.Positive(t, zeroCrossings(samples))
}
