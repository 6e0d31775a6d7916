// Package audio synthesizes the intro's warp sweep and sparkle blips with beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/invite/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays intro sounds through a single mixer
// Every method is safe to call before Initialize or after a failed one; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	speaker     bool

	lastSparkle time.Time
	now         func() time.Time
}

// NewSoundManager creates an idle sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.speaker = true
	return nil
}

// Cleanup silences everything and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.withSpeaker(sm.mixer.Clear)
	if sm.speaker {
		speaker.Clear()
	}
	sm.initialized = false
}

// withSpeaker runs fn under the speaker lock when the speaker owns the mixer
func (sm *SoundManager) withSpeaker(fn func()) {
	if sm.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (sm *SoundManager) add(s beep.Streamer) {
	if s == nil {
		return
	}
	sm.withSpeaker(func() { sm.mixer.Add(s) })
}

// Active returns the number of sounds still playing in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	n := 0
	sm.withSpeaker(func() { n = sm.mixer.Len() })
	return n
}

// PlayWarp plays the rising sweep across the warp duration
func (sm *SoundManager) PlayWarp(d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(CreateWarpSound(d, sampleRate))
}

// PlaySparkle plays a blip; calls closer than SparkleBlipGap to the previous blip are dropped
func (sm *SoundManager) PlaySparkle() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	now := sm.now()
	if !sm.lastSparkle.IsZero() && now.Sub(sm.lastSparkle) < parameter.SparkleBlipGap {
		return
	}
	sm.lastSparkle = now
	sm.add(CreateSparkleSound(sampleRate))
}
