package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/invite/parameter"
)

// sweep is a sine whose frequency rises from `from` to `to` over its length,
// with a quiet noise bed for the rushing texture
type sweep struct {
	from, to float64
	noise    float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
	rnd      *rand.Rand
}

// NewSweep creates a rising sweep lasting d
func NewSweep(from, to float64, d time.Duration, noise float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		noise: noise,
		total: rate.N(d),
		rate:  rate,
		rnd:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		p := float64(s.position) / float64(s.total)
		// quadratic rise keeps the low end long and the finish abrupt
		freq := s.from + (s.to-s.from)*p*p

		val := (1-s.noise)*math.Sin(2*math.Pi*s.phase) + s.noise*(s.rnd.Float64()*2-1)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: total - att - rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.attackSamples + e.sustainSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// blip is a short sine tone
type blip struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * b.phase)
		samples[i][0] = val
		samples[i][1] = val
		b.phase += b.freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// withVolume scales s by 2^vol
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: vol}
}

// CreateWarpSound builds the warp sweep lasting d; nil when d is not positive
func CreateWarpSound(d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return nil
	}
	src := NewSweep(parameter.WarpSweepFrom, parameter.WarpSweepTo, d, 0.15, rate)
	shaped := NewEnvelope(src, d, parameter.WarpSweepAttack, parameter.WarpSweepRelease, rate)
	return withVolume(shaped, parameter.WarpSweepVolume)
}

// CreateSparkleSound builds one sparkle blip
func CreateSparkleSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SparkleBlipDuration
	src := &blip{freq: parameter.SparkleBlipFreq, total: rate.N(d), rate: rate}
	shaped := NewEnvelope(src, d, parameter.SparkleBlipAttack, parameter.SparkleBlipRelease, rate)
	return withVolume(shaped, parameter.SparkleBlipVolume)
}
