package intro

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/parameter"
)

// Particle is one star, generated once per session and never mutated
type Particle struct {
	X, Y    float64 // Normalized position in [-1, 1]
	Size    float64
	Twinkle float64 // Alpha multiplier in [0.45, 1.0]
	Accent  bool
	Depth   float64 // Parallax multiplier in [0.25, 1.6]
	Phase   float64 // Twinkle phase in [0, 2π)
}

// NewField generates count stars, each an accent with probability accentRatio
// count and accentRatio are clamped; a nil rnd draws from the global source
func NewField(count int, accentRatio float64, rnd *rand.Rand) []Particle {
	count = config.ClampInt(count, parameter.StarCountMin, parameter.StarCountMax)
	accentRatio = config.ClampFloat(accentRatio, parameter.AccentRatioMin, parameter.AccentRatioMax, parameter.AccentRatioDefault)

	u := uniform(rnd)
	field := make([]Particle, count)
	for i := range field {
		field[i] = Particle{
			X:       u()*2 - 1,
			Y:       u()*2 - 1,
			Size:    parameter.StarSizeBase + math.Pow(u(), parameter.StarSizeSkew)*parameter.StarSizeSpread,
			Twinkle: parameter.StarTwinkleMin + u()*parameter.StarTwinkleSpan,
			Accent:  u() < accentRatio,
			Depth:   parameter.StarDepthMin + u()*parameter.StarDepthSpan,
			Phase:   u() * 2 * math.Pi,
		}
	}
	return field
}

// uniform returns a [0, 1) source bound to rnd or the global generator
func uniform(rnd *rand.Rand) func() float64 {
	if rnd == nil {
		return rand.Float64
	}
	return rnd.Float64
}
