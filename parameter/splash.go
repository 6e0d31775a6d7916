package parameter

import "time"

// Touch Sparkles
const (
	// SparkleThrottle is the minimum interval between touch-move bursts
	SparkleThrottle = 34 * time.Millisecond

	// SparkleSpreadMax is the scatter in canvas units for a layer weight of 0
	SparkleSpreadMax = 75.0

	// SparkleSize = SparkleSizeBase + u * SparkleSizeSpread * layer
	SparkleSizeBase   = 8.0
	SparkleSizeSpread = 12.0

	// SparkleTTLMin clamps the lifetime from below; upper bound is SparkleTTLSpread * layer
	SparkleTTLMin    = 120 * time.Millisecond
	SparkleTTLSpread = 600 * time.Millisecond

	// SparkleAltGlyphChance picks the four-pointed star over the default glyph
	SparkleAltGlyphChance = 0.22
	// SparkleAmberChance picks the amber tint over white
	SparkleAmberChance = 0.18

	// SparkleHueJitter is the maximum hue shift in degrees applied to each sparkle tint
	SparkleHueJitter = 8.0

	SparkleGlyph    = '✦'
	SparkleAltGlyph = '✶'
)

// SparkleLayers are the per-burst layer weights, front to back
var SparkleLayers = [...]float64{1, 0.9, 0.8, 0.5, 0.2}
