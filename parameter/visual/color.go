package visual

// RGB mirrors render.RGB without the dependency; render converts
type RGB struct {
	R, G, B uint8
}

// Starfield palette
var (
	RgbBackground = RGB{8, 9, 20} // Night sky
	RgbStar       = RGB{255, 255, 255}
	RgbStarAccent = RGB{255, 156, 35} // Amber accent stars

	RgbSparkle      = RGB{255, 255, 255}
	RgbSparkleAmber = RGB{255, 174, 72}

	RgbTitle  = RGB{246, 240, 230}
	RgbCoords = RGB{255, 174, 72}
	RgbDate   = RGB{200, 196, 214}
	RgbHint   = RGB{120, 118, 140}

	RgbPageBackground = RGB{22, 20, 30}
	RgbPageText       = RGB{230, 226, 220}
	RgbPageAccent     = RGB{216, 183, 191}
	RgbPageMuted      = RGB{140, 136, 150}
)

// SparkleAlpha is the opacity of a fresh sparkle glyph
const SparkleAlpha = 0.95
