package parameter

import "time"

// Intro Configuration Clamps
const (
	WarpDurationMin     = 300 * time.Millisecond
	WarpDurationMax     = 4000 * time.Millisecond
	WarpDurationDefault = 1200 * time.Millisecond

	FadeDurationMin     = 200 * time.Millisecond
	FadeDurationMax     = 2000 * time.Millisecond
	FadeDurationDefault = 500 * time.Millisecond

	StarCountMin     = 150
	StarCountMax     = 2200
	StarCountDefault = 900

	AccentRatioMin     = 0.0
	AccentRatioMax     = 0.1
	AccentRatioDefault = 0.02
)

// SeenKey is the durable store key holding "1" once the intro was dismissed
const (
	SeenKey   = "wedding_intro_seen"
	SeenValue = "1"
)

// Particle Field
const (
	// StarSizeBase + pow(u, StarSizeSkew) * StarSizeSpread, right-skewed toward small stars
	StarSizeBase   = 0.5
	StarSizeSkew   = 1.8
	StarSizeSpread = 2.8

	StarTwinkleMin  = 0.45
	StarTwinkleSpan = 0.55

	StarDepthMin  = 0.25
	StarDepthSpan = 1.35
)

// Render Loop
const (
	// FieldRadiusFactor scales max(width, height) into the projection radius
	FieldRadiusFactor = 0.54

	// ParallaxStrength is the offset in canvas units at parallax 1.0 and depth 1.0
	ParallaxStrength = 34.0

	// Boost ramps: reduced motion is linear, full motion is quadratic
	BoostReducedSlope = 2.4
	BoostWarpFactor   = 22.0

	// Twinkle alpha = twinkle * (TwinkleBase + sin(t + phase) * TwinkleSwing)
	TwinkleBase  = 0.74
	TwinkleSwing = 0.2

	// Trail length in percent of boost: TrailBase + p * TrailGrowth
	TrailBase   = 10.0
	TrailGrowth = 70.0

	TrailWidthBase   = 0.55
	TrailWidthGrowth = 0.8

	StarRadiusBase   = 0.8
	StarRadiusGrowth = 2.0

	// MinStroke is the lower bound for both the star radius and the trail width
	MinStroke = 0.45
)

// Parallax Aggregator
const (
	// OrientationGammaDivisor maps left-right tilt degrees onto [-1, 1]
	OrientationGammaDivisor = 28.0
	// OrientationBetaDivisor maps front-back tilt degrees onto [-1, 1]
	OrientationBetaDivisor = 40.0

	// OrientationSignalTimeout detaches the orientation listener when no valid reading arrives in time
	OrientationSignalTimeout = 3 * time.Second

	// OrientationPollInterval is the sensor polling period
	OrientationPollInterval = 50 * time.Millisecond

	// IIODeviceRoot is the sysfs directory holding industrial I/O devices
	IIODeviceRoot = "/sys/bus/iio/devices"
)

// StoreTimeout bounds each seen-flag read or write
const StoreTimeout = 2 * time.Second
