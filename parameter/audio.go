package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// Warp sweep: frequency rises from WarpSweepFrom to WarpSweepTo across the warp duration
	WarpSweepFrom    = 90.0
	WarpSweepTo      = 720.0
	WarpSweepAttack  = 120 * time.Millisecond
	WarpSweepRelease = 250 * time.Millisecond
	WarpSweepVolume  = -1.2

	// Sparkle blip
	SparkleBlipFreq     = 2400.0
	SparkleBlipDuration = 40 * time.Millisecond
	SparkleBlipAttack   = 4 * time.Millisecond
	SparkleBlipRelease  = 30 * time.Millisecond
	SparkleBlipVolume   = -3.0

	// SparkleBlipGap rate-limits blips so touch drags don't saturate the mixer
	SparkleBlipGap = 90 * time.Millisecond
)
