package parameter

import "time"

// Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PageUpdateInterval is the refresh period of the host page once the intro is gone (countdown granularity)
	PageUpdateInterval = 250 * time.Millisecond

	// EventChannelSize is the buffered capacity between the terminal poller and the main loop
	EventChannelSize = 256

	// PostQueueSize is the initial capacity of the scheduler cross-goroutine post queue
	PostQueueSize = 64
)

// Window backend
const (
	// WindowWidth and WindowHeight are the initial logical window size
	WindowWidth  = 960
	WindowHeight = 640

	// TapSlop is the distance in logical pixels a touch may travel and still lift as a click
	TapSlop = 10.0
)

// Logging
const (
	// LogDir is the directory debug logs are written to, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "invite.log"

	// MaxLogSize is the size after which the active log is rotated on startup
	MaxLogSize = 10 * 1024 * 1024
)
