package intro

import "github.com/lixenwraith/invite/engine"

// Capability is the device orientation support level reported by a probe
type Capability uint8

const (
	// CapabilityUnavailable means no orientation source exists
	CapabilityUnavailable Capability = iota
	// CapabilityAvailable means a source exists but needs a gesture-gated grant
	CapabilityAvailable
	// CapabilityGranted means readings can be enabled immediately
	CapabilityGranted
)

func (c Capability) String() string {
	switch c {
	case CapabilityAvailable:
		return "available"
	case CapabilityGranted:
		return "granted"
	default:
		return "unavailable"
	}
}

// OrientationProbe reaches the platform orientation source
// Readings are delivered as event.Orientation on the overlay's dispatcher
type OrientationProbe interface {
	Capability() Capability

	// RequestPermission is called at most once, from a pointer-down handler
	RequestPermission() bool

	// Enable starts delivering readings; the returned func stops them
	Enable() (disable func())
}

// orientationBinding tracks the orientation listener's lifetime
type orientationBinding struct {
	probe     OrientationProbe
	detach    []func()
	disable   func()
	timeout   engine.Handle
	gotSignal bool
	off       bool
}

func (b *orientationBinding) enable(o *Overlay) {
	if b.off || b.disable != nil {
		return
	}
	b.disable = b.probe.Enable()
	b.timeout = o.sched.AfterFunc(o.orientationTimeout, func() {
		if !b.gotSignal {
			b.shutdown()
		}
	})
}

// shutdown detaches the listener and stops the source; idempotent
func (b *orientationBinding) shutdown() {
	if b.off {
		return
	}
	b.off = true
	for _, d := range b.detach {
		d()
	}
	if b.timeout != nil {
		b.timeout.Stop()
	}
	if b.disable != nil {
		b.disable()
	}
}
