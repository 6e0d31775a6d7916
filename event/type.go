package event

// Type identifies an input or platform signal delivered to the overlay
type Type uint8

const (
	TypeNone Type = iota
	PointerMove
	PointerDown
	Click
	KeyDown
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
	Orientation
	Resize
)

var typeNames = [...]string{
	TypeNone:    "none",
	PointerMove: "pointermove",
	PointerDown: "pointerdown",
	Click:       "click",
	KeyDown:     "keydown",
	TouchStart:  "touchstart",
	TouchMove:   "touchmove",
	TouchEnd:    "touchend",
	TouchCancel: "touchcancel",
	Orientation: "orientation",
	Resize:      "resize",
}

// String returns the DOM-style event name
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// PointerKind distinguishes the device behind a pointer event
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// Key names carried by KeyDown events
const (
	KeyEnter = "Enter"
	KeySpace = " "
)

// Event is a value-type input signal
// Coordinates are in host canvas units with the origin at the overlay's top-left corner
type Event struct {
	Type Type
	Kind PointerKind

	X, Y float64

	Key string

	// Orientation readings in degrees; HasAngles is false when the platform delivered an empty reading
	Gamma, Beta float64
	HasAngles   bool
}
