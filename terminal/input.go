package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invite/event"
)

// inputState tracks button state across tcell mouse events, which report levels, not edges
type inputState struct {
	left, right bool
	lastX       float64
	lastY       float64
}

// cellToDots maps a cell to the centre of its dot block
func cellToDots(x, y int) (float64, float64) {
	return float64(x*2 + 1), float64(y*4 + 2)
}

// translate converts one tcell event into overlay events
func (s *inputState) translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return s.mouse(ev)
	case *tcell.EventKey:
		return keyEvents(ev)
	case *tcell.EventResize:
		return []event.Event{{Type: event.Resize}}
	}
	return nil
}

func (s *inputState) mouse(ev *tcell.EventMouse) []event.Event {
	cx, cy := ev.Position()
	x, y := cellToDots(cx, cy)
	btn := ev.Buttons()
	left := btn&tcell.Button1 != 0
	right := btn&tcell.Button2 != 0
	moved := x != s.lastX || y != s.lastY

	kind := event.PointerMouse
	if right || s.right {
		kind = event.PointerTouch
	}

	out := make([]event.Event, 0, 3)
	out = append(out, event.Event{Type: event.PointerMove, Kind: kind, X: x, Y: y})

	switch {
	case left && !s.left:
		out = append(out, event.Event{Type: event.PointerDown, Kind: event.PointerMouse, X: x, Y: y})
	case !left && s.left:
		out = append(out, event.Event{Type: event.Click, Kind: event.PointerMouse, X: x, Y: y})
	}

	switch {
	case right && !s.right:
		out = append(out,
			event.Event{Type: event.PointerDown, Kind: event.PointerTouch, X: x, Y: y},
			event.Event{Type: event.TouchStart, Kind: event.PointerTouch, X: x, Y: y})
	case right && s.right && moved:
		out = append(out, event.Event{Type: event.TouchMove, Kind: event.PointerTouch, X: x, Y: y})
	case !right && s.right:
		out = append(out, event.Event{Type: event.TouchEnd, Kind: event.PointerTouch, X: x, Y: y})
	}

	s.left, s.right = left, right
	s.lastX, s.lastY = x, y
	return out
}

func keyEvents(ev *tcell.EventKey) []event.Event {
	switch ev.Key() {
	case tcell.KeyEnter:
		return []event.Event{{Type: event.KeyDown, Key: event.KeyEnter}}
	case tcell.KeyRune:
		return []event.Event{{Type: event.KeyDown, Key: string(ev.Rune())}}
	}
	return nil
}
