package window

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/parameter"
)

type point struct {
	x, y float64
}

// mouseTracker turns polled cursor state into pointer events
type mouseTracker struct {
	last point
	seen bool
	down bool
}

func (m *mouseTracker) update(p point, pressed bool) []event.Event {
	var out []event.Event
	if !m.seen || p != m.last {
		out = append(out, event.Event{Type: event.PointerMove, Kind: event.PointerMouse, X: p.x, Y: p.y})
	}
	switch {
	case pressed && !m.down:
		out = append(out, event.Event{Type: event.PointerDown, Kind: event.PointerMouse, X: p.x, Y: p.y})
	case !pressed && m.down:
		out = append(out, event.Event{Type: event.Click, Kind: event.PointerMouse, X: p.x, Y: p.y})
	}
	m.last, m.seen, m.down = p, true, pressed
	return out
}

// touchTracker diffs the active touch set between ticks
// A touch that lifts within TapSlop of where it started also produces a Click
type touchTracker struct {
	prev   map[ebiten.TouchID]point
	starts map[ebiten.TouchID]point
}

func (t *touchTracker) update(cur map[ebiten.TouchID]point) []event.Event {
	var out []event.Event

	ids := make([]ebiten.TouchID, 0, len(cur))
	for id := range cur {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		p := cur[id]
		old, ok := t.prev[id]
		switch {
		case !ok:
			if t.starts == nil {
				t.starts = make(map[ebiten.TouchID]point)
			}
			t.starts[id] = p
			out = append(out,
				event.Event{Type: event.PointerDown, Kind: event.PointerTouch, X: p.x, Y: p.y},
				event.Event{Type: event.TouchStart, Kind: event.PointerTouch, X: p.x, Y: p.y})
		case old != p:
			out = append(out,
				event.Event{Type: event.PointerMove, Kind: event.PointerTouch, X: p.x, Y: p.y},
				event.Event{Type: event.TouchMove, Kind: event.PointerTouch, X: p.x, Y: p.y})
		}
	}

	gone := make([]ebiten.TouchID, 0)
	for id := range t.prev {
		if _, ok := cur[id]; !ok {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		p := t.prev[id]
		out = append(out, event.Event{Type: event.TouchEnd, Kind: event.PointerTouch, X: p.x, Y: p.y})
		if s, ok := t.starts[id]; ok && math.Hypot(p.x-s.x, p.y-s.y) <= parameter.TapSlop {
			out = append(out, event.Event{Type: event.Click, Kind: event.PointerTouch, X: p.x, Y: p.y})
		}
		delete(t.starts, id)
	}

	t.prev = cur
	return out
}
