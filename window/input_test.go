package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invite/event"
)

func eventTypes(evs []event.Event) []event.Type {
	out := make([]event.Type, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func TestMouseTracker(t *testing.T) {
	var m mouseTracker

	assert.Equal(t, []event.Type{event.PointerMove}, eventTypes(m.update(point{10, 10}, false)))
	assert.Empty(t, m.update(point{10, 10}, false), "no motion, no event")
	assert.Equal(t, []event.Type{event.PointerDown}, eventTypes(m.update(point{10, 10}, true)))

	up := m.update(point{12, 10}, false)
	assert.Equal(t, []event.Type{event.PointerMove, event.Click}, eventTypes(up))
	assert.Equal(t, 12.0, up[1].X)
	assert.Equal(t, event.PointerMouse, up[1].Kind)
}

func TestTouchTracker(t *testing.T) {
	var tt touchTracker

	start := tt.update(map[ebiten.TouchID]point{1: {5, 5}})
	assert.Equal(t, []event.Type{event.PointerDown, event.TouchStart}, eventTypes(start))
	assert.Equal(t, event.PointerTouch, start[0].Kind)

	assert.Empty(t, tt.update(map[ebiten.TouchID]point{1: {5, 5}}))

	move := tt.update(map[ebiten.TouchID]point{1: {8, 9}, 2: {50, 50}})
	assert.Equal(t, []event.Type{event.PointerMove, event.TouchMove, event.PointerDown, event.TouchStart}, eventTypes(move))

	end := tt.update(map[ebiten.TouchID]point{2: {50, 50}})
	assert.Equal(t, []event.Type{event.TouchEnd, event.Click}, eventTypes(end), "moved within slop")
	assert.Equal(t, 8.0, end[0].X, "end reported at the last known position")

	assert.Equal(t, []event.Type{event.TouchEnd, event.Click}, eventTypes(tt.update(nil)))
}

func TestTouchTracker_TapClicksOnce(t *testing.T) {
	var tt touchTracker

	var all []event.Event
	all = append(all, tt.update(map[ebiten.TouchID]point{3: {100, 200}})...)
	all = append(all, tt.update(map[ebiten.TouchID]point{3: {100, 200}})...)
	all = append(all, tt.update(nil)...)

	var clicks []event.Event
	for _, ev := range all {
		if ev.Type == event.Click {
			clicks = append(clicks, ev)
		}
	}
	require.Len(t, clicks, 1)
	assert.Equal(t, event.PointerTouch, clicks[0].Kind)
	assert.Equal(t, 100.0, clicks[0].X)
	assert.Equal(t, 200.0, clicks[0].Y)

	assert.Empty(t, tt.update(nil), "released touch leaves no state")
}

func TestTouchTracker_DragDoesNotClick(t *testing.T) {
	var tt touchTracker

	tt.update(map[ebiten.TouchID]point{1: {0, 0}})
	tt.update(map[ebiten.TouchID]point{1: {40, 30}})
	end := tt.update(nil)
	assert.Equal(t, []event.Type{event.TouchEnd}, eventTypes(end))
	assert.Empty(t, tt.starts)
}
