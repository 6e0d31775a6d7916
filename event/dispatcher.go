package event

import "sync"

// Handler receives dispatched events
type Handler func(Event)

type registration struct {
	id      uint64
	handler Handler
	once    bool
}

// Dispatcher routes events to listeners by type
//
// Architecture:
//   - Listeners run synchronously on the dispatching goroutine, in registration order
//   - Registration returns a detach func; detaching is idempotent
//   - Dispatch iterates a snapshot, so listeners may detach themselves or others mid-dispatch
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[Type][]registration
	nextID   uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Type][]registration),
	}
}

// On registers a listener and returns its detach func
func (d *Dispatcher) On(t Type, h Handler) (detach func()) {
	return d.register(t, h, false)
}

// Once registers a listener that detaches itself after the first delivery
func (d *Dispatcher) Once(t Type, h Handler) (detach func()) {
	return d.register(t, h, true)
}

func (d *Dispatcher) register(t Type, h Handler, once bool) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.handlers[t] = append(d.handlers[t], registration{id: id, handler: h, once: once})
	d.mu.Unlock()

	var detachOnce sync.Once
	return func() {
		detachOnce.Do(func() { d.remove(t, id) })
	}
}

func (d *Dispatcher) remove(t Type, id uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.handlers[t]
	for i, r := range regs {
		if r.id == id {
			// Copy so in-flight snapshots stay intact
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			if len(next) == 0 {
				delete(d.handlers, t)
			} else {
				d.handlers[t] = next
			}
			return true
		}
	}
	return false
}

// Dispatch delivers ev to every listener registered for its type
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := d.handlers[ev.Type]
	d.mu.Unlock()

	for _, r := range snapshot {
		if r.once && !d.remove(ev.Type, r.id) {
			// Already consumed or detached
			continue
		}
		if !r.once && !d.has(ev.Type, r.id) {
			continue
		}
		r.handler(ev)
	}
}

func (d *Dispatcher) has(t Type, id uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.handlers[t] {
		if r.id == id {
			return true
		}
	}
	return false
}

// Len returns the total number of attached listeners
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, regs := range d.handlers {
		n += len(regs)
	}
	return n
}

// HandlerCount returns the number of listeners attached for the given type
func (d *Dispatcher) HandlerCount(t Type) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[t])
}
