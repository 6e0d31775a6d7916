package engine

import (
	"container/heap"
	"sync"
	"time"

	"github.com/lixenwraith/invite/parameter"
)

// Handle cancels a scheduled timer or frame callback
// Stop reports whether the call prevented the callback from running
type Handle interface {
	Stop() bool
}

// Scheduler is a frame-stepped cooperative scheduler
//
// Timers, frame callbacks and posted closures all run on the goroutine calling AdvanceTo,
// giving the overlay a single-threaded execution model without locks on its own state
//
// Ordering within one step:
//   - Posted closures run first, at the current time
//   - Due timers run in deadline order (ties in registration order), Now() reads the timer's own deadline
//   - Frame callbacks requested before the step run last, Now() reads the step target
//
// Only Post is safe to call from other goroutines
type Scheduler struct {
	now    time.Time
	seq    uint64
	timers timerHeap
	frames []*frameEntry

	postMu sync.Mutex
	posts  []func()
}

// NewScheduler creates a scheduler whose clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		posts: make([]func(), 0, parameter.PostQueueSize),
	}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// AfterFunc schedules fn to run once d has elapsed; negative delays run on the next step
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timerEntry{
		deadline: s.now.Add(d),
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.timers, t)
	return t
}

// RequestFrame schedules fn for the next step, once
func (s *Scheduler) RequestFrame(fn func(now time.Time)) Handle {
	f := &frameEntry{fn: fn}
	s.frames = append(s.frames, f)
	return f
}

// Post queues fn to run on the scheduler goroutine at the start of the next step
func (s *Scheduler) Post(fn func()) {
	s.postMu.Lock()
	s.posts = append(s.posts, fn)
	s.postMu.Unlock()
}

// Advance moves the clock forward by d, see AdvanceTo
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo runs everything due up to target, then the pending frame callbacks
// A target earlier than Now is treated as Now; the clock never runs backwards
func (s *Scheduler) AdvanceTo(target time.Time) {
	if target.Before(s.now) {
		target = s.now
	}

	s.drainPosts()

	for s.timers.Len() > 0 {
		next := s.timers[0]
		if next.stopped {
			heap.Pop(&s.timers)
			continue
		}
		if next.deadline.After(target) {
			break
		}
		heap.Pop(&s.timers)
		next.fired = true
		if next.deadline.After(s.now) {
			s.now = next.deadline
		}
		next.fn()
		s.drainPosts()
	}

	s.now = target

	// Callbacks requested while running frames belong to the next step
	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		if f.stopped {
			continue
		}
		f.fired = true
		f.fn(target)
	}

	s.drainPosts()
}

// PendingTimers returns the number of timers that will still fire
func (s *Scheduler) PendingTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of frame callbacks waiting for the next step
func (s *Scheduler) PendingFrames() int {
	n := 0
	for _, f := range s.frames {
		if !f.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) drainPosts() {
	for {
		s.postMu.Lock()
		if len(s.posts) == 0 {
			s.postMu.Unlock()
			return
		}
		batch := s.posts
		s.posts = make([]func(), 0, cap(batch))
		s.postMu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}

// timerEntry is a one-shot timer
type timerEntry struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
	stopped  bool
	fired    bool
}

func (t *timerEntry) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// frameEntry is a one-shot frame callback
type frameEntry struct {
	fn      func(time.Time)
	stopped bool
	fired   bool
}

func (f *frameEntry) Stop() bool {
	if f.stopped || f.fired {
		return false
	}
	f.stopped = true
	return true
}

// timerHeap orders timers by deadline, then registration
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timerEntry)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
