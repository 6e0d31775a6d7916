package engine

import "time"

// FrameRequester schedules one-shot frame callbacks
type FrameRequester interface {
	RequestFrame(fn func(now time.Time)) Handle
}

// FrameTask is a cancellable self-rescheduling frame callback
// Replaces the "request the next frame from inside the frame" pattern with an owned handle
type FrameTask struct {
	requester FrameRequester
	fn        func(now time.Time)
	pending   Handle
	running   bool
	frames    uint64
}

// StartFrameTask begins calling fn once per frame until Stop
func StartFrameTask(requester FrameRequester, fn func(now time.Time)) *FrameTask {
	t := &FrameTask{
		requester: requester,
		fn:        fn,
		running:   true,
	}
	t.pending = requester.RequestFrame(t.tick)
	return t
}

func (t *FrameTask) tick(now time.Time) {
	if !t.running {
		return
	}
	t.frames++
	t.fn(now)
	// fn may have stopped the task
	if t.running {
		t.pending = t.requester.RequestFrame(t.tick)
	}
}

// Stop cancels the pending frame; returns false if already stopped
func (t *FrameTask) Stop() bool {
	if !t.running {
		return false
	}
	t.running = false
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	return true
}

// Running reports whether the task will run on the next frame
func (t *FrameTask) Running() bool {
	return t.running
}

// Frames returns the number of frames the task has executed
func (t *FrameTask) Frames() uint64 {
	return t.frames
}
