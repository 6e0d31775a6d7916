package engine

import (
	"sync/atomic"
	"time"
)

// Loop steps a Scheduler to a clock and runs host hooks after each step
// Hooks observe settled state: every timer and frame callback due at now has run
type Loop struct {
	sched *Scheduler
	clock Clock
	hooks []func(now time.Time)
	steps atomic.Uint64
}

// NewLoop creates a loop stepping sched to clock
func NewLoop(sched *Scheduler, clock Clock) *Loop {
	return &Loop{sched: sched, clock: clock}
}

// OnStep registers a hook invoked after every scheduler step
func (l *Loop) OnStep(fn func(now time.Time)) {
	l.hooks = append(l.hooks, fn)
}

// Step advances the scheduler to the clock's current time and runs the hooks
func (l *Loop) Step() {
	l.sched.AdvanceTo(l.clock.Now())
	now := l.sched.Now()
	for _, hook := range l.hooks {
		hook(now)
	}
	l.steps.Add(1)
}

// Steps returns the number of completed steps
func (l *Loop) Steps() uint64 {
	return l.steps.Load()
}
