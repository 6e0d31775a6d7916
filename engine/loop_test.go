package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_StepUsesClock(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock.Now())
	loop := NewLoop(s, clock)

	fired := false
	s.AfterFunc(500*time.Millisecond, func() { fired = true })

	var hookTimes []time.Time
	loop.OnStep(func(now time.Time) { hookTimes = append(hookTimes, now) })

	clock.Advance(499 * time.Millisecond)
	loop.Step()
	assert.False(t, fired)

	clock.Advance(time.Millisecond)
	loop.Step()
	assert.True(t, fired)

	require.Len(t, hookTimes, 2)
	assert.Equal(t, epoch.Add(500*time.Millisecond), hookTimes[1])
	assert.Equal(t, uint64(2), loop.Steps())
}

func TestLoop_HooksSeePostedWork(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock.Now())
	loop := NewLoop(s, clock)

	var order []string
	s.Post(func() { order = append(order, "post") })
	s.RequestFrame(func(time.Time) { order = append(order, "frame") })
	loop.OnStep(func(time.Time) { order = append(order, "hook") })

	loop.Step()
	assert.Equal(t, []string{"post", "frame", "hook"}, order)
}

func TestLoop_ClockNeverRunsBackwards(t *testing.T) {
	clock := NewManualClock(epoch.Add(time.Second))
	s := NewScheduler(clock.Now())
	loop := NewLoop(s, clock)

	clock.Set(epoch)
	loop.Step()
	assert.Equal(t, epoch.Add(time.Second), s.Now())
}
