package page

import (
	"fmt"
	"time"
)

// Countdown is the remaining time split into display units
type Countdown struct {
	Days, Hours, Minutes, Seconds int
}

// EventStart parses eventDateISO (YYYY-MM-DD) and eventTime (HH:MM, default 00:00) in loc
func EventStart(dateISO, clock string, loc *time.Location) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", dateISO+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event start: %w", err)
	}
	return t, nil
}

// Remaining returns the countdown from now to target; zero once target has passed
func Remaining(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{}
	}
	total := int(diff / time.Second)
	minutes := total / 60
	hours := minutes / 60
	return Countdown{
		Days:    hours / 24,
		Hours:   hours % 24,
		Minutes: minutes % 60,
		Seconds: total % 60,
	}
}

// Zero reports whether the event has started
func (c Countdown) Zero() bool {
	return c == Countdown{}
}
