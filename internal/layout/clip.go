package layout

import (
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

// Interval is a task's visible sub-range on one day: its start/end
// intersected with the day's display window. Ephemeral, rebuilt on
// every layout call.
type Interval struct {
	Task  *task.Task
	Start time.Time
	End   time.Time
}

// Clip computes the visible portion of t on the given day. Returns nil
// for unscheduled tasks (those belong to the floating list) and for
// tasks with no positive overlap with the day's window. A task with a
// start but no end is treated as lasting task.DefaultDuration; a task
// whose interval is empty after defaulting is dropped by policy, not
// reported as an error.
func Clip(t *task.Task, day time.Time, w Window) *Interval {
	if t == nil || t.Start == nil {
		return nil
	}

	windowStart := w.StartOn(day)
	windowEnd := w.EndOn(day)

	start := *t.Start
	end := t.EffectiveEnd()

	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	if !end.After(start) {
		return nil
	}

	return &Interval{Task: t, Start: start, End: end}
}

// AllDay reports whether the interval covers the full display window
// for the day. The boundary is inclusive: an interval exactly matching
// the window edges counts as all-day.
func (iv *Interval) AllDay(day time.Time, w Window) bool {
	return !iv.Start.After(w.StartOn(day)) && !iv.End.Before(w.EndOn(day))
}

// offsetMinutes returns the interval bounds as whole minutes from the
// window start, floored.
func (iv *Interval) offsetMinutes(windowStart time.Time) (start, end int) {
	start = int(iv.Start.Sub(windowStart).Minutes())
	end = int(iv.End.Sub(windowStart).Minutes())
	return start, end
}
