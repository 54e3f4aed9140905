package layout

import (
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

// DayLayout is the engine output for one day column: at most one
// all-day summary entry plus the merged, non-overlapping item stream
// for the timed grid.
type DayLayout struct {
	Date   time.Time
	AllDay []AllDayEntry
	Items  []Item
}

// LayoutDay computes the layout for a single day. It is a pure
// function: tasks are read-only input and the result aliases nothing
// mutable back into the caller. An empty task set yields an empty
// layout, which is a valid outcome, not an error.
func LayoutDay(tasks []*task.Task, day time.Time, w Window) DayLayout {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var timed, allDay []*Interval
	for _, t := range tasks {
		iv := Clip(t, day, w)
		if iv == nil {
			continue
		}
		if iv.AllDay(day, w) {
			allDay = append(allDay, iv)
		} else {
			timed = append(timed, iv)
		}
	}
	sortIntervals(timed)
	sortIntervals(allDay)

	dl := DayLayout{Date: day}

	if len(allDay) > 0 {
		members := make([]*task.Task, len(allDay))
		for i, iv := range allDay {
			members[i] = iv.Task
		}
		dl.AllDay = []AllDayEntry{{Tasks: members, Display: pickDisplay(members)}}
	}

	windowStart := w.StartOn(day)
	dl.Items = Merge(sweep(buildEvents(timed, windowStart), windowStart, w))

	return dl
}

// LayoutWeek computes layouts for the 7 days starting at the Monday of
// the week containing date. Tasks are bucketed per day first, so each
// day only clips the tasks that actually touch it; a cross-day task
// lands in several buckets and is clipped independently per day. The
// engine itself stays day-scoped and stateless.
func LayoutWeek(tasks []*task.Task, date time.Time, w Window) [7]DayLayout {
	week := task.NewWeekFromTasks(date, tasks)

	var layouts [7]DayLayout
	for i, d := range week.Days {
		layouts[i] = LayoutDay(d.Tasks(), d.Date, w)
	}
	return layouts
}
