package task

import (
	"slices"
	"time"
)

// Day holds the tasks visible on a single calendar day.
// Unlike a strict time-block planner, overlapping tasks are allowed here;
// the layout engine is responsible for collapsing overlaps visually.
type Day struct {
	Date  time.Time
	tasks []*Task // sorted by start time, then ID
}

// NewDay creates an empty Day for the given date.
func NewDay(date time.Time) *Day {
	return &Day{
		Date:  truncateToDay(date),
		tasks: make([]*Task, 0),
	}
}

// Tasks returns a copy of the task slice.
func (d *Day) Tasks() []*Task {
	result := make([]*Task, len(d.tasks))
	copy(result, d.tasks)
	return result
}

// AddTask adds a scheduled task to the day, maintaining sorted order.
// Nil and unscheduled tasks are ignored.
func (d *Day) AddTask(t *Task) {
	if t == nil || t.Start == nil {
		return
	}
	d.tasks = append(d.tasks, t)
	slices.SortFunc(d.tasks, func(a, b *Task) int {
		if a.Start.Before(*b.Start) {
			return -1
		}
		if a.Start.After(*b.Start) {
			return 1
		}
		return int(a.ID - b.ID)
	})
}

// Week holds 7 days starting from Monday.
type Week struct {
	StartDate time.Time // Monday of the week
	Days      [7]*Day   // Monday (0) through Sunday (6)
}

// NewWeek creates a Week starting from the Monday of the given date.
func NewWeek(date time.Time) *Week {
	monday := startOfWeek(date)
	w := &Week{StartDate: monday}

	for i := 0; i < 7; i++ {
		w.Days[i] = NewDay(monday.AddDate(0, 0, i))
	}

	return w
}

// NewWeekFromTasks creates a Week and distributes tasks to their days.
// A task spanning several days is added to every day it touches, so the
// caller can clip it per-day. Tasks outside the week are ignored.
func NewWeekFromTasks(date time.Time, tasks []*Task) *Week {
	w := NewWeek(date)

	for _, t := range tasks {
		for _, day := range w.Days {
			if t != nil && t.SpansDay(day.Date) {
				day.AddTask(t)
			}
		}
	}

	return w
}

// Day returns the Day for the given weekday (0=Monday, 6=Sunday).
// Returns nil if weekday is out of range.
func (w *Week) Day(weekday int) *Day {
	if weekday < 0 || weekday > 6 {
		return nil
	}
	return w.Days[weekday]
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// startOfWeek returns the Monday of the week containing the given date.
func startOfWeek(t time.Time) time.Time {
	t = truncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// truncateToDay removes the time component from a time.Time.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
