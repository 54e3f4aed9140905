// Package task defines the core domain types for tempo.
package task

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")
	ErrEndBeforeStart  = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
)

// Priority bounds. Higher numbers are more important.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// DefaultDuration is the implicit duration used for layout when a task
// has a start time but no end time. The task record itself is never
// mutated to carry this end.
const DefaultDuration = 60 * time.Minute

// Project is an optional organizational container a task can belong to.
type Project struct {
	ID    int64
	Name  string
	Color string // hex color used by the presentation layer, e.g. "#89b4fa"
}

// Task represents a single actionable item, optionally time-boxed.
// A task with no Start is "floating": it never appears on the timed grid.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    int // MinPriority..MaxPriority, higher = more important
	Start       *time.Time
	End         *time.Time
	Completed   bool
	CompletedAt *time.Time
	Project     *Project
	CreatedAt   time.Time
}

// New creates a Task with validation. start and end are optional; end
// requires start and must be strictly after it.
func New(title string, priority int, start, end *time.Time) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority < MinPriority || priority > MaxPriority {
		return nil, ErrInvalidPriority
	}
	if end != nil {
		if start == nil || !end.After(*start) {
			return nil, ErrEndBeforeStart
		}
	}

	return &Task{
		Title:     title,
		Priority:  priority,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}, nil
}

// Scheduled returns true if the task has a start time.
func (t *Task) Scheduled() bool {
	return t.Start != nil
}

// EffectiveEnd returns the end time used for layout: the explicit End,
// or Start plus DefaultDuration when End is absent.
// Returns the zero time for unscheduled tasks.
func (t *Task) EffectiveEnd() time.Time {
	if t.Start == nil {
		return time.Time{}
	}
	if t.End != nil {
		return *t.End
	}
	return t.Start.Add(DefaultDuration)
}

// Duration returns the task's effective duration. Zero for unscheduled tasks.
func (t *Task) Duration() time.Duration {
	if t.Start == nil {
		return 0
	}
	return t.EffectiveEnd().Sub(*t.Start)
}

// SpansDay returns true if the task's effective interval touches the
// calendar day containing the given time.
func (t *Task) SpansDay(day time.Time) bool {
	if t.Start == nil {
		return false
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return t.Start.Before(dayEnd) && t.EffectiveEnd().After(dayStart)
}
