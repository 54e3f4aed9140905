package task

import (
	"context"
	"time"
)

// Repository defines the storage interface for tasks and projects.
type Repository interface {
	// CreateTask adds a new task to the repository and sets its ID.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if missing.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// UpdateTask rewrites a task's mutable fields (title, description,
	// priority, start, end, project).
	UpdateTask(ctx context.Context, task *Task) error

	// CompleteTask marks a task as completed at the given time.
	CompleteTask(ctx context.Context, id int64, at time.Time) error

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasksByDateRange returns all scheduled tasks whose effective
	// interval touches [start, end). Used by the week view; cross-day
	// tasks are returned for every day they span.
	ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*Task, error)

	// ListUnscheduled returns tasks without a start time, newest first.
	// These belong to the floating list, never to the timed grid.
	ListUnscheduled(ctx context.Context) ([]*Task, error)

	// CreateProject adds a new project and sets its ID.
	CreateProject(ctx context.Context, p *Project) error

	// ListProjects returns all projects ordered by name.
	ListProjects(ctx context.Context) ([]*Project, error)

	// Close releases any resources held by the repository.
	Close() error
}
