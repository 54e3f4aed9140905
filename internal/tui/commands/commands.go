// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tempoapp/tempo/internal/task"
)

// WeekLoadedMsg is sent when week data is loaded.
type WeekLoadedMsg struct {
	WeekStart time.Time
	Tasks     []*task.Task
}

// TaskMutatedMsg is sent after a create, complete or delete succeeds.
// The model reacts by reloading the current week.
type TaskMutatedMsg struct {
	Status string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadWeek loads the tasks visible during the week starting at weekStart.
// The range is widened by a day on each side so tasks that cross
// midnight into or out of the week are included.
func LoadWeek(repo task.Repository, weekStart time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		start := weekStart.AddDate(0, 0, -1)
		end := weekStart.AddDate(0, 0, 8)

		tasks, err := repo.ListTasksByDateRange(ctx, start, end)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return WeekLoadedMsg{WeekStart: weekStart, Tasks: tasks}
	}
}

// CreateTask persists a new task.
func CreateTask(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateTask(context.Background(), t); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating task: %w", err)}
		}
		return TaskMutatedMsg{Status: fmt.Sprintf("Added %q", t.Title)}
	}
}

// CompleteTask marks a task as done.
func CompleteTask(repo task.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CompleteTask(context.Background(), id, time.Now()); err != nil {
			return ErrMsg{Err: fmt.Errorf("completing task: %w", err)}
		}
		return TaskMutatedMsg{Status: "Task completed"}
	}
}

// DeleteTask removes a task.
func DeleteTask(repo task.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteTask(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting task: %w", err)}
		}
		return TaskMutatedMsg{Status: "Task deleted"}
	}
}
