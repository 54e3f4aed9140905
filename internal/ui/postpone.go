package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/dateutil"
	"github.com/tempoapp/tempo/internal/task"
)

func (a *App) postponeCmd() *cobra.Command {
	var (
		date  string
		start string
	)

	cmd := &cobra.Command{
		Use:   "postpone [task-id]",
		Short: "Move a task to a new date and time",
		Long: `Move a task to a new start, keeping its duration.

A time-boxed task keeps its length at the new start; an open-ended task
stays open-ended. A floating task gains a schedule.`,
		Example: `  tempo postpone 12 --date=tomorrow --start=14:00
  tempo postpone 12 --start=09:00    (today)`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %q", args[0])
			}

			t, err := postponeTask(context.Background(), a.repo, id, date, start)
			if err != nil {
				return err
			}

			fmt.Printf("%s #%d: %s%s\n", formatOK("Postponed task"), t.ID, t.Title, describeSchedule(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD, \"tomorrow\", weekday name; default: today)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, required)")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// postponeTask moves the task's start to the given date and clock time.
// A task with an explicit end keeps its duration; an open-ended task
// stays open-ended, and a floating task becomes scheduled.
func postponeTask(ctx context.Context, repo task.Repository, id int64, date, start string) (*task.Task, error) {
	t, err := repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return nil, err
	}
	newStart, err := dateutil.ParseClock(day, start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	if t.Scheduled() && t.End != nil {
		newEnd := newStart.Add(t.Duration())
		t.End = &newEnd
	}
	t.Start = &newStart

	if err := repo.UpdateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}
