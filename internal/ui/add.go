package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/dateutil"
	"github.com/tempoapp/tempo/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		priority int
		project  string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a task, either floating (no times) or time-boxed.

Examples:
  tempo add "Read inbox"
  tempo add "Write design doc" --date=tomorrow --start=09:00 --end=11:00
  tempo add "Standup" --start=09:30                       (implicit 60 minutes)
  tempo add "Ship release" --start=14:00 --priority=5 --project=Growth`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			startTime, endTime, err := parseTimes(date, start, end)
			if err != nil {
				return err
			}

			t, err := task.New(args[0], priority, startTime, endTime)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if project != "" {
				p, err := findProject(ctx, a.repo, project)
				if err != nil {
					return err
				}
				t.Project = p
			}

			if err := a.repo.CreateTask(ctx, t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("%s #%d: %s%s\n", formatOK("Created task"), t.ID, t.Title, describeSchedule(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, \"tomorrow\", weekday name; default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM); omit for a floating task")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM); omit for an implicit 60-minute block")
	cmd.Flags().IntVar(&priority, "priority", task.DefaultPriority, "Priority 1-5, higher is more important")
	cmd.Flags().StringVar(&project, "project", "", "Project name")

	return cmd
}

// parseTimes resolves the date/start/end flags into optional timestamps.
// A floating task has neither; an end without a start is rejected by
// task.New downstream.
func parseTimes(date, start, end string) (*time.Time, *time.Time, error) {
	if start == "" && end == "" {
		return nil, nil, nil
	}

	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return nil, nil, err
	}

	var startTime, endTime *time.Time
	if start != "" {
		s, err := dateutil.ParseClock(day, start)
		if err != nil {
			return nil, nil, fmt.Errorf("start time: %w", err)
		}
		startTime = &s
	}
	if end != "" {
		e, err := dateutil.ParseClock(day, end)
		if err != nil {
			return nil, nil, fmt.Errorf("end time: %w", err)
		}
		endTime = &e
	}
	return startTime, endTime, nil
}

// findProject resolves a project by name.
func findProject(ctx context.Context, repo task.Repository, name string) (*task.Project, error) {
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", task.ErrProjectNotFound, name)
}

// describeSchedule renders a short schedule suffix for confirmations.
func describeSchedule(t *task.Task) string {
	if !t.Scheduled() {
		return formatMuted(" (floating)")
	}
	return fmt.Sprintf(" %s %s-%s",
		t.Start.Format("2006-01-02"),
		t.Start.Format("15:04"),
		t.EffectiveEnd().Format("15:04"),
	)
}
