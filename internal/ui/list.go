package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/dateutil"
	"github.com/tempoapp/tempo/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date     string
		floating bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a day, or the floating list",
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			ctx := context.Background()

			if floating {
				tasks, err := a.repo.ListUnscheduled(ctx)
				if err != nil {
					return fmt.Errorf("listing unscheduled tasks: %w", err)
				}
				printTaskList("FLOATING", tasks)
				return nil
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}
			tasks, err := a.repo.ListTasksByDateRange(ctx, day, day.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			printTaskList(day.Format("Mon Jan 2"), tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (default: today)")
	cmd.Flags().BoolVar(&floating, "floating", false, "Show unscheduled tasks instead")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func printTaskList(header string, tasks []*task.Task) {
	fmt.Printf("\n  %s\n", formatHeader(header))
	if len(tasks) == 0 {
		fmt.Println("  no tasks")
		return
	}
	for _, t := range tasks {
		fmt.Printf("  %s\n", formatTaskLine(t))
	}
}

// formatTaskLine renders one task as a list row.
func formatTaskLine(t *task.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}

	line := fmt.Sprintf("%s #%-3d %s", mark, t.ID, t.Title)
	if t.Start != nil {
		line += fmt.Sprintf("  %s-%s", t.Start.Format("15:04"), t.EffectiveEnd().Format("15:04"))
	}
	if t.Project != nil {
		line += formatMuted(" (" + t.Project.Name + ")")
	}
	if t.Completed {
		return formatMuted(line)
	}
	return line
}
