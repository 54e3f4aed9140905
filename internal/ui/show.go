package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %q", args[0])
			}

			t, err := a.repo.GetTask(context.Background(), id)
			if err != nil {
				return err
			}

			fmt.Printf("\n  %s\n", formatHeader(fmt.Sprintf("#%d %s", t.ID, t.Title)))
			if t.Description != "" {
				fmt.Printf("  %s\n", t.Description)
			}
			fmt.Printf("  priority: %d\n", t.Priority)
			if t.Start != nil {
				fmt.Printf("  scheduled: %s %s-%s\n",
					t.Start.Format("Mon Jan 2"),
					t.Start.Format("15:04"),
					t.EffectiveEnd().Format("15:04"))
				if t.End == nil {
					fmt.Printf("  %s\n", formatMuted("(no end time, shown as 60 minutes)"))
				}
			} else {
				fmt.Printf("  scheduled: %s\n", formatMuted("floating"))
			}
			if t.Project != nil {
				fmt.Printf("  project: %s\n", t.Project.Name)
			}
			if t.Completed {
				when := ""
				if t.CompletedAt != nil {
					when = " at " + t.CompletedAt.Format("2006-01-02 15:04")
				}
				fmt.Printf("  %s\n", formatOK("completed"+when))
			}
			return nil
		},
	}
}
