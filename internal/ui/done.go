package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [task-id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %q", args[0])
			}

			if err := a.repo.CompleteTask(context.Background(), id, time.Now()); err != nil {
				return fmt.Errorf("completing task: %w", err)
			}

			fmt.Printf("%s #%d\n", formatOK("Completed task"), id)
			return nil
		},
	}
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id: %q", args[0])
			}

			if err := a.repo.DeleteTask(context.Background(), id); err != nil {
				return fmt.Errorf("deleting task: %w", err)
			}

			fmt.Printf("Deleted task #%d\n", id)
			return nil
		},
	}
}
