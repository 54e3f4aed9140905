package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/task"
)

func (a *App) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(a.projectAddCmd())
	cmd.AddCommand(a.projectListCmd())
	return cmd
}

func (a *App) projectAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := &task.Project{Name: args[0], Color: color}
			if err := a.repo.CreateProject(context.Background(), p); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}
			fmt.Printf("%s #%d: %s\n", formatOK("Created project"), p.ID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#89b4fa", "Hex color used in the week view")
	return cmd
}

func (a *App) projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(_ *cobra.Command, _ []string) error {
			projects, err := a.repo.ListProjects(context.Background())
			if err != nil {
				return fmt.Errorf("listing projects: %w", err)
			}
			if len(projects) == 0 {
				fmt.Println("no projects")
				return nil
			}
			for _, p := range projects {
				fmt.Printf("  #%-3d %s %s\n", p.ID, p.Name, formatMuted(p.Color))
			}
			return nil
		},
	}
}
