package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := a.config
			fmt.Printf("config file: %s\n\n", config.DefaultConfigPath())
			fmt.Printf("display window:    %02d:00-%02d:00\n", c.Schedule.WindowStartHour, c.Schedule.WindowEndHour)
			fmt.Printf("minutes per pixel: %g\n", c.Schedule.MinutesPerPixel)
			fmt.Printf("database:          %s\n", c.Storage.DBPath)
			fmt.Printf("theme:             %s\n", c.UI.Theme)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if err := a.config.SaveTo(path); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatOK("Wrote"), path)
			return nil
		},
	})

	return cmd
}
