package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tempoapp/tempo/internal/dateutil"
	"github.com/tempoapp/tempo/internal/layout"
	"github.com/tempoapp/tempo/internal/task"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		date    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print this week's schedule",
		Long: `Print the laid-out schedule for the week containing the given date.

Each day shows its all-day lane followed by the timed blocks; overlapping
tasks appear as a single aggregated block.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			window, err := a.config.Window()
			if err != nil {
				return err
			}

			monday, sunday := dateutil.WeekRange(day)
			tasks, err := a.repo.ListTasksByDateRange(context.Background(), monday, sunday.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			printWeek(tasks, monday, sunday, window)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week (default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func printWeek(tasks []*task.Task, monday, sunday time.Time, window layout.Window) {
	header := fmt.Sprintf("WEEK: %s - %s", monday.Format("Mon Jan 2"), sunday.Format("Mon Jan 2, 2006"))
	fmt.Printf("\n  %s\n", formatHeader(header))

	width := min(termWidth(), 74)
	fmt.Println(strings.Repeat("─", width))

	layouts := layout.LayoutWeek(tasks, monday, window)
	empty := true

	for i, dl := range layouts {
		if len(dl.AllDay) == 0 && len(dl.Items) == 0 {
			continue
		}
		empty = false

		fmt.Printf("  %s %s\n", formatHeader(task.WeekdayShortName(i)), dl.Date.Format("Jan 2"))
		for _, entry := range dl.AllDay {
			fmt.Printf("    %s\n", formatAllDayEntry(entry))
		}
		for _, item := range dl.Items {
			fmt.Printf("    %s\n", formatItem(item, dl.Date, window))
		}
	}

	if empty {
		fmt.Println("  No scheduled tasks this week.")
	}
}

// formatAllDayEntry renders the all-day lane summary.
func formatAllDayEntry(entry layout.AllDayEntry) string {
	if len(entry.Tasks) == 1 {
		return fmt.Sprintf("all-day  %s", formatTask(entry.Display.Title))
	}
	return formatGroup(fmt.Sprintf("all-day  %s (+%d more)", entry.Display.Title, len(entry.Tasks)-1))
}

// formatItem renders one render item as a schedule row.
func formatItem(item layout.Item, day time.Time, window layout.Window) string {
	switch item.Kind {
	case layout.KindTask:
		return fmt.Sprintf("%s-%s  %s",
			item.VisibleStart.Format("15:04"),
			item.VisibleEnd.Format("15:04"),
			formatTask(item.Task.Title),
		)
	default:
		start := window.StartOn(day).Add(time.Duration(float64(item.Top)*window.MinutesPerPixel) * time.Minute)
		end := start.Add(time.Duration(float64(item.Height)*window.MinutesPerPixel) * time.Minute)
		return fmt.Sprintf("%s-%s  %s",
			start.Format("15:04"),
			end.Format("15:04"),
			formatGroup(fmt.Sprintf("%s (+%d more)", item.Display.Title, len(item.Tasks)-1)),
		)
	}
}
