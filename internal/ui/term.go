package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI output.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Task titles in schedule output
	colorTask = color.New(color.FgCyan)

	// Aggregated blocks: yellow so stacked tasks stand out
	colorGroup = color.New(color.FgYellow)

	// Completed tasks and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Positive confirmations
	colorOK = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatTask formats a task title.
func formatTask(s string) string {
	return colorTask.Sprint(s)
}

// formatGroup formats an aggregated block label.
func formatGroup(s string) string {
	return colorGroup.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatOK formats a confirmation message.
func formatOK(s string) string {
	return colorOK.Sprint(s)
}
