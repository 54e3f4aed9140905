// Package tui provides the interactive week view for tempo.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tempoapp/tempo/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style

	// Day headers
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column (hour marks)
	TimeColumnStyle lipgloss.Style

	// Grid cells
	BlockStyle     lipgloss.Style // single-task block
	OverlapStyle   lipgloss.Style // aggregated block
	AllDayStyle    lipgloss.Style // all-day lane entry
	CompletedStyle lipgloss.Style
	CursorStyle    lipgloss.Style
	EmptyCellStyle lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style

	// Quick-add input
	InputStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true).
		Align(lipgloss.Center)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorBg).
		Background(s.colorAccent)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.BlockStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(t.Block))

	s.OverlapStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(t.Overlap))

	s.AllDayStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(t.AllDay))

	s.CompletedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Strikethrough(true)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(t.Cursor)).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.InputStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	return s
}
