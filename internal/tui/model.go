package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tempoapp/tempo/internal/config"
	"github.com/tempoapp/tempo/internal/layout"
	"github.com/tempoapp/tempo/internal/task"
	"github.com/tempoapp/tempo/internal/tui/commands"
	"github.com/tempoapp/tempo/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd         // quick-add input focused
	ModeConfirmDelete
)

// Position is the cursor location: a day column and an item in it.
// Item -1 selects the day's all-day entry when one exists.
type Position struct {
	Day  int // 0=Monday, 6=Sunday
	Item int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   task.Repository
	config *config.Config
	window layout.Window

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	weekStart time.Time // Monday of current week
	tasks     []*task.Task
	layouts   [7]layout.DayLayout
	cursor    Position
	mode      Mode
	loading   bool

	// Components
	input textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config, w layout.Window) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}

	ti := textinput.New()
	ti.Placeholder = "tuesday 14:00-15:30 Review budget !4"
	ti.CharLimit = 256

	now := time.Now()
	return &Model{
		repo:      repo,
		config:    cfg,
		window:    w,
		theme:     t,
		styles:    NewStyles(t),
		weekStart: startOfWeek(now),
		cursor:    Position{Day: weekdayIndex(now)},
		mode:      ModeNormal,
		loading:   true,
		input:     ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadWeek(m.repo, m.weekStart)
}

// relayout recomputes the week geometry from the current task set.
func (m *Model) relayout() {
	m.layouts = layout.LayoutWeek(m.tasks, m.weekStart, m.window)
	m.clampCursor()
}

// clampCursor keeps the cursor on an existing item after reloads.
func (m *Model) clampCursor() {
	dl := m.layouts[m.cursor.Day]
	if m.cursor.Item >= len(dl.Items) {
		m.cursor.Item = len(dl.Items) - 1
	}
	min := 0
	if len(dl.AllDay) > 0 {
		min = -1
	}
	if m.cursor.Item < min {
		m.cursor.Item = min
	}
}

// selectedItem returns the item under the cursor, nil when the cursor
// is on the all-day lane or an empty day.
func (m *Model) selectedItem() *layout.Item {
	dl := m.layouts[m.cursor.Day]
	if m.cursor.Item < 0 || m.cursor.Item >= len(dl.Items) {
		return nil
	}
	return &dl.Items[m.cursor.Item]
}

// selectedTask returns the task acted on by complete/delete/yank: the
// single task of a block, the display task of an aggregation, or the
// all-day display task.
func (m *Model) selectedTask() *task.Task {
	dl := m.layouts[m.cursor.Day]
	if m.cursor.Item == -1 && len(dl.AllDay) > 0 {
		return dl.AllDay[0].Display
	}
	it := m.selectedItem()
	if it == nil {
		return nil
	}
	if it.Kind == layout.KindTask {
		return it.Task
	}
	return it.Display
}

func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func weekdayIndex(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 6
	}
	return weekday - 1
}

// Run starts the interactive week view.
func Run(repo task.Repository, cfg *config.Config) error {
	w, err := cfg.Window()
	if err != nil {
		return err
	}
	p := tea.NewProgram(New(repo, cfg, w), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
