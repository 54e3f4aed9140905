package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tempoapp/tempo/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.WeekLoadedMsg:
		m.weekStart = msg.WeekStart
		m.tasks = msg.Tasks
		m.loading = false
		m.err = nil
		m.relayout()
		return m, nil

	case commands.TaskMutatedMsg:
		m.statusMsg = msg.Status
		m.statusTime = time.Now().Add(3 * time.Second)
		m.loading = true
		return m, tea.Batch(
			commands.LoadWeek(m.repo, m.weekStart),
			clearStatusLater(),
		)

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		m.loading = false
		return m, clearStatusLater()

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now().Add(3 * time.Second)
}
