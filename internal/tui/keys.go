package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tempoapp/tempo/internal/layout"
	"github.com/tempoapp/tempo/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeAdd:
		return m.handleAddKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			m.cursor.Item = 0
			m.clampCursor()
		}
	case "l", "right":
		if m.cursor.Day < 6 {
			m.cursor.Day++
			m.cursor.Item = 0
			m.clampCursor()
		}
	case "j", "down":
		if m.cursor.Item < len(m.layouts[m.cursor.Day].Items)-1 {
			m.cursor.Item++
		}
	case "k", "up":
		floor := 0
		if len(m.layouts[m.cursor.Day].AllDay) > 0 {
			floor = -1 // the all-day lane sits above the first item
		}
		if m.cursor.Item > floor {
			m.cursor.Item--
		}

	// Week navigation
	case "H", "shift+left":
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
		m.loading = true
		return m, commands.LoadWeek(m.repo, m.weekStart)
	case "L", "shift+right":
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
		m.loading = true
		return m, commands.LoadWeek(m.repo, m.weekStart)
	case "t":
		now := time.Now()
		m.weekStart = startOfWeek(now)
		m.cursor = Position{Day: weekdayIndex(now)}
		m.loading = true
		return m, commands.LoadWeek(m.repo, m.weekStart)

	// Actions
	case "a":
		m.mode = ModeAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case " ":
		if t := m.selectedTask(); t != nil {
			return m, commands.CompleteTask(m.repo, t.ID)
		}
		m.setStatus("Nothing selected")

	case "x", "d":
		if t := m.selectedTask(); t != nil {
			m.mode = ModeConfirmDelete
			m.setStatus(fmt.Sprintf("Delete %q? (y/n)", t.Title))
		} else {
			m.setStatus("Nothing selected")
		}

	case "y":
		return m.yankSelection()
	}

	return m, nil
}

// handleAddKeys handles keys while the quick-add input is focused.
func (m Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		t, err := parseQuickAdd(m.input.Value(), m.weekStart.AddDate(0, 0, m.cursor.Day))
		if err != nil {
			m.setStatus(fmt.Sprintf("Error: %v", err))
			return m, nil
		}
		m.mode = ModeNormal
		m.input.Blur()
		return m, commands.CreateTask(m.repo, t)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if msg.String() == "y" {
		if t := m.selectedTask(); t != nil {
			return m, commands.DeleteTask(m.repo, t.ID)
		}
	}
	m.setStatus("Cancelled")
	return m, nil
}

// yankSelection copies a text summary of the selected block to the
// system clipboard.
func (m Model) yankSelection() (tea.Model, tea.Cmd) {
	dl := m.layouts[m.cursor.Day]

	var text string
	switch {
	case m.cursor.Item == -1 && len(dl.AllDay) > 0:
		titles := make([]string, len(dl.AllDay[0].Tasks))
		for i, t := range dl.AllDay[0].Tasks {
			titles[i] = t.Title
		}
		text = fmt.Sprintf("%s all day: %s",
			dl.Date.Format("Mon Jan 2"), strings.Join(titles, ", "))
	default:
		it := m.selectedItem()
		if it == nil {
			m.setStatus("Nothing selected")
			return m, nil
		}
		if it.Kind == layout.KindTask {
			text = fmt.Sprintf("%s %s-%s %s",
				dl.Date.Format("Mon Jan 2"),
				it.VisibleStart.Format("15:04"), it.VisibleEnd.Format("15:04"),
				it.Task.Title)
		} else {
			titles := make([]string, len(it.Tasks))
			for i, t := range it.Tasks {
				titles[i] = t.Title
			}
			text = fmt.Sprintf("%s: %s", dl.Date.Format("Mon Jan 2"),
				strings.Join(titles, ", "))
		}
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.setStatus(fmt.Sprintf("Clipboard error: %v", err))
		return m, nil
	}
	m.setStatus("Copied to clipboard")
	return m, nil
}
