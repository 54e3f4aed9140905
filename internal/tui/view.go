package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tempoapp/tempo/internal/layout"
	"github.com/tempoapp/tempo/internal/task"
)

const (
	timeColWidth  = 6
	minColWidth   = 8
	chromeHeight  = 5 // title, day header, all-day lane, status, help
	minGridHeight = 5
)

// View renders the week grid.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	colWidth := (m.width - timeColWidth) / 7
	if colWidth < minColWidth {
		return "Terminal too small"
	}
	gridRows := m.height - chromeHeight
	if m.mode == ModeAdd {
		gridRows--
	}
	if gridRows < minGridHeight {
		return "Terminal too small"
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeaders(colWidth))
	b.WriteByte('\n')
	b.WriteString(m.renderAllDayLane(colWidth))
	b.WriteByte('\n')
	b.WriteString(m.renderGrid(colWidth, gridRows))
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderTitle() string {
	title := fmt.Sprintf("tempo  %s - %s",
		m.weekStart.Format("Jan 2"),
		m.weekStart.AddDate(0, 0, 6).Format("Jan 2, 2006"))
	if m.loading {
		title += "  (loading)"
	}
	return m.styles.TitleStyle.Render(title)
}

func (m Model) renderDayHeaders(colWidth int) string {
	today := time.Now()
	cells := make([]string, 0, 8)
	cells = append(cells, strings.Repeat(" ", timeColWidth))
	for d := 0; d < 7; d++ {
		date := m.weekStart.AddDate(0, 0, d)
		label := fmt.Sprintf("%s %d", task.WeekdayShortName(d), date.Day())
		style := m.styles.DayHeaderStyle
		if sameDay(date, today) {
			style = m.styles.DayHeaderTodayStyle
		}
		cells = append(cells, style.Width(colWidth).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderAllDayLane draws one row above the timed grid holding the
// aggregated all-day entry of each day, if any.
func (m Model) renderAllDayLane(colWidth int) string {
	cells := make([]string, 0, 8)
	cells = append(cells, padCell("", timeColWidth))
	for d := 0; d < 7; d++ {
		dl := m.layouts[d]
		if len(dl.AllDay) == 0 {
			cells = append(cells, padCell("", colWidth))
			continue
		}
		entry := dl.AllDay[0]
		label := entry.Display.Title
		if extra := len(entry.Tasks) - 1; extra > 0 {
			label = fmt.Sprintf("%s +%d", label, extra)
		}
		style := m.styles.AllDayStyle
		if m.cursor.Day == d && m.cursor.Item == -1 {
			style = m.styles.CursorStyle
		}
		cells = append(cells, style.Render(fitCell(label, colWidth)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderGrid(colWidth, gridRows int) string {
	marks := hourMarks(m.window, gridRows)
	timeCol := make([]string, gridRows)
	for r := 0; r < gridRows; r++ {
		timeCol[r] = m.styles.TimeColumnStyle.Render(padCell(marks[r], timeColWidth))
	}

	cols := make([]string, 0, 8)
	cols = append(cols, strings.Join(timeCol, "\n"))
	for d := 0; d < 7; d++ {
		cols = append(cols, m.renderDayColumn(d, colWidth, gridRows))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderDayColumn(day, colWidth, gridRows int) string {
	dl := m.layouts[day]
	spans := mapRows(dl.Items, gridRows, m.window.Pixels())
	content := rowContent(spans, gridRows)

	firstRow := make(map[int]int, len(spans))
	for _, sp := range spans {
		firstRow[sp.Item] = sp.Top
	}

	rows := make([]string, gridRows)
	for r := 0; r < gridRows; r++ {
		idx := content[r]
		if idx < 0 {
			rows[r] = m.styles.EmptyCellStyle.Render(padCell("", colWidth))
			continue
		}
		it := dl.Items[idx]
		label := ""
		if firstRow[idx] == r {
			label = itemLabel(it)
		}
		rows[r] = m.itemStyle(day, idx, it).Render(fitCell(label, colWidth))
	}
	return strings.Join(rows, "\n")
}

func (m Model) itemStyle(day, idx int, it layout.Item) lipgloss.Style {
	if m.cursor.Day == day && m.cursor.Item == idx {
		return m.styles.CursorStyle
	}
	if it.Kind == layout.KindGroup {
		return m.styles.OverlapStyle
	}
	if it.Task.Completed {
		return m.styles.CompletedStyle
	}
	return m.styles.BlockStyle
}

func itemLabel(it layout.Item) string {
	if it.Kind == layout.KindTask {
		return it.Task.Title
	}
	return fmt.Sprintf("[%d] %s", len(it.Tasks), it.Display.Title)
}

func (m Model) renderFooter() string {
	var b strings.Builder

	if m.mode == ModeAdd {
		b.WriteString(m.styles.InputStyle.Render("add> " + m.input.View()))
		b.WriteByte('\n')
	}

	status := m.statusMsg
	style := m.styles.StatusStyle
	if m.err != nil && strings.HasPrefix(status, "Error") {
		style = m.styles.WarningStyle
	}
	if m.mode == ModeConfirmDelete {
		style = m.styles.WarningStyle
	}
	b.WriteString(style.Render(status))
	b.WriteByte('\n')
	b.WriteString(m.styles.HelpStyle.Render(
		"h/l day · j/k block · H/L week · t today · a add · space done · x delete · y yank · q quit"))

	return b.String()
}

// fitCell truncates with an ellipsis and pads to exactly width cells.
func fitCell(s string, width int) string {
	s = " " + s
	s = ansi.Truncate(s, width, "…")
	return padCell(s, width)
}

func padCell(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
