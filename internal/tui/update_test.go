package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/tempoapp/tempo/internal/task"
	"github.com/tempoapp/tempo/internal/tui/commands"
)

func TestWeekLoadedClearsError(t *testing.T) {
	m := testModel(t, nil)

	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("boom")})
	m = updated.(Model)
	if m.err == nil {
		t.Fatal("expected error to be recorded")
	}

	updated, _ = m.Update(commands.WeekLoadedMsg{WeekStart: m.weekStart})
	m = updated.(Model)
	if m.err != nil {
		t.Errorf("err = %v, want nil after a successful load", m.err)
	}
}

func TestWeekLoadedRelayouts(t *testing.T) {
	m := testModel(t, nil)
	if len(m.layouts[0].Items) != 0 {
		t.Fatal("expected empty initial layout")
	}

	start := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)
	tsk := &task.Task{ID: 1, Title: "Deep work", Priority: task.DefaultPriority, Start: &start, End: &end}

	updated, _ := m.Update(commands.WeekLoadedMsg{
		WeekStart: m.weekStart,
		Tasks:     []*task.Task{tsk},
	})
	m = updated.(Model)

	if len(m.layouts[0].Items) != 1 {
		t.Fatalf("got %d items on Monday, want 1", len(m.layouts[0].Items))
	}
	if m.loading {
		t.Error("loading flag not cleared")
	}
}

func TestErrMsgSetsWarningStatus(t *testing.T) {
	m := testModel(t, nil)

	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("boom")})
	m = updated.(Model)

	if m.statusMsg == "" {
		t.Error("expected a status message for the error")
	}
	if m.loading {
		t.Error("loading flag should clear on error")
	}
}
