package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "tempo-test.db"))
	if err != nil {
		t.Fatalf("creating test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func ts(day, hour, min int) *time.Time {
	t := time.Date(2025, 1, day, hour, min, 0, 0, time.UTC)
	return &t
}

func TestCreateAndGetTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := &task.Task{
		Title:       "Write unit tests",
		Description: "db layer",
		Priority:    4,
		Start:       ts(15, 9, 0),
		End:         ts(15, 11, 0),
		CreatedAt:   time.Now(),
	}

	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if tsk.ID == 0 {
		t.Fatal("expected ID to be set after insert")
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "Write unit tests" || got.Priority != 4 {
		t.Errorf("got %q priority %d, want original values", got.Title, got.Priority)
	}
	if got.Start == nil || !got.Start.Equal(*tsk.Start) {
		t.Errorf("start = %v, want %v", got.Start, tsk.Start)
	}
	if got.End == nil || !got.End.Equal(*tsk.End) {
		t.Errorf("end = %v, want %v", got.End, tsk.End)
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}
}

func TestCreateTask_Floating(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := &task.Task{Title: "Someday", Priority: 2, CreatedAt: time.Now()}
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Start != nil || got.End != nil {
		t.Errorf("expected NULL times, got start=%v end=%v", got.Start, got.End)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetTask(context.Background(), 999)
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCompleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := &task.Task{Title: "Finish me", Priority: 3, CreatedAt: time.Now()}
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	at := time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC)
	if err := repo.CompleteTask(ctx, tsk.ID, at); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if !got.Completed {
		t.Error("expected task to be completed")
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, at)
	}
}

func TestCompleteTask_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.CompleteTask(context.Background(), 42, time.Now())
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := &task.Task{Title: "Draft", Priority: 2, Start: ts(15, 9, 0), CreatedAt: time.Now()}
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	tsk.Title = "Final"
	tsk.Priority = 5
	tsk.End = ts(15, 10, 30)
	if err := repo.UpdateTask(ctx, tsk); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "Final" || got.Priority != 5 {
		t.Errorf("got %q priority %d, want Final priority 5", got.Title, got.Priority)
	}
	if got.End == nil || !got.End.Equal(*tsk.End) {
		t.Errorf("end = %v, want %v", got.End, tsk.End)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := &task.Task{Title: "Ephemeral", Priority: 3, CreatedAt: time.Now()}
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, tsk.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.GetTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := repo.DeleteTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on double delete, got %v", err)
	}
}

func TestListTasksByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []*task.Task{
		{Title: "in range", Priority: 3, Start: ts(15, 9, 0), End: ts(15, 10, 0), CreatedAt: time.Now()},
		{Title: "before range", Priority: 3, Start: ts(10, 9, 0), End: ts(10, 10, 0), CreatedAt: time.Now()},
		{Title: "after range", Priority: 3, Start: ts(25, 9, 0), End: ts(25, 10, 0), CreatedAt: time.Now()},
		{Title: "floating", Priority: 3, CreatedAt: time.Now()},
		// Open-ended task at the range edge: starts 23:30 the day
		// before, implicit 60min crosses into the range.
		{Title: "open ended at edge", Priority: 3, Start: func() *time.Time {
			v := time.Date(2025, 1, 14, 23, 30, 0, 0, time.UTC)
			return &v
		}(), CreatedAt: time.Now()},
	}
	for _, tsk := range seed {
		if err := repo.CreateTask(ctx, tsk); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListTasksByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListTasksByDateRange failed: %v", err)
	}

	if len(got) != 2 {
		titles := make([]string, len(got))
		for i, tsk := range got {
			titles[i] = tsk.Title
		}
		t.Fatalf("got %d tasks %v, want 2", len(got), titles)
	}
	if got[0].Title != "open ended at edge" || got[1].Title != "in range" {
		t.Errorf("got %q, %q; want open-ended first (earlier start)", got[0].Title, got[1].Title)
	}
}

func TestListUnscheduled(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	scheduled := &task.Task{Title: "scheduled", Priority: 3, Start: ts(15, 9, 0), CreatedAt: time.Now()}
	floating := &task.Task{Title: "floating", Priority: 3, CreatedAt: time.Now()}
	for _, tsk := range []*task.Task{scheduled, floating} {
		if err := repo.CreateTask(ctx, tsk); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	got, err := repo.ListUnscheduled(ctx)
	if err != nil {
		t.Fatalf("ListUnscheduled failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "floating" {
		t.Fatalf("got %d tasks, want only the floating one", len(got))
	}
}

func TestProjects(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := &task.Project{Name: "Growth", Color: "#a6e3a1"}
	if err := repo.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected project ID to be set")
	}

	tsk := &task.Task{Title: "With project", Priority: 3, Project: p, CreatedAt: time.Now()}
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Project == nil || got.Project.Name != "Growth" || got.Project.Color != "#a6e3a1" {
		t.Errorf("project = %+v, want Growth #a6e3a1", got.Project)
	}

	projects, err := repo.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Growth" {
		t.Errorf("got %d projects, want 1 named Growth", len(projects))
	}
}
