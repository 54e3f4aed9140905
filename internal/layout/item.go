package layout

import (
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

// ItemKind distinguishes the two render item variants.
type ItemKind int

const (
	// KindTask is a block with exactly one active task.
	KindTask ItemKind = iota
	// KindGroup is a block where two or more tasks overlap.
	KindGroup
)

// Item is one non-overlapping visual block in a day column. Items are
// emitted in ascending Top order; gaps between them are implicit (the
// grid background, not an item, represents "no task").
type Item struct {
	Kind   ItemKind
	Top    int // pixels from the top of the display window
	Height int // pixels; true duration, no legibility floor applied

	// KindTask only.
	Task         *task.Task
	VisibleStart time.Time
	VisibleEnd   time.Time

	// KindGroup only. Display is the highest-priority member, ties
	// broken by the order tasks entered the active set.
	Tasks   []*task.Task
	Display *task.Task
}

// TaskIDs returns the ids of the tasks the item represents.
func (it Item) TaskIDs() []int64 {
	if it.Kind == KindTask {
		return []int64{it.Task.ID}
	}
	ids := make([]int64, len(it.Tasks))
	for i, t := range it.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// AllDayEntry summarizes the tasks whose clipped interval covers the
// whole display window. A day with several all-day tasks collapses to
// a single entry with the same display-task semantics as KindGroup.
type AllDayEntry struct {
	Tasks   []*task.Task
	Display *task.Task
}

// pickDisplay returns the highest-priority task, keeping the earliest
// on ties.
func pickDisplay(tasks []*task.Task) *task.Task {
	display := tasks[0]
	for _, t := range tasks[1:] {
		if t.Priority > display.Priority {
			display = t
		}
	}
	return display
}
