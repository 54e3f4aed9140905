package layout

import (
	"slices"
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

// eventKind orders end events before start events at equal offsets, so
// a task ending at minute M and another starting at minute M never
// overlap: back-to-back tasks do not force an aggregation.
type eventKind int

const (
	eventEnd eventKind = iota
	eventStart
)

// sweepEvent is a start or end boundary in window-relative minutes.
type sweepEvent struct {
	offset int
	kind   eventKind
	iv     *Interval
}

// buildEvents converts clipped intervals into a sorted event stream.
// The intervals must already be in canonical order (sortIntervals);
// the sort here is stable, so start events at the same minute preserve
// that order and the aggregation tie-break stays deterministic even
// for unordered-equivalent inputs.
func buildEvents(intervals []*Interval, windowStart time.Time) []sweepEvent {
	events := make([]sweepEvent, 0, 2*len(intervals))
	for _, iv := range intervals {
		start, end := iv.offsetMinutes(windowStart)
		events = append(events,
			sweepEvent{offset: start, kind: eventStart, iv: iv},
			sweepEvent{offset: end, kind: eventEnd, iv: iv},
		)
	}

	slices.SortStableFunc(events, func(a, b sweepEvent) int {
		if a.offset != b.offset {
			return a.offset - b.offset
		}
		return int(a.kind) - int(b.kind)
	})

	return events
}

// sortIntervals puts intervals into canonical order: by clipped start,
// then by task ID. Insertion order into the active set, and with it
// every tie-break, derives from this order.
func sortIntervals(intervals []*Interval) {
	slices.SortFunc(intervals, func(a, b *Interval) int {
		if a.Start.Before(b.Start) {
			return -1
		}
		if a.Start.After(b.Start) {
			return 1
		}
		return int(a.Task.ID - b.Task.ID)
	})
}

// sweep walks the sorted events maintaining an insertion-ordered active
// set. Whenever the set is non-empty and the sweep position advances,
// the finished segment is emitted as one item. After the last event the
// active set is empty again, so no trailing segment exists.
func sweep(events []sweepEvent, windowStart time.Time, w Window) []Item {
	var items []Item
	var active []*Interval
	lastBoundary := 0

	for _, ev := range events {
		if len(active) > 0 && ev.offset > lastBoundary {
			items = append(items, closeSegment(active, lastBoundary, ev.offset, windowStart, w))
		}
		switch ev.kind {
		case eventStart:
			active = append(active, ev.iv)
		case eventEnd:
			active = removeActive(active, ev.iv)
		}
		lastBoundary = ev.offset
	}

	return items
}

// closeSegment emits the item for [startMin, endMin) given the current
// active set.
func closeSegment(active []*Interval, startMin, endMin int, windowStart time.Time, w Window) Item {
	top := w.pixels(startMin)
	height := w.pixels(endMin) - top

	if len(active) == 1 {
		return Item{
			Kind:         KindTask,
			Top:          top,
			Height:       height,
			Task:         active[0].Task,
			VisibleStart: windowStart.Add(time.Duration(startMin) * time.Minute),
			VisibleEnd:   windowStart.Add(time.Duration(endMin) * time.Minute),
		}
	}

	tasks := make([]*task.Task, len(active))
	for i, iv := range active {
		tasks[i] = iv.Task
	}
	return Item{
		Kind:    KindGroup,
		Top:     top,
		Height:  height,
		Tasks:   tasks,
		Display: pickDisplay(tasks),
	}
}

// removeActive removes iv preserving the insertion order of the rest.
func removeActive(active []*Interval, iv *Interval) []*Interval {
	for i, a := range active {
		if a == iv {
			return append(active[:i], active[i+1:]...)
		}
	}
	return active
}
