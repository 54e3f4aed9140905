package layout

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/tempoapp/tempo/internal/task"
)

// Window 08:00-21:00 at 1 minute per pixel; offsets relative to 08:00.

func TestLayoutDay_SingleTask(t *testing.T) {
	tasks := []*task.Task{timedTask(1, 3, at(9, 0), at(10, 0))}

	dl := LayoutDay(tasks, testDay, DefaultWindow())

	if len(dl.AllDay) != 0 {
		t.Errorf("expected no all-day entries, got %d", len(dl.AllDay))
	}
	if len(dl.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(dl.Items))
	}
	it := dl.Items[0]
	if it.Kind != KindTask {
		t.Errorf("expected KindTask, got %v", it.Kind)
	}
	if it.Top != 60 || it.Height != 60 {
		t.Errorf("got top=%d height=%d, want top=60 height=60", it.Top, it.Height)
	}
	if !it.VisibleStart.Equal(at(9, 0)) || !it.VisibleEnd.Equal(at(10, 0)) {
		t.Errorf("visible range [%v, %v], want [09:00, 10:00]", it.VisibleStart, it.VisibleEnd)
	}
}

func TestLayoutDay_PartialOverlap(t *testing.T) {
	a := timedTask(1, 3, at(9, 0), at(9, 30))
	b := timedTask(2, 3, at(9, 15), at(9, 45))

	dl := LayoutDay([]*task.Task{a, b}, testDay, DefaultWindow())

	if len(dl.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(dl.Items))
	}

	first := dl.Items[0]
	if first.Kind != KindTask || first.Task.ID != 1 || first.Top != 60 || first.Height != 15 {
		t.Errorf("first item: kind=%v task=%v top=%d height=%d, want task 1 at top=60 height=15",
			first.Kind, first.Task, first.Top, first.Height)
	}

	mid := dl.Items[1]
	if mid.Kind != KindGroup || mid.Top != 75 || mid.Height != 15 {
		t.Errorf("middle item: kind=%v top=%d height=%d, want group at top=75 height=15",
			mid.Kind, mid.Top, mid.Height)
	}
	if len(mid.Tasks) != 2 {
		t.Errorf("expected 2 tasks in group, got %d", len(mid.Tasks))
	}

	last := dl.Items[2]
	if last.Kind != KindTask || last.Task.ID != 2 || last.Top != 90 || last.Height != 15 {
		t.Errorf("last item: kind=%v top=%d height=%d, want task 2 at top=90 height=15",
			last.Kind, last.Top, last.Height)
	}
}

func TestLayoutDay_OpenEndedTask(t *testing.T) {
	tasks := []*task.Task{{ID: 1, Title: "open", Priority: 3, Start: ptr(at(10, 0))}}

	dl := LayoutDay(tasks, testDay, DefaultWindow())

	if len(dl.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(dl.Items))
	}
	if dl.Items[0].Top != 120 || dl.Items[0].Height != 60 {
		t.Errorf("got top=%d height=%d, want top=120 height=60", dl.Items[0].Top, dl.Items[0].Height)
	}
	// The task record must keep its open end.
	if tasks[0].End != nil {
		t.Error("layout mutated the task's End")
	}
}

func TestLayoutDay_AllDayTask(t *testing.T) {
	spanning := timedTask(1, 3, at(7, 0), at(22, 0))
	timed := timedTask(2, 3, at(9, 0), at(10, 0))

	dl := LayoutDay([]*task.Task{spanning, timed}, testDay, DefaultWindow())

	if len(dl.AllDay) != 1 {
		t.Fatalf("expected 1 all-day entry, got %d", len(dl.AllDay))
	}
	if dl.AllDay[0].Display.ID != 1 {
		t.Errorf("all-day display task = %d, want 1", dl.AllDay[0].Display.ID)
	}
	// The spanning task must not leak into the timed grid.
	if len(dl.Items) != 1 || dl.Items[0].Task.ID != 2 {
		t.Fatalf("expected only task 2 on the timed grid, got %d items", len(dl.Items))
	}
}

func TestLayoutDay_MultipleAllDayAggregated(t *testing.T) {
	a := timedTask(1, 2, at(8, 0), at(21, 0))
	b := timedTask(2, 5, at(7, 30), at(21, 30))

	dl := LayoutDay([]*task.Task{a, b}, testDay, DefaultWindow())

	if len(dl.AllDay) != 1 {
		t.Fatalf("expected a single aggregated all-day entry, got %d", len(dl.AllDay))
	}
	entry := dl.AllDay[0]
	if len(entry.Tasks) != 2 {
		t.Errorf("expected 2 tasks in the all-day entry, got %d", len(entry.Tasks))
	}
	if entry.Display.ID != 2 {
		t.Errorf("display task = %d, want the higher-priority task 2", entry.Display.ID)
	}
}

func TestLayoutDay_BackToBackTasksDoNotAggregate(t *testing.T) {
	tasks := []*task.Task{
		timedTask(1, 3, at(9, 0), at(9, 20)),
		timedTask(2, 3, at(9, 20), at(9, 40)),
		timedTask(3, 3, at(9, 40), at(10, 0)),
	}

	dl := LayoutDay(tasks, testDay, DefaultWindow())

	if len(dl.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(dl.Items))
	}
	for i, it := range dl.Items {
		if it.Kind != KindTask {
			t.Errorf("item %d: expected KindTask, got group of %d", i, len(it.Tasks))
		}
		if it.Task.ID != int64(i+1) {
			t.Errorf("item %d: task id = %d, want %d", i, it.Task.ID, i+1)
		}
	}
}

func TestLayoutDay_PriorityTieBreak(t *testing.T) {
	// Equal priority: the task entering the active set first wins.
	a := timedTask(1, 3, at(9, 0), at(10, 0))
	b := timedTask(2, 3, at(9, 30), at(10, 30))

	dl := LayoutDay([]*task.Task{a, b}, testDay, DefaultWindow())

	var group *Item
	for i := range dl.Items {
		if dl.Items[i].Kind == KindGroup {
			group = &dl.Items[i]
		}
	}
	if group == nil {
		t.Fatal("expected an aggregation item")
	}
	if group.Display.ID != 1 {
		t.Errorf("display task = %d, want 1 (first inserted)", group.Display.ID)
	}
}

func TestLayoutDay_HigherPriorityWinsDisplay(t *testing.T) {
	a := timedTask(1, 2, at(9, 0), at(10, 0))
	b := timedTask(2, 5, at(9, 30), at(10, 30))

	dl := LayoutDay([]*task.Task{a, b}, testDay, DefaultWindow())

	for _, it := range dl.Items {
		if it.Kind == KindGroup && it.Display.ID != 2 {
			t.Errorf("display task = %d, want the higher-priority task 2", it.Display.ID)
		}
	}
}

func TestLayoutDay_PartitionProperty(t *testing.T) {
	tasks := []*task.Task{
		timedTask(1, 3, at(9, 0), at(11, 0)),
		timedTask(2, 4, at(10, 0), at(12, 30)),
		timedTask(3, 1, at(10, 30), at(10, 45)),
		timedTask(4, 5, at(14, 0), at(15, 0)),
		{ID: 5, Priority: 2, Start: ptr(at(16, 15))},
	}

	dl := LayoutDay(tasks, testDay, DefaultWindow())

	// Items are in ascending Top order and pairwise disjoint.
	for i := 1; i < len(dl.Items); i++ {
		prev, cur := dl.Items[i-1], dl.Items[i]
		if cur.Top < prev.Top+prev.Height {
			t.Errorf("items %d and %d overlap: [%d,%d) then [%d,%d)",
				i-1, i, prev.Top, prev.Top+prev.Height, cur.Top, cur.Top+cur.Height)
		}
	}

	// Every minute covered by >= 1 task is covered by exactly one item.
	covered := make(map[int]int)
	for _, it := range dl.Items {
		for px := it.Top; px < it.Top+it.Height; px++ {
			covered[px]++
		}
	}
	w := DefaultWindow()
	for minute := 0; minute < w.Minutes(); minute++ {
		active := 0
		pos := at(8, 0).Add(time.Duration(minute) * time.Minute)
		for _, tsk := range tasks {
			if !tsk.Start.After(pos) && tsk.EffectiveEnd().After(pos) {
				active++
			}
		}
		switch {
		case active > 0 && covered[minute] != 1:
			t.Fatalf("minute %d: %d active tasks but %d covering items", minute, active, covered[minute])
		case active == 0 && covered[minute] != 0:
			t.Fatalf("minute %d: no active tasks but %d covering items", minute, covered[minute])
		}
	}
}

func TestLayoutDay_Deterministic(t *testing.T) {
	tasks := []*task.Task{
		timedTask(1, 3, at(9, 0), at(11, 0)),
		timedTask(2, 3, at(9, 0), at(10, 0)),
		timedTask(3, 4, at(10, 30), at(12, 0)),
		timedTask(4, 3, at(11, 0), at(11, 30)),
		timedTask(5, 1, at(9, 45), at(10, 15)),
	}

	reference := LayoutDay(tasks, testDay, DefaultWindow())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*task.Task, len(tasks))
		copy(shuffled, tasks)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := LayoutDay(shuffled, testDay, DefaultWindow())
		if !reflect.DeepEqual(got, reference) {
			t.Fatalf("shuffle %d: layout differs from reference", i)
		}
	}
}

func TestLayoutDay_MergeMinimality(t *testing.T) {
	tasks := []*task.Task{
		timedTask(1, 3, at(9, 0), at(12, 0)),
		timedTask(2, 3, at(9, 30), at(10, 0)),
		timedTask(3, 3, at(10, 30), at(11, 0)),
	}

	dl := LayoutDay(tasks, testDay, DefaultWindow())

	for i := 1; i < len(dl.Items); i++ {
		if mergeable(dl.Items[i-1], dl.Items[i]) {
			t.Errorf("items %d and %d should have been merged", i-1, i)
		}
	}
}

func TestLayoutDay_Empty(t *testing.T) {
	dl := LayoutDay(nil, testDay, DefaultWindow())
	if len(dl.Items) != 0 || len(dl.AllDay) != 0 {
		t.Errorf("expected empty layout, got %d items, %d all-day", len(dl.Items), len(dl.AllDay))
	}
}

func TestLayoutWeek_CrossDayTask(t *testing.T) {
	// Wednesday 20:00 to Thursday 10:00: appears clipped on both days.
	start := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC) // Wednesday
	end := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	tsk := timedTask(1, 3, start, end)

	layouts := LayoutWeek([]*task.Task{tsk}, testDay, DefaultWindow())

	wed, thu := layouts[2], layouts[3]
	if len(wed.Items) != 1 {
		t.Fatalf("expected 1 item on Wednesday, got %d", len(wed.Items))
	}
	if wed.Items[0].Top != 720 || wed.Items[0].Height != 60 {
		t.Errorf("Wednesday: top=%d height=%d, want top=720 height=60", wed.Items[0].Top, wed.Items[0].Height)
	}
	if len(thu.Items) != 1 {
		t.Fatalf("expected 1 item on Thursday, got %d", len(thu.Items))
	}
	if thu.Items[0].Top != 0 || thu.Items[0].Height != 120 {
		t.Errorf("Thursday: top=%d height=%d, want top=0 height=120", thu.Items[0].Top, thu.Items[0].Height)
	}

	for i, dl := range layouts {
		if i == 2 || i == 3 {
			continue
		}
		if len(dl.Items) != 0 {
			t.Errorf("day %d: expected no items, got %d", i, len(dl.Items))
		}
	}
}

func TestLayoutWeek_BucketingMatchesPerDayLayout(t *testing.T) {
	// The per-day bucketing inside LayoutWeek is an input-size
	// optimization; handing every day the full task set must produce
	// the same layouts.
	start := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	outOfWeek := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)

	tasks := []*task.Task{
		timedTask(1, 3, at(9, 0), at(10, 0)),
		timedTask(2, 4, at(9, 30), at(11, 0)),
		timedTask(3, 3, start, end),
		timedTask(4, 3, outOfWeek, outOfWeek.Add(time.Hour)),
		{ID: 5, Title: "floating", Priority: 3},
		nil,
	}

	w := DefaultWindow()
	layouts := LayoutWeek(tasks, testDay, w)

	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	for i := range layouts {
		want := LayoutDay(tasks, monday.AddDate(0, 0, i), w)
		if !reflect.DeepEqual(layouts[i], want) {
			t.Errorf("day %d: LayoutWeek = %+v, want %+v", i, layouts[i], want)
		}
	}
}

func TestLayoutDay_MinutesPerPixelScaling(t *testing.T) {
	w, err := NewWindow(8, 21, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dl := LayoutDay([]*task.Task{timedTask(1, 3, at(9, 0), at(10, 0))}, testDay, w)

	if len(dl.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(dl.Items))
	}
	if dl.Items[0].Top != 30 || dl.Items[0].Height != 30 {
		t.Errorf("got top=%d height=%d, want top=30 height=30 at 2 min/px", dl.Items[0].Top, dl.Items[0].Height)
	}
}
