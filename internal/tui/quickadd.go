package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tempoapp/tempo/internal/dateutil"
	"github.com/tempoapp/tempo/internal/task"
)

var errEmptyQuickAdd = errors.New("nothing to add")

// parseQuickAdd parses a quick-add line into a new task. Grammar, all
// parts except the title optional:
//
//	[day] [HH:MM[-HH:MM]] title [!priority]
//
// day is a weekday name ("monday".."sunday"), "today" or "tomorrow",
// resolved relative to now. A line with a day but no clock time makes
// no sense and is rejected; a line with neither makes a floating task.
// A start without an end leaves the end open.
func parseQuickAdd(input string, now time.Time) (*task.Task, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, errEmptyQuickAdd
	}

	day := dateutil.TruncateToDay(now)
	haveDay := false
	if d, err := dateutil.ParseRelativeDate(fields[0], now); err == nil {
		day = d
		haveDay = true
		fields = fields[1:]
	}

	var start, end *time.Time
	if len(fields) > 0 {
		s, e, ok, err := parseClockRange(fields[0], day)
		if err != nil {
			return nil, err
		}
		if ok {
			start, end = s, e
			fields = fields[1:]
		}
	}

	if haveDay && start == nil {
		return nil, fmt.Errorf("day %q given without a time", day.Format("Mon"))
	}

	priority := task.DefaultPriority
	if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "!") {
		p, err := strconv.Atoi(fields[n-1][1:])
		if err != nil {
			return nil, fmt.Errorf("bad priority %q", fields[n-1])
		}
		priority = p
		fields = fields[:n-1]
	}

	title := strings.Join(fields, " ")
	return task.New(title, priority, start, end)
}

// parseClockRange parses "HH:MM" or "HH:MM-HH:MM" on the given day.
// ok is false when the token does not look like a clock time at all,
// so the caller can treat it as part of the title.
func parseClockRange(token string, day time.Time) (start, end *time.Time, ok bool, err error) {
	first, rest, hasRange := strings.Cut(token, "-")
	if !looksLikeClock(first) {
		return nil, nil, false, nil
	}

	s, err := dateutil.ParseClock(day, first)
	if err != nil {
		return nil, nil, false, err
	}
	start = &s

	if hasRange {
		e, err := dateutil.ParseClock(day, rest)
		if err != nil {
			return nil, nil, false, err
		}
		// An end at or before the start means the task runs past
		// midnight into the next day.
		if !e.After(s) {
			e = e.AddDate(0, 0, 1)
		}
		end = &e
	}

	return start, end, true, nil
}

func looksLikeClock(s string) bool {
	h, _, found := strings.Cut(s, ":")
	if !found || h == "" {
		return false
	}
	for _, r := range h {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
