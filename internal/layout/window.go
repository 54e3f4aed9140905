// Package layout implements the interval layout engine behind the week
// view. Given a day's tasks it produces a minimal, non-overlapping
// sequence of vertically positioned render items: single-task blocks
// where exactly one task is active, aggregated blocks where several
// overlap, plus a separate all-day lane for tasks covering the whole
// display window. The engine is pure and holds no state between calls.
package layout

import (
	"errors"
	"time"
)

// Window configuration errors.
var (
	ErrInvalidWindowHours = errors.New("window hours must be within 0-23 with end after start")
	ErrInvalidPixelRatio  = errors.New("minutes per pixel must be positive")
)

// Default display window: 08:00-21:00, one minute per pixel.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 21
)

// Window is the fixed time-of-day range rendered as the timed grid for
// one day, plus the minute-to-pixel ratio used for geometry.
type Window struct {
	StartMinutes    int // minutes from midnight, e.g. 480 for 08:00
	EndMinutes      int
	MinutesPerPixel float64
}

// NewWindow creates a Window from whole display hours.
func NewWindow(startHour, endHour int, minutesPerPixel float64) (Window, error) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 || endHour <= startHour {
		return Window{}, ErrInvalidWindowHours
	}
	if minutesPerPixel <= 0 {
		return Window{}, ErrInvalidPixelRatio
	}
	return Window{
		StartMinutes:    startHour * 60,
		EndMinutes:      endHour * 60,
		MinutesPerPixel: minutesPerPixel,
	}, nil
}

// DefaultWindow returns the standard 08:00-21:00 window at 1 minute per pixel.
func DefaultWindow() Window {
	return Window{
		StartMinutes:    DefaultStartHour * 60,
		EndMinutes:      DefaultEndHour * 60,
		MinutesPerPixel: 1,
	}
}

// Minutes returns the window length in minutes.
func (w Window) Minutes() int {
	return w.EndMinutes - w.StartMinutes
}

// Pixels returns the window height in pixels.
func (w Window) Pixels() int {
	return w.pixels(w.Minutes())
}

// StartOn returns the window's opening wall-clock time on the given day.
func (w Window) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(w.StartMinutes) * time.Minute)
}

// EndOn returns the window's closing wall-clock time on the given day.
func (w Window) EndOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(w.EndMinutes) * time.Minute)
}

// pixels converts a minute offset inside the window to a pixel offset.
// With the default 1.0 ratio minutes map 1:1 to pixels.
func (w Window) pixels(minutes int) int {
	return int(float64(minutes) / w.MinutesPerPixel)
}
