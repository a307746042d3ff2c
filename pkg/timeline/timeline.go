package timeline

import (
	"time"

	"ganttui/pkg/task"
)

// The chart always shows four whole weeks, aligned to Sunday.
const (
	WeekStart   = time.Sunday
	WindowWeeks = 4
	WindowDays  = WindowWeeks * 7
)

// DefaultCellWidth is the number of terminal columns representing one
// day. Six columns fit an MM/dd header label.
const DefaultCellWidth = 6

// StartOfWeek returns the Sunday on or before t, at midnight UTC.
func StartOfWeek(t time.Time) time.Time {
	day := task.Midnight(t)
	back := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// DaysBetween returns the number of calendar days from a to b, negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(task.Midnight(b).Sub(task.Midnight(a)).Hours() / 24)
}

// Window is the contiguous four-week date range currently rendered by
// the chart.
type Window struct {
	Start time.Time
}

// ComputeWindow derives the visible window from the live task set: the
// week containing the earliest start date, or the week containing now
// when no tasks exist. Callers re-derive it on every render and on every
// drop decode, so the chart can never disagree with the store.
func ComputeWindow(tasks []task.Task, now time.Time) Window {
	if len(tasks) == 0 {
		return Window{Start: StartOfWeek(now)}
	}
	earliest := tasks[0].Start
	for _, t := range tasks[1:] {
		if t.Start.Before(earliest) {
			earliest = t.Start
		}
	}
	return Window{Start: StartOfWeek(earliest)}
}

// End returns the first day after the window.
func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, WindowDays)
}

// Days returns the total number of days the window spans.
func (w Window) Days() int {
	return WindowDays
}

// DayAt returns the date of the i-th window column. Indices outside
// [0, Days) resolve to dates outside the window.
func (w Window) DayAt(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := task.Midnight(t)
	return !d.Before(w.Start) && d.Before(w.End())
}

// Geometry converts between dates and horizontal chart columns at a
// fixed cell width.
type Geometry struct {
	CellWidth int
}

// OffsetOf returns the left edge of a bar starting on the given date.
func (g Geometry) OffsetOf(w Window, start time.Time) int {
	return DaysBetween(w.Start, start) * g.CellWidth
}

// WidthOf returns the rendered width of a bar spanning duration days.
func (g Geometry) WidthOf(duration int) int {
	return duration * g.CellWidth
}

// ChartWidth returns the total width of the chart surface.
func (g Geometry) ChartWidth(w Window) int {
	return w.Days() * g.CellWidth
}

// DayIndexAt maps a horizontal offset to a window day index, flooring
// toward negative infinity: offsets left of the origin land on earlier
// days instead of snapping to zero.
func (g Geometry) DayIndexAt(offset int) int {
	if offset < 0 {
		return -((-offset + g.CellWidth - 1) / g.CellWidth)
	}
	return offset / g.CellWidth
}

// DateAt converts a horizontal offset inside the chart into the date a
// drop at that position selects. The result is not clamped to the
// window; the window re-derives from the store afterwards.
func (g Geometry) DateAt(w Window, offset int) time.Time {
	return w.DayAt(g.DayIndexAt(offset))
}
