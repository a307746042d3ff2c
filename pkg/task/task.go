package task

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Task represents a single bar on the chart: a named piece of work
// starting on a calendar day and spanning a whole number of days.
type Task struct {
	ID       string
	Text     string
	Start    time.Time
	Duration int     // days, always >= 1
	Progress float64 // completion fraction, always in [0, 1]
}

// New builds a well-formed task: a fresh id, the start date stripped to
// midnight UTC, duration coerced to at least one day and progress clamped
// into [0, 1]. Callers never need to pre-validate.
func New(text string, start time.Time, duration int, progress float64) Task {
	return Task{
		ID:       NewID(),
		Text:     text,
		Start:    Midnight(start),
		Duration: NormalizeDuration(duration),
		Progress: ClampProgress(progress),
	}
}

// NewID returns a fresh unique task id derived from the current instant.
// Time-based UUIDs stay unique even when two tasks are created within the
// same clock tick.
func NewID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		// NewUUID only fails when the node id is unavailable; the raw
		// timestamp is good enough then.
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}

// ClampProgress clamps a completion fraction into [0, 1].
func ClampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// NormalizeDuration coerces a day count to the one-day minimum.
func NormalizeDuration(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

// Midnight strips the time of day, anchoring the date at midnight UTC so
// day arithmetic stays exact across the codebase.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleTasks returns the two demo tasks seeded on startup, anchored to
// the given week start so they always land inside the visible window.
func SampleTasks(weekStart time.Time) []Task {
	return []Task{
		New("Task 1", weekStart.AddDate(0, 0, 1), 5, 0.45),
		New("Task 2", weekStart.AddDate(0, 0, 3), 5, 0.3),
	}
}
