package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ganttui/pkg/config"
	"ganttui/pkg/task"
)

// testNow is the fixed clock used across the UI tests: a Wednesday in
// the week starting Sunday 2024-01-07.
var testNow = task.Date(2024, time.January, 10)

func newTestModel(t *testing.T, tasks ...task.Task) Model {
	t.Helper()

	cfg := config.Default()
	cfg.CellWidth = 40 // per-day pixel width used by the canonical scenarios

	m := NewModel(task.NewStore(tasks...), cfg, config.DefaultStyles())
	m.now = func() time.Time { return testNow }
	return m
}

// scenarioTasks is the canonical two-task data set: both tasks sit in
// the week starting Sunday 2023-12-31.
func scenarioTasks() []task.Task {
	return []task.Task{
		{ID: "1", Text: "Task 1", Start: task.Date(2024, time.January, 1), Duration: 5, Progress: 0.45},
		{ID: "2", Text: "Task 2", Start: task.Date(2024, time.January, 3), Duration: 5, Progress: 0.3},
	}
}

func apply(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
