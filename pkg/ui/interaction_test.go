package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ganttui/pkg/task"
)

func TestDeleteSelected(t *testing.T) {
	t.Run("should remove the task under the cursor without confirmation", func(t *testing.T) {
		// Arrange
		m := newTestModel(t, scenarioTasks()...)

		// Act: cursor starts on the first row
		m = apply(m, keyMsg("d"))

		// Assert
		tasks := m.store.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "2", tasks[0].ID)
	})

	t.Run("should do nothing on an empty store", func(t *testing.T) {
		m := newTestModel(t)

		m = apply(m, keyMsg("d"))

		assert.Equal(t, 0, m.store.Len())
	})

	t.Run("should keep the cursor in place so repeated deletes take adjacent tasks", func(t *testing.T) {
		// Arrange: the delete key must not leak into the table, where
		// it would double as a scroll binding and skip over a row
		tasks := append(scenarioTasks(),
			task.Task{ID: "3", Text: "Task 3", Start: task.Date(2024, time.January, 5), Duration: 2})
		m := newTestModel(t, tasks...)

		// Act
		m = apply(m, keyMsg("d"))

		// Assert
		assert.Equal(t, 0, m.table.Cursor())

		m = apply(m, keyMsg("d"))

		survivors := m.store.Tasks()
		require.Len(t, survivors, 1)
		assert.Equal(t, "3", survivors[0].ID)
	})
}

func TestKeyboardMove(t *testing.T) {
	t.Run("should shift the grabbed task and commit on enter", func(t *testing.T) {
		// Arrange
		m := newTestModel(t, scenarioTasks()...)

		// Act: grab the first task, two days earlier, commit
		m = apply(m, keyMsg("m"), keyMsg("left"), keyMsg("left"), keyMsg("enter"))

		// Assert
		got, ok := m.store.Get("1")
		require.True(t, ok)
		assert.Equal(t, task.Date(2023, time.December, 30), got.Start)
		assert.Equal(t, NormalMode, m.mode)
	})

	t.Run("should leave the store untouched on escape", func(t *testing.T) {
		m := newTestModel(t, scenarioTasks()...)

		m = apply(m, keyMsg("m"), keyMsg("right"), keyMsg("right"), keyMsg("esc"))

		got, ok := m.store.Get("1")
		require.True(t, ok)
		assert.Equal(t, task.Date(2024, time.January, 1), got.Start)
		assert.Equal(t, NormalMode, m.mode)
	})

	t.Run("should allow moving left of the window start", func(t *testing.T) {
		// The pending date is unclamped; committing a date before the
		// window start shifts the window on the next render.
		m := newTestModel(t, scenarioTasks()...)

		msgs := []tea.Msg{keyMsg("m")}
		for i := 0; i < 10; i++ {
			msgs = append(msgs, keyMsg("left"))
		}
		msgs = append(msgs, keyMsg("enter"))
		m = apply(m, msgs...)

		got, _ := m.store.Get("1")
		assert.Equal(t, task.Date(2023, time.December, 22), got.Start)
		assert.Equal(t, task.Date(2023, time.December, 17), m.window().Start)
	})
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseDrag(t *testing.T) {
	t.Run("should reschedule a bar dropped at the chart origin to the window start", func(t *testing.T) {
		// Arrange
		m := newTestModel(t, scenarioTasks()...)
		secondBarRow := chartFirstBarRow + 1

		// Act: grab the second task's bar, drag to column zero, release
		m = apply(m,
			mouse(tea.MouseActionPress, 120, secondBarRow),
			mouse(tea.MouseActionMotion, 60, secondBarRow),
			mouse(tea.MouseActionRelease, 0, secondBarRow),
		)

		// Assert
		got, ok := m.store.Get("2")
		require.True(t, ok)
		assert.Equal(t, task.Date(2023, time.December, 31), got.Start)
	})

	t.Run("should floor the drop offset to a day index", func(t *testing.T) {
		m := newTestModel(t, scenarioTasks()...)
		firstBarRow := chartFirstBarRow

		// 85 columns at 40 per day is day two of the window
		m = apply(m,
			mouse(tea.MouseActionPress, 50, firstBarRow),
			mouse(tea.MouseActionRelease, 85, firstBarRow),
		)

		got, _ := m.store.Get("1")
		assert.Equal(t, task.Date(2024, time.January, 2), got.Start)
	})

	t.Run("should cancel a release outside the bar rows", func(t *testing.T) {
		m := newTestModel(t, scenarioTasks()...)

		m = apply(m,
			mouse(tea.MouseActionPress, 120, chartFirstBarRow+1),
			mouse(tea.MouseActionRelease, 0, 0),
		)

		got, _ := m.store.Get("2")
		assert.Equal(t, task.Date(2024, time.January, 3), got.Start)
		assert.False(t, m.drag.active)
	})

	t.Run("should ignore a press outside the bar rows", func(t *testing.T) {
		m := newTestModel(t, scenarioTasks()...)

		m = apply(m, mouse(tea.MouseActionPress, 10, chartFirstBarRow+5))

		assert.False(t, m.drag.active)
	})

	t.Run("should ignore a drop of a task deleted mid-drag", func(t *testing.T) {
		// Arrange
		m := newTestModel(t, scenarioTasks()...)
		m = apply(m, mouse(tea.MouseActionPress, 120, chartFirstBarRow+1))
		m.store.Remove("2")

		// Act
		m = apply(m, mouse(tea.MouseActionRelease, 0, chartFirstBarRow))

		// Assert: no panic, no resurrection
		_, ok := m.store.Get("2")
		assert.False(t, ok)
	})
}

func TestDropAt(t *testing.T) {
	t.Run("should map a negative offset to a date before the window start", func(t *testing.T) {
		// Arrange
		m := newTestModel(t, scenarioTasks()...)

		// Act
		m.dropAt(dragPayload{TaskID: "2"}, -1)

		// Assert: one cell left of the origin is the previous day, and
		// the window re-derives around the new earliest date
		got, _ := m.store.Get("2")
		assert.Equal(t, task.Date(2023, time.December, 30), got.Start)
		assert.Equal(t, task.Date(2023, time.December, 24), m.window().Start)
	})

	t.Run("should ignore an unknown payload id", func(t *testing.T) {
		m := newTestModel(t, scenarioTasks()...)

		m.dropAt(dragPayload{TaskID: "missing"}, 0)

		got, _ := m.store.Get("1")
		assert.Equal(t, task.Date(2024, time.January, 1), got.Start)
		got, _ = m.store.Get("2")
		assert.Equal(t, task.Date(2024, time.January, 3), got.Start)
	})
}
