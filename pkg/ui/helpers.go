package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"ganttui/pkg/task"
	"ganttui/pkg/utils"
)

// Draft is the in-progress, not-yet-committed task data held by the
// creation form. It is rebuilt from the raw inputs on demand, with
// clamping and defaulting applied before anything reaches the store.
type Draft struct {
	Text     string
	Start    time.Time
	HasStart bool
	Duration int
	Progress float64
}

// draft derives the current Draft from the form inputs. Progress is
// entered in percent and converted to a clamped fraction here; a
// non-positive or unparseable duration falls back to one day; a date
// that does not parse leaves the draft without a start date.
func (m Model) draft() Draft {
	d := Draft{
		Text:     strings.TrimSpace(m.nameInput.Value()),
		Duration: 1,
	}

	if start, err := time.Parse("2006-01-02", strings.TrimSpace(m.dateInput.Value())); err == nil {
		d.Start = task.Midnight(start)
		d.HasStart = true
	}

	if days, err := strconv.Atoi(strings.TrimSpace(m.durationInput.Value())); err == nil {
		d.Duration = task.NormalizeDuration(days)
	}

	if percent, err := strconv.ParseFloat(strings.TrimSpace(m.progressInput.Value()), 64); err == nil {
		d.Progress = task.ClampProgress(percent / 100)
	}

	return d
}

// submitForm commits the draft as a new task. An empty name or a
// missing start date makes the submit a silent no-op: nothing is
// added, no message is shown and the inputs keep whatever was typed.
func (m *Model) submitForm() {
	d := m.draft()
	if d.Text == "" || !d.HasStart {
		return
	}

	t := task.New(d.Text, d.Start, d.Duration, d.Progress)
	m.store.Add(t)
	utils.Log("Added task %s (%q, start %s)", t.ID, t.Text, t.Start.Format("2006-01-02"))

	m.mode = NormalMode
	m.resetInputs()
	m.refreshTable()
}

// deleteSelected removes the task under the cursor. No confirmation.
func (m *Model) deleteSelected() {
	tasks := m.store.Tasks()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(tasks) {
		return
	}

	m.store.Remove(tasks[idx].ID)
	utils.Log("Deleted task %s", tasks[idx].ID)
	m.refreshTable()
}

// grabSelected picks up the task under the cursor for keyboard
// rescheduling, seeding the pending date with its current start.
func (m *Model) grabSelected() {
	tasks := m.store.Tasks()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(tasks) {
		return
	}

	m.mode = MoveMode
	m.moveID = tasks[idx].ID
	m.movePending = tasks[idx].Start
}

// shiftPending moves the grabbed task's pending start date by the given
// number of days. The date is not clamped to the window; the window
// re-derives itself once the move commits.
func (m *Model) shiftPending(days int) {
	m.movePending = m.movePending.AddDate(0, 0, days)
}

// commitMove reschedules the grabbed task to the pending date.
func (m *Model) commitMove() {
	m.store.Reschedule(m.moveID, m.movePending)
	utils.Log("Rescheduled task %s to %s", m.moveID, m.movePending.Format("2006-01-02"))
	m.mode = NormalMode
	m.moveID = ""
	m.refreshTable()
}

// cancelMove drops the grabbed task without mutating the store.
func (m *Model) cancelMove() {
	m.mode = NormalMode
	m.moveID = ""
}

// dropAt completes a mouse drag: the payload id is validated against
// the live store (the task may have been deleted mid-drag) and the
// horizontal offset is decoded into a start date through the grid
// geometry. The offset is intentionally unclamped, so a drop left of
// the chart origin lands on a date before the window start and shifts
// the window on the next render.
func (m *Model) dropAt(payload dragPayload, offset int) {
	if _, ok := m.store.Get(payload.TaskID); !ok {
		utils.Log("Ignoring drop of unknown task %s", payload.TaskID)
		return
	}

	w := m.window()
	start := m.geo.DateAt(w, offset)
	m.store.Reschedule(payload.TaskID, start)
	utils.Log("Dropped task %s at offset %d -> %s", payload.TaskID, offset, start.Format("2006-01-02"))
	m.refreshTable()
}

// refreshTable rebuilds the task list rows from the store, keeping
// insertion order.
func (m *Model) refreshTable() {
	tasks := m.store.Tasks()
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, table.Row{
			t.Text,
			t.Start.Format("2006-01-02"),
			strconv.Itoa(t.Duration),
			fmt.Sprintf("%d%%", int(t.Progress*100+0.5)),
		})
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.setActiveInput((m.activeInput + 1) % 4)
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.setActiveInput((m.activeInput + 3) % 4)
}

func (m *Model) setActiveInput(idx int) {
	m.activeInput = idx

	inputs := []*textinput.Model{&m.nameInput, &m.dateInput, &m.durationInput, &m.progressInput}
	for i, in := range inputs {
		if i == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}
