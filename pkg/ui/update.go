package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			// A key consumed by a binding returns early so it cannot
			// double as one of the table's navigation keys.
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode
				return m, nil

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.AddTask):
				// The form keeps its draft from any earlier escape;
				// it only resets after a successful submit.
				m.mode = AddMode
				m.setActiveInput(0)
				return m, nil

			case key.Matches(msg, m.keyMap.DeleteTask):
				m.deleteSelected()
				return m, nil

			case key.Matches(msg, m.keyMap.GrabTask):
				m.grabSelected()
				return m, nil
			}

		case AddMode:
			switch msg.String() {
			case "esc":
				// Leave the form without touching the draft
				m.mode = NormalMode

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == 3 { // Submit on enter from the last field (progress)
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.nameInput, cmd = m.nameInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.dateInput, cmd = m.dateInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.durationInput, cmd = m.durationInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				m.progressInput, cmd = m.progressInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case MoveMode:
			switch {
			case key.Matches(msg, m.keyMap.MoveLeft):
				m.shiftPending(-1)

			case key.Matches(msg, m.keyMap.MoveRight):
				m.shiftPending(1)

			default:
				switch msg.String() {
				case "enter":
					m.commitMove()
				case "esc":
					m.cancelMove()
				}
			}

		case HelpViewMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = NormalMode
			default:
				if msg.String() == "esc" {
					m.mode = NormalMode
				}
			}
		}

	case tea.MouseMsg:
		if m.mode == NormalMode {
			m = m.handleMouse(msg)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		if _, isMouse := msg.(tea.MouseMsg); !isMouse {
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleMouse drives the drag state machine: press on a bar row grabs
// that row's task, motion tracks the pointer, release over the bar rows
// decodes the drop. A release anywhere else cancels without mutation.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		row := msg.Y - chartFirstBarRow
		tasks := m.store.Tasks()
		if row < 0 || row >= len(tasks) {
			return m
		}
		m.drag = dragState{
			active:  true,
			payload: dragPayload{TaskID: tasks[row].ID},
			col:     msg.X,
		}

	case tea.MouseActionMotion:
		if m.drag.active {
			m.drag.col = msg.X
		}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m
		}
		payload := m.drag.payload
		m.drag = dragState{}

		row := msg.Y - chartFirstBarRow
		if row < 0 || row >= m.store.Len() {
			return m // dropped outside the chart rows: cancelled
		}
		m.dropAt(payload, msg.X)
	}

	return m
}
