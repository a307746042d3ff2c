package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode, MoveMode:
		// App Title Bar
		titleBar := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" GanttUI ")

		sb.WriteString(titleBar)
		sb.WriteString("\n\n")

		// Chart: header cells plus one bar row per task
		w := m.window()
		sb.WriteString(m.renderChart(w))
		sb.WriteString("\n")

		// Task list below the chart
		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		windowInfo := fmt.Sprintf("Window %s - %s",
			w.Start.Format("2006-01-02"),
			w.End().AddDate(0, 0, -1).Format("2006-01-02"))
		if m.mode == MoveMode {
			windowInfo += fmt.Sprintf(" | moving to %s", m.movePending.Format("2006-01-02"))
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(windowInfo))
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" Add New Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case HelpViewMode:
		// Fullscreen commands view
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		// Define a style for command keys
		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)

		// Define a style for command descriptions
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		// Function to add a command to the view
		addCommand := func(binding key.Binding) {
			keyStr := binding.Help().Key
			helpStr := binding.Help().Desc

			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(helpStr),
				keyStyle.Render(keyStr)))
		}

		// Add all commands line by line
		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.AddTask)
		addCommand(m.keyMap.DeleteTask)
		addCommand(m.keyMap.GrabTask)
		addCommand(m.keyMap.MoveLeft)
		addCommand(m.keyMap.MoveRight)

		sb.WriteString("\n")
		sb.WriteString(descStyle.Render("Drag a bar row with the mouse to reschedule it."))
		sb.WriteString("\n")
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(fmt.Sprintf("\n\nError: %v", m.err))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	// Define styles for keys and descriptions
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("a", "add")
		addAction("d", "del")
		addAction("m", "move")
		addAction("drag", "reschedule")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case MoveMode:
		addAction("←/→", "shift day")
		addAction("enter", "place")
		addAction("esc", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle()

	sb.WriteString("Name:\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Start Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Duration (days):\n")
	sb.WriteString(m.durationInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Progress (%):\n")
	sb.WriteString(m.progressInput.View())

	return formStyle.Render(sb.String())
}
