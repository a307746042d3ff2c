package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ganttui/pkg/config"
	"ganttui/pkg/keymaps"
	"ganttui/pkg/task"
	"ganttui/pkg/timeline"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	MoveMode     // Mode for shifting a grabbed task with the arrow keys
	HelpViewMode // Mode for displaying help
)

// dragPayload carries the identity of the task picked up by a mouse
// drag until the button is released over the chart.
type dragPayload struct {
	TaskID string
}

// dragState tracks an in-flight mouse drag across motion events. A drag
// that never sees a release inside the chart mutates nothing.
type dragState struct {
	active  bool
	payload dragPayload
	col     int // pointer column relative to the chart origin
}

// Model represents the application state
type Model struct {
	store         *task.Store
	geo           timeline.Geometry
	table         table.Model
	width, height int
	err           error

	// Clock, swappable in tests
	now func() time.Time

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Form state
	mode          InputMode
	nameInput     textinput.Model
	dateInput     textinput.Model
	durationInput textinput.Model
	progressInput textinput.Model
	activeInput   int

	// Move state (keyboard rescheduling)
	moveID      string
	movePending time.Time

	// Drag state (mouse rescheduling)
	drag dragState
}

// NewModel creates a new UI model owning the provided store
func NewModel(store *task.Store, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "Task", Width: 28},
		{Title: "Start", Width: 12},
		{Title: "Days", Width: 6},
		{Title: "Done", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	// Set table styles using the loaded styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)

	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	// Initialize text inputs
	nameInput := textinput.New()
	nameInput.Placeholder = "Task name"
	nameInput.Focus()
	nameInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Start date (YYYY-MM-DD)"
	dateInput.Width = 40

	durationInput := textinput.New()
	durationInput.Placeholder = "Duration in days"
	durationInput.Width = 40
	durationInput.SetValue("1")

	progressInput := textinput.New()
	progressInput.Placeholder = "Progress in percent (0-100)"
	progressInput.Width = 40
	progressInput.SetValue("0")

	m := Model{
		store:         store,
		geo:           timeline.Geometry{CellWidth: cfg.CellWidth},
		table:         t,
		now:           time.Now,
		config:        cfg,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		mode:          NormalMode,
		nameInput:     nameInput,
		dateInput:     dateInput,
		durationInput: durationInput,
		progressInput: progressInput,
		activeInput:   0,
	}

	// Seed the draft's date from the model clock
	m.dateInput.SetValue(m.now().Format("2006-01-02"))

	// Load initial data
	m.refreshTable()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// resetInputs restores the form to its defaults: empty name, today's
// date, one day, zero progress.
func (m *Model) resetInputs() {
	m.nameInput.Reset()
	m.dateInput.SetValue(m.now().Format("2006-01-02"))
	m.durationInput.SetValue("1")
	m.progressInput.SetValue("0")

	m.activeInput = 0
	m.nameInput.Focus()
	m.dateInput.Blur()
	m.durationInput.Blur()
	m.progressInput.Blur()
}

// window derives the visible four-week range from the live task set.
func (m Model) window() timeline.Window {
	return timeline.ComputeWindow(m.store.Tasks(), m.now())
}
