package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ganttui/pkg/task"
	"ganttui/pkg/timeline"
	"ganttui/pkg/utils"
)

// Screen rows above the first bar row: title bar, blank line, header.
// The mouse handler relies on this to map pointer rows to tasks.
const chartFirstBarRow = 3

// renderChart renders the header row of date cells and one bar row per
// task, in insertion order. Each bar goes through the render guard so a
// fault in one task's bar leaves its siblings and the rest of the view
// intact.
func (m Model) renderChart(w timeline.Window) string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader(w))
	sb.WriteString("\n")

	for _, t := range m.store.Tasks() {
		row, err := guardBar(func() string { return m.renderBar(w, t) })
		if err != nil {
			utils.Log("Bar render failed: %v", err)
			row = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.ErrorColor)).
				Faint(true).
				Render(fmt.Sprintf("! %s", t.Text))
		}
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// guardBar isolates a single bar render, converting a panic into an
// error so the caller can show a fallback row instead of crashing.
func guardBar(render func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bar render panicked: %v", r)
		}
	}()
	return render(), nil
}

// renderHeader renders one MM/dd labelled cell per visible day, with
// today's cell highlighted.
func (m Model) renderHeader(w timeline.Window) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.HeaderColor))
	todayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.TodayColor)).
		Bold(true)

	today := task.Midnight(m.now())

	var sb strings.Builder
	for i := 0; i < w.Days(); i++ {
		day := w.DayAt(i)
		label := fitCell(day.Format("01/02"), m.geo.CellWidth)
		if day.Equal(today) {
			sb.WriteString(todayStyle.Render(label))
		} else {
			sb.WriteString(headerStyle.Render(label))
		}
	}
	return sb.String()
}

// renderBar renders a single task row: leading gap, then the bar with
// its progress fill, clipped to the window edges. A task being moved
// with the keyboard is drawn at its pending date instead.
func (m Model) renderBar(w timeline.Window, t task.Task) string {
	start := t.Start
	if m.mode == MoveMode && t.ID == m.moveID {
		start = m.movePending
	}

	chartWidth := m.geo.ChartWidth(w)
	offset := m.geo.OffsetOf(w, start)
	width := m.geo.WidthOf(t.Duration)

	fill := int(t.Progress*float64(width) + 0.5)
	if fill > width {
		fill = width
	}

	// Clip to the visible window; a bar fully outside it leaves an
	// empty row, keeping the task visible in the list below.
	barStart, barEnd := offset, offset+width
	fillEnd := offset + fill
	if barStart < 0 {
		barStart = 0
	}
	if barEnd > chartWidth {
		barEnd = chartWidth
	}
	if fillEnd > barEnd {
		fillEnd = barEnd
	}
	if fillEnd < barStart {
		fillEnd = barStart
	}
	if barEnd <= barStart {
		return strings.Repeat(" ", chartWidth)
	}

	fillStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.styles.BarFillColor))
	barStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.styles.BarColor))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", barStart))
	if fillEnd > barStart {
		sb.WriteString(fillStyle.Render(strings.Repeat(" ", fillEnd-barStart)))
	}
	if barEnd > fillEnd {
		sb.WriteString(barStyle.Render(strings.Repeat(" ", barEnd-fillEnd)))
	}
	sb.WriteString(strings.Repeat(" ", chartWidth-barEnd))
	return sb.String()
}

// fitCell pads or truncates a label to exactly width columns.
func fitCell(label string, width int) string {
	if len(label) >= width {
		return label[:width]
	}
	return label + strings.Repeat(" ", width-len(label))
}
