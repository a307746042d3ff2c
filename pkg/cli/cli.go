package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ganttui/pkg/config"
	"ganttui/pkg/task"
	"ganttui/pkg/timeline"
	"ganttui/pkg/ui"
	"ganttui/pkg/utils"
)

// NewRootCommand builds the ganttui command: flag parsing, config
// loading and launching the interactive chart.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		empty      bool
	)

	cmd := &cobra.Command{
		Use:   "ganttui",
		Short: "An interactive Gantt chart for your terminal",
		Long: `GanttUI renders a four-week Gantt chart of tasks in the terminal.

Tasks are created through a form, deleted with a keystroke and
rescheduled by dragging their bars with the mouse (or with the
keyboard via grab-and-move). All tasks live in memory only and are
discarded when the program exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.InitLogger(verbose)
			defer utils.CloseLogger()

			cfg, styles, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			store := task.NewStore()
			if !empty {
				weekStart := timeline.StartOfWeek(time.Now())
				store = task.NewStore(task.SampleTasks(weekStart)...)
			}

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if cfg.Mouse {
				// Cell motion reporting delivers the drag and release
				// events the reschedule gesture depends on
				opts = append(opts, tea.WithMouseCellMotion())
			}

			p := tea.NewProgram(ui.NewModel(store, cfg, styles), opts...)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to /tmp")
	cmd.Flags().BoolVar(&empty, "empty", false, "start without the sample tasks")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
