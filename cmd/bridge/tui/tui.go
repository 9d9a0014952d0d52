package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gjermundgaraba/libbridge/cmd/bridge/logging"
)

var (
	titleStyle = func() lipgloss.Style {
		b := lipgloss.RoundedBorder()
		b.Right = "├"
		return lipgloss.NewStyle().BorderStyle(b).Padding(0, 1)
	}()

	infoStyle = func() lipgloss.Style {
		b := lipgloss.RoundedBorder()
		b.Left = "┤"
		return titleStyle.BorderStyle(b)
	}()

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFDF5")).
				Background(lipgloss.Color("#B22222")).
				Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().Padding(1, 1, 0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)

// Tui drives the full screen progress view of a long running command.
// Updates are sent to the running program and are safe to call from any goroutine once Run has been called.
type Tui struct {
	model   *Model
	program *tea.Program
}

// NewTui creates the TUI and routes every log entry written through logWriter into its log pane.
func NewTui(logWriter *logging.LogWriter, title string, initLog string, initStatus string) *Tui {
	model := NewModel(title, initLog, NewStatusModel(initStatus))

	t := &Tui{
		model: model,
		program: tea.NewProgram(
			model,
			tea.WithAltScreen(),       // use the full size of the terminal in its "alternate screen buffer"
			tea.WithMouseCellMotion(), // turn on mouse support so we can track the mouse wheel
		),
	}

	if logWriter != nil {
		logWriter.AddExtraLogger(t.AddLogEntry)
	}

	return t
}

func (t *Tui) UpdateMainStatus(status string) {
	t.program.Send(statusUpdate{content: status})
}

func (t *Tui) UpdateMainErrorStatus(status string) {
	t.program.Send(errorStatusUpdate{content: status})
}

func (t *Tui) UpdateProgress(percent int) {
	t.program.Send(progressUpdate{percent: percent})
}

// Done shows summary below the status bar and stops the spinner.
func (t *Tui) Done(summary string) {
	t.program.Send(doneUpdate{summary: summary})
}

// AddLogEntry adds a new entry to the log area
func (t *Tui) AddLogEntry(entry string) {
	t.program.Send(logUpdate{content: entry})
}

// Run blocks until the user quits.
func (t *Tui) Run() error {
	_, err := t.program.Run()
	return err
}
