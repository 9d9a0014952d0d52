package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusModel represents a status display in the UI
type StatusModel struct {
	spinner    spinner.Model
	progress   progress.Model
	statusText string
	percent    int
	hasError   bool
	done       bool
}

func NewStatusModel(initialStatus string) *StatusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &StatusModel{
		spinner:    s,
		progress:   progress.New(progress.WithScaledGradient("#FF7CCB", "#FDFF8C")),
		statusText: initialStatus,
	}
}

// UpdateStatus updates the status text and clears any previous error
func (m *StatusModel) UpdateStatus(status string) {
	m.statusText = status
	m.hasError = false
}

func (m *StatusModel) UpdateErrorStatus(status string) {
	m.statusText = status
	m.hasError = true
}

// UpdateProgress updates the progress percentage, values outside 0-100 are ignored
func (m *StatusModel) UpdateProgress(percent int) {
	if percent >= 0 && percent <= 100 {
		m.percent = percent
	}
}

func (m *StatusModel) Done() {
	m.done = true
}

func (m *StatusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 2
	}

	if m.progress.Percent() != float64(m.percent)/100 {
		cmds = append(cmds, m.progress.SetPercent(float64(m.percent)/100))
	}

	return m, tea.Batch(cmds...)
}

func (m *StatusModel) View() string {
	textStyle := statusStyle
	if m.hasError {
		textStyle = errorStatusStyle
	}

	indicator := m.spinner.View()
	if m.done || m.hasError {
		indicator = " "
	}

	statusBar := lipgloss.JoinHorizontal(
		lipgloss.Center,
		indicator,
		" ",
		textStyle.Render(m.statusText),
	)

	return fmt.Sprintf("%s\n%s",
		statusBar,
		m.progress.ViewAs(float64(m.percent)/100),
	)
}
