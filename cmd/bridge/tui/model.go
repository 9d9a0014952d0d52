package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the main UI model: a scrolling log pane with the transfer status underneath.
type Model struct {
	title    string
	logs     string
	summary  string
	ready    bool
	height   int
	viewport viewport.Model

	mainStatus *StatusModel
}

func NewModel(title string, initialLog string, mainStatus *StatusModel) *Model {
	return &Model{
		title:      title,
		logs:       initialLog,
		mainStatus: mainStatus,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.mainStatus.Init(),
		tick(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if k := msg.String(); k == "ctrl+c" || k == "q" || k == "esc" {
			return m, tea.Quit
		}

	case logUpdate:
		m.logs += strings.TrimRight(msg.content, "\n") + "\n"
		if m.ready {
			m.viewport.SetContent(m.logs)
			m.viewport.GotoBottom()
		}

	case statusUpdate:
		m.mainStatus.UpdateStatus(msg.content)

	case errorStatusUpdate:
		m.mainStatus.UpdateErrorStatus(msg.content)

	case progressUpdate:
		m.mainStatus.UpdateProgress(msg.percent)

	case doneUpdate:
		m.summary = msg.summary
		m.mainStatus.Done()
		if m.ready {
			m.resize(m.viewport.Width, m.height)
		}

	case tickMsg:
		cmds = append(cmds, tick())

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 0)
			m.viewport.SetContent(m.logs)
			m.ready = true
		}
		m.resize(msg.Width, msg.Height)
	}

	viewportModel, cmd := m.viewport.Update(msg)
	m.viewport = viewportModel
	cmds = append(cmds, cmd)

	statusModel, cmd := m.mainStatus.Update(msg)
	m.mainStatus = statusModel.(*StatusModel)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width int, height int) {
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(0, height-m.verticalMargin())
	m.viewport.YPosition = lipgloss.Height(m.headerView())
}

func (m *Model) verticalMargin() int {
	return lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView()) + lipgloss.Height(m.statusView())
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
		m.statusView(),
	)
}

func (m *Model) headerView() string {
	title := titleStyle.Render(m.title)
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(title)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, line)
}

func (m *Model) footerView() string {
	info := infoStyle.Render(fmt.Sprintf("Scroll %3.f%%", m.viewport.ScrollPercent()*100))
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(info)))
	return lipgloss.JoinHorizontal(lipgloss.Center, line, info)
}

func (m *Model) statusView() string {
	parts := []string{m.mainStatus.View()}
	if m.summary != "" {
		parts = append(parts, summaryStyle.Render(m.summary), helpStyle.Render("press q to quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
