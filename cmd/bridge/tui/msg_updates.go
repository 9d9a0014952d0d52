package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type logUpdate struct {
	content string
}

type statusUpdate struct {
	content string
}

type errorStatusUpdate struct {
	content string
}

type progressUpdate struct {
	percent int
}

// doneUpdate marks the work as finished, the summary stays on screen until the user quits.
type doneUpdate struct {
	summary string
}

// Tick function to periodically trigger updates
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*250, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
