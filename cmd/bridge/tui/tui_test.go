package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/stretchr/testify/require"
)

func TestRouteTable(t *testing.T) {
	options := []route.RouteOption{
		{Name: "Automatic Fast Transfer", Receive: "9.95 USDC", Fee: "0.05 USDC", ETA: "30 seconds", Automatic: true},
		{Name: "Manual Token Bridge", Receive: "10 USDC", Fee: "Free", ETA: "7 days"},
	}

	out := RouteTable(options, 1)
	require.Contains(t, out, "Automatic Fast Transfer")
	require.Contains(t, out, "Manual Token Bridge")
	require.Contains(t, out, "Free")
	require.Contains(t, out, "7 days")
	require.Contains(t, out, "› 1")
	require.NotContains(t, out, "› 0")
}

func TestModelUpdates(t *testing.T) {
	m := NewModel("Transfer", "starting\n", NewStatusModel("Initializing"))
	require.Contains(t, m.View(), "Initializing...")

	update := func(msg tea.Msg) {
		model, _ := m.Update(msg)
		m = model.(*Model)
	}

	update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.ready)
	require.Contains(t, m.View(), "Transfer")

	update(statusUpdate{content: "Quoting 4 routes"})
	require.Contains(t, m.View(), "Quoting 4 routes")

	update(progressUpdate{percent: 40})
	require.Equal(t, 40, m.mainStatus.percent)
	update(progressUpdate{percent: 140})
	require.Equal(t, 40, m.mainStatus.percent)

	update(logUpdate{content: "Resolved routes\n"})
	require.Contains(t, m.logs, "Resolved routes")

	update(errorStatusUpdate{content: "quote failed"})
	require.True(t, m.mainStatus.hasError)
	update(statusUpdate{content: "Retrying"})
	require.False(t, m.mainStatus.hasError)

	update(doneUpdate{summary: "tx 0xabc"})
	require.True(t, m.mainStatus.done)
	view := m.View()
	require.Contains(t, view, "tx 0xabc")
	require.Contains(t, view, "press q to quit")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
}
