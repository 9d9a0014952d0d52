package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gjermundgaraba/libbridge/route"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)

// RouteTable renders the presentable routes. The option at selected, if any, is marked with an arrow.
func RouteTable(options []route.RouteOption, selected int) string {
	rows := make([][]string, len(options))
	for i, option := range options {
		marker := " "
		if i == selected {
			marker = "›"
		}
		claim := "no"
		if option.RequiresClaim() {
			claim = "yes"
		}
		rows[i] = []string{
			fmt.Sprintf("%s %d", marker, i),
			option.Name,
			option.Receive,
			option.Fee,
			option.ETA,
			claim,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("#", "ROUTE", "RECEIVE", "FEE", "ETA", "CLAIM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	return t.String()
}
