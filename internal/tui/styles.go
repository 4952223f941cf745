package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).PaddingLeft(2)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().MarginTop(1)
)
