package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	priceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("150"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	formStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)
