package bubbletea

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)

	dropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	entryTitleStyle    = lipgloss.NewStyle().Bold(true)
	selectedTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	descriptionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	locationStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	viewAllStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	placeholderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	readerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	flashInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	flashErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
