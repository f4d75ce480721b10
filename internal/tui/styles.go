package tui

import "github.com/charmbracelet/lipgloss"

const defaultAccent = "196"

var (
	frameBorderColor = lipgloss.Color("62")

	frameTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	panelTitleStyle = lipgloss.NewStyle()

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	loserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)
)

// selectedStyles returns the border color and title style of a highlighted
// panel.
func selectedStyles(accent string) (lipgloss.Color, lipgloss.Style) {
	if accent == "" {
		accent = defaultAccent
	}
	c := lipgloss.Color(accent)
	return c, lipgloss.NewStyle().Bold(true).Foreground(c)
}
