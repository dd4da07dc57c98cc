package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/color-game/swatchbook/notation"
)

const failMark = "✖"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(10)
)

func heading(s string) string {
	return headingStyle.Render(s)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// preview renders a block filled with the color next to its CSS form.
func preview(c notation.Color) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(notation.HexString(c))).
		Padding(1, 6).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Center, block, "  "+notation.CSSString(c))
}
