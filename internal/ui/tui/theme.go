package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Link     lipgloss.Style
	Toast    lipgloss.Style

	// Class colors the status code by its first digit.
	Class map[int]lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label: lipgloss.NewStyle().Faint(true),
		Link:  lipgloss.NewStyle().Underline(true),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Class: map[int]lipgloss.Color{
			1: lipgloss.Color("12"),
			2: lipgloss.Color("10"),
			3: lipgloss.Color("14"),
			4: lipgloss.Color("11"),
			5: lipgloss.Color("9"),
		},
	}
}

func (t Theme) Code(class int) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if c, ok := t.Class[class]; ok {
		st = st.Foreground(c)
	}
	return st
}
