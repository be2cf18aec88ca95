package cli

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header lipgloss.Style
	Sheet  lipgloss.Style
	Dim    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true),
		Sheet:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Dim:    lipgloss.NewStyle().Faint(true),
	}
}

// PlainTheme renders everything unstyled; used with --plain so output is
// stable bytes for piping.
func PlainTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle(),
		Sheet:  lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
	}
}
