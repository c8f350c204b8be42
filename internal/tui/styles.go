package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/ui/components"
)

func sectionStyle(theme components.Theme, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).MarginTop(1)
	if focused {
		return style.Foreground(theme.Palette.Primary).Underline(true)
	}
	return style.Foreground(theme.Palette.Muted)
}

func helpStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Palette.Border).MarginTop(1)
}
