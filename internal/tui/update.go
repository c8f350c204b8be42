package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case spinner.TickMsg:
		return m, m.spinner.Update(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.confirming {
			switch msg.String() {
			case "enter", "esc", "y", "n", "r":
				m.confirming = false
			}
			return m, nil
		}
		switch msg.String() {
		case "r":
			if m.focus != SectionInput {
				m.confirming = true
				return m, nil
			}
		case "tab":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab":
			return m, m.setFocus(m.focus - 1)
		case "q", "esc":
			if m.focus != SectionInput {
				m.quitting = true
				return m, tea.Quit
			}
			if msg.String() == "esc" {
				return m, m.setFocus(m.focus + 1)
			}
		}
		if m.focus == SectionInput {
			return m, m.input.Update(msg)
		}
	}

	return m, nil
}
