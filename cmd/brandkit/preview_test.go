package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

func TestPreviewRequiresTerminal(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })
	termIsTerminal = func(int) bool { return false }

	_, err := executeCommand("preview")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
}

func TestPreviewRunsProgram(t *testing.T) {
	originalTerm := termIsTerminal
	originalRun := runPreviewProgram
	t.Cleanup(func() {
		termIsTerminal = originalTerm
		runPreviewProgram = originalRun
	})
	termIsTerminal = func(int) bool { return true }

	var got tea.Model
	runPreviewProgram = func(m tea.Model) error {
		got = m
		return nil
	}

	_, err := executeCommand("preview")
	require.NoError(t, err)
	model, ok := got.(tui.Model)
	require.True(t, ok)
	require.Equal(t, tui.SectionButtons, model.Focus())
}
