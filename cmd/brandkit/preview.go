package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

var runPreviewProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive component preview",
		Long:  `Preview draws every UI component with the current tokens. Tab moves focus, q quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return newCommandError("launch preview", "stdout", errors.New("not a terminal"), "Run brandkit preview from an interactive terminal.")
			}
			root.log.Debug("launching preview")
			return runPreviewProgram(tui.NewModel(brand.Default()))
		},
	}

	return cmd
}
