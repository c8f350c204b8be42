package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "brandkit serves BlackRoad design tokens and generates brand artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: !flags.logJSON,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log.With("command", cmd.Name())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")

	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newAssetsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
