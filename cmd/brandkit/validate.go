package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

type validateOptions struct {
	configPath string
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the registry invariants and brand rules",
		Long: `Validate checks that every color is a six-digit hex value, spacing follows
the golden ratio, the gradient stops sit at 0/38.2/61.8/100 and no token uses
a forbidden legacy color. With --config, the generator configuration is
validated as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Also validate this generator configuration (YAML or JSONC)")

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, opts *validateOptions) error {
	out := cmd.OutOrStdout()
	mark := checkMark(out)

	sys := brand.Default()
	if err := tokens.Validate(sys.Registry); err != nil {
		return newCommandError("validate registry", "token invariants", err, "")
	}
	fmt.Fprintf(out, "%s registry: %d tokens satisfy the golden-ratio invariants\n", mark, len(tokens.Paths()))

	if err := brand.CheckForbidden(sys); err != nil {
		return newCommandError("validate brand", "forbidden colors", err, "Replace the value with the nearest brand color.")
	}
	fmt.Fprintf(out, "%s brand: no forbidden colors in %d groups\n", mark, len(sys.Groups()))

	if opts.configPath != "" {
		cfg, err := config.ParseConfig(opts.configPath)
		if err != nil {
			return newCommandError("validate config", opts.configPath, err, "Fix the reported field and run validate again.")
		}
		root.log.With("config", opts.configPath).Debug("configuration parsed")
		fmt.Fprintf(out, "%s config: %d targets in %s\n", mark, len(cfg.Targets), opts.configPath)
	}

	return nil
}
