package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

type getOptions struct {
	jsonOutput bool
}

type tokenPayload struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func newGetCmd(root *rootFlags) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value of a token",
		Long: `Get resolves a dot-separated token path such as colors.brand.hotPink or
spacing.md against the registry and prints its value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGet(cmd *cobra.Command, root *rootFlags, opts *getOptions, path string) error {
	value, err := tokens.Get(path)
	if err != nil {
		root.log.With("path", path).Debug("token lookup failed")
		return newCommandError("look up token", path, err, "Run 'brandkit list' to see every declared token path.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(tokenPayload{Path: path, Value: value.Interface()})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value.String())
	return err
}
