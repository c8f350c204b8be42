package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every token path with its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	paths := tokens.Paths()
	payload := make([]tokenPayload, 0, len(paths))
	for _, path := range paths {
		value, err := tokens.Get(path)
		if err != nil {
			return newCommandError("list tokens", path, err, "")
		}
		payload = append(payload, tokenPayload{Path: path, Value: value.Interface()})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "PATH\tVALUE")
	for _, entry := range payload {
		fmt.Fprintf(writer, "%s\t%v\n", entry.Path, entry.Value)
	}
	return writer.Flush()
}
