package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/pkg/diff"
)

// headerMarker identifies the provenance line so it is ignored when comparing.
const headerMarker = "Generated by brandkit"

type checkOptions struct {
	configPath string
	prefix     string
}

// errDrift is returned when at least one artifact differs from the registry.
var errDrift = errors.New("generated artifacts are out of date")

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if generated artifacts drifted from the registry",
		Long: `Check regenerates every configured target in memory and compares it with the
file on disk. The provenance header is ignored. Any difference is printed as a
unified diff and the command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Generator configuration (YAML or JSONC)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Variable prefix (default from config, else br)")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootFlags, opts *checkOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	sys := brand.Default()
	exportOpts := exportOptions(cfg, opts.prefix, true, root.log)
	out := cmd.OutOrStdout()

	drifted := 0
	for _, target := range cfg.Targets {
		e, err := export.Lookup(target.Format)
		if err != nil {
			return newCommandError("check", target.Path, err, "")
		}
		expected, err := export.Render(e, sys, exportOpts)
		if err != nil {
			return newCommandError("check", target.Path, err, "")
		}

		path := cfg.Resolve(target.Path)
		actual, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			actual = nil
		case err != nil:
			return newCommandError("check", path, err, "")
		}

		text, stats := diff.Unified(expected, stripHeader(actual), target.Path+" (registry)", target.Path+" (on disk)")
		if !stats.Changed() {
			fmt.Fprintf(out, "%s %s\n", checkMark(out), target.Path)
			continue
		}
		drifted++
		root.log.WithFields(map[string]any{"path": path, "changes": stats.String()}).Warn("artifact drifted")
		fmt.Fprintf(out, "DRIFT %s (%s)\n%s\n", target.Path, stats, text)
	}

	if drifted > 0 {
		return newCommandError("check", fmt.Sprintf("%d of %d targets", drifted, len(cfg.Targets)), errDrift, "Run 'brandkit generate' and commit the result.")
	}
	return nil
}

// stripHeader drops a leading provenance comment line.
func stripHeader(data []byte) []byte {
	line, rest, found := bytes.Cut(data, []byte("\n"))
	if found && bytes.Contains(line, []byte(headerMarker)) {
		return rest
	}
	return data
}
