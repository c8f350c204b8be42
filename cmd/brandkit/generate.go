package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/provenance"
)

const formatAll = "all"

type generateOptions struct {
	format     string
	output     string
	configPath string
	prefix     string
	noHeader   bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render token artifacts (CSS, SCSS, Tailwind, JSON, YAML)",
		Long: `Generate renders the brand system in one format to stdout or --output.
With --format all, every format is written into the --output directory.
With --config and no --format, every target in the configuration is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" && !cmd.Flags().Changed("format") {
				if opts.output != "" {
					return newCommandError("generate", opts.output,
						errors.New("--output needs --format when --config is given"),
						"Pass --format to write a single artifact, or drop --output to write the configured targets.")
				}
				return runGenerateTargets(cmd, root, opts)
			}
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatCSS), "Output format: css, scss, tailwind, json, yaml or all")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file (or directory with --format all) instead of stdout")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Generator configuration (YAML or JSONC)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Variable prefix (default from config, else br)")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "Omit the provenance header")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError("load config", path, err, "Run 'brandkit validate --config "+path+"' for details.")
	}
	return cfg, nil
}

// exportOptions resolves prefix and header from flags and configuration.
func exportOptions(cfg *config.Config, prefix string, noHeader bool, log *logger.Logger) export.Options {
	opts := export.Options{Prefix: cfg.Prefix}
	if prefix != "" {
		opts.Prefix = prefix
	}
	if noHeader || !cfg.HeaderEnabled() {
		return opts
	}

	stamp, err := provenance.Detect(cfg.BaseDir)
	if err != nil {
		log.Warn("git provenance unavailable: " + err.Error())
	}
	opts.Header = stamp.Header(version)
	return opts
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts *generateOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	sys := brand.Default()
	exportOpts := exportOptions(cfg, opts.prefix, opts.noHeader, root.log)

	if opts.format == formatAll {
		dir := opts.output
		if dir == "" {
			dir = filepath.Dir(cfg.Resolve(cfg.Targets[0].Path))
		}
		for _, format := range export.Formats() {
			e, err := export.Lookup(string(format))
			if err != nil {
				return err
			}
			path := filepath.Join(dir, export.DefaultFileName(e))
			if err := writeTarget(cmd, root, e, sys, exportOpts, path); err != nil {
				return err
			}
		}
		return nil
	}

	e, err := export.Lookup(opts.format)
	if err != nil {
		return newCommandError("generate", opts.format, err, "")
	}
	if opts.output != "" {
		return writeTarget(cmd, root, e, sys, exportOpts, opts.output)
	}

	data, err := export.Render(e, sys, exportOpts)
	if err != nil {
		return newCommandError("generate", opts.format, err, "")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runGenerateTargets(cmd *cobra.Command, root *rootFlags, opts *generateOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	sys := brand.Default()
	exportOpts := exportOptions(cfg, opts.prefix, opts.noHeader, root.log)

	for _, target := range cfg.Targets {
		e, err := export.Lookup(target.Format)
		if err != nil {
			return newCommandError("generate", target.Path, err, "")
		}
		if err := writeTarget(cmd, root, e, sys, exportOpts, cfg.Resolve(target.Path)); err != nil {
			return err
		}
	}
	return nil
}

func writeTarget(cmd *cobra.Command, root *rootFlags, e export.Exporter, sys brand.System, opts export.Options, path string) error {
	log := root.log.WithFields(map[string]any{"format": string(e.Format()), "path": path})
	if err := export.WriteFile(e, sys, opts, path); err != nil {
		log.Error(err, "artifact write failed")
		return newCommandError("write", path, err, "Check that the output directory is writable.")
	}
	log.Info("artifact written")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", checkMark(cmd.OutOrStdout()), path, e.Format())
	return nil
}
