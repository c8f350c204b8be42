package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

type assetsOptions struct {
	dir        string
	configPath string
}

func newAssetsCmd(root *rootFlags) *cobra.Command {
	opts := &assetsOptions{}

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Write the standard SVG brand assets",
		Long: `Assets writes the logo, icon, Open Graph image and favicon SVGs. Each carries
the brand gradient bar along its bottom edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssets(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Output directory (default from config, else dist/assets)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Generator configuration (YAML or JSONC)")

	return cmd
}

func runAssets(cmd *cobra.Command, root *rootFlags, opts *assetsOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	dir := opts.dir
	if dir == "" {
		dir = cfg.Resolve(cfg.Assets.Dir)
	}

	written, err := export.WriteAssets(dir, export.StandardAssets(), tokens.Default().Gradient)
	if err != nil {
		return newCommandError("write assets", dir, err, "Check that the output directory is writable.")
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintf(out, "%s %s\n", checkMark(out), path)
	}
	root.log.WithFields(map[string]any{"dir": dir, "count": len(written)}).Info("assets written")
	return nil
}
