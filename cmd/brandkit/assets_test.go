package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

func TestAssetsCommandWritesStandardSet(t *testing.T) {
	dir := t.TempDir()

	output, err := executeCommand("assets", "--dir", dir)
	require.NoError(t, err)

	for _, spec := range export.StandardAssets() {
		path := filepath.Join(dir, spec.Name+".svg")
		require.Contains(t, output, path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "<svg")
	}
}

func TestAssetsCommandUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "assets:\n  dir: brand\n")

	_, err := executeCommand("assets", "--config", path)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "brand", "favicon.svg"))
}
