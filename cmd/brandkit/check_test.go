package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPassesAfterGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoTargetConfig)

	_, err := executeCommand("generate", "--config", path)
	require.NoError(t, err)

	output, err := executeCommand("check", "--config", path)
	require.NoError(t, err)
	require.Contains(t, output, "OK out/br-tokens.css")
	require.Contains(t, output, "OK out/br-tokens.json")
}

func TestCheckReportsDrift(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoTargetConfig)

	_, err := executeCommand("generate", "--config", path)
	require.NoError(t, err)

	cssPath := filepath.Join(dir, "out", "br-tokens.css")
	data, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "#FF1D6C", "#E91E63", 1)
	require.NoError(t, os.WriteFile(cssPath, []byte(edited), 0o644))

	output, err := executeCommand("check", "--config", path)
	require.Error(t, err)
	require.ErrorIs(t, err, errDrift)
	require.Equal(t, 1, exitCode(err))
	require.Contains(t, output, "DRIFT out/br-tokens.css (+1 -1)")
	require.Contains(t, output, "-  --br-hot-pink: #FF1D6C;")
	require.Contains(t, output, "+  --br-hot-pink: #E91E63;")
	require.Contains(t, output, "OK out/br-tokens.json")
}

func TestCheckReportsMissingArtifact(t *testing.T) {
	path := writeConfig(t, t.TempDir(), twoTargetConfig)

	output, err := executeCommand("check", "--config", path)
	require.ErrorIs(t, err, errDrift)
	require.Contains(t, output, "DRIFT out/br-tokens.css")
	require.Contains(t, output, "DRIFT out/br-tokens.json")
}

func TestStripHeader(t *testing.T) {
	require.Equal(t, ":root {\n}\n", string(stripHeader([]byte("/* Generated by brandkit dev. Do not edit. */\n:root {\n}\n"))))
	require.Equal(t, ":root {\n}\n", string(stripHeader([]byte(":root {\n}\n"))))
	require.Empty(t, stripHeader(nil))
}
