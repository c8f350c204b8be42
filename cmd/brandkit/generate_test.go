package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/export"
)

func TestGenerateCSSToStdout(t *testing.T) {
	output, err := executeCommand("generate")
	require.NoError(t, err)
	require.Contains(t, output, "Generated by brandkit")
	require.Contains(t, output, ":root {")
	require.Contains(t, output, "--br-hot-pink: #FF1D6C;")
}

func TestGenerateWithoutHeaderAndCustomPrefix(t *testing.T) {
	output, err := executeCommand("generate", "--format", "scss", "--prefix", "acme", "--no-header")
	require.NoError(t, err)
	require.NotContains(t, output, "Generated by brandkit")
	require.Contains(t, output, "$acme-hot-pink: #FF1D6C;")
}

func TestGenerateJSONIsValid(t *testing.T) {
	output, err := executeCommand("generate", "-f", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &doc))
	require.Contains(t, doc, "color")
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.css")

	output, err := executeCommand("generate", "--output", path)
	require.NoError(t, err)
	require.Contains(t, output, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "--br-violet: #9C27B0;")
}

func TestGenerateAllFormats(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand("generate", "--format", "all", "--output", dir)
	require.NoError(t, err)

	for _, name := range []string{"br-tokens.css", "br-tokens.scss", "br-tokens.js", "br-tokens.json", "br-tokens.yaml"} {
		require.FileExists(t, filepath.Join(dir, name))
	}
}

func TestGenerateConfigTargets(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoTargetConfig)

	_, err := executeCommand("generate", "--config", path)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "out", "br-tokens.css"))
	require.FileExists(t, filepath.Join(dir, "out", "br-tokens.json"))
	require.NoFileExists(t, filepath.Join(dir, "out", "br-tokens.js"))
}

func TestGenerateConfigRejectsOutputWithoutFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoTargetConfig)
	custom := filepath.Join(dir, "custom.css")

	_, err := executeCommand("generate", "--config", path, "--output", custom)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--format")
	require.NoFileExists(t, custom)
	require.NoFileExists(t, filepath.Join(dir, "out", "br-tokens.css"))

	_, err = executeCommand("generate", "--config", path, "--format", "css", "--output", custom)
	require.NoError(t, err)
	require.FileExists(t, custom)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand("generate", "--format", "pdf")
	require.Error(t, err)
	for _, name := range export.FormatNames() {
		require.Contains(t, err.Error(), name)
	}
}

func TestGenerateRejectsMissingConfig(t *testing.T) {
	_, err := executeCommand("generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGenerateLogsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	root := newRootCmd()
	stderr := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(stderr)
	root.SetArgs([]string{"--log-json", "generate", "--output", filepath.Join(blocker, "br-tokens.css")})

	require.Error(t, root.Execute())
	require.Contains(t, stderr.String(), `"level":"error"`)
	require.Contains(t, stderr.String(), `"message":"artifact write failed"`)
	require.Contains(t, stderr.String(), `"format":"css"`)
}
