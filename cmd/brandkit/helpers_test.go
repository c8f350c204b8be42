package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "brandkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const twoTargetConfig = `version: "1.0"
targets:
  - format: css
    path: out/br-tokens.css
  - format: json
    path: out/br-tokens.json
`
