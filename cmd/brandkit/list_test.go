package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

func TestListCommandTable(t *testing.T) {
	output, err := executeCommand("list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, len(tokens.Paths())+1)
	require.True(t, strings.HasPrefix(lines[0], "PATH"))
	require.Contains(t, output, "colors.brand.hotPink")
	require.Contains(t, output, "#FF1D6C")
	require.Contains(t, output, "fontFamily")
}

func TestListCommandJSON(t *testing.T) {
	output, err := executeCommand("list", "--json")
	require.NoError(t, err)

	var payload []tokenPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Len(t, payload, len(tokens.Paths()))
	require.Equal(t, tokens.Paths()[0], payload[0].Path)
}
