package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func TestGetCommandPrintsValues(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "colors.brand.hotPink", want: "#FF1D6C\n"},
		{path: "colors.agents.lucidia", want: "#9C27B0\n"},
		{path: "spacing.md", want: "21\n"},
		{path: "lineHeight", want: "1.618\n"},
		{path: "gradient", want: "linear-gradient(135deg, #F5A623 0%, #FF1D6C 38.2%, #9C27B0 61.8%, #2979FF 100%)\n"},
	}
	for _, tt := range tests {
		output, err := executeCommand("get", tt.path)
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, output, tt.path)
	}
}

func TestGetCommandJSON(t *testing.T) {
	output, err := executeCommand("get", "spacing.xl", "--json")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, "spacing.xl", payload["path"])
	require.Equal(t, float64(55), payload["value"])
}

func TestGetCommandUnknownPath(t *testing.T) {
	_, err := executeCommand("get", "colors.brand.teal")
	require.Error(t, err)
	require.ErrorIs(t, err, brandkiterrors.ErrUnknownToken)
	require.Contains(t, err.Error(), "brandkit list")
	require.Equal(t, 1, exitCode(err))

	var lookupErr *brandkiterrors.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.Equal(t, "colors.brand.teal", lookupErr.Path)
}

func TestGetCommandRequiresPath(t *testing.T) {
	_, err := executeCommand("get")
	require.Error(t, err)
}
