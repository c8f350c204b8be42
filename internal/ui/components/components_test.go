package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func TestDefaultThemeReadsTokens(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	reg := tokens.Default()

	assert.Equal(t, lipgloss.Color(reg.Colors.Brand.HotPink), theme.Palette.Primary)
	assert.Equal(t, lipgloss.Color(reg.Colors.Brand.ElectricBlue), theme.Palette.Secondary)
	assert.Equal(t, lipgloss.Color(reg.Colors.Agents.Echo), theme.Palette.Success)
	assert.Equal(t, lipgloss.Color("#1a1a1a"), theme.Palette.Surface)
	assert.Equal(t, SpaceScale{XS: 1, SM: 2, MD: 3, LG: 4, XL: 7}, theme.Space)
	assert.Equal(t, reg.Gradient, theme.Gradient)
}

func TestThemeFollowsCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := tokens.Default()
	reg.Colors.Brand.HotPink = "#E91E63"
	theme := NewTheme(brand.FromRegistry(reg))

	style := PrimaryButton("Go").Style(theme)
	assert.Equal(t, lipgloss.Color("#E91E63"), style.GetBackground())
}

func TestReadableForeground(t *testing.T) {
	t.Parallel()

	p := DefaultTheme().Palette
	assert.Equal(t, lipgloss.Color("#000000"), ReadableForeground("#F5A623", p))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ReadableForeground("#9C27B0", p))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ReadableForeground("#FF1D6C", p))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ReadableForeground("not-a-color", p))
}

func TestReadableForegroundFollowsBrandNeutrals(t *testing.T) {
	t.Parallel()

	sys := brand.Default()
	for i, e := range sys.Colors {
		switch e.Name {
		case "black":
			sys.Colors[i].Value = "#111111"
		case "white":
			sys.Colors[i].Value = "#EEEEEE"
		}
	}
	theme := NewTheme(sys)

	assert.Equal(t, lipgloss.Color("#111111"), theme.Palette.Black)
	assert.Equal(t, lipgloss.Color("#EEEEEE"), theme.Palette.White)
	assert.Equal(t, lipgloss.Color("#111111"), NewBadge("beta").WithTone(ToneHighlight).Style(theme).GetForeground())
	assert.Equal(t, lipgloss.Color("#EEEEEE"), PrimaryButton("Go").Style(theme).GetForeground())
	assert.Equal(t, lipgloss.Color("#EEEEEE"), ReadableForeground("not-a-color", theme.Palette))
}

func TestSampleGradientEndpoints(t *testing.T) {
	t.Parallel()

	g := tokens.Default().Gradient
	assert.Equal(t, "#f5a623", SampleGradient(g, 0).Hex())
	assert.Equal(t, "#f5a623", SampleGradient(g, -1).Hex())
	assert.Equal(t, "#2979ff", SampleGradient(g, 1).Hex())
	assert.Equal(t, "#2979ff", SampleGradient(g, 2).Hex())

	mid := SampleGradient(g, 0.5).Hex()
	assert.NotEqual(t, "#ff1d6c", mid)
	assert.NotEqual(t, "#9c27b0", mid)
}

func TestGradientBarWidth(t *testing.T) {
	t.Parallel()

	bar := GradientBar(12, tokens.Default().Gradient)
	assert.Equal(t, 12, lipgloss.Width(bar))
	assert.Equal(t, "", GradientBar(0, tokens.Default().Gradient))
	assert.Equal(t, 5, utf8.RuneCountInString(stripANSI(GradientText("brand", tokens.Default().Gradient))))
}

func TestButtonVariants(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	primary := PrimaryButton("Deploy")
	assert.Equal(t, lipgloss.Color("#FF1D6C"), primary.Style(theme).GetBackground())
	assert.Equal(t, 2, primary.Style(theme).GetPaddingLeft())
	assert.Contains(t, primary.ViewWithContext(RenderContext{Theme: theme}), "Deploy")

	secondary := SecondaryButton("Cancel")
	assert.Equal(t, lipgloss.Color("#2979FF"), secondary.Style(theme).GetBackground())

	ghost := GhostButton("More")
	assert.Equal(t, lipgloss.Color("#FF1D6C"), ghost.Style(theme).GetForeground())
	assert.True(t, ghost.Style(theme).GetBorderTop())

	disabled := PrimaryButton("Wait").WithDisabled(true)
	assert.True(t, disabled.IsDisabled())
	assert.True(t, disabled.Style(theme).GetFaint())
	assert.Equal(t, theme.Palette.Border, disabled.Style(theme).GetBackground())

	active := NewButton("Tab").WithActive(true)
	assert.True(t, active.Style(theme).GetBold())
}

func TestAppliersRunLast(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	b := PrimaryButton("Go").WithAppliers(func(s lipgloss.Style, th Theme) lipgloss.Style {
		return s.Background(th.Palette.Accent)
	})
	assert.Equal(t, theme.Palette.Accent, b.Style(theme).GetBackground())
}

func TestCardRendersSections(t *testing.T) {
	t.Parallel()

	view := NewCard("Tokens in sync").WithTitle("Status").WithFooter("updated now").View()
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "Tokens in sync")
	assert.Contains(t, view, "updated now")
	assert.True(t, strings.HasPrefix(view, "╭"))

	theme := DefaultTheme()
	assert.Equal(t, theme.Palette.Accent, NewCard().WithTone(ToneAccent).Style(theme).GetBorderTopForeground())
	assert.Equal(t, theme.Palette.Border, NewCard().Style(theme).GetBorderTopForeground())
}

func TestBadge(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	badge := NewBadge("beta").WithTone(ToneHighlight)
	assert.Contains(t, badge.View(), "BETA")
	assert.Equal(t, theme.Palette.Highlight, badge.Style(theme).GetBackground())
	assert.Equal(t, lipgloss.Color("#000000"), badge.Style(theme).GetForeground())

	outline := NewBadge("new").WithOutline(true).WithTone(ToneInfo)
	assert.Equal(t, theme.Palette.Info, outline.Style(theme).GetForeground())
	assert.Equal(t, "new", outline.Text())
}

func TestInputTypingAndFocus(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	input := NewInput("Token path", "colors.brand.hotPink", theme)
	assert.Equal(t, theme.Palette.Border, input.Style(theme).GetBorderTopForeground())

	input.Focus()
	require.True(t, input.Focused())
	assert.Equal(t, theme.Palette.Secondary, input.Style(theme).GetBorderTopForeground())

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("spacing.lg")})
	assert.Equal(t, "spacing.lg", input.Value())
	assert.Contains(t, input.View(), "Token path")

	input.Blur()
	assert.False(t, input.Focused())

	input.SetValue("reset")
	assert.Equal(t, "reset", input.Value())
}

func TestModalCentersInViewport(t *testing.T) {
	t.Parallel()

	modal := NewModal("Regenerate tokens?", "Three files will change.").
		WithActions(PrimaryButton("Write"), GhostButton("Cancel"))

	dialog := modal.View()
	assert.Contains(t, dialog, "Regenerate tokens?")
	assert.Contains(t, dialog, "Write")
	assert.Contains(t, dialog, "Cancel")

	placed := modal.WithViewport(80, 24).View()
	assert.Equal(t, 80, lipgloss.Width(placed))
	assert.Equal(t, 24, lipgloss.Height(placed))
}

func TestToastKinds(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	tests := []struct {
		toast *Toast
		icon  string
		color lipgloss.Color
	}{
		{NewToast("heads up"), "ℹ", theme.Palette.Info},
		{SuccessToast("written"), "✓", theme.Palette.Success},
		{WarningToast("dirty tree"), "⚠", theme.Palette.Warning},
		{ErrorToast("drift"), "✗", theme.Palette.Danger},
	}
	for _, tt := range tests {
		view := tt.toast.ViewWithContext(RenderContext{Theme: theme})
		assert.Contains(t, view, tt.icon)
		assert.Contains(t, view, tt.toast.message)
		assert.Equal(t, tt.color, tt.toast.Style(theme).GetBorderLeftForeground())
	}
}

func TestSpinner(t *testing.T) {
	t.Parallel()

	s := NewSpinner("generating", DefaultTheme())
	assert.Contains(t, s.View(), "generating")

	cmd := s.Update(s.Tick())
	assert.NotNil(t, cmd)

	s.SetLabel("")
	assert.NotContains(t, s.View(), "generating")
}

func TestAgentAvatar(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	avatar, err := NewAgentAvatar("Lucidia", theme)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#9C27B0"), avatar.Color())
	assert.Equal(t, "L", avatar.Initial())
	assert.Contains(t, avatar.WithLabel(true).View(), "Lucidia")

	for _, name := range tokens.AgentNames() {
		_, err := NewAgentAvatar(name, theme)
		require.NoError(t, err, name)
	}

	_, err = NewAgentAvatar("mallory", theme)
	assert.ErrorIs(t, err, brandkiterrors.ErrUnknownToken)
}

func TestStatusDot(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Palette.Success, NewStatusDot(StatusOnline).Color(theme))
	assert.Equal(t, theme.Palette.Warning, NewStatusDot(StatusBusy).Color(theme))
	assert.Equal(t, theme.Palette.Muted, NewStatusDot(StatusOffline).Color(theme))
	assert.Equal(t, theme.Palette.Danger, NewStatusDot(StatusError).Color(theme))

	assert.Contains(t, NewStatusDot(StatusIdle).WithLabel(true).View(), "● idle")
	assert.Contains(t, NewStatusDot(StatusOffline).View(), "○")
}

func TestCodeBlock(t *testing.T) {
	t.Parallel()

	block := NewCodeBlock(":root {\n\t--br-hot-pink: #FF1D6C;\n}\n").WithLanguage("css")
	assert.Equal(t, []string{":root {", "    --br-hot-pink: #FF1D6C;", "}"}, block.Lines())

	view := block.View()
	assert.True(t, strings.HasPrefix(view, "css"))
	assert.Contains(t, view, "1 │ :root {")
	assert.Contains(t, view, "3 │ }")

	plain := NewCodeBlock("x").WithLineNumbers(false).View()
	assert.NotContains(t, plain, "1 │")
	assert.Contains(t, plain, "x")
	assert.Empty(t, NewCodeBlock("\n").Lines())
}

func TestMetricCard(t *testing.T) {
	t.Parallel()

	up := NewMetricCard("Tokens", "18").WithDelta(12.5)
	assert.Equal(t, "▲ 12.5%", up.DeltaText())
	view := up.WithWidth(20).View()
	assert.Contains(t, view, "Tokens")
	assert.Contains(t, view, "18")
	assert.Contains(t, view, "▲ 12.5%")

	assert.Equal(t, "▼ 3.0%", NewMetricCard("Drift", "2").WithDelta(-3).DeltaText())
	assert.Equal(t, "– 0.0%", NewMetricCard("Flat", "0").WithDelta(0).DeltaText())
	assert.Equal(t, "", NewMetricCard("None", "1").DeltaText())
}

// stripANSI removes SGR sequences so rune counts ignore styling.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
