package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/internal/ui/components"
)

const (
	defaultWidth  = 72
	defaultHeight = 24
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.RenderContext{Theme: m.theme}
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	if m.confirming {
		height := m.height
		if height <= 0 {
			height = defaultHeight
		}
		return regenerateModal().WithViewport(width, height).ViewWithContext(ctx)
	}

	sections := []string{
		lipgloss.NewStyle().Bold(true).Render(components.GradientText("BlackRoad brandkit", m.theme.Gradient)),
		components.GradientBar(width, m.theme.Gradient),
	}
	for s := Section(0); s < sectionCount; s++ {
		sections = append(sections, sectionStyle(m.theme, s == m.focus).Render(s.String()), m.renderSection(s, ctx))
	}
	sections = append(sections, helpStyle(m.theme).Render("tab/shift+tab focus • type in Input • r regenerate • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSection(s Section, ctx components.RenderContext) string {
	focused := s == m.focus
	gap := lipgloss.NewStyle().Width(m.theme.Space.XS).Render("")

	switch s {
	case SectionButtons:
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			components.PrimaryButton("Deploy").WithActive(focused).ViewWithContext(ctx), gap,
			components.SecondaryButton("Preview").ViewWithContext(ctx), gap,
			components.GhostButton("Docs").ViewWithContext(ctx), gap,
			components.PrimaryButton("Locked").WithDisabled(true).ViewWithContext(ctx),
		)
		badges := lipgloss.JoinHorizontal(lipgloss.Center,
			components.NewBadge("stable").WithTone(components.ToneSuccess).ViewWithContext(ctx), gap,
			components.NewBadge("beta").WithTone(components.ToneHighlight).ViewWithContext(ctx), gap,
			components.NewBadge("φ").WithTone(components.ToneAccent).WithOutline(true).ViewWithContext(ctx),
		)
		return lipgloss.JoinVertical(lipgloss.Left, row, badges)

	case SectionInput:
		view := m.input.View()
		if v, err := m.sys.Registry.Get(m.input.Value()); err == nil {
			view = lipgloss.JoinVertical(lipgloss.Left, view, components.SuccessToast(v.String()).ViewWithContext(ctx))
		} else if m.input.Value() != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, components.ErrorToast(err.Error()).ViewWithContext(ctx))
		}
		return view

	case SectionAgents:
		statuses := []components.Status{
			components.StatusOnline, components.StatusBusy, components.StatusIdle,
			components.StatusOnline, components.StatusOffline, components.StatusError,
		}
		rows := make([]string, 0, len(tokens.AgentNames()))
		for i, name := range tokens.AgentNames() {
			avatar, err := components.NewAgentAvatar(name, m.theme)
			if err != nil {
				continue
			}
			status := statuses[i%len(statuses)]
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
				components.NewStatusDot(status).ViewWithContext(ctx), " ",
				avatar.WithLabel(true).ViewWithContext(ctx),
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)

	case SectionFeedback:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.spinner.View(),
			components.SuccessToast("Tokens written to dist/tokens").ViewWithContext(ctx),
			components.WarningToast("Working tree has uncommitted changes").ViewWithContext(ctx),
			components.ErrorToast("br-tokens.css drifted from the registry").ViewWithContext(ctx),
			regenerateModal().ViewWithContext(ctx),
		)

	default:
		metrics := lipgloss.JoinHorizontal(lipgloss.Top,
			components.NewMetricCard("Tokens", strconv.Itoa(len(tokens.Paths()))).WithWidth(16).ViewWithContext(ctx), gap,
			components.NewMetricCard("Agents", strconv.Itoa(len(tokens.AgentNames()))).WithWidth(16).ViewWithContext(ctx), gap,
			components.NewMetricCard("Ratio", strconv.FormatFloat(tokens.Phi, 'f', -1, 64)).WithDelta(0).WithWidth(16).ViewWithContext(ctx),
		)
		code := components.NewCodeBlock(m.snippet).WithLanguage("css").ViewWithContext(ctx)
		card := components.NewCard(code).WithTitle("br-tokens.css")
		if focused {
			card.WithTone(components.TonePrimary)
		}
		return lipgloss.JoinVertical(lipgloss.Left, metrics, card.ViewWithContext(ctx))
	}
}

func regenerateModal() *components.Modal {
	return components.NewModal("Regenerate artifacts?", "Every configured target is rewritten from the registry.").
		WithActions(components.PrimaryButton("Write"), components.GhostButton("Cancel"))
}
