// Package components renders the BlackRoad component set (Button, Card, Badge,
// Input, Modal, Toast, Spinner, AgentAvatar, StatusDot, CodeBlock and
// MetricCard) in the terminal with Lip Gloss.
//
// Components never carry color or spacing literals. They read a Theme, and a
// Theme is derived from the token registry:
//
//	theme := components.DefaultTheme()
//	fmt.Println(components.PrimaryButton("Deploy").ViewWithContext(components.RenderContext{Theme: theme}))
//
// Pixel spacing is mapped to cells by treating spacing.xs (8px) as one cell.
package components
