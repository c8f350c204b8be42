package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tabWidth = 4

// CodeBlock renders source text with line numbers and a language label.
type CodeBlock struct {
	BaseComponent
	code        string
	language    string
	lineNumbers bool
}

// NewCodeBlock creates a code block with line numbers enabled.
func NewCodeBlock(code string) *CodeBlock {
	return &CodeBlock{BaseComponent: NewBaseComponent(), code: code, lineNumbers: true}
}

// WithLanguage sets the label shown above the code.
func (c *CodeBlock) WithLanguage(language string) *CodeBlock {
	c.language = language
	return c
}

// WithLineNumbers toggles the gutter.
func (c *CodeBlock) WithLineNumbers(show bool) *CodeBlock {
	c.lineNumbers = show
	return c
}

// Lines returns the code split into lines with tabs expanded and the trailing
// newline dropped.
func (c *CodeBlock) Lines() []string {
	code := strings.TrimRight(strings.ReplaceAll(c.code, "\t", strings.Repeat(" ", tabWidth)), "\n")
	if code == "" {
		return nil
	}
	return strings.Split(code, "\n")
}

// View renders the code block.
func (c *CodeBlock) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the code block with the provided render context.
func (c *CodeBlock) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	lines := c.Lines()

	gutter := lipgloss.NewStyle().Foreground(theme.Palette.Border)
	width := len(strconv.Itoa(len(lines)))
	body := make([]string, len(lines))
	for i, line := range lines {
		if c.lineNumbers {
			body[i] = gutter.Render(fmt.Sprintf("%*d │ ", width, i+1)) + line
		} else {
			body[i] = line
		}
	}

	block := c.Style(theme).Render(strings.Join(body, "\n"))
	if c.language == "" {
		return block
	}
	label := lipgloss.NewStyle().Foreground(theme.Palette.Accent).Bold(true).Render(c.language)
	return lipgloss.JoinVertical(lipgloss.Left, label, block)
}

// Style computes the block frame.
func (c *CodeBlock) Style(theme Theme) lipgloss.Style {
	style := c.baseStyle().
		Foreground(theme.Palette.Text).
		Background(theme.Palette.Surface).
		Border(theme.Borders.Normal).
		BorderForeground(theme.Palette.Border).
		Padding(0, theme.Space.XS)
	return c.finish(style, theme)
}
