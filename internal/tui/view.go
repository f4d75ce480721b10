package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// layout is the geometry of one frame.
type layout struct {
	frameWidth  int
	frameHeight int
	// panel columns: left 40%, gap 20%, right 40% of the frame interior
	leftWidth   int
	gapWidth    int
	rightWidth  int
	panelHeight int
}

// frameMargin is the empty border around the outer frame on roomy terminals.
const frameMargin = 5

func computeLayout(width, height int) layout {
	mx := min(frameMargin, width/10)
	my := min(frameMargin, height/10)

	l := layout{
		frameWidth:  max(width-2*mx, 0),
		frameHeight: max(height-2*my-1, 0), // one line for help
	}
	inner := max(l.frameWidth-4, 0)
	l.leftWidth = inner * 40 / 100
	l.gapWidth = inner * 20 / 100
	l.rightWidth = inner - l.leftWidth - l.gapWidth
	l.panelHeight = max(l.frameHeight-4, 0)
	return l
}

// panelBodyWidth is the text width inside a panel (border and padding
// removed).
func (l layout) panelBodyWidth() int {
	return max(l.leftWidth-4, 1)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	l := computeLayout(m.width, m.height)

	var frame string
	var footer string
	switch s := m.scene.(type) {
	case screen.InfoScene:
		frame = renderInfo(s, l)
		footer = m.help.ShortHelpView(m.keys.infoHelp())
	case screen.ChoiceScene:
		frame = m.renderChoice(s, l)
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	default:
		return ""
	}

	footer = lipgloss.PlaceHorizontal(l.frameWidth, lipgloss.Center, footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, frame, footer))
}

func renderInfo(s screen.InfoScene, l layout) string {
	text := messageStyle.Render(s.Message)
	if s.Hint != "" {
		text += "\n\n" + hintStyle.Render(s.Hint)
	}
	body := lipgloss.NewStyle().
		Width(max(l.frameWidth-2, 0)).
		Padding(1, 1).
		Align(lipgloss.Center).
		Render(text)
	return titledBox(lipgloss.RoundedBorder(), frameBorderColor, "", frameTitleStyle, l.frameWidth, l.frameHeight, body)
}

func (m Model) renderChoice(s screen.ChoiceScene, l layout) string {
	left := m.renderPanel(s.Left, l.leftWidth, l.panelHeight)
	right := m.renderPanel(s.Right, l.rightWidth, l.panelHeight)
	gap := strings.Repeat(" ", l.gapWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
	body := lipgloss.NewStyle().Padding(1, 1).Render(row)
	return titledBox(lipgloss.RoundedBorder(), frameBorderColor, s.Prompt, frameTitleStyle, l.frameWidth, l.frameHeight, body)
}

func (m Model) renderPanel(p screen.Panel, width, height int) string {
	border := lipgloss.NormalBorder()
	var color lipgloss.TerminalColor = lipgloss.NoColor{}
	title := panelTitleStyle
	if p.Selected {
		border = lipgloss.ThickBorder()
		color, title = selectedStyles(m.accent)
	}

	bodyStyle := lipgloss.NewStyle().Width(max(width-2, 0)).Padding(1, 1)
	body := p.Body
	if rendered, ok := m.renderMarkdown(body); ok {
		body = rendered
	} else {
		bodyStyle = bodyStyle.Align(lipgloss.Center)
	}
	return titledBox(border, color, p.Title, title, width, height, bodyStyle.Render(body))
}

func (m Model) renderMarkdown(body string) (string, bool) {
	if !m.markdown || m.renderer == nil {
		return "", false
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		return "", false
	}
	return strings.Trim(out, "\n"), true
}

// titledBox draws content inside a width x height border with title centered
// in the top edge. Content is wrapped and clipped to the interior.
func titledBox(b lipgloss.Border, color lipgloss.TerminalColor, title string, titleStyle lipgloss.Style, width, height int, content string) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW, innerH := width-2, height-2

	inner := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxWidth(innerW).
		MaxHeight(innerH).
		Render(content)

	body := lipgloss.NewStyle().
		Border(b, false, true, true, true).
		BorderForeground(color).
		Render(inner)

	return topEdge(b, color, title, titleStyle, width) + "\n" + body
}

func topEdge(b lipgloss.Border, color lipgloss.TerminalColor, title string, titleStyle lipgloss.Style, width int) string {
	edge := lipgloss.NewStyle().Foreground(color)
	fill := width - 2
	if title == "" || fill < 3 {
		return edge.Render(b.TopLeft + strings.Repeat(b.Top, fill) + b.TopRight)
	}

	label := titleStyle.MaxWidth(fill).Render(" " + title + " ")
	lw := lipgloss.Width(label)
	left := (fill - lw) / 2
	right := fill - lw - left
	return edge.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		label +
		edge.Render(strings.Repeat(b.Top, right)+b.TopRight)
}
