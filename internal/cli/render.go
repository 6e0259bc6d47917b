package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(45).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// KV is one label/value row of a card.
type KV struct {
	Label string
	Value string
}

// RenderCard renders a titled key/value card with aligned columns.
func RenderCard(title string, rows []KV) string {
	labelWidth := 0
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		if r.Label == "" && r.Value == "" {
			b.WriteString("\n")
			continue
		}
		padded := fmt.Sprintf("%-*s", labelWidth, r.Label)
		b.WriteString(labelStyle.Render(padded))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(r.Value))
		b.WriteString("\n")
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// TruncateSummary shortens a session summary for display.
func TruncateSummary(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
