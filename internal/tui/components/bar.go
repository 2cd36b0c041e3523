package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finroi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders "label  ████░░░░  42.0%" for part of total in width cells.
// Non-positive parts or totals render an empty track.
func ShareBar(label string, part, total int64, labelWidth, barWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if barWidth < 1 {
		barWidth = 1
	}

	var pct float64
	if total > 0 && part > 0 {
		pct = float64(part) / float64(total)
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(barWidth))

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s ", labelWidth, label)))
	b.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(trackStyle.Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(pctStyle.Render(fmt.Sprintf(" %5.1f%%", pct*100)))
	return b.String()
}
