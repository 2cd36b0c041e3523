// Package tui provides the interactive Bubble Tea calculator for finroi.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finroi/internal/cli"
	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/estimate"
	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"
	"github.com/theirongolddev/finroi/internal/tui/components"
	"github.com/theirongolddev/finroi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. It owns the editing session: one
// Calculator plus a text input per field.
type App struct {
	calc     *estimate.Calculator
	defaults model.Inputs
	fields   [input.NumFields]textinput.Model
	focus    int

	// UI state
	width    int
	height   int
	showHelp bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 140

	labelWidth = 24
	inputWidth = 14
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates the calculator model starting from initial.
func NewApp(initial model.Inputs) App {
	a := App{
		calc:     estimate.NewCalculator(initial),
		defaults: initial,
	}
	for _, f := range input.All() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 20
		ti.Width = inputWidth
		ti.SetValue(input.Format(f, a.calc.Value(f)))
		a.fields[f] = ti
	}
	a.fields[0].Focus()
	return a
}

// Results returns the figures for the current inputs.
func (a App) Results() model.Results { return a.calc.Results() }

// Inputs returns a snapshot of the current inputs.
func (a App) Inputs() model.Inputs { return a.calc.Inputs() }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "esc" {
			return a, tea.Quit
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "?":
			a.showHelp = true
			return a, nil
		case "tab", "down", "enter":
			return a.moveFocus(1)
		case "shift+tab", "up":
			return a.moveFocus(-1)
		case "ctrl+r":
			a.calc.Reset(a.defaults)
			for _, f := range input.All() {
				a.fields[f].SetValue(input.Format(f, a.calc.Value(f)))
				a.fields[f].CursorEnd()
			}
			return a, nil
		}

		return a.editFocused(msg)
	}

	// Cursor blink and anything else goes to the focused input
	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

// editFocused feeds a key to the focused input, masks what was typed,
// and recomputes from the result.
func (a App) editFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := input.Field(a.focus)

	var cmd tea.Cmd
	a.fields[f], cmd = a.fields[f].Update(msg)

	raw := a.fields[f].Value()
	if masked := input.Mask(f, raw); masked != raw {
		a.fields[f].SetValue(masked)
		a.fields[f].CursorEnd()
	}

	a.calc.Update(f, a.fields[f].Value())
	return a, cmd
}

// moveFocus formats the field being left, then focuses the next one.
func (a App) moveFocus(delta int) (tea.Model, tea.Cmd) {
	leaving := input.Field(a.focus)
	a.fields[leaving].SetValue(input.Format(leaving, a.calc.Value(leaving)))
	a.fields[leaving].Blur()

	a.focus = (a.focus + delta + input.NumFields) % input.NumFields
	cmd := a.fields[a.focus].Focus()
	a.fields[a.focus].CursorEnd()
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finroi needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()
	r := a.calc.Results()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" ◈ finroi"))
	b.WriteString(subtitleStyle.Render(" · Financial wellbeing program ROI"))
	b.WriteString("\n")

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Annual Return", Value: cli.FormatCurrency(r.TotalReturn), Color: t.Gain},
		{Label: "Program Cost (inc. GST)", Value: cli.FormatCurrency(r.ProgramCost)},
		{Label: "Net Benefit", Value: cli.FormatCurrency(r.NetBenefit), Color: t.Signed(r.NetBenefit)},
		roiMetric(r),
	}, cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Your Organisation", a.renderForm(widths[0]), widths[0], true),
		components.ContentCard("Savings Breakdown", a.renderBreakdown(r, widths[1]), widths[1], false),
	}))
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(cw,
		" [tab]next  [shift+tab]prev  [ctrl+r]reset  [?]help  [esc]quit",
		"results update as you type "))

	return b.String()
}

// roiMetric carries a payback note, in the warning color when the program
// costs more than it returns.
func roiMetric(r model.Results) components.Metric {
	t := theme.Active
	m := components.Metric{
		Label: "ROI",
		Value: cli.FormatPercent(r.ROIPercent),
		Color: t.Signed(r.ROIPercent),
	}
	switch {
	case r.ProgramCost <= 0:
		m.Note = "no program cost"
	case r.ROIPercent <= 0:
		m.Note = "does not pay for itself"
		m.NoteColor = t.Warn
	default:
		m.Note = fmt.Sprintf("$%.2f back per $1", float64(r.TotalReturn)/float64(r.ProgramCost))
	}
	return m
}

func (a App) renderForm(outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(outerWidth)

	var body strings.Builder
	for _, f := range input.All() {
		prefix, suffix := " ", " "
		switch f.Kind() {
		case input.KindMoney:
			prefix = "$"
		case input.KindRate:
			suffix = "%"
		}

		focused := int(f) == a.focus
		var line strings.Builder
		if focused {
			line.WriteString(markerStyle.Render("▸ "))
			line.WriteString(focusLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.Label())))
		} else {
			line.WriteString(blank.Render("  "))
			line.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.Label())))
		}
		line.WriteString(unitStyle.Render(prefix))
		line.WriteString(a.fields[f].View())
		line.WriteString(unitStyle.Render(suffix))

		if pad := innerW - lipgloss.Width(line.String()); pad > 0 {
			line.WriteString(blank.Render(strings.Repeat(" ", pad)))
		}
		body.WriteString(line.String())
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(unitStyle.Render("Manager headcount is recorded but not used"))
	return body.String()
}

func (a App) renderBreakdown(r model.Results, outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	innerW := components.CardInnerWidth(outerWidth)
	barW := innerW - labelWidth - 8
	if barW < 5 {
		barW = 5
	}

	var body strings.Builder
	for _, line := range r.Savings() {
		amount := cli.FormatCurrency(line.Amount)
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", innerW-len(amount), line.Label)))
		body.WriteString(valueStyle.Render(amount))
		body.WriteString("\n")
		body.WriteString(components.ShareBar("", line.Amount, r.TotalReturn, labelWidth-1, barW))
		body.WriteString("\n")
	}
	return strings.TrimSuffix(body.String(), "\n")
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Key).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"tab ↓ enter", "Next field"},
		{"shift+tab ↑", "Previous field"},
		{"ctrl+r", "Reset to default figures"},
		{"?", "Toggle this help"},
		{"esc ctrl+c", "Quit"},
	}
	for _, kb := range bindings {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-14s", kb.key)))
		b.WriteString(descStyle.Render(kb.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Salaries accept digits only; rates keep one decimal."))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
