package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"
	"github.com/theirongolddev/finroi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a = m.(App)
	}
	return a
}

func press(t *testing.T, a App, k tea.KeyType) App {
	t.Helper()
	m, _ := a.Update(tea.KeyMsg{Type: k})
	return m.(App)
}

func TestNewAppStartsFromDefaults(t *testing.T) {
	a := NewApp(model.DefaultInputs())

	if a.Results().ROIPercent != 334 {
		t.Fatalf("initial ROI = %d, want 334", a.Results().ROIPercent)
	}
	if got := a.fields[input.AvgSalary].Value(); got != "82,160" {
		t.Fatalf("salary field = %q, want %q", got, "82,160")
	}
	if got := a.fields[input.TurnoverRate].Value(); got != "10.1" {
		t.Fatalf("turnover field = %q, want %q", got, "10.1")
	}
	if !a.fields[input.Employees].Focused() {
		t.Fatal("first field should start focused")
	}
}

func TestTypingRecomputesImmediately(t *testing.T) {
	a := NewApp(model.DefaultInputs())

	a = typeText(t, a, "0") // "500" -> "5000"
	if a.Inputs().Employees != 5000 {
		t.Fatalf("Employees = %v, want 5000", a.Inputs().Employees)
	}
	if a.Results().ProgramCost != 2750000 {
		t.Fatalf("ProgramCost = %d, want 2750000", a.Results().ProgramCost)
	}
}

func TestMoneyFieldIsMaskedAsTyped(t *testing.T) {
	a := NewApp(model.DefaultInputs())
	a = press(t, a, tea.KeyTab)

	a = typeText(t, a, "1x")
	if got := a.fields[input.AvgSalary].Value(); got != "821,601" {
		t.Fatalf("salary field = %q, want %q", got, "821,601")
	}
	if a.Inputs().AvgSalary != 821601 {
		t.Fatalf("AvgSalary = %v, want 821601", a.Inputs().AvgSalary)
	}
}

func TestLeavingFieldFormatsIt(t *testing.T) {
	a := NewApp(model.DefaultInputs())

	a = typeText(t, a, ".6")
	if a.Inputs().Employees != 500.6 {
		t.Fatalf("Employees = %v, want 500.6", a.Inputs().Employees)
	}

	a = press(t, a, tea.KeyTab)
	if got := a.fields[input.Employees].Value(); got != "501" {
		t.Fatalf("employees field after blur = %q, want %q", got, "501")
	}
	if a.focus != int(input.AvgSalary) {
		t.Fatalf("focus = %d, want %d", a.focus, input.AvgSalary)
	}

	a = press(t, a, tea.KeyShiftTab)
	a = press(t, a, tea.KeyShiftTab)
	if a.focus != int(input.AbsenteeismRate) {
		t.Fatalf("focus after wrapping back = %d, want %d", a.focus, input.AbsenteeismRate)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	a := NewApp(model.DefaultInputs())
	a = typeText(t, a, "9")

	a = press(t, a, tea.KeyCtrlR)
	if a.Inputs() != model.DefaultInputs() {
		t.Fatalf("inputs after reset = %+v", a.Inputs())
	}
	if got := a.fields[input.Employees].Value(); got != "500" {
		t.Fatalf("employees field after reset = %q", got)
	}
}

func TestViewRendersResults(t *testing.T) {
	a := NewApp(model.DefaultInputs())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	view := a.View()
	for _, want := range []string{"$1,194,856", "$275,000", "$919,856", "334%", "Turnover Savings", "$4.34 back per $1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if v := m.(App).View(); !strings.Contains(v, "too narrow") {
		t.Errorf("narrow view = %q", v)
	}
}

func TestHelpToggle(t *testing.T) {
	a := NewApp(model.DefaultInputs())
	a = typeText(t, a, "?")
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	if a.Inputs().Employees != 500 {
		t.Fatal("? must not be typed into the field")
	}
	a = typeText(t, a, "x")
	if a.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestSetupValuesApply(t *testing.T) {
	vals := NewSetupValues(config.DefaultConfig())
	if vals.Theme != "flexoki-dark" || vals.Format != config.FormatTable {
		t.Fatalf("seeded values = %+v", vals)
	}

	vals.Theme = "no-such-theme"
	vals.Format = config.FormatJSON
	cfg := vals.Apply(config.DefaultConfig())
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("unknown theme should fall back, got %q", cfg.Appearance.Theme)
	}
	if cfg.General.Format != config.FormatJSON {
		t.Fatalf("format = %q, want json", cfg.General.Format)
	}

	if NewSetupForm(&vals) == nil {
		t.Fatal("NewSetupForm returned nil")
	}
}

func TestROIMetricNote(t *testing.T) {
	m := roiMetric(model.Results{TotalReturn: 1194856, ProgramCost: 275000, NetBenefit: 919856, ROIPercent: 334})
	if m.Note != "$4.34 back per $1" || m.NoteColor != "" {
		t.Fatalf("positive ROI note = %q (%q)", m.Note, m.NoteColor)
	}

	m = roiMetric(model.Results{ProgramCost: 275000, NetBenefit: -275000, ROIPercent: -100})
	if m.Note != "does not pay for itself" {
		t.Fatalf("negative ROI note = %q", m.Note)
	}
	if m.NoteColor != theme.Active.Warn {
		t.Fatalf("negative ROI note color = %q, want warn %q", m.NoteColor, theme.Active.Warn)
	}

	if m = roiMetric(model.Results{}); m.Note != "no program cost" {
		t.Fatalf("zero cost note = %q", m.Note)
	}
}
