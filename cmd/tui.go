package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/tui"
	"github.com/theirongolddev/finroi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("using default config", "path", config.Path(), "err", err)
	}
	theme.SetActive(cfg.Appearance.Theme)

	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	p := tea.NewProgram(tui.NewApp(in), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
