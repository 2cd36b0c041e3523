package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose theme and default output format",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	vals := tui.LoadSetupDefaults()

	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if !vals.Save {
		fmt.Fprintln(cmd.OutOrStdout(), "  Nothing saved.")
		return nil
	}

	if err := config.Save(vals.Apply(loadConfigForSave())); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n  Saved to %s\n", config.Path())
	fmt.Fprintln(cmd.OutOrStdout(), "  Run `finroi setup` anytime to reconfigure.")
	return nil
}

// loadConfigForSave returns the current config, or defaults when the file
// cannot be read. The file is about to be overwritten either way.
func loadConfigForSave() config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Debug("replacing unreadable config", "path", config.Path(), "err", err)
	}
	return cfg
}
