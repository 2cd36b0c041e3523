package cmd

import (
	"fmt"

	"github.com/theirongolddev/finroi/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Output format: %s\n", cfg.General.Format)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Business figures are never saved; every run starts from the defaults.")
	fmt.Fprintln(w, "  Run `finroi setup` to reconfigure.")
	return nil
}
