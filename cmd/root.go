// Package cmd implements the finroi CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagSet     []string

	// One string flag per input so values like "$90,000" or "10.1%" are accepted.
	flagInputs = map[input.Field]*string{}
)

var inputFlagNames = map[input.Field]string{
	input.Employees:        "employees",
	input.AvgSalary:        "avg-salary",
	input.TurnoverRate:     "turnover-rate",
	input.Managers:         "managers",
	input.AvgManagerSalary: "avg-manager-salary",
	input.AbsenteeismRate:  "absenteeism-rate",
}

var rootCmd = &cobra.Command{
	Use:   "finroi",
	Short: "Financial wellbeing program ROI estimator",
	Long: "Estimate the annual savings, program cost, and return on investment of an\n" +
		"employee financial wellbeing program from a few figures about your organisation.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug detail to stderr")
	rootCmd.PersistentFlags().StringArrayVar(&flagSet, "set", nil, "Set an input by id, e.g. --set avgSalary=95000 (repeatable)")

	defaults := model.DefaultInputs()
	for _, f := range input.All() {
		name := inputFlagNames[f]
		usage := fmt.Sprintf("%s (default %s)", f.Label(), input.Format(f, input.Get(defaults, f)))
		flagInputs[f] = rootCmd.PersistentFlags().String(name, "", usage)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadInputs starts from the default figures and applies any input flags,
// then --set assignments in order. Flag text is coerced, never rejected.
func loadInputs(cmd *cobra.Command) (model.Inputs, error) {
	in := model.DefaultInputs()

	for _, f := range input.All() {
		if !cmd.Flags().Changed(inputFlagNames[f]) {
			continue
		}
		raw := *flagInputs[f]
		input.Set(&in, f, input.Parse(raw))
		slog.Debug("input from flag", "field", f.ID(), "raw", raw, "value", input.Get(in, f))
	}

	for _, assignment := range flagSet {
		f, v, err := input.ParseAssignment(assignment)
		if err != nil {
			return in, fmt.Errorf("parsing --set: %w", err)
		}
		input.Set(&in, f, v)
		slog.Debug("input from --set", "field", f.ID(), "value", v)
	}

	return in, nil
}
