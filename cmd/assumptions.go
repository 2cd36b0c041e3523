package cmd

import (
	"fmt"

	"github.com/theirongolddev/finroi/internal/cli"
	"github.com/theirongolddev/finroi/internal/model"

	"github.com/spf13/cobra"
)

var assumptionsCmd = &cobra.Command{
	Use:   "assumptions",
	Short: "Show the fixed benchmark assumptions and how each figure is derived",
	RunE:  runAssumptions,
}

func init() {
	rootCmd.AddCommand(assumptionsCmd)
}

func runAssumptions(cmd *cobra.Command, _ []string) error {
	c := model.DefaultConstants()
	w := cmd.OutOrStdout()

	pct := func(f float64) string { return fmt.Sprintf("%.0f%%", f*100) }

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("BENCHMARK ASSUMPTIONS"))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Assumption", "Value"},
		Rows: [][]string{
			{"Program participation", pct(c.ParticipationRate)},
			{"Turnover replacement cost", pct(c.TurnoverReplacementCost) + " of salary"},
			{"Turnover reduction (participants)", pct(c.TurnoverReduction)},
			{"Absenteeism reduction (participants)", pct(c.AbsenteeismReduction)},
			{"Absenteeism disruption factor", fmt.Sprintf("%.1fx", c.AbsenteeismDisruptionFactor)},
			{"Manager time per employee", fmt.Sprintf("%.0f h/year", c.ManagerTimePerEmployee)},
			{"Manager time reduction", pct(c.ManagerTimeReduction)},
			{"Productivity improvement", pct(c.ProductivityImprovementRate)},
			{"---"},
			{"Program cost floor", cli.FormatCurrency(int64(c.ProgramBaseCost))},
			{"Program cost per employee", cli.FormatCurrency(int64(c.ProgramCostPerEmployee))},
			{"GST", pct(c.GSTRate)},
			{"---"},
			{"Working days per year", fmt.Sprintf("%.0f", c.WorkingDaysPerYear)},
			{"Working hours per year", fmt.Sprintf("%.0f", c.WorkingHoursPerYear)},
		},
	}))
	fmt.Fprintln(w)

	formulas := []struct{ name, model string }{
		{"Turnover savings", "leavers x participation x reduction x salary x replacement cost"},
		{"Absenteeism savings", "absence days x participation x reduction x daily salary x disruption"},
		{"Manager time saved", "employees x participation x hours x reduction x manager hourly rate"},
		{"Productivity gains", "employees x participation x salary x improvement"},
		{"Program cost", "max(floor, employees x per-head rate) x (1 + GST)"},
		{"ROI", "(total return - program cost) / program cost"},
	}
	for _, f := range formulas {
		fmt.Fprintf(w, "  %-20s %s\n", f.name, cli.RenderMuted(f.model))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderMuted("  Manager headcount is collected but does not feed any formula."))
	fmt.Fprintln(w)
	return nil
}
