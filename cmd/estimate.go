package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/theirongolddev/finroi/internal/cli"
	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/estimate"
	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var flagJSON bool

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute savings, program cost, and ROI",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print inputs and results as JSON")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print inputs and results as JSON")
	rootCmd.AddCommand(estimateCmd)
}

// estimateReport is the JSON shape of an estimate.
type estimateReport struct {
	Inputs  model.Inputs  `json:"inputs"`
	Results model.Results `json:"results"`
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("using default config", "path", config.Path(), "err", err)
	}

	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	r := estimate.Compute(in)
	slog.Debug("computed estimate", "inputs", in, "roi", r.ROIPercent)

	out := cmd.OutOrStdout()
	if flagJSON || cfg.General.Format == config.FormatJSON {
		return writeJSON(out, in, r)
	}
	renderEstimate(out, in, r)
	return nil
}

func writeJSON(w io.Writer, in model.Inputs, r model.Results) error {
	data, err := json.MarshalIndent(estimateReport{Inputs: in, Results: r}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding estimate: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing estimate: %w", err)
	}
	return nil
}

func renderEstimate(w io.Writer, in model.Inputs, r model.Results) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("FINANCIAL WELLBEING PROGRAM ROI"))
	fmt.Fprintln(w)

	inputRows := make([][]string, 0, input.NumFields)
	for _, f := range input.All() {
		value := input.Format(f, input.Get(in, f))
		switch f.Kind() {
		case input.KindMoney:
			value = "$" + value
		case input.KindRate:
			value += "%"
		}
		inputRows = append(inputRows, []string{f.Label(), value})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Your Organisation",
		Headers: []string{"Input", "Value"},
		Rows:    inputRows,
	}))
	fmt.Fprintln(w)

	savings := r.Savings()
	var maxSaving int64
	for _, s := range savings {
		if s.Amount > maxSaving {
			maxSaving = s.Amount
		}
	}

	rows := make([][]string, 0, len(savings)+6)
	for _, s := range savings {
		rows = append(rows, []string{s.Label, cli.FormatCurrency(s.Amount), cli.FormatShare(s.Amount, r.TotalReturn)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total Annual Return", cli.FormatCurrency(r.TotalReturn), ""},
		[]string{"Program Cost (inc. GST)", cli.FormatCurrency(r.ProgramCost), ""},
		[]string{"---"},
		[]string{"Net Benefit", cli.FormatCurrency(r.NetBenefit), ""},
		[]string{"ROI", cli.FormatPercent(r.ROIPercent), ""},
	)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Estimated Annual Impact",
		Headers: []string{"Item", "Amount", "Share"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)

	for _, s := range savings {
		fmt.Fprintf(w, "  %-20s %s\n", s.Label, cli.RenderHorizontalBar(float64(s.Amount), float64(maxSaving), 30))
	}
	fmt.Fprintln(w)

	if r.ProgramCost > 0 {
		perDollar := float64(r.TotalReturn) / float64(r.ProgramCost)
		fmt.Fprintln(w, cli.RenderSigned(fmt.Sprintf("  Every $1 invested returns $%.2f", perDollar), r.NetBenefit))
	}
	fmt.Fprintln(w, cli.RenderMuted("  Figures are estimates from industry benchmarks. Run `finroi assumptions` for details."))
	fmt.Fprintln(w)
}
