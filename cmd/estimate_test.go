package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/finroi/internal/estimate"
	"github.com/theirongolddev/finroi/internal/model"

	"github.com/goccy/go-json"
)

func TestRenderEstimateDefaults(t *testing.T) {
	in := model.DefaultInputs()
	var buf bytes.Buffer
	renderEstimate(&buf, in, estimate.Compute(in))

	out := buf.String()
	for _, want := range []string{
		"$248,945", "$117,489", "$6,822", "$821,600",
		"$1,194,856", "$275,000", "$919,856", "334%",
		"$82,160", "10.1%", "Every $1 invested returns $4.34",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	in := model.DefaultInputs()
	var buf bytes.Buffer
	if err := writeJSON(&buf, in, estimate.Compute(in)); err != nil {
		t.Fatalf("writeJSON error: %v", err)
	}

	var got estimateReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Results.ROIPercent != 334 || got.Results.ProgramCost != 275000 {
		t.Fatalf("results = %+v", got.Results)
	}
	if got.Inputs != in {
		t.Fatalf("inputs = %+v, want %+v", got.Inputs, in)
	}
	if !strings.Contains(buf.String(), `"roiPercent": 334`) {
		t.Errorf("expected camelCase keys:\n%s", buf.String())
	}
}

func TestEstimateCommandCoercesFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"estimate", "--json",
		"--employees", "1,000",
		"--avg-salary", "$90,000",
		"--turnover-rate", "abc",
		"--set", "absenteeism-rate=3.5%",
	})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var got estimateReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	want := model.DefaultInputs()
	want.Employees = 1000
	want.AvgSalary = 90000
	want.TurnoverRate = 0
	want.AbsenteeismRate = 3.5
	if got.Inputs != want {
		t.Fatalf("inputs = %+v, want %+v", got.Inputs, want)
	}
	if got.Results != estimate.Compute(want) {
		t.Fatalf("results = %+v, want %+v", got.Results, estimate.Compute(want))
	}
	if got.Results.TurnoverSavings != 0 {
		t.Fatalf("TurnoverSavings = %d, want 0 for unparseable rate", got.Results.TurnoverSavings)
	}
}
