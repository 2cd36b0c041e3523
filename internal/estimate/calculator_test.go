package estimate

import (
	"testing"

	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"
)

func TestNewCalculatorComputesOnLoad(t *testing.T) {
	calc := NewCalculator(model.DefaultInputs())

	if got, want := calc.Results(), Compute(model.DefaultInputs()); got != want {
		t.Fatalf("initial Results = %+v, want %+v", got, want)
	}
}

func TestCalculatorUpdateCoercesAndRecomputes(t *testing.T) {
	calc := NewCalculator(model.DefaultInputs())

	r := calc.Update(input.Employees, "1,000")
	if calc.Inputs().Employees != 1000 {
		t.Fatalf("Employees = %v, want 1000", calc.Inputs().Employees)
	}
	if r.ProgramCost != 550000 {
		t.Fatalf("ProgramCost = %d, want 550000", r.ProgramCost)
	}
	if r != calc.Results() {
		t.Fatal("Update result differs from Results()")
	}

	r = calc.Update(input.AvgSalary, "not a number")
	if calc.Inputs().AvgSalary != 0 {
		t.Fatalf("AvgSalary = %v, want 0 for malformed text", calc.Inputs().AvgSalary)
	}
	if r.ProductivityGains != 0 || r.TurnoverSavings != 0 || r.AbsenteeismSavings != 0 {
		t.Fatalf("salary-driven savings = %+v, want zero", r)
	}

	r = calc.Update(input.TurnoverRate, "12.5%")
	if calc.Inputs().TurnoverRate != 12.5 {
		t.Fatalf("TurnoverRate = %v, want 12.5", calc.Inputs().TurnoverRate)
	}
	if r != Compute(calc.Inputs()) {
		t.Fatal("Results out of step with Inputs after update")
	}
}

func TestCalculatorInputsIsSnapshot(t *testing.T) {
	calc := NewCalculator(model.DefaultInputs())

	snap := calc.Inputs()
	snap.Employees = 1

	if calc.Inputs().Employees != 500 {
		t.Fatalf("mutating snapshot leaked into calculator: Employees = %v", calc.Inputs().Employees)
	}
}

func TestCalculatorReset(t *testing.T) {
	calc := NewCalculator(model.DefaultInputs())
	calc.Update(input.Employees, "")

	r := calc.Reset(model.DefaultInputs())
	if r.ROIPercent != 334 {
		t.Fatalf("ROIPercent after reset = %d, want 334", r.ROIPercent)
	}
	if calc.Value(input.Employees) != 500 {
		t.Fatalf("Employees after reset = %v, want 500", calc.Value(input.Employees))
	}
}
