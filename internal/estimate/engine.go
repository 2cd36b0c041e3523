// Package estimate turns a set of business inputs into program savings, cost, and ROI.
package estimate

import (
	"math"

	"github.com/theirongolddev/finroi/internal/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	maxWhole = decimal.NewFromInt(math.MaxInt64)
	minWhole = decimal.NewFromInt(math.MinInt64)
)

// Compute derives Results from in using the default constants.
func Compute(in model.Inputs) model.Results {
	return ComputeWith(in, model.DefaultConstants())
}

// ComputeWith derives Results from in and c. It never mutates in and is
// defined for every input: non-finite values count as zero.
func ComputeWith(in model.Inputs, c model.Constants) model.Results {
	in = sanitize(in)

	r := model.Results{
		TurnoverSavings:    TurnoverSavings(in, c),
		AbsenteeismSavings: AbsenteeismSavings(in, c),
		ManagerTimeSavings: ManagerTimeSavings(in, c),
		ProductivityGains:  ProductivityGains(in, c),
		ProgramCost:        ProgramCost(in, c),
	}
	r.TotalReturn = sum(r.TurnoverSavings, r.AbsenteeismSavings, r.ManagerTimeSavings, r.ProductivityGains)
	r.NetBenefit = round(decimal.NewFromInt(r.TotalReturn).Sub(decimal.NewFromInt(r.ProgramCost)))
	r.ROIPercent = roiPercent(r.NetBenefit, r.ProgramCost)
	return r
}

// TurnoverSavings values the leavers the program retains: a share of the
// participating fraction of annual turnover, each avoiding a replacement cost.
func TurnoverSavings(in model.Inputs, c model.Constants) int64 {
	leavers := num(in.Employees).Mul(percent(in.TurnoverRate))
	retained := leavers.Mul(num(c.ParticipationRate)).Mul(num(c.TurnoverReduction))
	return round(retained.Mul(num(in.AvgSalary)).Mul(num(c.TurnoverReplacementCost)))
}

// AbsenteeismSavings values avoided absence days at daily salary scaled by
// the disruption factor.
func AbsenteeismSavings(in model.Inputs, c model.Constants) int64 {
	days := num(c.WorkingDaysPerYear)
	absenceDays := num(in.Employees).Mul(percent(in.AbsenteeismRate)).Mul(days)
	avoided := absenceDays.Mul(num(c.ParticipationRate)).Mul(num(c.AbsenteeismReduction))
	dailySalary := div(num(in.AvgSalary), days)
	return round(avoided.Mul(dailySalary).Mul(num(c.AbsenteeismDisruptionFactor)))
}

// ManagerTimeSavings values the manager hours participants no longer need,
// at the manager hourly rate. The manager headcount plays no part.
func ManagerTimeSavings(in model.Inputs, c model.Constants) int64 {
	hours := num(in.Employees).
		Mul(num(c.ParticipationRate)).
		Mul(num(c.ManagerTimePerEmployee)).
		Mul(num(c.ManagerTimeReduction))
	hourlyRate := div(num(in.AvgManagerSalary), num(c.WorkingHoursPerYear))
	return round(hours.Mul(hourlyRate))
}

// ProductivityGains applies a flat uplift to the participants' salary base.
func ProductivityGains(in model.Inputs, c model.Constants) int64 {
	return round(num(in.Employees).
		Mul(num(c.ParticipationRate)).
		Mul(num(in.AvgSalary)).
		Mul(num(c.ProductivityImprovementRate)))
}

// ProgramCost is the greater of the base cost and the per-employee rate,
// with GST added.
func ProgramCost(in model.Inputs, c model.Constants) int64 {
	perHead := num(in.Employees).Mul(num(c.ProgramCostPerEmployee))
	base := decimal.Max(num(c.ProgramBaseCost), perHead)
	return round(base.Mul(decimal.NewFromInt(1).Add(num(c.GSTRate))))
}

func roiPercent(netBenefit, programCost int64) int64 {
	if programCost <= 0 {
		return 0
	}
	ratio := decimal.NewFromInt(netBenefit).Mul(hundred).Div(decimal.NewFromInt(programCost))
	return round(ratio)
}

func sanitize(in model.Inputs) model.Inputs {
	return model.Inputs{
		Employees:        finite(in.Employees),
		AvgSalary:        finite(in.AvgSalary),
		TurnoverRate:     finite(in.TurnoverRate),
		Managers:         finite(in.Managers),
		AvgManagerSalary: finite(in.AvgManagerSalary),
		AbsenteeismRate:  finite(in.AbsenteeismRate),
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// num converts via the shortest decimal representation, so 10.1 stays 10.1.
func num(f float64) decimal.Decimal {
	return decimal.NewFromFloat(finite(f))
}

func percent(f float64) decimal.Decimal {
	return num(f).Div(hundred)
}

// div returns zero instead of panicking when a constant divisor is zero.
func div(d, by decimal.Decimal) decimal.Decimal {
	if by.IsZero() {
		return decimal.Zero
	}
	return d.Div(by)
}

// sum adds whole amounts without wrapping.
func sum(amounts ...int64) int64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromInt(a))
	}
	return round(total)
}

// round is half away from zero and saturates at the int64 bounds.
func round(d decimal.Decimal) int64 {
	d = d.Round(0)
	switch {
	case d.GreaterThan(maxWhole):
		return math.MaxInt64
	case d.LessThan(minWhole):
		return math.MinInt64
	}
	return d.IntPart()
}
