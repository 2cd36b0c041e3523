// Package model holds the plain records passed between the estimator and its front ends.
package model

// Inputs holds the user-editable business figures.
// Rates are percentages (10.1 means 10.1%).
type Inputs struct {
	Employees        float64 `json:"employees"`
	AvgSalary        float64 `json:"avgSalary"`
	TurnoverRate     float64 `json:"turnoverRate"`
	Managers         float64 `json:"managers"` // collected but not used by any formula
	AvgManagerSalary float64 `json:"avgManagerSalary"`
	AbsenteeismRate  float64 `json:"absenteeismRate"`
}

// DefaultInputs returns the figures the calculator starts with.
func DefaultInputs() Inputs {
	return Inputs{
		Employees:        500,
		AvgSalary:        82160,
		TurnoverRate:     10.1,
		Managers:         50,
		AvgManagerSalary: 85280,
		AbsenteeismRate:  2.2,
	}
}

// Constants holds the fixed policy parameters behind the formulas.
type Constants struct {
	ParticipationRate           float64 // share of employees using the program
	TurnoverReplacementCost     float64 // replacement cost as a share of salary
	AbsenteeismDisruptionFactor float64
	GSTRate                     float64
	ProgramBaseCost             float64 // cost floor before GST
	ProgramCostPerEmployee      float64 // per-head rate before GST
	ManagerTimePerEmployee      float64 // hours per employee per year
	ProductivityImprovementRate float64

	TurnoverReduction    float64 // retained share of participating leavers
	AbsenteeismReduction float64 // avoided share of participant absence days
	ManagerTimeReduction float64 // avoided share of manager attention time
	WorkingDaysPerYear   float64
	WorkingHoursPerYear  float64
}

// DefaultConstants returns the industry benchmark parameters.
func DefaultConstants() Constants {
	return Constants{
		ParticipationRate:           0.40,
		TurnoverReplacementCost:     0.50,
		AbsenteeismDisruptionFactor: 1.3,
		GSTRate:                     0.10,
		ProgramBaseCost:             250000,
		ProgramCostPerEmployee:      500,
		ManagerTimePerEmployee:      2,
		ProductivityImprovementRate: 0.05,

		TurnoverReduction:    0.30,
		AbsenteeismReduction: 0.25,
		ManagerTimeReduction: 0.40,
		WorkingDaysPerYear:   250,
		WorkingHoursPerYear:  2000,
	}
}

// Results holds every derived figure. Money is in whole currency units,
// ROIPercent in whole percent.
type Results struct {
	TurnoverSavings    int64 `json:"turnoverSavings"`
	AbsenteeismSavings int64 `json:"absenteeismSavings"`
	ManagerTimeSavings int64 `json:"managerTimeSavings"`
	ProductivityGains  int64 `json:"productivityGains"`
	ProgramCost        int64 `json:"programCost"`
	TotalReturn        int64 `json:"totalReturn"`
	NetBenefit         int64 `json:"netBenefit"`
	ROIPercent         int64 `json:"roiPercent"`
}

// SavingsLine is one labelled component of the total return.
type SavingsLine struct {
	Label  string
	Amount int64
}

// Savings returns the four components of TotalReturn in display order.
func (r Results) Savings() []SavingsLine {
	return []SavingsLine{
		{"Turnover Savings", r.TurnoverSavings},
		{"Absenteeism Savings", r.AbsenteeismSavings},
		{"Manager Time Saved", r.ManagerTimeSavings},
		{"Productivity Gains", r.ProductivityGains},
	}
}
