package estimate

import (
	"github.com/theirongolddev/finroi/internal/input"
	"github.com/theirongolddev/finroi/internal/model"
)

// Calculator owns the one mutable Inputs record of an editing session and
// keeps Results in step with it. Every edit triggers a full recomputation.
// It is not safe for concurrent use.
type Calculator struct {
	constants model.Constants
	inputs    model.Inputs
	results   model.Results
}

// NewCalculator starts a session from initial and computes its Results.
func NewCalculator(initial model.Inputs) *Calculator {
	return NewCalculatorWith(initial, model.DefaultConstants())
}

// NewCalculatorWith is NewCalculator with explicit constants.
func NewCalculatorWith(initial model.Inputs, c model.Constants) *Calculator {
	calc := &Calculator{constants: c, inputs: initial}
	calc.recompute()
	return calc
}

// Update coerces raw into field f, recomputes, and returns the new Results.
func (c *Calculator) Update(f input.Field, raw string) model.Results {
	return c.SetValue(f, input.Parse(raw))
}

// SetValue stores an already numeric value into field f and recomputes.
func (c *Calculator) SetValue(f input.Field, v float64) model.Results {
	input.Set(&c.inputs, f, v)
	c.recompute()
	return c.results
}

// Reset restores in and recomputes.
func (c *Calculator) Reset(in model.Inputs) model.Results {
	c.inputs = in
	c.recompute()
	return c.results
}

// Inputs returns a copy of the current inputs.
func (c *Calculator) Inputs() model.Inputs { return c.inputs }

// Results returns the Results for the current inputs.
func (c *Calculator) Results() model.Results { return c.results }

// Value returns the current numeric value of field f.
func (c *Calculator) Value(f input.Field) float64 { return input.Get(c.inputs, f) }

func (c *Calculator) recompute() {
	c.results = ComputeWith(c.inputs, c.constants)
}
