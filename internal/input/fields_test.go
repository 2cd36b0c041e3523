package input

import (
	"errors"
	"testing"

	"github.com/theirongolddev/finroi/internal/model"
)

func TestFieldByID(t *testing.T) {
	for _, f := range All() {
		got, err := FieldByID(f.ID())
		if err != nil {
			t.Fatalf("FieldByID(%q) error: %v", f.ID(), err)
		}
		if got != f {
			t.Fatalf("FieldByID(%q) = %v, want %v", f.ID(), got, f)
		}
	}

	if f, err := FieldByID("avg-manager-salary"); err != nil || f != AvgManagerSalary {
		t.Fatalf("FieldByID(avg-manager-salary) = %v, %v", f, err)
	}

	if _, err := FieldByID("headcount"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("FieldByID(headcount) err = %v, want ErrUnknownField", err)
	}
}

func TestParseAssignment(t *testing.T) {
	f, v, err := ParseAssignment("avgSalary=$95,000")
	if err != nil {
		t.Fatalf("ParseAssignment error: %v", err)
	}
	if f != AvgSalary || v != 95000 {
		t.Fatalf("ParseAssignment = %v, %v; want avgSalary, 95000", f, v)
	}

	if _, _, err := ParseAssignment("employees"); err == nil {
		t.Fatal("ParseAssignment without '=' should fail")
	}
	if _, _, err := ParseAssignment("bogus=1"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("ParseAssignment(bogus=1) err = %v, want ErrUnknownField", err)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	var in model.Inputs
	for i, f := range All() {
		Set(&in, f, float64(i+1))
	}
	for i, f := range All() {
		if got := Get(in, f); got != float64(i+1) {
			t.Errorf("Get(%v) = %v, want %v", f, got, i+1)
		}
	}

	defaults := model.DefaultInputs()
	if Get(defaults, TurnoverRate) != 10.1 || Get(defaults, Managers) != 50 {
		t.Fatalf("Get on defaults returned wrong fields")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		f    Field
		v    float64
		want string
	}{
		{AvgSalary, 82160, "82,160"},
		{AvgManagerSalary, 1234567.6, "1,234,568"},
		{TurnoverRate, 10.1, "10.1"},
		{AbsenteeismRate, 2, "2.0"},
		{Employees, 499.6, "500"},
		{Managers, 50, "50"},
		{AvgSalary, -1234.4, "-1,234"},
		{Employees, -0.4, "0"},
		{AvgSalary, 1e20, "100,000,000,000,000,000,000"},
		{Employees, 1e19, "10000000000000000000"},
	}
	for _, tt := range tests {
		if got := Format(tt.f, tt.v); got != tt.want {
			t.Errorf("Format(%v, %v) = %q, want %q", tt.f, tt.v, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		f    Field
		raw  string
		want string
	}{
		{AvgSalary, "82160", "82,160"},
		{AvgSalary, "$8,2160a", "82,160"},
		{AvgSalary, "abc", ""},
		{AvgSalary, "000", "0"},
		{AvgSalary, "0012345", "12,345"},
		{TurnoverRate, "10.15", "10.1"},
		{TurnoverRate, "1.2.3", "1.2"},
		{TurnoverRate, "12%", "12"},
		{TurnoverRate, "3.", "3."},
		{AbsenteeismRate, "x2.25y", "2.2"},
		{Employees, "1,000", "1,000"},
	}
	for _, tt := range tests {
		if got := Mask(tt.f, tt.raw); got != tt.want {
			t.Errorf("Mask(%v, %q) = %q, want %q", tt.f, tt.raw, got, tt.want)
		}
	}
}
