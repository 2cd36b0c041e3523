package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/finroi/internal/cli"
	"github.com/theirongolddev/finroi/internal/model"
)

// ErrUnknownField is returned when a field id does not name an input.
var ErrUnknownField = errors.New("unknown input field")

// Kind decides how a field is masked and displayed.
type Kind int

const (
	KindCount Kind = iota
	KindMoney
	KindRate
)

// Field identifies one of the six editable inputs.
type Field int

const (
	Employees Field = iota
	AvgSalary
	TurnoverRate
	Managers
	AvgManagerSalary
	AbsenteeismRate
	fieldCount // sentinel
)

// NumFields is the number of editable inputs.
const NumFields = int(fieldCount)

type fieldInfo struct {
	id    string
	label string
	kind  Kind
}

var fieldTable = [fieldCount]fieldInfo{
	Employees:        {"employees", "Number of employees", KindCount},
	AvgSalary:        {"avgSalary", "Average salary", KindMoney},
	TurnoverRate:     {"turnoverRate", "Turnover rate (%)", KindRate},
	Managers:         {"managers", "Number of managers", KindCount},
	AvgManagerSalary: {"avgManagerSalary", "Average manager salary", KindMoney},
	AbsenteeismRate:  {"absenteeismRate", "Absenteeism rate (%)", KindRate},
}

// All returns every field in form order.
func All() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// ID is the stable identifier used by flags and JSON.
func (f Field) ID() string { return f.info().id }

// Label is the human-readable name.
func (f Field) Label() string { return f.info().label }

// Kind reports how the field is masked and formatted.
func (f Field) Kind() Kind { return f.info().kind }

func (f Field) String() string { return f.ID() }

func (f Field) info() fieldInfo {
	if f < 0 || f >= fieldCount {
		return fieldInfo{id: "unknown", label: "Unknown"}
	}
	return fieldTable[f]
}

// FieldByID resolves an id such as "avgSalary". Matching ignores case,
// dashes, and underscores, so "avg-salary" works as a flag value.
func FieldByID(id string) (Field, error) {
	want := normalizeID(id)
	for _, f := range All() {
		if normalizeID(f.ID()) == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, id)
}

func normalizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// ParseAssignment splits "field=value" and coerces the value with Parse.
func ParseAssignment(s string) (Field, float64, error) {
	id, raw, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("expected field=value, got %q", s)
	}
	f, err := FieldByID(id)
	if err != nil {
		return 0, 0, err
	}
	return f, Parse(raw), nil
}

// Get reads one field from in.
func Get(in model.Inputs, f Field) float64 {
	switch f {
	case Employees:
		return in.Employees
	case AvgSalary:
		return in.AvgSalary
	case TurnoverRate:
		return in.TurnoverRate
	case Managers:
		return in.Managers
	case AvgManagerSalary:
		return in.AvgManagerSalary
	case AbsenteeismRate:
		return in.AbsenteeismRate
	}
	return 0
}

// Set writes v into one field of in.
func Set(in *model.Inputs, f Field, v float64) {
	switch f {
	case Employees:
		in.Employees = v
	case AvgSalary:
		in.AvgSalary = v
	case TurnoverRate:
		in.TurnoverRate = v
	case Managers:
		in.Managers = v
	case AvgManagerSalary:
		in.AvgManagerSalary = v
	case AbsenteeismRate:
		in.AbsenteeismRate = v
	}
}

// Format renders v the way a field shows once the user leaves it:
// money grouped, rates to one decimal, counts as whole numbers.
func Format(f Field, v float64) string {
	switch f.Kind() {
	case KindMoney:
		whole := wholeNumber(v)
		if rest, ok := strings.CutPrefix(whole, "-"); ok {
			return "-" + cli.GroupDigits(rest)
		}
		return cli.GroupDigits(whole)
	case KindRate:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return wholeNumber(v)
	}
}

// wholeNumber rounds v and prints every digit, however large.
func wholeNumber(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// Mask filters text while it is typed. Money keeps digits only and is
// regrouped with thousands separators. Rates keep digits and a single
// point with at most one decimal. Counts pass through.
func Mask(f Field, raw string) string {
	switch f.Kind() {
	case KindMoney:
		return maskMoney(raw)
	case KindRate:
		return maskRate(raw)
	default:
		return raw
	}
}

func maskMoney(raw string) string {
	digits := keep(raw, func(r rune) bool { return r >= '0' && r <= '9' })
	if digits == "" {
		return ""
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return cli.GroupDigits(digits)
}

func maskRate(raw string) string {
	value := keep(raw, func(r rune) bool { return (r >= '0' && r <= '9') || r == '.' })
	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		value = parts[0] + "." + parts[1]
	}
	if len(parts) > 1 && len(parts[1]) > 1 {
		value = parts[0] + "." + parts[1][:1]
	}
	return value
}

func keep(s string, ok func(rune) bool) string {
	var b strings.Builder
	for _, r := range s {
		if ok(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
