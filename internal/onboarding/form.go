package onboarding

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kingrea/retireplan/internal/catalog"
)

var (
	// ErrMalformedNumber is returned when non-numeric text is entered into a
	// numeric field. The field keeps its previous value.
	ErrMalformedNumber = errors.New("onboarding: malformed number")
	// ErrUnknownField indicates SetField was called with a field it does not own.
	ErrUnknownField = errors.New("onboarding: unknown field")
)

// Field names one scalar attribute of WorkingForm.
type Field string

const (
	FieldName                Field = "name"
	FieldAge                 Field = "age"
	FieldRetirementAge       Field = "retirementAge"
	FieldCurrentSuper        Field = "currentSuper"
	FieldMonthlyContribution Field = "monthlyContribution"
)

// Numeric reports whether f holds a number rather than free text.
func (f Field) Numeric() bool {
	return f != FieldName
}

// WorkingForm is the in-progress onboarding data. Ages and money are not
// range-checked: negative values and RetirementAge <= Age are stored as given.
type WorkingForm struct {
	Name                string
	Age                 int
	RetirementAge       int
	CurrentSuper        decimal.Decimal
	MonthlyContribution decimal.Decimal
	RiskTolerance       catalog.RiskTolerance
	// FinancialGoals is kept in catalog order without duplicates.
	FinancialGoals []catalog.Goal
}

// DefaultForm is the form a fresh flow starts with.
func DefaultForm() WorkingForm {
	return WorkingForm{
		Age:                 30,
		RetirementAge:       65,
		CurrentSuper:        decimal.NewFromInt(50000),
		MonthlyContribution: decimal.NewFromInt(500),
		RiskTolerance:       catalog.DefaultRisk,
	}
}

// Clone returns a copy that shares no slices with f.
func (f WorkingForm) Clone() WorkingForm {
	out := f
	out.FinancialGoals = slices.Clone(f.FinancialGoals)
	return out
}

// HasGoal reports whether g is selected.
func (f WorkingForm) HasGoal(g catalog.Goal) bool {
	return slices.Contains(f.FinancialGoals, g)
}

// FieldText renders the current value of field the way an input would show it.
func (f WorkingForm) FieldText(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldAge:
		return strconv.Itoa(f.Age)
	case FieldRetirementAge:
		return strconv.Itoa(f.RetirementAge)
	case FieldCurrentSuper:
		return f.CurrentSuper.String()
	case FieldMonthlyContribution:
		return f.MonthlyContribution.String()
	default:
		return ""
	}
}

// assign parses raw for field and writes only that attribute.
func (f *WorkingForm) assign(field Field, raw string) error {
	switch field {
	case FieldName:
		f.Name = raw
	case FieldAge:
		n, err := parseWhole(field, raw)
		if err != nil {
			return err
		}
		f.Age = n
	case FieldRetirementAge:
		n, err := parseWhole(field, raw)
		if err != nil {
			return err
		}
		f.RetirementAge = n
	case FieldCurrentSuper:
		d, err := parseMoney(field, raw)
		if err != nil {
			return err
		}
		f.CurrentSuper = d
	case FieldMonthlyContribution:
		d, err := parseMoney(field, raw)
		if err != nil {
			return err
		}
		f.MonthlyContribution = d
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}

// toggle adds g when absent and removes it when present.
func (f *WorkingForm) toggle(g catalog.Goal) {
	if idx := slices.Index(f.FinancialGoals, g); idx >= 0 {
		f.FinancialGoals = slices.Delete(f.FinancialGoals, idx, idx+1)
		return
	}
	goals := append(f.FinancialGoals, g)
	slices.SortFunc(goals, func(a, b catalog.Goal) int {
		return catalog.GoalIndex(a) - catalog.GoalIndex(b)
	})
	f.FinancialGoals = goals
}

func parseWhole(field Field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedNumber, field, raw)
	}
	return n, nil
}

// parseMoney accepts an optional leading "$" and comma group separators.
func parseMoney(field Field, raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "$")
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is empty", ErrMalformedNumber, field)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q", ErrMalformedNumber, field, raw)
	}
	return d, nil
}
