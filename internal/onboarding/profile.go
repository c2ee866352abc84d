package onboarding

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/kingrea/retireplan/internal/catalog"
)

// UserProfile is the finalized output of a completed flow. It is a value:
// the flow that produced it keeps no reference to its goal list.
type UserProfile struct {
	Name                string                `yaml:"name"`
	Age                 int                   `yaml:"age"`
	RetirementAge       int                   `yaml:"retirement_age"`
	CurrentSuper        decimal.Decimal       `yaml:"current_super"`
	MonthlyContribution decimal.Decimal       `yaml:"monthly_contribution"`
	RiskTolerance       catalog.RiskTolerance `yaml:"risk_tolerance"`
	FinancialGoals      []catalog.Goal        `yaml:"financial_goals"`
	Completed           bool                  `yaml:"completed"`
}

func newProfile(form WorkingForm) UserProfile {
	return UserProfile{
		Name:                form.Name,
		Age:                 form.Age,
		RetirementAge:       form.RetirementAge,
		CurrentSuper:        form.CurrentSuper,
		MonthlyContribution: form.MonthlyContribution,
		RiskTolerance:       form.RiskTolerance,
		FinancialGoals:      slices.Clone(form.FinancialGoals),
		Completed:           true,
	}
}

// Goals returns a copy of the selected goals in catalog order.
func (p UserProfile) Goals() []catalog.Goal {
	return slices.Clone(p.FinancialGoals)
}
