// internal/catalog/catalog.go
//
// Static option data offered by the onboarding wizard. Nothing here changes at
// runtime; the order of each list is the order the wizard displays it in.

package catalog

import (
	"fmt"
	"strings"
)

// RiskTolerance is the investment approach a user picks on step 3.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskBalanced     RiskTolerance = "balanced"
	RiskGrowth       RiskTolerance = "growth"
	RiskAggressive   RiskTolerance = "aggressive"
)

// DefaultRisk is preselected when a flow starts.
const DefaultRisk = RiskBalanced

// RiskOption describes one selectable risk card.
type RiskOption struct {
	Value       RiskTolerance
	Label       string
	Description string
}

var riskOptions = [...]RiskOption{
	{Value: RiskConservative, Label: "Conservative", Description: "Steady growth, lower risk"},
	{Value: RiskBalanced, Label: "Balanced", Description: "Mix of growth and stability"},
	{Value: RiskGrowth, Label: "Growth", Description: "Higher potential returns"},
	{Value: RiskAggressive, Label: "Aggressive", Description: "Maximum growth potential"},
}

// Goal is one label from the fixed financial goal list.
type Goal string

const (
	GoalMaximizeSavings Goal = "Maximize retirement savings"
	GoalSteadyIncome    Goal = "Generate steady income"
	GoalInheritance     Goal = "Leave an inheritance"
	GoalBuyProperty     Goal = "Buy property before retirement"
	GoalEarlyRetirement Goal = "Early retirement"
	GoalTravel          Goal = "Travel and lifestyle goals"
)

var goalOptions = [...]Goal{
	GoalMaximizeSavings,
	GoalSteadyIncome,
	GoalInheritance,
	GoalBuyProperty,
	GoalEarlyRetirement,
	GoalTravel,
}

// RiskOptions returns the risk cards in display order.
func RiskOptions() []RiskOption {
	out := make([]RiskOption, len(riskOptions))
	copy(out, riskOptions[:])
	return out
}

// Goals returns the goal labels in display order.
func Goals() []Goal {
	out := make([]Goal, len(goalOptions))
	copy(out, goalOptions[:])
	return out
}

// Valid reports whether r is one of the four known values.
func (r RiskTolerance) Valid() bool {
	return RiskIndex(r) >= 0
}

// Option returns the card metadata for r.
func (r RiskTolerance) Option() (RiskOption, bool) {
	idx := RiskIndex(r)
	if idx < 0 {
		return RiskOption{}, false
	}
	return riskOptions[idx], true
}

// RiskIndex returns the display position of r, or -1.
func RiskIndex(r RiskTolerance) int {
	for i, opt := range riskOptions {
		if opt.Value == r {
			return i
		}
	}
	return -1
}

// ParseRisk accepts a risk value case-insensitively.
func ParseRisk(value string) (RiskTolerance, error) {
	r := RiskTolerance(strings.ToLower(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", fmt.Errorf("catalog: unknown risk tolerance %q", value)
	}
	return r, nil
}

// GoalIndex returns the display position of g, or -1 when g is not a catalog label.
func GoalIndex(g Goal) int {
	for i, candidate := range goalOptions {
		if candidate == g {
			return i
		}
	}
	return -1
}

// Known reports whether g is a catalog label.
func (g Goal) Known() bool {
	return GoalIndex(g) >= 0
}
