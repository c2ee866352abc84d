// Package projection computes the simplified retirement balance estimate shown
// while a user fills in the onboarding wizard.
//
// The estimate is linear: total contributions over the whole horizon are scaled
// by a single flat factor of 1.07 and added to the current balance. It does not
// compound. Inputs are not validated or clamped, so a retirement age at or below
// the current age yields a balance at or below the current one.
package projection

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Caption accompanies the projected figure in the UI.
const Caption = "Based on 7% average annual return"

var (
	returnFactor   = decimal.RequireFromString("1.07")
	monthsPerYear  = decimal.NewFromInt(12)
	roundingOffset = decimal.RequireFromString("0.5")
)

// Estimate returns round(currentSuper + monthlyContribution*12*(retirementAge-age)*1.07).
//
// Arithmetic is exact; the final rounding sends ties toward positive infinity.
func Estimate(currentSuper, monthlyContribution decimal.Decimal, age, retirementAge int) decimal.Decimal {
	horizon := decimal.NewFromInt(int64(YearsToRetirement(age, retirementAge)))
	growth := monthlyContribution.Mul(monthsPerYear).Mul(horizon).Mul(returnFactor)
	return roundHalfUp(currentSuper.Add(growth))
}

// YearsToRetirement is the horizon used by Estimate. It can be zero or negative.
func YearsToRetirement(age, retirementAge int) int {
	return retirementAge - age
}

func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(roundingOffset).Floor()
}

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a whole-dollar amount with thousands separators, e.g. "$274,700".
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + printer.Sprintf("%d", amount.IntPart())
}
