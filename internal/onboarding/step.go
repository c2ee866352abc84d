package onboarding

import "fmt"

// Step is the wizard's position in its fixed four-stage sequence.
type Step int

const (
	StepIdentity Step = iota + 1 // name and ages
	StepFinances                 // balance and contribution
	StepRisk                     // risk tolerance
	StepGoals                    // financial goals
)

const (
	// FirstStep and LastStep bound every Step a Flow can report.
	FirstStep  = StepIdentity
	LastStep   = StepGoals
	TotalSteps = int(LastStep)
)

// Title returns the heading shown above the step.
func (s Step) Title() string {
	switch s {
	case StepIdentity:
		return "Let's get to know you"
	case StepFinances:
		return "Your Financial Situation"
	case StepRisk:
		return "Risk Tolerance"
	case StepGoals:
		return "Financial Goals"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Subtitle returns the one-line explanation under the heading.
func (s Step) Subtitle() string {
	switch s {
	case StepIdentity:
		return "Tell us about yourself to personalize your investment advice"
	case StepFinances:
		return "Help us understand your current superannuation position"
	case StepRisk:
		return "Choose your investment approach based on your comfort with market volatility"
	case StepGoals:
		return "Select all goals that align with your retirement vision"
	default:
		return ""
	}
}

// Percent is the progress shown for s, rounded to a whole percent.
func (s Step) Percent() int {
	return (int(s)*100 + TotalSteps/2) / TotalSteps
}

// NextLabel is the caption of the forward action on s.
func (s Step) NextLabel() string {
	if s == LastStep {
		return "Complete Setup"
	}
	return "Next"
}
