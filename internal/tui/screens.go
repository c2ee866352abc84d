package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/kingrea/retireplan/internal/catalog"
	"github.com/kingrea/retireplan/internal/config"
	"github.com/kingrea/retireplan/internal/onboarding"
	"github.com/kingrea/retireplan/internal/projection"
	"github.com/kingrea/retireplan/internal/router"
)

// screenMarkdown builds the document for a profile-consuming view. These
// screens only render the data they are given.
func screenMarkdown(view router.View, profile *onboarding.UserProfile) string {
	switch view {
	case router.ViewDashboard:
		return dashboardMarkdown(profile)
	case router.ViewChat:
		return chatMarkdown(profile)
	case router.ViewEducation:
		return educationMarkdown()
	default:
		return ""
	}
}

func dashboardMarkdown(p *onboarding.UserProfile) string {
	if p == nil {
		return "# Dashboard\n\nFinish onboarding to see your dashboard.\n"
	}
	estimate := projection.Estimate(p.CurrentSuper, p.MonthlyContribution, p.Age, p.RetirementAge)
	var b strings.Builder
	fmt.Fprintf(&b, "# Welcome, %s\n\n", p.Name)
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Current age | %d |\n", p.Age)
	fmt.Fprintf(&b, "| Planned retirement age | %d |\n", p.RetirementAge)
	fmt.Fprintf(&b, "| Years to retirement | %d |\n", projection.YearsToRetirement(p.Age, p.RetirementAge))
	fmt.Fprintf(&b, "| Current super | %s |\n", projection.FormatCurrency(p.CurrentSuper.Round(0)))
	fmt.Fprintf(&b, "| Monthly contribution | %s |\n", projection.FormatCurrency(p.MonthlyContribution.Round(0)))
	fmt.Fprintf(&b, "| Risk tolerance | %s |\n", riskLabel(p.RiskTolerance))
	fmt.Fprintf(&b, "\n## Projected retirement balance\n\n**%s**\n\n_%s_\n", projection.FormatCurrency(estimate), projection.Caption)
	b.WriteString("\n## Goals\n\n")
	if len(p.FinancialGoals) == 0 {
		b.WriteString("No goals selected.\n")
	}
	for _, g := range p.FinancialGoals {
		fmt.Fprintf(&b, "- %s\n", g)
	}
	return b.String()
}

func chatMarkdown(p *onboarding.UserProfile) string {
	var b strings.Builder
	b.WriteString("# Advisor Chat\n\n")
	b.WriteString("The advisory chat service is not connected in this build. ")
	b.WriteString("When it is, the advisor receives the following context:\n\n")
	if p == nil {
		b.WriteString("_No profile yet._\n")
		return b.String()
	}
	fmt.Fprintf(&b, "- **Name:** %s\n", p.Name)
	fmt.Fprintf(&b, "- **Age:** %d, retiring at %d\n", p.Age, p.RetirementAge)
	fmt.Fprintf(&b, "- **Risk tolerance:** %s\n", riskLabel(p.RiskTolerance))
	goals := make([]string, 0, len(p.FinancialGoals))
	for _, g := range p.FinancialGoals {
		goals = append(goals, string(g))
	}
	if len(goals) == 0 {
		goals = append(goals, "none")
	}
	fmt.Fprintf(&b, "- **Goals:** %s\n", strings.Join(goals, "; "))
	return b.String()
}

func educationMarkdown() string {
	var b strings.Builder
	b.WriteString("# Learn\n\n")
	b.WriteString("## How the projection works\n\n")
	b.WriteString("The onboarding estimate adds your yearly contributions over every year until retirement, ")
	b.WriteString("scales that total by 7%, and adds your current balance. It does not compound and ")
	b.WriteString("ignores fees, tax and inflation, so treat it as a rough guide.\n\n")
	b.WriteString("## Risk profiles\n\n")
	for _, opt := range catalog.RiskOptions() {
		fmt.Fprintf(&b, "- **%s:** %s\n", opt.Label, opt.Description)
	}
	return b.String()
}

func riskLabel(r catalog.RiskTolerance) string {
	if opt, ok := r.Option(); ok {
		return opt.Label
	}
	return string(r)
}

// newRenderer builds a glamour renderer for the configured theme.
func newRenderer(theme string, width int) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	switch theme {
	case config.ThemeDark:
		styleOpt = glamour.WithStandardStyle("dark")
	case config.ThemeLight:
		styleOpt = glamour.WithStandardStyle("light")
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(max(20, width-4)))
}
