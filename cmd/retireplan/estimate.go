package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kingrea/retireplan/internal/onboarding"
	"github.com/kingrea/retireplan/internal/projection"
)

type estimateFlags struct {
	super         string
	contribution  string
	age           int
	retirementAge int
}

func newEstimateCmd() *cobra.Command {
	defaults := onboarding.DefaultForm()
	flags := &estimateFlags{}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the projected retirement balance without the wizard",
		Long: `Computes the same rough projection the wizard shows on step 2:

  current super + monthly contribution x 12 x years to retirement x 1.07

rounded to whole dollars. It does not compound.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.super, "super", defaults.CurrentSuper.String(), "Current superannuation balance")
	cmd.Flags().StringVar(&flags.contribution, "contribution", defaults.MonthlyContribution.String(), "Monthly contribution")
	cmd.Flags().IntVar(&flags.age, "age", defaults.Age, "Current age")
	cmd.Flags().IntVar(&flags.retirementAge, "retirement-age", defaults.RetirementAge, "Planned retirement age")
	return cmd
}

func runEstimate(cmd *cobra.Command, flags *estimateFlags) error {
	super, err := decimal.NewFromString(flags.super)
	if err != nil {
		return fmt.Errorf("--super: %w", err)
	}
	monthly, err := decimal.NewFromString(flags.contribution)
	if err != nil {
		return fmt.Errorf("--contribution: %w", err)
	}
	estimate := projection.Estimate(super, monthly, flags.age, flags.retirementAge)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Years to retirement: %d\n", projection.YearsToRetirement(flags.age, flags.retirementAge))
	fmt.Fprintf(out, "Projected retirement balance: %s\n", projection.FormatCurrency(estimate))
	fmt.Fprintln(out, projection.Caption)
	return nil
}
