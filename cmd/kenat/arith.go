package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
)

const (
	unitDays   = "days"
	unitMonths = "months"
	unitYears  = "years"
)

func checkUnit(unit string) error {
	switch unit {
	case unitDays, unitMonths, unitYears:
		return nil
	default:
		return fmt.Errorf("unknown unit %q (want %s, %s or %s)", unit, unitDays, unitMonths, unitYears)
	}
}

func (a *app) addCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "add <yyyy-mm-dd> <n>",
		Short: "Add days, months or years to an Ethiopian date",
		Long: `Add n days, months or years to an Ethiopian date. n may be negative.

Months are the 13 months of the Ethiopian year; the day is clamped to the
length of the destination month. Pagume 6 becomes Pagume 5 when adding
years lands on a common year.`,
		Example: "  kenat add 2016-13-05 1\n  kenat add 2015-13-06 1 --unit years\n  kenat add --unit months 2016-01-30 -- -3",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkUnit(unit); err != nil {
				return err
			}
			date, err := calendar.ParseEthiopianDate(args[0])
			if err != nil {
				return err
			}
			n, err := calendar.ParseNumeric("add", "amount", args[1])
			if err != nil {
				return err
			}

			var result calendar.EthiopianDate
			switch unit {
			case unitDays:
				result, err = calendar.AddDays(date, n)
			case unitMonths:
				result, err = calendar.AddMonths(date, n)
			case unitYears:
				result, err = calendar.AddYears(date, n)
			}
			if err != nil {
				return err
			}

			return a.describe(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", unitDays, "unit of n (days, months, years)")
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:     "diff <yyyy-mm-dd> <yyyy-mm-dd>",
		Short:   "Count the days, months or years between two Ethiopian dates",
		Long:    "Count whole days, months or years from the second date to the first. The result is negative when the first date is earlier.",
		Example: "  kenat diff 2016-08-27 2016-01-01\n  kenat diff 2016-01-01 2000-01-01 --unit years",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkUnit(unit); err != nil {
				return err
			}
			first, err := calendar.ParseEthiopianDate(args[0])
			if err != nil {
				return err
			}
			second, err := calendar.ParseEthiopianDate(args[1])
			if err != nil {
				return err
			}

			var n int
			switch unit {
			case unitDays:
				n, err = calendar.DiffInDays(first, second)
			case unitMonths:
				n, err = calendar.DiffInMonths(first, second)
			case unitYears:
				n, err = calendar.DiffInYears(first, second)
			}
			if err != nil {
				return err
			}

			if a.json() {
				return writeJSON(out(cmd), map[string]any{"from": second, "to": first, "unit": unit, "difference": n})
			}
			_, err = fmt.Fprintf(out(cmd), "%d %s\n", n, unit)
			return err
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", unitDays, "unit of the result (days, months, years)")
	return cmd
}
