package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/ics"
)

func (a *app) bahireHasabCmd() *cobra.Command {
	var feast string

	cmd := &cobra.Command{
		Use:     "bahire-hasab <year>",
		Aliases: []string{"hasab"},
		Short:   "Compute the Bahire Hasab and movable feasts of an Ethiopian year",
		Example: "  kenat bahire-hasab 2016\n  kenat bahire-hasab 2016 --feast fasika",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := calendar.ParseNumeric("bahireHasab", "year", args[0])
			if err != nil {
				return err
			}

			engine := a.almanac.Engine()
			if feast != "" {
				f, err := engine.Feast(feast, year, a.lang)
				if err != nil {
					return err
				}
				if a.json() {
					return writeJSON(out(cmd), f)
				}
				_, err = fmt.Fprintf(out(cmd), "%s: %s (%s)\n", f.Name, f.Ethiopian, f.Gregorian)
				return err
			}

			result, err := engine.Compute(year, a.lang)
			if err != nil {
				return err
			}
			if a.json() {
				return writeJSON(out(cmd), result)
			}
			return printBahireHasab(out(cmd), result)
		},
	}

	cmd.Flags().StringVar(&feast, "feast", "", "show a single movable feast, e.g. fasika")
	return cmd
}

func (a *app) holidaysCmd() *cobra.Command {
	var tags string

	cmd := &cobra.Command{
		Use:     "holidays <year> [month]",
		Short:   "List the holidays of an Ethiopian year or month",
		Example: "  kenat holidays 2016\n  kenat holidays 2016 8 --tags public",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := calendar.ParseNumeric("getHolidays", "year", args[0])
			if err != nil {
				return err
			}
			filter, err := holiday.ParseTags(tags)
			if err != nil {
				return err
			}

			var list []almanac.Holiday
			if len(args) == 2 {
				month, err := calendar.ParseNumeric("getHolidaysInMonth", "month", args[1])
				if err != nil {
					return err
				}
				list, err = a.almanac.HolidaysInMonth(year, month, a.lang, filter...)
				if err != nil {
					return err
				}
			} else {
				list, err = a.almanac.HolidaysForYear(year, a.lang, filter...)
				if err != nil {
					return err
				}
			}

			if a.json() {
				return writeJSON(out(cmd), list)
			}
			if len(list) == 0 {
				_, err := fmt.Fprintln(out(cmd), "No holidays.")
				return err
			}
			return printHolidays(out(cmd), list)
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags to keep (public, christian, muslim, ...)")
	return cmd
}

func (a *app) icsCmd() *cobra.Command {
	var (
		tags   string
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:     "ics <year>",
		Short:   "Export the holidays of an Ethiopian year as iCalendar",
		Example: "  kenat ics 2016 --out holidays.ics\n  kenat ics 2016 --tags public --lang en",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := calendar.ParseNumeric("calendar", "year", args[0])
			if err != nil {
				return err
			}
			filter, err := holiday.ParseTags(tags)
			if err != nil {
				return err
			}

			list, err := a.almanac.HolidaysForYear(year, a.lang, filter...)
			if err != nil {
				return err
			}

			opts := ics.Options{Name: name, Now: a.now()}
			if opts.Name == "" {
				opts.Name = fmt.Sprintf("Ethiopian holidays %d", year)
			}

			if output == "" || output == "-" {
				return ics.Encode(out(cmd), list, opts)
			}

			data, err := ics.Marshal(list, opts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d holidays to %s\n", len(list), output)
			return err
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags to keep")
	cmd.Flags().StringVar(&output, "out", "", "output file (default is stdout)")
	cmd.Flags().StringVar(&name, "name", "", "calendar name shown by clients")
	return cmd
}
