package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
)

const dateArgsUsage = "<yyyy-mm-dd> | <year> <month> <day>"

// dateArgs accepts a date as one yyyy-mm-dd argument or as three numbers.
func dateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("%s expects a date as %s", cmd.Name(), dateArgsUsage)
	}
	return nil
}

// ethiopianArg reads an Ethiopian date given as one argument or three.
func ethiopianArg(fn string, args []string) (calendar.EthiopianDate, error) {
	if len(args) == 1 {
		return calendar.ParseEthiopianDate(args[0])
	}
	y, m, d, err := numericArgs(fn, args)
	if err != nil {
		return calendar.EthiopianDate{}, err
	}
	return calendar.NewEthiopianDate(y, m, d)
}

func numericArgs(fn string, args []string) (y, m, d int, err error) {
	if y, err = calendar.ParseNumeric(fn, "year", args[0]); err != nil {
		return
	}
	if m, err = calendar.ParseNumeric(fn, "month", args[1]); err != nil {
		return
	}
	d, err = calendar.ParseNumeric(fn, "day", args[2])
	return
}

func (a *app) describe(cmd *cobra.Command, date calendar.EthiopianDate) error {
	info, err := a.almanac.Date(date, a.lang)
	if err != nil {
		return err
	}
	if a.json() {
		return writeJSON(out(cmd), info)
	}
	return printDate(out(cmd), info)
}

func (a *app) toGregorianCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-gregorian " + dateArgsUsage,
		Aliases: []string{"gc"},
		Short:   "Convert an Ethiopian date to Gregorian",
		Example: "  kenat to-gregorian 2016-01-01\n  kenat to-gregorian 2016 13 5",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := ethiopianArg("toGregorian", args)
			if err != nil {
				return err
			}
			return a.describe(cmd, date)
		},
	}
}

func (a *app) toEthiopianCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-ethiopian " + dateArgsUsage,
		Aliases: []string{"ec"},
		Short:   "Convert a Gregorian date to Ethiopian",
		Example: "  kenat to-ethiopian 2024-05-05",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var greg calendar.GregorianDate
			if len(args) == 1 {
				g, err := calendar.ParseGregorianDate(args[0])
				if err != nil {
					return err
				}
				greg = g
			} else {
				y, m, d, err := numericArgs("toEthiopian", args)
				if err != nil {
					return err
				}
				greg = calendar.GregorianDate{Year: y, Month: m, Day: d}
			}

			date, err := calendar.ToEthiopian(greg.Year, greg.Month, greg.Day)
			if err != nil {
				return err
			}
			return a.describe(cmd, date)
		},
	}
}

func (a *app) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's date in all calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			date, err := calendar.ToEthiopian(now.Year(), int(now.Month()), now.Day())
			if err != nil {
				return err
			}
			return a.describe(cmd, date)
		},
	}
}

func (a *app) hijriCmd() *cobra.Command {
	var (
		reverse bool
		year    int
	)

	cmd := &cobra.Command{
		Use:   "hijri " + dateArgsUsage,
		Short: "Convert a Gregorian date to the Hijri calendar, or back with --reverse",
		Long: `Convert a Gregorian date to the tabular Hijri calendar.

With --reverse the arguments are a Hijri date and the command finds the
day it falls on within the Gregorian year given by --year.`,
		Example: "  kenat hijri 2024-05-05\n  kenat hijri --reverse --year 2024 1445 10 1",
		Args:    dateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reverse {
				return a.fromHijri(cmd, args, year)
			}

			var greg calendar.GregorianDate
			if len(args) == 1 {
				g, err := calendar.ParseGregorianDate(args[0])
				if err != nil {
					return err
				}
				greg = g
			} else {
				y, m, d, err := numericArgs("toHijri", args)
				if err != nil {
					return err
				}
				greg = calendar.GregorianDate{Year: y, Month: m, Day: d}
			}

			hijri, err := calendar.GregorianToHijri(greg.Year, greg.Month, greg.Day)
			if err != nil {
				return err
			}
			if a.json() {
				return writeJSON(out(cmd), map[string]any{"gregorian": greg, "hijri": hijri})
			}
			_, err = fmt.Fprintf(out(cmd), "%s -> %s\n", greg, hijri)
			return err
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "convert a Hijri date to Gregorian")
	cmd.Flags().IntVar(&year, "year", 0, "Gregorian year to search with --reverse (default is the current year)")
	return cmd
}

func (a *app) fromHijri(cmd *cobra.Command, args []string, year int) error {
	if len(args) != 3 {
		return fmt.Errorf("hijri --reverse expects <year> <month> <day>")
	}
	hy, hm, hd, err := numericArgs("fromHijri", args)
	if err != nil {
		return err
	}
	if year == 0 {
		year = a.now().Year()
	}

	hijri := calendar.HijriDate{Year: hy, Month: hm, Day: hd}
	greg, ok := calendar.HijriToGregorian(hy, hm, hd, year)
	if a.json() {
		resp := map[string]any{"hijri": hijri, "year": year, "found": ok}
		if ok {
			resp["gregorian"] = greg
		}
		return writeJSON(out(cmd), resp)
	}
	if !ok {
		_, err = fmt.Fprintf(out(cmd), "%s does not fall in %d\n", hijri, year)
		return err
	}
	_, err = fmt.Fprintf(out(cmd), "%s -> %s\n", hijri, greg)
	return err
}
