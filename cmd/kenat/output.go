package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printDate(w io.Writer, info *almanac.DateInfo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Ethiopian:\t%s\t%d %s %d\n", info.Ethiopian, info.Ethiopian.Day, info.MonthName, info.Ethiopian.Year)
	fmt.Fprintf(tw, "Gregorian:\t%s\t%d %s %d\n", info.Gregorian, info.Gregorian.Day, info.GregorianMonth, info.Gregorian.Year)
	fmt.Fprintf(tw, "Hijri:\t%s\t\n", info.Hijri)
	fmt.Fprintf(tw, "Weekday:\t%s\t\n", info.Weekday)
	if len(info.Holidays) > 0 {
		fmt.Fprintf(tw, "Holidays:\t%s\t\n", strings.Join(info.Holidays, ", "))
	}
	return tw.Flush()
}

func printHolidays(w io.Writer, holidays []almanac.Holiday) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ETHIOPIAN\tGREGORIAN\tWEEKDAY\tKEY\tNAME")
	for _, h := range holidays {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", h.Ethiopian, h.Gregorian, h.Weekday, h.Key, h.Name)
	}
	return tw.Flush()
}

func printBahireHasab(w io.Writer, r *bahirehasab.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Year:\t%d\n", r.Year)
	fmt.Fprintf(tw, "Amete Alem:\t%d\n", r.AmeteAlem)
	fmt.Fprintf(tw, "Metene Rabiet:\t%d\n", r.MeteneRabiet)
	fmt.Fprintf(tw, "Evangelist:\t%s (%d)\n", r.Evangelist.Name, r.Evangelist.Remainder)
	fmt.Fprintf(tw, "New Year:\t%s (tinte qemer %d)\n", r.NewYear.DayName, r.NewYear.TinteQemer)
	fmt.Fprintf(tw, "Medeb:\t%d\n", r.Medeb)
	fmt.Fprintf(tw, "Wenber:\t%d\n", r.Wenber)
	fmt.Fprintf(tw, "Abektie:\t%d\n", r.Abektie)
	fmt.Fprintf(tw, "Metqi:\t%d\n", r.Metqi)
	fmt.Fprintf(tw, "Beale Metqi:\t%s %s\n", r.BealeMetqi.Date, r.BealeMetqi.Weekday)
	fmt.Fprintf(tw, "Tewsak:\t%d\n", r.Tewsak)
	fmt.Fprintf(tw, "Nineveh:\t%s\n", r.Nineveh)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return printFeasts(w, r.Feasts())
}

func printFeasts(w io.Writer, feasts []bahirehasab.Feast) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ETHIOPIAN\tGREGORIAN\tOFFSET\tKEY\tNAME")
	for _, f := range feasts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", f.Ethiopian, f.Gregorian, f.Offset, f.Key, f.Name)
	}
	return tw.Flush()
}
