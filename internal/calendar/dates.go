// Package calendar converts dates among the Ethiopian, Gregorian and tabular
// Hijri calendars and provides Ethiopian date arithmetic.
//
// Every function in this package is pure: it reads only its arguments and
// immutable tables, performs no I/O and keeps no state between calls.
package calendar

import (
	"fmt"
	"time"
)

// Supported window for Gregorian to Ethiopian conversion.
const (
	MinGregorianYear = 1900
	MaxGregorianYear = 2100
)

// Ethiopian month numbers.
const (
	Meskerem = 1
	Tikimt   = 2
	Hidar    = 3
	Tahsas   = 4
	Tir      = 5
	Yekatit  = 6
	Megabit  = 7
	Miazia   = 8
	Ginbot   = 9
	Sene     = 10
	Hamle    = 11
	Nehase   = 12
	Pagume   = 13
)

// EthiopianDate is a day in the Ethiopian calendar: twelve 30-day months
// followed by Pagume, which has 5 days (6 in a leap year).
type EthiopianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewEthiopianDate returns a validated EthiopianDate.
func NewEthiopianDate(year, month, day int) (EthiopianDate, error) {
	d := EthiopianDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return EthiopianDate{}, err
	}
	return d, nil
}

// Validate reports whether the month and day are within calendar bounds.
func (d EthiopianDate) Validate() error {
	if d.Month < 1 || d.Month > 13 || d.Day < 1 || d.Day > DaysInEthiopianMonth(d.Year, d.Month) {
		return invalidEthiopian(d.Year, d.Month, d.Day)
	}
	return nil
}

// Before reports whether d falls before other.
func (d EthiopianDate) Before(other EthiopianDate) bool {
	return d.ordinal() < other.ordinal()
}

// Equal reports whether d and other are the same day.
func (d EthiopianDate) Equal(other EthiopianDate) bool {
	return d == other
}

// String formats the date as yyyy-mm-dd.
func (d EthiopianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ordinal counts days from Meskerem 1 of year 1 (day 1).
func (d EthiopianDate) ordinal() int {
	return 365*(d.Year-1) + floorDiv(d.Year, 4) + (d.Month-1)*30 + d.Day
}

// IsEthiopianLeapYear reports whether Pagume has six days.
func IsEthiopianLeapYear(year int) bool {
	return floorMod(year, 4) == 3
}

// DaysInEthiopianMonth returns the length of an Ethiopian month.
// It returns 0 for a month outside 1..13.
func DaysInEthiopianMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 12:
		return 30
	case month == Pagume && IsEthiopianLeapYear(year):
		return 6
	case month == Pagume:
		return 5
	default:
		return 0
	}
}

// GregorianDate is a day in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGregorianDate returns a calendar-valid GregorianDate. It does not apply
// the 1900-2100 conversion window.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	if !isValidGregorian(year, month, day) {
		return GregorianDate{}, invalidGregorian(year, month, day)
	}
	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

// Time returns midnight UTC of the date.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (g GregorianDate) Weekday() time.Weekday {
	return weekdayOf(GregorianToJDN(g.Year, g.Month, g.Day))
}

// String formats the date as yyyy-mm-dd.
func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}

// IsGregorianLeapYear applies the 4/100/400 rule.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInGregorianMonth returns the length of a Gregorian month, or 0 for a
// month outside 1..12.
func DaysInGregorianMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isValidGregorian(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= DaysInGregorianMonth(year, month)
}

// HijriDate is a day in the tabular Islamic calendar.
type HijriDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as yyyy-mm-dd.
func (h HijriDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", h.Year, h.Month, h.Day)
}

// weekdayOf maps a Julian Day Number to a weekday, 0 = Sunday.
func weekdayOf(jdn int) time.Weekday {
	return time.Weekday(floorMod(jdn+1, 7))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
