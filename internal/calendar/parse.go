package calendar

import (
	"regexp"
	"strconv"
	"strings"
)

// datePattern accepts yyyy/mm/dd and yyyy-mm-dd; both separators must match.
var datePattern = regexp.MustCompile(`^(\d{1,4})([/-])(\d{1,2})([/-])(\d{1,2})$`)

// ParseEthiopianDate parses "yyyy/mm/dd" or "yyyy-mm-dd" as an Ethiopian date.
func ParseEthiopianDate(s string) (EthiopianDate, error) {
	y, m, d, err := splitDate(s)
	if err != nil {
		return EthiopianDate{}, err
	}
	return NewEthiopianDate(y, m, d)
}

// ParseGregorianDate parses "yyyy/mm/dd" or "yyyy-mm-dd" as a Gregorian date.
func ParseGregorianDate(s string) (GregorianDate, error) {
	y, m, d, err := splitDate(s)
	if err != nil {
		return GregorianDate{}, err
	}
	return NewGregorianDate(y, m, d)
}

func splitDate(s string) (year, month, day int, err error) {
	matches := datePattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(matches) != 6 || matches[2] != matches[4] {
		return 0, 0, 0, &DateFormatError{Input: s}
	}

	// The pattern only admits digits, so Atoi cannot fail.
	year, _ = strconv.Atoi(matches[1])
	month, _ = strconv.Atoi(matches[3])
	day, _ = strconv.Atoi(matches[5])
	return year, month, day, nil
}
