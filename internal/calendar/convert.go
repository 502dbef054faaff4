package calendar

import "time"

// NewYearOf returns the Gregorian date of Meskerem 1 of an Ethiopian year:
// September 11 of year+7, or September 12 when year+8 is a Gregorian leap year.
func NewYearOf(year int) GregorianDate {
	gy := year + 7
	day := 11
	if IsGregorianLeapYear(gy + 1) {
		day = 12
	}
	return GregorianDate{Year: gy, Month: 9, Day: day}
}

func newYearJDN(year int) int {
	ny := NewYearOf(year)
	return GregorianToJDN(ny.Year, ny.Month, ny.Day)
}

// ToGregorian converts an Ethiopian date to the Gregorian calendar.
func ToGregorian(year, month, day int) (GregorianDate, error) {
	if err := (EthiopianDate{Year: year, Month: month, Day: day}).Validate(); err != nil {
		return GregorianDate{}, err
	}

	elapsed := (month-1)*30 + (day - 1)
	return JDNToGregorian(newYearJDN(year) + elapsed), nil
}

// ToEthiopian converts a Gregorian date between 1900-01-01 and 2100-12-31 to
// the Ethiopian calendar.
func ToEthiopian(year, month, day int) (EthiopianDate, error) {
	if !isValidGregorian(year, month, day) || year < MinGregorianYear || year > MaxGregorianYear {
		return EthiopianDate{}, invalidGregorian(year, month, day)
	}

	jdn := GregorianToJDN(year, month, day)

	ey := year - 8
	if jdn >= newYearJDN(ey+1) {
		ey++
	}

	offset := jdn - newYearJDN(ey)
	return EthiopianDate{
		Year:  ey,
		Month: offset/30 + 1,
		Day:   offset%30 + 1,
	}, nil
}

// Gregorian converts d to the Gregorian calendar.
func (d EthiopianDate) Gregorian() (GregorianDate, error) {
	return ToGregorian(d.Year, d.Month, d.Day)
}

// Weekday returns the day of the week of an Ethiopian date.
func Weekday(d EthiopianDate) (time.Weekday, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return weekdayOf(newYearJDN(d.Year) + (d.Month-1)*30 + d.Day - 1), nil
}
