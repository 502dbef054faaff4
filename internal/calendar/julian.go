package calendar

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian date.
//
// January and February are treated as months 13 and 14 of the prior year.
// The factors 365.25 and 30.6001 are applied as exact integer ratios so the
// result never drifts with floating point rounding.
func GregorianToJDN(year, month, day int) int {
	if month < 3 {
		year--
		month += 12
	}

	a := floorDiv(year, 100)
	b := floorDiv(a, 4)
	c := 2 - a + b
	e := floorDiv(36525*(year+4716), 100)
	f := floorDiv(306001*(month+1), 10000)

	return c + day + e + f - 1524
}

// JDNToGregorian inverts GregorianToJDN by back-substitution.
func JDNToGregorian(jdn int) GregorianDate {
	// alpha = floor((jdn - 1867216.25) / 36524.25)
	alpha := floorDiv(4*jdn-7468865, 146097)
	a := jdn + 1 + alpha - floorDiv(alpha, 4)
	b := a + 1524
	// c = floor((b - 122.1) / 365.25)
	c := floorDiv(20*b-2442, 7305)
	d := floorDiv(36525*c, 100)
	e := floorDiv(10000*(b-d), 306001)

	day := b - d - floorDiv(306001*e, 10000)
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4715
	if month > 2 {
		year = c - 4716
	}

	return GregorianDate{Year: year, Month: month, Day: day}
}
