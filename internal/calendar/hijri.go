package calendar

// hijriEpoch is the Julian Day Number of the day before 1 Muharram 1 AH
// (Julian 16 July 622), i.e. the floored astronomical epoch JD 1948439.5.
const hijriEpoch = 1948439

// hijriSearchDays bounds the Hijri to Gregorian scan: two Gregorian years
// starting on January 1 of the year before the target.
const hijriSearchDays = 731

// HijriToJDN returns the Julian Day Number of a tabular Hijri date.
// Leap years follow the fixed 30-year cycle floor((3 + 11y) / 30).
func HijriToJDN(year, month, day int) int {
	return day +
		ceilDiv(59*(month-1), 2) + // ceil(29.5 * (month - 1))
		(year-1)*354 +
		floorDiv(3+11*year, 30) +
		hijriEpoch
}

// JDNToHijri converts a Julian Day Number to the tabular Hijri calendar.
// The input is a whole day number; the JD of its preceding midnight is
// jdn - 0.5, which is what the year estimate below is taken from.
func JDNToHijri(jdn int) HijriDate {
	year := floorDiv(30*(jdn-hijriEpoch-1)+10646, 10631)
	if jdn < HijriToJDN(year, 1, 1) {
		year--
	} else if jdn >= HijriToJDN(year+1, 1, 1) {
		year++
	}

	start := HijriToJDN(year, 1, 1)
	month := ceilDiv(2*(jdn-29-start), 59) + 1
	month = max(1, min(12, month))

	day := jdn - HijriToJDN(year, month, 1) + 1
	return HijriDate{Year: year, Month: month, Day: day}
}

// GregorianToHijri converts a calendar-valid Gregorian date to Hijri.
func GregorianToHijri(year, month, day int) (HijriDate, error) {
	if !isValidGregorian(year, month, day) {
		return HijriDate{}, invalidGregorian(year, month, day)
	}
	return JDNToHijri(GregorianToJDN(year, month, day)), nil
}

// HijriYear returns the Hijri year in which g falls.
func HijriYear(g GregorianDate) int {
	return JDNToHijri(GregorianToJDN(g.Year, g.Month, g.Day)).Year
}

// HijriToGregorian finds the Gregorian date of a Hijri date inside the
// Gregorian year gregorianYear.
//
// The scan starts on January 1 of gregorianYear-1 and visits at most 731
// days, returning the first day whose Hijri date matches exactly and whose
// Gregorian year is gregorianYear. ok is false when no such day exists, for
// example when the Hijri date falls in a neighbouring Gregorian year.
func HijriToGregorian(hijriYear, hijriMonth, hijriDay, gregorianYear int) (date GregorianDate, ok bool) {
	start := GregorianToJDN(gregorianYear-1, 1, 1)
	for offset := 0; offset < hijriSearchDays; offset++ {
		jdn := start + offset
		h := JDNToHijri(jdn)
		if h.Year != hijriYear || h.Month != hijriMonth || h.Day != hijriDay {
			continue
		}
		g := JDNToGregorian(jdn)
		if g.Year == gregorianYear {
			return g, true
		}
	}
	return GregorianDate{}, false
}
