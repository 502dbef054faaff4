package calendar

// AddDays moves date by n days, rolling day overflow into the following
// months (Pagume rolls into Meskerem of the next year). Negative n moves
// backwards.
func AddDays(date EthiopianDate, n int) (EthiopianDate, error) {
	if err := date.Validate(); err != nil {
		return EthiopianDate{}, err
	}

	y, m, d := date.Year, date.Month, date.Day+n

	for d > DaysInEthiopianMonth(y, m) {
		d -= DaysInEthiopianMonth(y, m)
		m++
		if m > Pagume {
			m = Meskerem
			y++
		}
	}
	for d < 1 {
		m--
		if m < Meskerem {
			m = Pagume
			y--
		}
		d += DaysInEthiopianMonth(y, m)
	}

	return EthiopianDate{Year: y, Month: m, Day: d}, nil
}

// AddMonths moves date by n months of a 13-month year. The day is clamped to
// the length of the destination month and never rolls over.
func AddMonths(date EthiopianDate, n int) (EthiopianDate, error) {
	if err := date.Validate(); err != nil {
		return EthiopianDate{}, err
	}

	index := date.Month - 1 + n
	y := date.Year + floorDiv(index, 13)
	m := floorMod(index, 13) + 1
	d := min(date.Day, DaysInEthiopianMonth(y, m))

	return EthiopianDate{Year: y, Month: m, Day: d}, nil
}

// AddYears moves date by n years. Pagume 6 becomes Pagume 5 when the
// destination year is not a leap year.
func AddYears(date EthiopianDate, n int) (EthiopianDate, error) {
	if err := date.Validate(); err != nil {
		return EthiopianDate{}, err
	}

	out := EthiopianDate{Year: date.Year + n, Month: date.Month, Day: date.Day}
	if out.Month == Pagume && out.Day == 6 && !IsEthiopianLeapYear(out.Year) {
		out.Day = 5
	}
	return out, nil
}

// DiffInDays returns a - b in days.
func DiffInDays(a, b EthiopianDate) (int, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	return a.ordinal() - b.ordinal(), nil
}

// DiffInMonths returns a - b in whole months of a 13-month year. One month
// is taken off when a's day of month is earlier than b's, whichever date
// comes first.
func DiffInMonths(a, b EthiopianDate) (int, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	diff := (a.Year*13 + a.Month) - (b.Year*13 + b.Month)
	if a.Day < b.Day {
		diff--
	}
	return diff, nil
}

// DiffInYears returns a - b in whole years. One year is taken off when a's
// month and day fall earlier in the year than b's.
func DiffInYears(a, b EthiopianDate) (int, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	diff := a.Year - b.Year
	if a.Month < b.Month || (a.Month == b.Month && a.Day < b.Day) {
		diff--
	}
	return diff, nil
}

func validatePair(a, b EthiopianDate) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
