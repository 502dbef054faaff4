package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestToGregorian(t *testing.T) {
	tests := []struct {
		name string
		eth  EthiopianDate
		want GregorianDate
	}{
		{"new year before leap year", EthiopianDate{2016, 1, 1}, GregorianDate{2023, 9, 12}},
		{"new year regular", EthiopianDate{2017, 1, 1}, GregorianDate{2024, 9, 11}},
		{"leap pagume 6", EthiopianDate{2015, 13, 6}, GregorianDate{2023, 9, 11}},
		{"fasika 2016", EthiopianDate{2016, 8, 27}, GregorianDate{2024, 5, 5}},
		{"genna 2016 on tahsas 28", EthiopianDate{2016, 4, 28}, GregorianDate{2024, 1, 7}},
		{"genna 2017 on tahsas 29", EthiopianDate{2017, 4, 29}, GregorianDate{2025, 1, 7}},
		{"adwa across leap february", EthiopianDate{2016, 6, 23}, GregorianDate{2024, 3, 2}},
		{"year 2000 millennium", EthiopianDate{2000, 1, 1}, GregorianDate{2007, 9, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGregorian(tt.eth.Year, tt.eth.Month, tt.eth.Day)
			if err != nil {
				t.Fatalf("ToGregorian(%v) error = %v", tt.eth, err)
			}
			if got != tt.want {
				t.Errorf("ToGregorian(%v) = %v, want %v", tt.eth, got, tt.want)
			}
		})
	}
}

func TestToGregorian_Invalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"month 14", 2016, 14, 1},
		{"month 0", 2016, 0, 1},
		{"day 0", 2016, 1, 0},
		{"day 31", 2016, 1, 31},
		{"pagume 6 in common year", 2016, 13, 6},
		{"pagume 7 in leap year", 2015, 13, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGregorian(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidEthiopianDate) {
				t.Fatalf("ToGregorian(%d, %d, %d) error = %v, want ErrInvalidEthiopianDate",
					tt.year, tt.month, tt.day, err)
			}

			var dateErr *DateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("error is %T, want *DateError", err)
			}
			if dateErr.Year != tt.year || dateErr.Month != tt.month || dateErr.Day != tt.day {
				t.Errorf("DateError = %d/%d/%d, want %d/%d/%d",
					dateErr.Year, dateErr.Month, dateErr.Day, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestToEthiopian(t *testing.T) {
	tests := []struct {
		name string
		greg GregorianDate
		want EthiopianDate
	}{
		{"fasika 2016", GregorianDate{2024, 5, 5}, EthiopianDate{2016, 8, 27}},
		{"day before new year is pagume 6", GregorianDate{2023, 9, 11}, EthiopianDate{2015, 13, 6}},
		{"new year 2016", GregorianDate{2023, 9, 12}, EthiopianDate{2016, 1, 1}},
		{"new year 2017", GregorianDate{2024, 9, 11}, EthiopianDate{2017, 1, 1}},
		{"pagume 5 of common year", GregorianDate{2024, 9, 10}, EthiopianDate{2016, 13, 5}},
		{"january", GregorianDate{2000, 1, 1}, EthiopianDate{1992, 4, 22}},
		{"window start", GregorianDate{1900, 1, 1}, EthiopianDate{1892, 4, 23}},
		{"window end", GregorianDate{2100, 12, 31}, EthiopianDate{2093, 4, 22}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToEthiopian(tt.greg.Year, tt.greg.Month, tt.greg.Day)
			if err != nil {
				t.Fatalf("ToEthiopian(%v) error = %v", tt.greg, err)
			}
			if got != tt.want {
				t.Errorf("ToEthiopian(%v) = %v, want %v", tt.greg, got, tt.want)
			}
		})
	}
}

func TestToEthiopian_Invalid(t *testing.T) {
	tests := []struct {
		name string
		greg GregorianDate
	}{
		{"before window", GregorianDate{1899, 12, 31}},
		{"after window", GregorianDate{2101, 1, 1}},
		{"february 29 of common year", GregorianDate{2023, 2, 29}},
		{"month 13", GregorianDate{2023, 13, 1}},
		{"day 0", GregorianDate{2023, 1, 0}},
		{"april 31", GregorianDate{2023, 4, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToEthiopian(tt.greg.Year, tt.greg.Month, tt.greg.Day)
			if !errors.Is(err, ErrInvalidGregorianDate) {
				t.Errorf("ToEthiopian(%v) error = %v, want ErrInvalidGregorianDate", tt.greg, err)
			}
		})
	}
}

func TestRoundTrip_EthiopianGregorian(t *testing.T) {
	// Years 1893..2092 map entirely inside the 1900-2100 Gregorian window.
	for year := 1893; year <= 2092; year++ {
		for month := 1; month <= 13; month++ {
			for day := 1; day <= DaysInEthiopianMonth(year, month); day++ {
				if year == 2091 && month == Pagume && day == 6 {
					// Shares 2099-09-11 with Meskerem 1 2092.
					continue
				}
				g, err := ToGregorian(year, month, day)
				if err != nil {
					t.Fatalf("ToGregorian(%d, %d, %d) error = %v", year, month, day, err)
				}
				e, err := ToEthiopian(g.Year, g.Month, g.Day)
				if err != nil {
					t.Fatalf("ToEthiopian(%v) error = %v", g, err)
				}
				if want := (EthiopianDate{year, month, day}); e != want {
					t.Fatalf("round trip %v -> %v -> %v", want, g, e)
				}
			}
		}
	}
}

func TestToGregorian_CenturyCollision(t *testing.T) {
	// 2100 is not a Gregorian leap year, so New Year 2092 does not move to
	// September 12 and the sixth Pagume day of 2091 lands on it.
	pagume6, err := ToGregorian(2091, Pagume, 6)
	if err != nil {
		t.Fatalf("ToGregorian(2091, 13, 6) error = %v", err)
	}
	newYear, err := ToGregorian(2092, 1, 1)
	if err != nil {
		t.Fatalf("ToGregorian(2092, 1, 1) error = %v", err)
	}

	want := GregorianDate{2099, 9, 11}
	if pagume6 != want || newYear != want {
		t.Errorf("2091-13-06 -> %v, 2092-01-01 -> %v, want both %v", pagume6, newYear, want)
	}

	got, err := ToEthiopian(2099, 9, 11)
	if err != nil {
		t.Fatalf("ToEthiopian(2099, 9, 11) error = %v", err)
	}
	if got != (EthiopianDate{2092, 1, 1}) {
		t.Errorf("ToEthiopian(2099-09-11) = %v, want 2092-01-01", got)
	}

	got, err = ToEthiopian(2099, 9, 10)
	if err != nil {
		t.Fatalf("ToEthiopian(2099, 9, 10) error = %v", err)
	}
	if got != (EthiopianDate{2091, Pagume, 5}) {
		t.Errorf("ToEthiopian(2099-09-10) = %v, want 2091-13-05", got)
	}
}

func TestNewYearOf(t *testing.T) {
	for year := 1893; year <= 2092; year++ {
		got := NewYearOf(year)
		wantDay := 11
		if IsGregorianLeapYear(year + 8) {
			wantDay = 12
		}
		if got.Year != year+7 || got.Month != 9 || got.Day != wantDay {
			t.Errorf("NewYearOf(%d) = %v, want %d-09-%d", year, got, year+7, wantDay)
		}
	}
}

func TestPagumeLength(t *testing.T) {
	for year := 1990; year <= 2030; year++ {
		want := 5
		if year%4 == 3 {
			want = 6
		}
		if got := DaysInEthiopianMonth(year, Pagume); got != want {
			t.Errorf("DaysInEthiopianMonth(%d, Pagume) = %d, want %d", year, got, want)
		}

		_, err := NewEthiopianDate(year, Pagume, 6)
		if want == 6 && err != nil {
			t.Errorf("NewEthiopianDate(%d, 13, 6) error = %v, want nil", year, err)
		}
		if want == 5 && !errors.Is(err, ErrInvalidEthiopianDate) {
			t.Errorf("NewEthiopianDate(%d, 13, 6) error = %v, want ErrInvalidEthiopianDate", year, err)
		}
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date EthiopianDate
		want time.Weekday
	}{
		{EthiopianDate{2016, 8, 27}, time.Sunday},    // 2024-05-05
		{EthiopianDate{2016, 6, 18}, time.Monday},    // 2024-02-26
		{EthiopianDate{2016, 2, 10}, time.Saturday},  // 2023-10-21
		{EthiopianDate{2017, 1, 1}, time.Wednesday},  // 2024-09-11
		{EthiopianDate{2015, 13, 6}, time.Monday},    // 2023-09-11
		{EthiopianDate{1992, 4, 22}, time.Saturday},  // 2000-01-01
		{EthiopianDate{2017, 1, 29}, time.Wednesday}, // 2024-10-09
	}

	for _, tt := range tests {
		got, err := Weekday(tt.date)
		if err != nil {
			t.Fatalf("Weekday(%v) error = %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("Weekday(%v) = %v, want %v", tt.date, got, tt.want)
		}

		g, _ := tt.date.Gregorian()
		if g.Weekday() != g.Time().Weekday() {
			t.Errorf("GregorianDate(%v).Weekday() = %v, time package says %v", g, g.Weekday(), g.Time().Weekday())
		}
	}
}
