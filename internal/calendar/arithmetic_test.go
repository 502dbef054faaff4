package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date EthiopianDate
		n    int
		want EthiopianDate
	}{
		{"zero", EthiopianDate{2016, 5, 10}, 0, EthiopianDate{2016, 5, 10}},
		{"within month", EthiopianDate{2016, 5, 10}, 5, EthiopianDate{2016, 5, 15}},
		{"month overflow", EthiopianDate{2016, 5, 28}, 5, EthiopianDate{2016, 6, 3}},
		{"pagume 5 rolls into new year", EthiopianDate{2016, 13, 5}, 1, EthiopianDate{2017, 1, 1}},
		{"pagume 5 to pagume 6 in leap year", EthiopianDate{2015, 13, 5}, 1, EthiopianDate{2015, 13, 6}},
		{"nineveh to fasika", EthiopianDate{2016, 6, 18}, 69, EthiopianDate{2016, 8, 27}},
		{"full common year", EthiopianDate{2016, 1, 1}, 365, EthiopianDate{2017, 1, 1}},
		{"backwards across new year", EthiopianDate{2017, 1, 1}, -1, EthiopianDate{2016, 13, 5}},
		{"backwards into leap pagume", EthiopianDate{2016, 1, 1}, -1, EthiopianDate{2015, 13, 6}},
		{"backwards several months", EthiopianDate{2016, 8, 27}, -69, EthiopianDate{2016, 6, 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDays_MatchesGregorianOffset(t *testing.T) {
	start := EthiopianDate{2010, 3, 14}
	g0, err := start.Gregorian()
	require.NoError(t, err)

	for n := -800; n <= 800; n += 37 {
		moved, err := AddDays(start, n)
		require.NoError(t, err)

		g, err := moved.Gregorian()
		require.NoError(t, err)
		assert.Equal(t, n, GregorianToJDN(g.Year, g.Month, g.Day)-GregorianToJDN(g0.Year, g0.Month, g0.Day), "n=%d", n)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		date EthiopianDate
		n    int
		want EthiopianDate
	}{
		{"simple", EthiopianDate{2016, 1, 15}, 2, EthiopianDate{2016, 3, 15}},
		{"into pagume clamps day", EthiopianDate{2016, 12, 30}, 1, EthiopianDate{2016, 13, 5}},
		{"into leap pagume clamps to 6", EthiopianDate{2015, 12, 30}, 1, EthiopianDate{2015, 13, 6}},
		{"pagume to meskerem", EthiopianDate{2016, 13, 3}, 1, EthiopianDate{2017, 1, 3}},
		{"thirteen months is one year", EthiopianDate{2016, 4, 20}, 13, EthiopianDate{2017, 4, 20}},
		{"negative into previous pagume", EthiopianDate{2016, 1, 15}, -1, EthiopianDate{2015, 13, 6}},
		{"negative many", EthiopianDate{2016, 2, 1}, -27, EthiopianDate{2014, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMonths(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name string
		date EthiopianDate
		n    int
		want EthiopianDate
	}{
		{"plain", EthiopianDate{2016, 5, 10}, 3, EthiopianDate{2019, 5, 10}},
		{"leap pagume 6 to common year", EthiopianDate{2015, 13, 6}, 1, EthiopianDate{2016, 13, 5}},
		{"leap pagume 6 to leap year", EthiopianDate{2015, 13, 6}, 4, EthiopianDate{2019, 13, 6}},
		{"negative", EthiopianDate{2016, 8, 27}, -10, EthiopianDate{2006, 8, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddYears(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiffs(t *testing.T) {
	tests := []struct {
		name                string
		a, b                EthiopianDate
		days, months, years int
	}{
		{"same day", EthiopianDate{2016, 1, 1}, EthiopianDate{2016, 1, 1}, 0, 0, 0},
		{"common year", EthiopianDate{2017, 1, 1}, EthiopianDate{2016, 1, 1}, 365, 13, 1},
		{"leap year", EthiopianDate{2016, 1, 1}, EthiopianDate{2015, 1, 1}, 366, 13, 1},
		{"incomplete month", EthiopianDate{2016, 3, 10}, EthiopianDate{2016, 1, 15}, 55, 1, 0},
		{"incomplete year", EthiopianDate{2016, 5, 10}, EthiopianDate{2010, 5, 11}, 2191, 77, 5},
		{"negative within a month", EthiopianDate{2016, 1, 1}, EthiopianDate{2016, 1, 11}, -10, -1, -1},
		{"negative short day", EthiopianDate{2016, 1, 5}, EthiopianDate{2016, 3, 10}, -65, -3, -1},
		{"negative long day", EthiopianDate{2016, 1, 10}, EthiopianDate{2016, 3, 5}, -55, -2, -1},
		{"negative whole year", EthiopianDate{2015, 1, 1}, EthiopianDate{2016, 1, 1}, -366, -13, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DiffInDays(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days, "days")

			months, err := DiffInMonths(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.months, months, "months")

			years, err := DiffInYears(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.years, years, "years")
		})
	}
}

func TestArithmetic_InvalidDate(t *testing.T) {
	bad := EthiopianDate{2016, 14, 1}
	good := EthiopianDate{2016, 1, 1}

	_, err := AddDays(bad, 1)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = AddMonths(bad, 1)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = AddYears(EthiopianDate{2016, 13, 6}, 1)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = DiffInDays(good, bad)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = DiffInMonths(bad, good)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = DiffInYears(good, EthiopianDate{2016, 1, 0})
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)
}
