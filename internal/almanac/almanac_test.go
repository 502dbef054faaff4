package almanac_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
)

func keys(hs []almanac.Holiday) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Key
	}
	return out
}

func TestHolidaysForYear(t *testing.T) {
	hs, err := almanac.Default().HolidaysForYear(2016, i18n.English)
	require.NoError(t, err)

	want := []string{
		"enkutatash", "moulid", "meskel", "beherbehereseb", "gena", "timket",
		"martyrsDay", "nineveh", "adwa", "abiyTsome", "debreZeit", "eidFitr",
		"hosanna", "labour", "siklet", "fasika", "patriots", "rikbeKahnat",
		"erget", "eidAdha", "paraclete", "tsomeHawaryat", "tsomeDihnet",
	}
	assert.Equal(t, want, keys(hs))

	for i := 1; i < len(hs); i++ {
		assert.False(t, hs[i].Ethiopian.Before(hs[i-1].Ethiopian), "%s before %s", hs[i].Key, hs[i-1].Key)
	}
}

func TestHolidaysForYear_MuslimDates(t *testing.T) {
	hs, err := almanac.Default().HolidaysForYear(2016, i18n.English, holiday.TagMuslim)
	require.NoError(t, err)
	require.Len(t, hs, 3)

	tests := []struct {
		key       string
		ethiopian calendar.EthiopianDate
		gregorian calendar.GregorianDate
	}{
		{"moulid", calendar.EthiopianDate{Year: 2016, Month: 1, Day: 16}, calendar.GregorianDate{Year: 2023, Month: 9, Day: 27}},
		{"eidFitr", calendar.EthiopianDate{Year: 2016, Month: 8, Day: 2}, calendar.GregorianDate{Year: 2024, Month: 4, Day: 10}},
		{"eidAdha", calendar.EthiopianDate{Year: 2016, Month: 10, Day: 10}, calendar.GregorianDate{Year: 2024, Month: 6, Day: 17}},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.key, hs[i].Key)
		assert.Equal(t, tt.ethiopian, hs[i].Ethiopian, tt.key)
		assert.Equal(t, tt.gregorian, hs[i].Gregorian, tt.key)
		assert.Equal(t, holiday.KindHijri, hs[i].Kind)
	}
}

func TestHolidaysForYear_EveryHijriOccurrenceListed(t *testing.T) {
	a := almanac.Default()

	first, last := 1993, 2092
	got := 0
	for year := first; year <= last; year++ {
		hs, err := a.HolidaysForYear(year, i18n.English, holiday.TagMuslim)
		require.NoError(t, err)

		for _, h := range hs {
			if h.Key != "eidFitr" {
				continue
			}
			got++
			hijri, err := calendar.GregorianToHijri(h.Gregorian.Year, h.Gregorian.Month, h.Gregorian.Day)
			require.NoError(t, err)
			assert.Equal(t, 10, hijri.Month)
			assert.Equal(t, 1, hijri.Day)
			assert.Equal(t, year, h.Ethiopian.Year)
		}
	}

	start := calendar.NewYearOf(first)
	end := calendar.NewYearOf(last + 1)
	startJDN := calendar.GregorianToJDN(start.Year, start.Month, start.Day)
	endJDN := calendar.GregorianToJDN(end.Year, end.Month, end.Day)

	want := 0
	for hy := 1300; hy <= 1600; hy++ {
		if jdn := calendar.HijriToJDN(hy, 10, 1); jdn >= startJDN && jdn < endJDN {
			want++
		}
	}
	assert.Equal(t, want, got)
	assert.Greater(t, got, last-first+1, "some years hold two Eid al-Fitr")
}

func TestHolidaysForYear_TagFilter(t *testing.T) {
	a := almanac.Default()

	state, err := a.HolidaysForYear(2016, i18n.English, holiday.TagState)
	require.NoError(t, err)
	assert.Equal(t, []string{"beherbehereseb", "martyrsDay", "adwa", "labour", "patriots"}, keys(state))

	public, err := a.HolidaysForYear(2016, i18n.English, holiday.TagPublic)
	require.NoError(t, err)
	for _, h := range public {
		assert.Contains(t, h.Tags, holiday.TagPublic, h.Key)
	}
	assert.Contains(t, keys(public), "fasika")
	assert.NotContains(t, keys(public), "siklet")
}

func TestHolidaysInMonth(t *testing.T) {
	a := almanac.Default()

	hs, err := a.HolidaysInMonth(2016, 8, i18n.Amharic)
	require.NoError(t, err)
	assert.Equal(t, []string{"eidFitr", "hosanna", "labour", "siklet", "fasika", "patriots"}, keys(hs))
	assert.Equal(t, "ፋሲካ", hs[4].Name)
	assert.Equal(t, "እሑድ", hs[4].Weekday)

	_, err = a.HolidaysInMonth(2016, 14, i18n.English)
	assert.ErrorIs(t, err, calendar.ErrInvalidEthiopianDate)
}

func TestMonth(t *testing.T) {
	a := almanac.Default()

	view, err := a.Month(2016, 8, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "Miazia", view.MonthName)
	assert.Equal(t, int(time.Tuesday), view.StartColumn, "Miazia 1 2016 is 2024-04-09")
	require.Len(t, view.Days, 30)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 4, Day: 9}, view.Days[0].Gregorian)
	assert.Equal(t, "Tuesday", view.Days[0].Weekday)
	assert.Equal(t, []string{"fasika", "patriots"}, view.Days[26].Holidays)
	assert.Empty(t, view.Days[0].Holidays)

	pagume, err := a.Month(2016, 13, i18n.English)
	require.NoError(t, err)
	assert.Len(t, pagume.Days, 5)

	leap, err := a.Month(2015, 13, i18n.English)
	require.NoError(t, err)
	assert.Len(t, leap.Days, 6)

	_, err = a.Month(2016, 0, i18n.English)
	assert.ErrorIs(t, err, calendar.ErrInvalidEthiopianDate)
}

func TestLookup(t *testing.T) {
	a := almanac.Default()

	info, occ, err := a.Lookup("eidFitr", 2016, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "Eid al-Fitr", info.Name["en"])
	require.Len(t, occ, 1)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 4, Day: 10}, occ[0].Gregorian)

	_, occ, err = a.Lookup("fasika", 2017, i18n.English)
	require.NoError(t, err)
	require.Len(t, occ, 1)
	assert.Equal(t, calendar.GregorianDate{Year: 2025, Month: 4, Day: 20}, occ[0].Gregorian)

	_, _, err = a.Lookup("christmas", 2016, i18n.English)
	assert.ErrorIs(t, err, bahirehasab.ErrUnknownHoliday)
}

func TestDate(t *testing.T) {
	a := almanac.Default()

	info, err := a.Date(calendar.EthiopianDate{Year: 2016, Month: 8, Day: 27}, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 5, Day: 5}, info.Gregorian)
	assert.Equal(t, calendar.HijriDate{Year: 1445, Month: 10, Day: 26}, info.Hijri)
	assert.Equal(t, "Sunday", info.Weekday)
	assert.Equal(t, "Miazia", info.MonthName)
	assert.Equal(t, "May", info.GregorianMonth)
	assert.Equal(t, []string{"fasika", "patriots"}, info.Holidays)

	plain, err := a.Date(calendar.EthiopianDate{Year: 2016, Month: 8, Day: 3}, i18n.Amharic)
	require.NoError(t, err)
	assert.Empty(t, plain.Holidays)
	assert.Equal(t, "ሚያዝያ", plain.MonthName)

	_, err = a.Date(calendar.EthiopianDate{Year: 2016, Month: 13, Day: 6}, i18n.English)
	assert.ErrorIs(t, err, calendar.ErrInvalidEthiopianDate)
}
