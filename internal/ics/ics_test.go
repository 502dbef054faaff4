package ics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
	"github.com/zapponejosh/bahire-hasab/internal/ics"
)

func TestMarshal_RoundTripsThroughDecoder(t *testing.T) {
	holidays, err := almanac.Default().HolidaysForYear(2016, i18n.English, holiday.TagPublic)
	require.NoError(t, err)
	require.NotEmpty(t, holidays)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := ics.Marshal(holidays, ics.Options{Name: "Ethiopian holidays 2016", Domain: "example.test", Now: now})
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	prodID, err := cal.Props.Text(ical.PropProductID)
	require.NoError(t, err)
	assert.Equal(t, ics.ProductID, prodID)

	events := cal.Events()
	require.Len(t, events, len(holidays))

	var fasika *ical.Event
	for i := range events {
		uid, err := events[i].Props.Text(ical.PropUID)
		require.NoError(t, err)
		if uid == "fasika-2024-05-05@example.test" {
			fasika = &events[i]
		}
	}
	require.NotNil(t, fasika, "fasika event missing")

	summary, err := fasika.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Ethiopian Easter", summary)

	assert.Equal(t, "20240505", fasika.Props.Get(ical.PropDateTimeStart).Value)
	assert.Equal(t, "20240506", fasika.Props.Get(ical.PropDateTimeEnd).Value)
	assert.Equal(t, "20240102T030405Z", fasika.Props.Get(ical.PropDateTimeStamp).Value)
	assert.Equal(t, "PUBLIC,RELIGIOUS,CHRISTIAN", fasika.Props.Get(ical.PropCategories).Value)
}

func TestMarshal_AmharicSummaries(t *testing.T) {
	holidays, err := almanac.Default().HolidaysInMonth(2016, 4, i18n.Amharic)
	require.NoError(t, err)

	data, err := ics.Marshal(holidays, ics.Options{Now: time.Unix(0, 0)})
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:ገና")
	assert.Contains(t, string(data), "@"+ics.DefaultDomain)
}

func TestMarshal_Empty(t *testing.T) {
	data, err := ics.Marshal(nil, ics.Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "BEGIN:VCALENDAR"))
	assert.NotContains(t, string(data), "VEVENT")
}
