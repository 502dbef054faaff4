// Package ics exports holiday listings as iCalendar (RFC 5545) documents
// with one all-day event per holiday occurrence.
package ics

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
)

const (
	ProductID     = "-//Bahire Hasab//Ethiopian Calendar//EN"
	DefaultDomain = "bahire-hasab"
)

// Options controls the calendar headers and event identifiers.
type Options struct {
	// Name is the X-WR-CALNAME shown by calendar clients.
	Name string
	// Domain is the right-hand side of every UID.
	Domain string
	// Now stamps DTSTAMP; zero means time.Now.
	Now time.Time
}

// Calendar builds a VCALENDAR holding the holidays of one Ethiopian year.
// UIDs are "<key>-<gregorian date>@<domain>" so re-exports replace rather
// than duplicate earlier events.
func Calendar(holidays []almanac.Holiday, opts Options) *ical.Calendar {
	if opts.Domain == "" {
		opts.Domain = DefaultDomain
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	if opts.Name != "" {
		cal.Props.SetText("X-WR-CALNAME", opts.Name)
	}

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(opts.Now.UTC())

	for _, h := range holidays {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@%s", h.Key, h.Gregorian, opts.Domain))
		event.Props.Set(stamp)
		event.Props.SetText(ical.PropSummary, h.Name)
		if h.Description != "" {
			event.Props.SetText(ical.PropDescription, h.Description)
		}

		start := h.Gregorian.Time()
		dtStart := ical.NewProp(ical.PropDateTimeStart)
		dtStart.SetDate(start)
		event.Props.Set(dtStart)

		dtEnd := ical.NewProp(ical.PropDateTimeEnd)
		dtEnd.SetDate(start.AddDate(0, 0, 1))
		event.Props.Set(dtEnd)

		if len(h.Tags) > 0 {
			// Tags are bare lowercase words, so no TEXT escaping is needed.
			categories := ical.NewProp(ical.PropCategories)
			names := make([]string, len(h.Tags))
			for i, tag := range h.Tags {
				names[i] = strings.ToUpper(string(tag))
			}
			categories.Value = strings.Join(names, ",")
			event.Props.Set(categories)
		}

		event.Props.SetText("X-ETHIOPIAN-DATE", h.Ethiopian.String())

		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

// emptyCalendar is written when there are no events; the encoder rejects a
// VCALENDAR without components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ProductID + "\r\nEND:VCALENDAR\r\n"

// Encode writes the holidays as an iCalendar document.
func Encode(w io.Writer, holidays []almanac.Holiday, opts Options) error {
	if len(holidays) == 0 {
		_, err := io.WriteString(w, emptyCalendar)
		return err
	}
	if err := ical.NewEncoder(w).Encode(Calendar(holidays, opts)); err != nil {
		return fmt.Errorf("encode icalendar: %w", err)
	}
	return nil
}

// Marshal returns the holidays as an iCalendar document.
func Marshal(holidays []almanac.Holiday, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, holidays, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
