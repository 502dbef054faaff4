// Package almanac lists the holidays of an Ethiopian year or month by
// combining fixed holidays, movable feasts and Muslim holidays from a
// holiday catalog.
package almanac

import (
	"cmp"
	"slices"

	"golang.org/x/text/language"

	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
)

// Names supplies the localized names used in almanac views.
type Names interface {
	bahirehasab.Names
	EthiopianMonth(lang language.Tag, month int) string
	GregorianMonth(lang language.Tag, month int) string
}

// Holiday is one occurrence of a holiday on a concrete date.
type Holiday struct {
	Key         string                 `json:"key"`
	Kind        holiday.Kind           `json:"kind"`
	Ethiopian   calendar.EthiopianDate `json:"ethiopian"`
	Gregorian   calendar.GregorianDate `json:"gregorian"`
	Weekday     string                 `json:"weekday"`
	Tags        []holiday.Tag          `json:"tags"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
}

// Almanac builds holiday listings. It is safe for concurrent use.
type Almanac struct {
	catalog holiday.Catalog
	names   Names
	engine  *bahirehasab.Engine
}

// New returns an Almanac over catalog.
func New(catalog holiday.Catalog, names Names) *Almanac {
	return &Almanac{
		catalog: catalog,
		names:   names,
		engine:  bahirehasab.New(catalog, names),
	}
}

// Default returns an Almanac over the embedded catalog and locales.
func Default() *Almanac {
	return New(holiday.Default(), i18n.Default())
}

// Catalog returns the catalog the almanac reads from.
func (a *Almanac) Catalog() holiday.Catalog {
	return a.catalog
}

// Engine returns the Bahire Hasab engine bound to the almanac's catalog.
func (a *Almanac) Engine() *bahirehasab.Engine {
	return a.engine
}

// HolidaysForYear returns every holiday of an Ethiopian year in date order.
// When tags are given only holidays carrying at least one of them are kept.
//
// Muslim holidays follow the Hijri calendar, so one can occur twice in an
// Ethiopian year or not at all; each occurrence is listed. Occurrences
// whose Gregorian date lies outside 1900-2100 are omitted.
func (a *Almanac) HolidaysForYear(year int, lang language.Tag, tags ...holiday.Tag) ([]Holiday, error) {
	var out []Holiday

	for _, info := range a.catalog.All() {
		if !info.HasAnyTag(tags...) {
			continue
		}

		dates, err := a.occurrences(info, year)
		if err != nil {
			return nil, err
		}
		for _, date := range dates {
			h, err := a.holiday(info, date, lang)
			if err != nil {
				return nil, err
			}
			out = append(out, h)
		}
	}

	slices.SortStableFunc(out, func(x, y Holiday) int {
		if x.Ethiopian.Before(y.Ethiopian) {
			return -1
		}
		if y.Ethiopian.Before(x.Ethiopian) {
			return 1
		}
		return cmp.Compare(x.Key, y.Key)
	})
	return out, nil
}

// HolidaysInMonth returns the holidays that fall in one Ethiopian month.
func (a *Almanac) HolidaysInMonth(year, month int, lang language.Tag, tags ...holiday.Tag) ([]Holiday, error) {
	if _, err := calendar.NewEthiopianDate(year, month, 1); err != nil {
		return nil, err
	}

	all, err := a.HolidaysForYear(year, lang, tags...)
	if err != nil {
		return nil, err
	}

	var out []Holiday
	for _, h := range all {
		if h.Ethiopian.Month == month {
			out = append(out, h)
		}
	}
	return out, nil
}

// Lookup returns the occurrences of one holiday in year.
func (a *Almanac) Lookup(key string, year int, lang language.Tag) (holiday.Info, []Holiday, error) {
	info, ok := a.catalog.Lookup(key)
	if !ok {
		return holiday.Info{}, nil, &bahirehasab.UnknownHolidayError{Key: key}
	}

	dates, err := a.occurrences(info, year)
	if err != nil {
		return holiday.Info{}, nil, err
	}

	out := make([]Holiday, 0, len(dates))
	for _, date := range dates {
		h, err := a.holiday(info, date, lang)
		if err != nil {
			return holiday.Info{}, nil, err
		}
		out = append(out, h)
	}
	return info, out, nil
}

// occurrences returns the Ethiopian dates on which info falls in year.
func (a *Almanac) occurrences(info holiday.Info, year int) ([]calendar.EthiopianDate, error) {
	switch info.Kind {
	case holiday.KindFixed:
		date := calendar.EthiopianDate{Year: year, Month: info.Month, Day: info.Day}
		if date.Validate() != nil {
			// Pagume 6 outside a leap year.
			return nil, nil
		}
		return []calendar.EthiopianDate{date}, nil

	case holiday.KindMovable:
		date, err := a.engine.MovableHolidayDate(info.Key, year)
		if err != nil {
			return nil, err
		}
		return []calendar.EthiopianDate{date}, nil

	case holiday.KindHijri:
		return hijriOccurrences(info.Month, info.Day, year), nil

	default:
		return nil, nil
	}
}

// hijriOccurrences finds every day of the Ethiopian year whose Hijri month
// and day match. The year spans parts of two Gregorian years, and each
// Gregorian year touches up to three Hijri years.
func hijriOccurrences(hijriMonth, hijriDay, year int) []calendar.EthiopianDate {
	var out []calendar.EthiopianDate

	for _, gy := range []int{year + 7, year + 8} {
		if gy < calendar.MinGregorianYear || gy > calendar.MaxGregorianYear {
			continue
		}
		first := calendar.HijriYear(calendar.GregorianDate{Year: gy, Month: 1, Day: 1})
		for hy := first; hy <= first+2; hy++ {
			g, ok := calendar.HijriToGregorian(hy, hijriMonth, hijriDay, gy)
			if !ok {
				continue
			}
			e, err := calendar.ToEthiopian(g.Year, g.Month, g.Day)
			if err != nil || e.Year != year || slices.Contains(out, e) {
				continue
			}
			out = append(out, e)
		}
	}

	slices.SortFunc(out, func(x, y calendar.EthiopianDate) int {
		if x.Before(y) {
			return -1
		}
		if y.Before(x) {
			return 1
		}
		return 0
	})
	return out
}

func (a *Almanac) holiday(info holiday.Info, date calendar.EthiopianDate, lang language.Tag) (Holiday, error) {
	greg, err := date.Gregorian()
	if err != nil {
		return Holiday{}, err
	}
	return Holiday{
		Key:         info.Key,
		Kind:        info.Kind,
		Ethiopian:   date,
		Gregorian:   greg,
		Weekday:     a.names.Weekday(lang, greg.Weekday()),
		Tags:        info.Tags,
		Name:        info.NameIn(lang),
		Description: info.DescriptionIn(lang),
	}, nil
}
