package almanac

import (
	"golang.org/x/text/language"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
)

// Day is one cell of a month grid.
type Day struct {
	Ethiopian calendar.EthiopianDate `json:"ethiopian"`
	Gregorian calendar.GregorianDate `json:"gregorian"`
	Weekday   string                 `json:"weekday"`
	Holidays  []string               `json:"holidays,omitempty"`
}

// MonthView is an Ethiopian month laid out for display. StartColumn is
// the weekday of the first day, 0 = Sunday.
type MonthView struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	MonthName   string    `json:"monthName"`
	StartColumn int       `json:"startColumn"`
	Days        []Day     `json:"days"`
	Holidays    []Holiday `json:"holidays"`
}

// Month builds the view of one Ethiopian month with its holidays.
func (a *Almanac) Month(year, month int, lang language.Tag) (*MonthView, error) {
	first, err := calendar.NewEthiopianDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	holidays, err := a.HolidaysInMonth(year, month, lang)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int][]string)
	for _, h := range holidays {
		byDay[h.Ethiopian.Day] = append(byDay[h.Ethiopian.Day], h.Key)
	}

	start, err := calendar.Weekday(first)
	if err != nil {
		return nil, err
	}

	view := &MonthView{
		Year:        year,
		Month:       month,
		MonthName:   a.names.EthiopianMonth(lang, month),
		StartColumn: int(start),
		Holidays:    holidays,
	}

	for day := 1; day <= calendar.DaysInEthiopianMonth(year, month); day++ {
		eth := calendar.EthiopianDate{Year: year, Month: month, Day: day}
		greg, err := eth.Gregorian()
		if err != nil {
			return nil, err
		}
		view.Days = append(view.Days, Day{
			Ethiopian: eth,
			Gregorian: greg,
			Weekday:   a.names.Weekday(lang, greg.Weekday()),
			Holidays:  byDay[day],
		})
	}

	return view, nil
}

// DateInfo describes one day in the Ethiopian, Gregorian and Hijri
// calendars with the keys of the holidays that fall on it.
type DateInfo struct {
	Ethiopian      calendar.EthiopianDate `json:"ethiopian"`
	Gregorian      calendar.GregorianDate `json:"gregorian"`
	Hijri          calendar.HijriDate     `json:"hijri"`
	Weekday        string                 `json:"weekday"`
	MonthName      string                 `json:"monthName"`
	GregorianMonth string                 `json:"gregorianMonth"`
	Holidays       []string               `json:"holidays,omitempty"`
}

// Date describes an Ethiopian date.
func (a *Almanac) Date(date calendar.EthiopianDate, lang language.Tag) (*DateInfo, error) {
	greg, err := date.Gregorian()
	if err != nil {
		return nil, err
	}
	hijri, err := calendar.GregorianToHijri(greg.Year, greg.Month, greg.Day)
	if err != nil {
		return nil, err
	}

	holidays, err := a.HolidaysInMonth(date.Year, date.Month, lang)
	if err != nil {
		return nil, err
	}

	info := &DateInfo{
		Ethiopian:      date,
		Gregorian:      greg,
		Hijri:          hijri,
		Weekday:        a.names.Weekday(lang, greg.Weekday()),
		MonthName:      a.names.EthiopianMonth(lang, date.Month),
		GregorianMonth: a.names.GregorianMonth(lang, greg.Month),
	}
	for _, h := range holidays {
		if h.Ethiopian == date {
			info.Holidays = append(info.Holidays, h.Key)
		}
	}
	return info, nil
}
