// Package bahirehasab computes the Bahire Hasab of an Ethiopian year: the
// year constants of the traditional computus and the dates of the movable
// feasts of the Ethiopian Orthodox Church.
//
// Every movable feast is a fixed number of days after the Fast of Nineveh,
// so the engine derives Nineveh once and places the other feasts with
// calendar.AddDays. Results are built per call and never cached.
package bahirehasab

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
)

// amete alem offset: years from creation to the Ethiopian year 0.
const creationOffset = 5500

// ErrUnknownHoliday is returned for a feast key outside the movable table.
var ErrUnknownHoliday = errors.New("unknown holiday")

// UnknownHolidayError names the key that was not recognised.
type UnknownHolidayError struct {
	Key string
}

func (e *UnknownHolidayError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownHoliday, e.Key)
}

func (e *UnknownHolidayError) Unwrap() error { return ErrUnknownHoliday }

// Names supplies weekday and evangelist names per language.
type Names interface {
	Weekday(lang language.Tag, day time.Weekday) string
	Evangelist(lang language.Tag, remainder int) string
}

// tewsak is indexed by the weekday of Beale Metqi.
var tewsak = [7]int{
	time.Sunday:    7,
	time.Monday:    6,
	time.Tuesday:   5,
	time.Wednesday: 4,
	time.Thursday:  3,
	time.Friday:    2,
	time.Saturday:  8,
}

// Tewsak returns the day correction for a Beale Metqi falling on day.
func Tewsak(day time.Weekday) int {
	return tewsak[day]
}

// Engine computes Bahire Hasab results. It holds only read-only
// collaborators and is safe for concurrent use.
type Engine struct {
	catalog holiday.Catalog
	names   Names
}

// New returns an Engine that enriches feasts from catalog and names
// weekdays and evangelists through names.
func New(catalog holiday.Catalog, names Names) *Engine {
	return &Engine{catalog: catalog, names: names}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return New(holiday.Default(), i18n.Default())
})

// Default returns an Engine over the embedded holiday catalog and locales.
func Default() *Engine {
	return defaultEngine()
}

// Compute runs Default().Compute.
func Compute(year int, lang language.Tag) (*Result, error) {
	return Default().Compute(year, lang)
}

// MovableHolidayDate runs Default().MovableHolidayDate.
func MovableHolidayDate(key string, year int) (calendar.EthiopianDate, error) {
	return Default().MovableHolidayDate(key, year)
}

// base holds the language independent values of a year.
type base struct {
	ameteAlem    int
	meteneRabiet int
	evangelist   int
	medeb        int
	wenber       int
	abektie      int
	metqi        int
	tinteQemer   int
	bealeMetqi   calendar.EthiopianDate
	bealeWeekday time.Weekday
	tewsak       int
	nineveh      calendar.EthiopianDate
}

func computeBase(year int) (base, error) {
	var b base

	b.ameteAlem = creationOffset + year
	b.meteneRabiet = floorDiv(b.ameteAlem, 4)
	b.evangelist = floorMod(b.ameteAlem, 4)

	b.medeb = floorMod(b.ameteAlem, 19)
	b.wenber = b.medeb - 1
	if b.medeb == 0 {
		b.wenber = 18
	}
	b.abektie = (b.wenber * 11) % 30
	b.metqi = (b.wenber * 19) % 30

	b.tinteQemer = floorMod(b.ameteAlem+b.meteneRabiet, 7)

	// A metqi of 0 is the 30th day of the lunar count, which lands in Meskerem.
	day := b.metqi
	if day == 0 {
		day = 30
	}
	month := calendar.Tikimt
	if day > 14 {
		month = calendar.Meskerem
	}
	b.bealeMetqi = calendar.EthiopianDate{Year: year, Month: month, Day: day}

	weekday, err := calendar.Weekday(b.bealeMetqi)
	if err != nil {
		return base{}, fmt.Errorf("beale metqi: %w", err)
	}
	b.bealeWeekday = weekday
	b.tewsak = Tewsak(weekday)

	ninevehMonth := calendar.Yekatit
	if month == calendar.Meskerem {
		ninevehMonth = calendar.Tir
	}
	ninevehDay := day + b.tewsak
	if ninevehDay > 30 {
		ninevehDay -= 30
		ninevehMonth++
	}
	b.nineveh = calendar.EthiopianDate{Year: year, Month: ninevehMonth, Day: ninevehDay}

	return b, nil
}

// Nineveh returns the first day of the Fast of Nineveh in year.
func Nineveh(year int) (calendar.EthiopianDate, error) {
	b, err := computeBase(year)
	if err != nil {
		return calendar.EthiopianDate{}, err
	}
	return b.nineveh, nil
}

// Compute returns the full Bahire Hasab of an Ethiopian year with names in lang.
func (e *Engine) Compute(year int, lang language.Tag) (*Result, error) {
	b, err := computeBase(year)
	if err != nil {
		return nil, err
	}

	newYear, err := calendar.Weekday(calendar.EthiopianDate{Year: year, Month: calendar.Meskerem, Day: 1})
	if err != nil {
		return nil, err
	}

	r := &Result{
		Year:         year,
		AmeteAlem:    b.ameteAlem,
		MeteneRabiet: b.meteneRabiet,
		Evangelist: Evangelist{
			Name:      e.names.Evangelist(lang, b.evangelist),
			Remainder: b.evangelist,
		},
		NewYear: NewYear{
			DayName:    e.names.Weekday(lang, newYear),
			TinteQemer: b.tinteQemer,
		},
		Medeb:   b.medeb,
		Wenber:  b.wenber,
		Abektie: b.abektie,
		Metqi:   b.metqi,
		BealeMetqi: BealeMetqi{
			Date:    b.bealeMetqi,
			Weekday: e.names.Weekday(lang, b.bealeWeekday),
		},
		Tewsak:        b.tewsak,
		Nineveh:       b.nineveh,
		MovableFeasts: make(map[string]Feast),
	}

	for _, key := range holiday.MovableKeys() {
		feast, err := e.feast(b.nineveh, key, lang)
		if err != nil {
			return nil, err
		}
		r.MovableFeasts[key] = feast
	}

	return r, nil
}

// MovableHolidayDate returns the Ethiopian date of one movable feast.
func (e *Engine) MovableHolidayDate(key string, year int) (calendar.EthiopianDate, error) {
	offset, ok := holiday.MovableOffset(key)
	if !ok {
		return calendar.EthiopianDate{}, &UnknownHolidayError{Key: key}
	}

	nineveh, err := Nineveh(year)
	if err != nil {
		return calendar.EthiopianDate{}, err
	}
	return calendar.AddDays(nineveh, offset)
}

// Feast returns one movable feast of year enriched with catalog metadata.
func (e *Engine) Feast(key string, year int, lang language.Tag) (Feast, error) {
	if _, ok := holiday.MovableOffset(key); !ok {
		return Feast{}, &UnknownHolidayError{Key: key}
	}
	nineveh, err := Nineveh(year)
	if err != nil {
		return Feast{}, err
	}
	return e.feast(nineveh, key, lang)
}

func (e *Engine) feast(nineveh calendar.EthiopianDate, key string, lang language.Tag) (Feast, error) {
	offset, _ := holiday.MovableOffset(key)

	date, err := calendar.AddDays(nineveh, offset)
	if err != nil {
		return Feast{}, fmt.Errorf("%s: %w", key, err)
	}
	greg, err := date.Gregorian()
	if err != nil {
		return Feast{}, fmt.Errorf("%s: %w", key, err)
	}

	f := Feast{
		Key:       key,
		Ethiopian: date,
		Gregorian: greg,
		Offset:    offset,
		Name:      key,
	}
	if info, ok := e.catalog.Lookup(key); ok {
		f.Tags = info.Tags
		f.Name = info.NameIn(lang)
		f.Description = info.DescriptionIn(lang)
	}
	return f, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
