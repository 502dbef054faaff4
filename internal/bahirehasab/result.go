package bahirehasab

import (
	"slices"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
)

// Result is the Bahire Hasab of one Ethiopian year.
type Result struct {
	Year          int                    `json:"year"`
	AmeteAlem     int                    `json:"ameteAlem"`
	MeteneRabiet  int                    `json:"meteneRabiet"`
	Evangelist    Evangelist             `json:"evangelist"`
	NewYear       NewYear                `json:"newYear"`
	Medeb         int                    `json:"medeb"`
	Wenber        int                    `json:"wenber"`
	Abektie       int                    `json:"abektie"`
	Metqi         int                    `json:"metqi"`
	BealeMetqi    BealeMetqi             `json:"bealeMetqi"`
	Tewsak        int                    `json:"tewsak"`
	Nineveh       calendar.EthiopianDate `json:"nineveh"`
	MovableFeasts map[string]Feast       `json:"movableFeasts"`
}

// Evangelist is the evangelist patron of the year.
type Evangelist struct {
	Name      string `json:"name"`
	Remainder int    `json:"remainder"`
}

// NewYear describes Meskerem 1. TinteQemer is (Amete Alem + Metene Rabiet) mod 7.
type NewYear struct {
	DayName    string `json:"dayName"`
	TinteQemer int    `json:"tinteQemer"`
}

// BealeMetqi is the feast of Metqi with its weekday name.
type BealeMetqi struct {
	Date    calendar.EthiopianDate `json:"date"`
	Weekday string                 `json:"weekday"`
}

// Feast is one movable feast of a year.
type Feast struct {
	Key         string                 `json:"key"`
	Ethiopian   calendar.EthiopianDate `json:"ethiopian"`
	Gregorian   calendar.GregorianDate `json:"gregorian"`
	Offset      int                    `json:"offset"`
	Tags        []holiday.Tag          `json:"tags"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
}

// Feasts returns the movable feasts ordered by date.
func (r *Result) Feasts() []Feast {
	out := make([]Feast, 0, len(r.MovableFeasts))
	for _, key := range holiday.MovableKeys() {
		if f, ok := r.MovableFeasts[key]; ok {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b Feast) int { return a.Offset - b.Offset })
	return out
}
