// Package holiday holds the metadata of Ethiopian public and religious
// holidays: tags, names and descriptions per language, the fixed date of
// fixed holidays, the Hijri date of Muslim holidays and the day offsets of
// the movable Christian feasts.
package holiday

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Tag classifies a holiday.
type Tag string

const (
	TagPublic    Tag = "public"
	TagReligious Tag = "religious"
	TagChristian Tag = "christian"
	TagMuslim    Tag = "muslim"
	TagState     Tag = "state"
	TagCultural  Tag = "cultural"
	TagOther     Tag = "other"
)

var knownTags = []Tag{TagPublic, TagReligious, TagChristian, TagMuslim, TagState, TagCultural, TagOther}

// Tags returns every known tag.
func Tags() []Tag {
	return slices.Clone(knownTags)
}

// ErrUnknownTag is returned by ParseTags for a tag outside the known set.
var ErrUnknownTag = errors.New("unknown holiday tag")

// ParseTags parses a comma separated tag list such as "public,christian".
// Blank entries are ignored; an empty string yields no tags.
func ParseTags(s string) ([]Tag, error) {
	var tags []Tag
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		tag := Tag(part)
		if !slices.Contains(knownTags, tag) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, part)
		}
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Kind says how a holiday's date is found in a given year.
type Kind string

const (
	// KindFixed holidays fall on the same Ethiopian month and day every year.
	KindFixed Kind = "fixed"
	// KindMovable holidays are a fixed number of days after Nineveh.
	KindMovable Kind = "movable"
	// KindHijri holidays fall on a fixed day of the tabular Hijri calendar.
	KindHijri Kind = "hijri"
)

// Info describes one holiday. Month and Day are Ethiopian for fixed holidays
// and Hijri for Hijri holidays; movable feasts leave them zero.
type Info struct {
	Key         string            `yaml:"key" json:"key"`
	Kind        Kind              `yaml:"kind" json:"kind"`
	Month       int               `yaml:"month,omitempty" json:"month,omitempty"`
	Day         int               `yaml:"day,omitempty" json:"day,omitempty"`
	Tags        []Tag             `yaml:"tags" json:"tags"`
	Name        map[string]string `yaml:"name" json:"name"`
	Description map[string]string `yaml:"description" json:"description"`
}

// HasTag reports whether the holiday carries tag.
func (i Info) HasTag(tag Tag) bool {
	return slices.Contains(i.Tags, tag)
}

// HasAnyTag reports whether the holiday carries at least one of tags.
// An empty filter matches every holiday.
func (i Info) HasAnyTag(tags ...Tag) bool {
	if len(tags) == 0 {
		return true
	}
	return slices.ContainsFunc(tags, i.HasTag)
}

// NameIn returns the name in lang, falling back to English and then the key.
func (i Info) NameIn(lang language.Tag) string {
	return pick(i.Name, lang, i.Key)
}

// DescriptionIn returns the description in lang, falling back to English.
func (i Info) DescriptionIn(lang language.Tag) string {
	return pick(i.Description, lang, "")
}

func pick(texts map[string]string, lang language.Tag, fallback string) string {
	base, _ := lang.Base()
	if s := texts[base.String()]; s != "" {
		return s
	}
	if s := texts["en"]; s != "" {
		return s
	}
	return fallback
}

// Validate checks the record's shape for its kind.
func (i Info) Validate() error {
	var errs []error

	if i.Key == "" {
		errs = append(errs, errors.New("key is required"))
	}

	switch i.Kind {
	case KindFixed:
		if i.Month < 1 || i.Month > 13 || i.Day < 1 || i.Day > 30 || (i.Month == 13 && i.Day > 6) {
			errs = append(errs, fmt.Errorf("invalid ethiopian month/day %d/%d", i.Month, i.Day))
		}
	case KindHijri:
		if i.Month < 1 || i.Month > 12 || i.Day < 1 || i.Day > 30 {
			errs = append(errs, fmt.Errorf("invalid hijri month/day %d/%d", i.Month, i.Day))
		}
	case KindMovable:
		if _, ok := MovableOffset(i.Key); !ok {
			errs = append(errs, fmt.Errorf("%q has no movable offset", i.Key))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid kind %q", i.Kind))
	}

	for _, tag := range i.Tags {
		if !slices.Contains(knownTags, tag) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownTag, tag))
		}
	}

	if i.Name["en"] == "" {
		errs = append(errs, errors.New("english name is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("holiday %q: %w", i.Key, errors.Join(errs...))
	}
	return nil
}
