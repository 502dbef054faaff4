// Package i18n provides the Amharic and English names of months, weekdays
// and evangelists. Translations are embedded YAML files loaded into a
// go-i18n bundle.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// Supported languages.
var (
	Amharic = language.Amharic
	English = language.English
)

// ErrUnsupportedLanguage is returned by ParseLanguage.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ParseLanguage maps a language name or code to a supported tag. "am",
// "amharic", "en" and "english" are accepted in any case.
func ParseLanguage(s string) (language.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am", "amh", "amharic":
		return Amharic, nil
	case "en", "eng", "english":
		return English, nil
	default:
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
}

var (
	ethiopianMonthIDs = [...]string{
		"meskerem", "tikimt", "hidar", "tahsas", "tir", "yekatit", "megabit",
		"miazia", "ginbot", "sene", "hamle", "nehase", "pagume",
	}
	gregorianMonthIDs = [...]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	// evangelistIDs is indexed by (Amete Alem mod 4).
	evangelistIDs = [...]string{"john", "matthew", "mark", "luke"}
)

// Translator looks up names in the embedded locales. It is safe for
// concurrent use.
type Translator struct {
	bundle     *i18n.Bundle
	localizers map[language.Tag]*i18n.Localizer
}

// New loads every embedded locale file into a fresh bundle.
func New() (*Translator, error) {
	bundle := i18n.NewBundle(English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	t := &Translator{
		bundle:     bundle,
		localizers: make(map[language.Tag]*i18n.Localizer),
	}
	for _, tag := range bundle.LanguageTags() {
		t.localizers[tag] = i18n.NewLocalizer(bundle, tag.String())
	}
	return t, nil
}

var defaultTranslator = sync.OnceValue(func() *Translator {
	t, err := New()
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded locales: %v", err))
	}
	return t
})

// Default returns a Translator over the embedded locales.
func Default() *Translator {
	return defaultTranslator()
}

// Languages returns the languages that have a locale file.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T translates messageID into lang. Unsupported languages fall back to
// English; an unknown ID is returned unchanged.
func (t *Translator) T(lang language.Tag, messageID string) string {
	localizer, ok := t.localizers[lang]
	if !ok {
		localizer = i18n.NewLocalizer(t.bundle, lang.String(), English.String())
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// EthiopianMonth returns the name of an Ethiopian month (1..13).
func (t *Translator) EthiopianMonth(lang language.Tag, month int) string {
	if month < 1 || month > len(ethiopianMonthIDs) {
		return ""
	}
	return t.T(lang, "month."+ethiopianMonthIDs[month-1])
}

// GregorianMonth returns the name of a Gregorian month (1..12).
func (t *Translator) GregorianMonth(lang language.Tag, month int) string {
	if month < 1 || month > len(gregorianMonthIDs) {
		return ""
	}
	return t.T(lang, "gregorian."+gregorianMonthIDs[month-1])
}

// Weekday returns the name of a day of the week.
func (t *Translator) Weekday(lang language.Tag, day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return t.T(lang, "weekday."+strings.ToLower(day.String()))
}

// Evangelist returns the evangelist of a year from its Amete Alem remainder
// mod 4: 0 John, 1 Matthew, 2 Mark, 3 Luke.
func (t *Translator) Evangelist(lang language.Tag, remainder int) string {
	if remainder < 0 || remainder >= len(evangelistIDs) {
		return ""
	}
	return t.T(lang, "evangelist."+evangelistIDs[remainder])
}
