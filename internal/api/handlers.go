package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/config"
	"github.com/zapponejosh/bahire-hasab/internal/database"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
	"github.com/zapponejosh/bahire-hasab/internal/ics"
	"github.com/zapponejosh/bahire-hasab/internal/logger"
)

// Store is the optional database behind the holiday catalog.
type Store interface {
	Health(ctx context.Context) error
	Stats(ctx context.Context) (*database.CatalogStats, error)
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	almanac *almanac.Almanac
	store   Store
	cfg     *config.Config
	logger  *slog.Logger

	// supported lists the response languages, preferred first.
	supported []language.Tag
	matcher   language.Matcher
	now       func() time.Time
}

// NewHandlers creates a new Handlers instance. store may be nil when the
// embedded catalog is served.
func NewHandlers(a *almanac.Almanac, store Store, cfg *config.Config, log *slog.Logger) *Handlers {
	supported := []language.Tag{cfg.Language()}
	for _, tag := range []language.Tag{i18n.Amharic, i18n.English} {
		if tag != supported[0] {
			supported = append(supported, tag)
		}
	}
	return &Handlers{
		almanac:   a,
		store:     store,
		cfg:       cfg,
		logger:    log,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		now:       time.Now,
	}
}

// =============================================================================
// Response Types
// =============================================================================

// BahireHasabResponse is a year's computation with its feasts in date order.
type BahireHasabResponse struct {
	*bahirehasab.Result
	Feasts []bahirehasab.Feast `json:"feasts"`
}

// HolidayResponse is a catalog entry with its occurrences in one year.
type HolidayResponse struct {
	Holiday     holiday.Info      `json:"holiday"`
	Year        int               `json:"year"`
	Occurrences []almanac.Holiday `json:"occurrences"`
}

// HealthResponse reports the catalog in use.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Catalog  string                 `json:"catalog"`
	Holidays int                    `json:"holidays"`
	Stats    *database.CatalogStats `json:"stats,omitempty"`
}

// HolidaysResponse lists the holidays of one Ethiopian year.
type HolidaysResponse struct {
	Year     int               `json:"year"`
	Holidays []almanac.Holiday `json:"holidays"`
}

// =============================================================================
// Health
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := HealthResponse{
		Status:   "healthy",
		Catalog:  "embedded",
		Holidays: len(h.almanac.Catalog().All()),
	}

	if h.store != nil {
		if err := h.store.Health(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed",
				slog.Any("error", err),
				slog.String("request_id", logger.RequestID(ctx)),
			)
			WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheckFailed)
			return
		}
		stats, err := h.store.Stats(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "catalog stats failed",
				slog.Any("error", err),
				slog.String("request_id", logger.RequestID(ctx)),
			)
		}
		resp.Catalog = "database"
		resp.Stats = stats
	}

	WriteSuccess(w, resp)
}

// =============================================================================
// Conversion
// =============================================================================

// ConvertToGregorian handles POST /api/v1/convert/to-gregorian
// with body {"year":2016,"month":1,"day":1}.
func (h *Handlers) ConvertToGregorian(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	body, ok := decodeDateBody(w, r)
	if !ok {
		return
	}

	year, month, day, err := calendar.DateFields("toGregorian", "date", body)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	eth, err := calendar.NewEthiopianDate(year, month, day)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	h.writeDate(w, r, eth, lang)
}

// ConvertToEthiopian handles POST /api/v1/convert/to-ethiopian
// with body {"year":2023,"month":9,"day":12}.
func (h *Handlers) ConvertToEthiopian(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	body, ok := decodeDateBody(w, r)
	if !ok {
		return
	}

	year, month, day, err := calendar.DateFields("toEthiopian", "date", body)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	eth, err := calendar.ToEthiopian(year, month, day)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	h.writeDate(w, r, eth, lang)
}

// GetDate handles GET /api/v1/dates/{date} for an Ethiopian yyyy-mm-dd.
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	eth, err := calendar.ParseEthiopianDate(chi.URLParam(r, "date"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	h.writeDate(w, r, eth, lang)
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	now := h.now()
	eth, err := calendar.ToEthiopian(now.Year(), int(now.Month()), now.Day())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	h.writeDate(w, r, eth, lang)
}

func (h *Handlers) writeDate(w http.ResponseWriter, r *http.Request, eth calendar.EthiopianDate, lang language.Tag) {
	info, err := h.almanac.Date(eth, lang)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	WriteSuccess(w, info)
}

// decodeDateBody reads a JSON object, keeping numbers as json.Number so
// fractional values are rejected rather than truncated.
func decodeDateBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		WriteBadRequest(w, "Request body must be a JSON object with year, month and day")
		return nil, false
	}
	return body, true
}

// =============================================================================
// Bahire Hasab
// =============================================================================

// GetBahireHasab handles GET /api/v1/bahire-hasab/{year}
func (h *Handlers) GetBahireHasab(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := calendar.ParseNumeric("bahireHasab", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	result, err := h.almanac.Engine().Compute(year, lang)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, BahireHasabResponse{Result: result, Feasts: result.Feasts()})
}

// GetFeast handles GET /api/v1/bahire-hasab/{year}/feasts/{key}
func (h *Handlers) GetFeast(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := calendar.ParseNumeric("getMovableHoliday", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	feast, err := h.almanac.Engine().Feast(chi.URLParam(r, "key"), year, lang)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	WriteSuccess(w, feast)
}

// =============================================================================
// Holidays
// =============================================================================

// GetHolidays handles GET /api/v1/holidays/{year}?tags=public,christian
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := calendar.ParseNumeric("getHolidaysForYear", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	tags, err := holiday.ParseTags(r.URL.Query().Get("tags"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	holidays, err := h.almanac.HolidaysForYear(year, lang, tags...)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	if holidays == nil {
		holidays = []almanac.Holiday{}
	}

	WriteSuccess(w, HolidaysResponse{Year: year, Holidays: holidays})
}

// GetMonth handles GET /api/v1/holidays/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := calendar.ParseNumeric("getHolidaysInMonth", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	month, err := calendar.ParseNumeric("getHolidaysInMonth", "month", chi.URLParam(r, "month"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	view, err := h.almanac.Month(year, month, lang)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	if view.Holidays == nil {
		view.Holidays = []almanac.Holiday{}
	}

	WriteSuccess(w, view)
}

// GetHoliday handles GET /api/v1/holiday/{key}?year=2016. The year defaults
// to the current Ethiopian year.
func (h *Handlers) GetHoliday(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := h.yearParam(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	info, occurrences, err := h.almanac.Lookup(chi.URLParam(r, "key"), year, lang)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	if occurrences == nil {
		occurrences = []almanac.Holiday{}
	}

	WriteSuccess(w, HolidayResponse{Holiday: info, Year: year, Occurrences: occurrences})
}

// GetCalendar handles GET /api/v1/calendar/{year} with an iCalendar body.
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	lang, err := h.language(r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	year, err := calendar.ParseNumeric("calendar", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	tags, err := holiday.ParseTags(r.URL.Query().Get("tags"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	holidays, err := h.almanac.HolidaysForYear(year, lang, tags...)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = ics.Encode(&buf, holidays, ics.Options{
		Name: fmt.Sprintf("Ethiopian holidays %d", year),
		Now:  h.now(),
	})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ethiopian-holidays-%d.ics"`, year))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// Helpers
// =============================================================================

// language picks the response language from ?lang=, then Accept-Language,
// then the configured default.
func (h *Handlers) language(r *http.Request) (language.Tag, error) {
	if q := r.URL.Query().Get("lang"); q != "" {
		return i18n.ParseLanguage(q)
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			if _, index, conf := h.matcher.Match(tags...); conf != language.No {
				return h.supported[index], nil
			}
		}
	}

	return h.cfg.Language(), nil
}

// yearParam reads ?year=, defaulting to the current Ethiopian year.
func (h *Handlers) yearParam(r *http.Request) (int, error) {
	if raw := r.URL.Query().Get("year"); raw != "" {
		return calendar.ParseNumeric("getHoliday", "year", raw)
	}
	now := h.now()
	eth, err := calendar.ToEthiopian(now.Year(), int(now.Month()), now.Day())
	if err != nil {
		return 0, err
	}
	return eth.Year, nil
}

// writeErr writes a client error for calendar and catalog errors and logs
// anything else as an internal error.
func (h *Handlers) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, code, ok := errorStatus(err)
	if !ok {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("request_id", logger.RequestID(r.Context())),
		)
		WriteInternalError(w, "Internal server error")
		return
	}
	WriteError(w, status, err.Error(), code)
}
