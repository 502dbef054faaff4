package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/holiday"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns nil if no known format matches.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

// =============================================================================
// Holiday Writes
// =============================================================================

// UpsertHoliday inserts or replaces a holiday and its translations.
// Translations missing from info are removed.
func (tx *Tx) UpsertHoliday(ctx context.Context, info holiday.Info, position int) error {
	if err := info.Validate(); err != nil {
		return err
	}

	tags, err := MarshalTags(info.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		INSERT INTO holidays (key, kind, month, day, tags, position, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			kind = excluded.kind,
			month = excluded.month,
			day = excluded.day,
			tags = excluded.tags,
			position = excluded.position,
			updated_at = datetime('now')
	`
	if _, err := tx.ExecContext(ctx, query, info.Key, string(info.Kind), info.Month, info.Day, tags, position); err != nil {
		return fmt.Errorf("upsert holiday %q: %w", info.Key, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM holiday_translations WHERE holiday_key = ?`, info.Key); err != nil {
		return fmt.Errorf("clear translations for %q: %w", info.Key, err)
	}

	langs := make([]string, 0, len(info.Name))
	for lang := range info.Name {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	for lang := range info.Description {
		if _, ok := info.Name[lang]; !ok {
			langs = append(langs, lang)
		}
	}

	for _, lang := range langs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO holiday_translations (holiday_key, lang, name, description)
			VALUES (?, ?, ?, ?)
		`, info.Key, lang, info.Name[lang], info.Description[lang])
		if err != nil {
			return fmt.Errorf("insert %s translation for %q: %w", lang, info.Key, err)
		}
	}

	return nil
}

// UpsertHoliday stores one holiday in its own transaction.
func (db *DB) UpsertHoliday(ctx context.Context, info holiday.Info, position int) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		return tx.UpsertHoliday(ctx, info, position)
	})
}

// Seed upserts infos in one transaction, using their slice index as the
// catalog position. Nothing is written if any record is invalid.
func (db *DB) Seed(ctx context.Context, infos []holiday.Info) (int, error) {
	if _, err := holiday.NewCatalog(infos); err != nil {
		return 0, err
	}

	err := db.WithTx(ctx, func(tx *Tx) error {
		for i, info := range infos {
			if err := tx.UpsertHoliday(ctx, info, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Info("holiday catalog seeded", "holidays", len(infos))
	return len(infos), nil
}

// DeleteHoliday removes a holiday and its translations.
// Returns ErrNotFound if the key doesn't exist.
func (db *DB) DeleteHoliday(ctx context.Context, key string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM holidays WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// Holiday Reads
// =============================================================================

// GetHoliday retrieves one holiday by key.
// Returns ErrNotFound if the key doesn't exist.
func (db *DB) GetHoliday(ctx context.Context, key string) (*HolidayRecord, error) {
	query := `
		SELECT key, kind, month, day, tags, position, created_at, updated_at
		FROM holidays
		WHERE key = ?
	`

	rec, err := scanHoliday(db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query holiday %q: %w", key, err)
	}

	translations, err := db.translations(ctx, key)
	if err != nil {
		return nil, err
	}
	applyTranslations(rec, translations[key])

	return rec, nil
}

// ListHolidays returns every stored holiday in catalog order.
func (db *DB) ListHolidays(ctx context.Context) ([]HolidayRecord, error) {
	query := `
		SELECT key, kind, month, day, tags, position, created_at, updated_at
		FROM holidays
		ORDER BY position, key
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	var records []HolidayRecord
	for rows.Next() {
		rec, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("scan holiday row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holiday rows: %w", err)
	}

	translations, err := db.translations(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range records {
		applyTranslations(&records[i], translations[records[i].Key])
	}

	return records, nil
}

// LoadCatalog builds an in-memory catalog from the stored holidays.
// Returns ErrNotFound if the catalog is empty.
func (db *DB) LoadCatalog(ctx context.Context) (*holiday.MemoryCatalog, error) {
	records, err := db.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("holiday catalog is empty: %w", ErrNotFound)
	}

	infos := make([]holiday.Info, len(records))
	for i, rec := range records {
		infos[i] = rec.Info
	}

	catalog, err := holiday.NewCatalog(infos)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}

// Stats summarizes the stored catalog.
func (db *DB) Stats(ctx context.Context) (*CatalogStats, error) {
	stats := &CatalogStats{ByKind: make(map[holiday.Kind]int)}

	rows, err := db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM holidays GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("query holiday counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan holiday count: %w", err)
		}
		stats.ByKind[holiday.Kind(kind)] = n
		stats.Total += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holiday counts: %w", err)
	}

	langRows, err := db.QueryContext(ctx, `SELECT DISTINCT lang FROM holiday_translations ORDER BY lang`)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer langRows.Close()

	for langRows.Next() {
		var lang string
		if err := langRows.Scan(&lang); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		stats.Languages = append(stats.Languages, lang)
	}
	if err := langRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}

	var last sql.NullString
	err = db.QueryRowContext(ctx, `SELECT MAX(imported_at) FROM import_log WHERE success = 1`).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	stats.LastImport = parseTimestamp(last)

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHoliday(row rowScanner) (*HolidayRecord, error) {
	var rec HolidayRecord
	var kind, tagsJSON string
	var createdAt, updatedAt sql.NullString

	err := row.Scan(
		&rec.Key,
		&kind,
		&rec.Month,
		&rec.Day,
		&tagsJSON,
		&rec.Position,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Kind = holiday.Kind(kind)
	rec.Tags, err = UnmarshalTags(tagsJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal tags for %q: %w", rec.Key, err)
	}

	if t := parseTimestamp(createdAt); t != nil {
		rec.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAt); t != nil {
		rec.UpdatedAt = *t
	}

	return &rec, nil
}

type translation struct {
	lang, name, description string
}

// translations loads translations grouped by holiday key. An empty key
// loads every holiday's.
func (db *DB) translations(ctx context.Context, key string) (map[string][]translation, error) {
	query := `SELECT holiday_key, lang, name, description FROM holiday_translations`
	var args []any
	if key != "" {
		query += ` WHERE holiday_key = ?`
		args = append(args, key)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]translation)
	for rows.Next() {
		var k string
		var tr translation
		if err := rows.Scan(&k, &tr.lang, &tr.name, &tr.description); err != nil {
			return nil, fmt.Errorf("scan translation row: %w", err)
		}
		out[k] = append(out[k], tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translation rows: %w", err)
	}
	return out, nil
}

func applyTranslations(rec *HolidayRecord, trs []translation) {
	rec.Name = make(map[string]string, len(trs))
	rec.Description = make(map[string]string, len(trs))
	for _, tr := range trs {
		if tr.name != "" {
			rec.Name[tr.lang] = tr.name
		}
		if tr.description != "" {
			rec.Description[tr.lang] = tr.description
		}
	}
}

// =============================================================================
// Import Log
// =============================================================================

// LogImport records a catalog import attempt.
func (db *DB) LogImport(ctx context.Context, entry *ImportLogEntry) error {
	query := `
		INSERT INTO import_log (source, holidays, success, error_message, duration_ms)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		entry.Source,
		entry.Holidays,
		entry.Success,
		entry.ErrorMessage,
		entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("log import: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// RecentImports returns the latest import log entries, newest first.
func (db *DB) RecentImports(ctx context.Context, limit int) ([]ImportLogEntry, error) {
	query := `
		SELECT id, source, holidays, success, error_message, duration_ms, imported_at
		FROM import_log
		ORDER BY imported_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query import log: %w", err)
	}
	defer rows.Close()

	var entries []ImportLogEntry
	for rows.Next() {
		var entry ImportLogEntry
		var errorMessage, importedAt sql.NullString
		var durationMs sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.Source,
			&entry.Holidays,
			&entry.Success,
			&errorMessage,
			&durationMs,
			&importedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan import log row: %w", err)
		}

		if errorMessage.Valid {
			entry.ErrorMessage = &errorMessage.String
		}
		if durationMs.Valid {
			entry.DurationMs = &durationMs.Int64
		}
		if t := parseTimestamp(importedAt); t != nil {
			entry.ImportedAt = *t
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import log rows: %w", err)
	}

	return entries, nil
}
