package database

// migrationsSQL holds the schema migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1HolidayCatalog,
	2: migrationV2ImportLog,
}

// migrationV1HolidayCatalog creates the holiday catalog tables.
//
// Dates are never stored. A holiday row keeps the rule (kind plus month
// and day, or nothing for movable feasts) and the dates are computed per
// year at request time.
const migrationV1HolidayCatalog = `
-- ============================================================================
-- Table: holidays
-- ============================================================================
CREATE TABLE IF NOT EXISTS holidays (
    key TEXT PRIMARY KEY,

    -- fixed:   Ethiopian month/day
    -- hijri:   tabular Hijri month/day
    -- movable: offset from Nineveh, looked up by key
    kind TEXT NOT NULL CHECK (kind IN ('fixed', 'movable', 'hijri')),
    month INTEGER NOT NULL DEFAULT 0 CHECK (month BETWEEN 0 AND 13),
    day INTEGER NOT NULL DEFAULT 0 CHECK (day BETWEEN 0 AND 30),

    -- JSON array of tags, e.g. '["public","christian"]'
    tags TEXT NOT NULL DEFAULT '[]',

    -- Catalog order
    position INTEGER NOT NULL DEFAULT 0,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_holidays_position ON holidays(position, key);

-- ============================================================================
-- Table: holiday_translations
-- ============================================================================
CREATE TABLE IF NOT EXISTS holiday_translations (
    holiday_key TEXT NOT NULL REFERENCES holidays(key) ON DELETE CASCADE,
    lang TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',

    PRIMARY KEY (holiday_key, lang)
);
`

// migrationV2ImportLog records catalog imports.
const migrationV2ImportLog = `
CREATE TABLE IF NOT EXISTS import_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    holidays INTEGER NOT NULL DEFAULT 0,
    success INTEGER NOT NULL CHECK (success IN (0, 1)),
    error_message TEXT,
    duration_ms INTEGER,
    imported_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_import_log_imported_at ON import_log(imported_at);
`
