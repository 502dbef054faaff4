package database

import (
	"encoding/json"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/holiday"
)

// HolidayRecord is a stored holiday with its catalog position and audit
// timestamps.
type HolidayRecord struct {
	holiday.Info
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImportLogEntry records one catalog import.
type ImportLogEntry struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	Holidays     int       `json:"holidays"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	DurationMs   *int64    `json:"duration_ms,omitempty"`
	ImportedAt   time.Time `json:"imported_at"`
}

// CatalogStats summarizes the stored catalog.
type CatalogStats struct {
	Total      int                  `json:"total"`
	ByKind     map[holiday.Kind]int `json:"by_kind"`
	Languages  []string             `json:"languages"`
	LastImport *time.Time           `json:"last_import,omitempty"`
}

// MarshalTags encodes tags for the holidays.tags column.
func MarshalTags(tags []holiday.Tag) (string, error) {
	if tags == nil {
		tags = []holiday.Tag{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalTags decodes the holidays.tags column.
func UnmarshalTags(data string) ([]holiday.Tag, error) {
	if data == "" || data == "null" {
		return []holiday.Tag{}, nil
	}
	var tags []holiday.Tag
	if err := json.Unmarshal([]byte(data), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// StringPtr returns a pointer to s, or nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
