package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/zapponejosh/bahire-hasab/internal/database"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openDB(t *testing.T, path string) *database.DB {
	t.Helper()

	db, err := database.Open(database.DefaultConfig(path), quietLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun_EmbeddedCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "holidays.db")

	if err := run("", dbPath, quietLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	// Re-importing replaces rather than duplicates.
	if err := run("", dbPath, quietLogger()); err != nil {
		t.Fatalf("second run() error = %v", err)
	}

	db := openDB(t, dbPath)
	ctx := context.Background()

	stats, err := db.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != holiday.Default().Len() {
		t.Errorf("Total = %d, want %d", stats.Total, holiday.Default().Len())
	}

	imports, err := db.RecentImports(ctx, 10)
	if err != nil {
		t.Fatalf("RecentImports() error = %v", err)
	}
	if len(imports) != 2 {
		t.Fatalf("got %d import log entries, want 2", len(imports))
	}
	if !imports[0].Success || imports[0].Source != "embedded" {
		t.Errorf("latest import = %+v, want successful embedded import", imports[0])
	}
}

func TestRun_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "holidays.yaml")
	dbPath := filepath.Join(dir, "holidays.db")

	data := `holidays:
  - key: meskel
    kind: fixed
    month: 1
    day: 17
    tags: [public, religious, christian]
    name:
      en: Finding of the True Cross
      am: መስቀል
`
	if err := os.WriteFile(yamlPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(yamlPath, dbPath, quietLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	db := openDB(t, dbPath)
	rec, err := db.GetHoliday(context.Background(), "meskel")
	if err != nil {
		t.Fatalf("GetHoliday() error = %v", err)
	}
	if rec.Month != 1 || rec.Day != 17 {
		t.Errorf("meskel = %d/%d, want 1/17", rec.Month, rec.Day)
	}
}

func TestRun_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(yamlPath, []byte("holidays:\n  - key: nope\n    kind: lunar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(yamlPath, filepath.Join(dir, "holidays.db"), quietLogger()); err == nil {
		t.Error("run() expected error for invalid catalog")
	}

	if err := run(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "holidays.db"), quietLogger()); err == nil {
		t.Error("run() expected error for missing file")
	}
}
