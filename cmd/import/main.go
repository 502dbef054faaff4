// Command import loads a holiday catalog YAML file into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -yaml data/holidays.yaml -db data/holidays.db
//
// Without -yaml the catalog embedded in the binary is imported.
//
// This tool:
// 1. Parses and validates the YAML catalog
// 2. Creates/opens the SQLite database and runs migrations
// 3. Upserts every holiday and its translations in a single transaction
// 4. Records the attempt in the import log
//
// The import is idempotent: holidays are keyed by their catalog key and
// re-importing replaces them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/database"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/logger"
)

func main() {
	yamlPath := flag.String("yaml", "", "Path to holiday catalog YAML (default: embedded catalog)")
	dbPath := flag.String("db", "data/holidays.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	if err := run(*yamlPath, *dbPath, log); err != nil {
		log.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("import complete")
}

func run(yamlPath, dbPath string, log *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and parse YAML
	// =========================================================================
	source := "embedded"
	data := holiday.DefaultYAML()
	if yamlPath != "" {
		source = yamlPath
		log.Info("reading YAML file", slog.String("path", yamlPath))

		var err error
		data, err = os.ReadFile(yamlPath)
		if err != nil {
			return fmt.Errorf("read YAML file: %w", err)
		}
	}

	infos, err := holiday.Decode(data)
	if err != nil {
		return err
	}
	log.Info("parsed catalog", slog.String("source", source), slog.Int("holidays", len(infos)))

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	log.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import in a transaction
	// =========================================================================
	imported, importErr := db.Seed(ctx, infos)

	elapsed := time.Since(startTime)
	ms := elapsed.Milliseconds()
	entry := &database.ImportLogEntry{
		Source:     source,
		Holidays:   imported,
		Success:    importErr == nil,
		DurationMs: &ms,
	}
	if importErr != nil {
		entry.ErrorMessage = database.StringPtr(importErr.Error())
	}
	if err := db.LogImport(ctx, entry); err != nil {
		log.Warn("failed to record import", slog.Any("error", err))
	}
	if importErr != nil {
		return fmt.Errorf("import holidays: %w", importErr)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	if _, err := db.LoadCatalog(ctx); err != nil {
		return fmt.Errorf("verify catalog: %w", err)
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("catalog stats: %w", err)
	}

	log.Info("import verified",
		slog.Int("holidays", stats.Total),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Holidays imported:   %d\n", imported)
	fmt.Printf("Holidays stored:     %d\n", stats.Total)
	fmt.Printf("  fixed:             %d\n", stats.ByKind[holiday.KindFixed])
	fmt.Printf("  movable:           %d\n", stats.ByKind[holiday.KindMovable])
	fmt.Printf("  hijri:             %d\n", stats.ByKind[holiday.KindHijri])
	fmt.Printf("Languages:           %s\n", strings.Join(stats.Languages, ", "))
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}
