package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/GumbaTW/DDNet-LB/internal/config"
	"github.com/GumbaTW/DDNet-LB/internal/constants"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Open opens the source database read-only. A missing file is a fatal
// precondition failure, never an implicit create. The handle is closed when
// the app stops, even if a later stage fails.
func Open(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		logger.Error().Str("path", cfg.DBPath).Msg("database file not found")
		return nil, fmt.Errorf("database file not found: %s", cfg.DBPath)
	}

	logger.Info().Str("path", cfg.DBPath).Msg("opening database read-only")

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", cfg.DBPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One session for the whole run.
	db.SetMaxOpenConns(1)

	if err := tuneSQLite(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to tune SQLite: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database")
				return err
			}
			logger.Debug().Msg("database closed")
			return nil
		},
	})

	return db, nil
}

func tuneSQLite(db *sql.DB, logger zerolog.Logger) error {
	pragmas := []struct {
		name  string
		value string
	}{
		{"query_only", "ON"},
		{"busy_timeout", fmt.Sprintf("%d", constants.DBBusyTimeoutMS)},
		{"cache_size", fmt.Sprintf("-%d", constants.DBCacheSizeKB)},
		{"temp_store", "MEMORY"},
		{"mmap_size", fmt.Sprintf("%d", constants.DBMmapSize)},
	}

	for _, pragma := range pragmas {
		query := fmt.Sprintf("PRAGMA %s = %s", pragma.name, pragma.value)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to set PRAGMA %s: %w", pragma.name, err)
		}
		logger.Debug().
			Str("pragma", pragma.name).
			Str("value", pragma.value).
			Msg("SQLite pragma set")
	}

	return nil
}

// Init creates the maps/race/teamrace schema at path via the embedded goose
// migrations. Used by the initdb command and by tests building fixtures.
func Init(path string, logger zerolog.Logger) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	logger.Info().Str("path", path).Msg("schema created")
	return nil
}
