package app

import (
	"database/sql"
	"time"

	"github.com/guttosm/trainpulse/config"
	"github.com/guttosm/trainpulse/internal/logger"
	"github.com/guttosm/trainpulse/internal/storage"
)

// openTargetStore returns the store named by cfg.Store. Anything other than
// sqlite keeps the targets in the Postgres settings table.
func openTargetStore(cfg config.TargetsConfig, db *sql.DB) (storage.TargetStore, error) {
	if cfg.Store == config.TargetStoreSQLite {
		return storage.OpenSQLiteTargetStore(cfg.SQLitePath)
	}
	return storage.NewPostgresTargetStore(db), nil
}

func storeName(s string) string {
	if s == config.TargetStoreSQLite {
		return s
	}
	return config.TargetStorePostgres
}

// loadLocation falls back to UTC when name is empty or unknown.
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Component("app").Warn().Str("timezone", name).Err(err).Msg("unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}
