package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/logger"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the database selected by cfg.Database.Driver.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
		level = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.NewGormLogger(level)}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		log.Info().Str("path", cfg.Database.Path).Msg("Connecting to sqlite database")
		return OpenSQLite(cfg.Database.Path, gormCfg)
	case config.DriverPostgres:
		log.Info().
			Str("host", cfg.Database.Host).
			Str("port", cfg.Database.Port).
			Str("name", cfg.Database.Name).
			Msg("Connecting to postgres database")
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// OpenSQLite opens (creating if needed) a sqlite database file. A single
// connection is used since sqlite serializes writers anyway.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: logger.NewGormLogger(gormlogger.Silent)}
	}
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
