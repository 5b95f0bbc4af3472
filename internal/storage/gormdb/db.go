package gormdb

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openPostgres connects to the Postgres instance named in config.
func (b *Backend) openPostgres() (*gorm.DB, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		viper.GetString("db.host"),
		viper.GetString("db.port"),
		viper.GetString("db.username"),
		viper.GetString("db.password"),
		viper.GetString("db.database"),
	)

	b.Logger.Debug().Msgf("Connecting to Postgres DB at '%s'", dsn)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// openSqlite connects to a SQLite database at path, or an in-memory one
// when path is empty.
func (b *Backend) openSqlite(path string) (*gorm.DB, error) {
	dsn := "file::memory:?cache=shared"
	if path != "" {
		dsn = path
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %s", err)
		}
	}

	if path != "" {
		b.Logger.Info().Str("path", path).Msg("Using local SQLite DB")
	} else {
		b.Logger.Info().Msg("Using in-memory SQLite DB")
	}

	return db, nil
}

// connect opens Postgres and falls back to SQLite when it is unreachable,
// so the live feed keeps recording locally through dashboard outages.
func (b *Backend) connect() error {
	db, err := b.openPostgres()
	if err == nil {
		if sqlDB, derr := db.DB(); derr == nil {
			if perr := sqlDB.Ping(); perr == nil {
				sqlDB.SetMaxOpenConns(10)
				b.db = db
				return nil
			} else {
				err = perr
			}
		} else {
			err = derr
		}
	}

	b.Logger.Error().Err(err).Msg("Failed to connect to Postgres DB, trying SQLite")
	b.local = true
	db, err = b.openSqlite(b.SqlitePath)
	if err != nil {
		return fmt.Errorf("failed to get local SQLite DB: %s", err)
	}
	b.db = db
	return nil
}
