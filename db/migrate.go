package db

import (
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// SetupPostgres applies every pending migration through a database/sql
// handle borrowed from the pool.
func SetupPostgres(pool *pgxpool.Pool, logger *zap.Logger) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("can not close migration connection", zap.Error(err))
		}
	}()

	if err := goose.Up(sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("can not apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("can not read schema version: %w", err)
	}
	logger.Info("migrations applied", zap.Int64("version", version))

	return nil
}
