package gormrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to SQLite. The DSN should enable foreign keys, e.g.
// "file:library.db?_foreign_keys=1&_busy_timeout=5000".
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("can not open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one connection serializes every transaction.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates the schema, including the partial index that keeps one
// active rental per book.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&categoryModel{},
		&bookModel{},
		&bookCategoryModel{},
		&rentalModel{},
		&outboxModel{},
	); err != nil {
		return fmt.Errorf("can not migrate sqlite schema: %w", err)
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS rental_one_active_per_book ON rental(book_id) WHERE status IN ('BORROWED', 'OVERDUE')`,
		`CREATE INDEX IF NOT EXISTS rental_status_due_date_idx ON rental(status, due_date)`,
		`CREATE INDEX IF NOT EXISTS outbox_status_created_at_idx ON outbox(status, created_at)`,
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
