package gormrepo

import (
	"context"
	"fmt"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/usecase/repository"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	_ repository.BooksRepository      = (*Store)(nil)
	_ repository.CategoriesRepository = (*Store)(nil)
	_ repository.RentalsRepository    = (*Store)(nil)
	_ repository.OutboxRepository     = (*Store)(nil)
	_ repository.Transactor           = (*Store)(nil)
)

// Store implements every repository on top of gorm. It is also its own
// transactor, so the transaction it opens is the one its queries join.
type Store struct {
	logger        *zap.Logger
	db            *gorm.DB
	attemptsRetry int
}

func New(logger *zap.Logger, db *gorm.DB, attemptsRetry int) *Store {
	return &Store{
		logger:        logger,
		db:            db,
		attemptsRetry: attemptsRetry,
	}
}

type txInjector struct{}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txInjector{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func (s *Store) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txInjector{}).(*gorm.DB); ok {
		return function(ctx)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := function(context.WithValue(ctx, txInjector{}, tx)); err != nil {
			return fmt.Errorf("function execution error: %w", err)
		}
		return nil
	})

	if _, rejected := entity.AsError(err); !rejected {
		logger.CheckError(err, s.logger, "transaction failed", zap.Error(err))
	}

	return err
}
