package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

const (
	ErrForeignKeyViolation = "23503"
	ErrUniqueViolation     = "23505"
)

const constraintOneActiveRental = "rental_one_active_per_book"

type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Pool is the subset of *pgxpool.Pool the repositories need.
type Pool interface {
	DataBase
	GetterTx
}

var (
	_ BooksRepository      = (*postgresRepository)(nil)
	_ CategoriesRepository = (*postgresRepository)(nil)
	_ RentalsRepository    = (*postgresRepository)(nil)
)

type postgresRepository struct {
	logger *zap.Logger
	db     Pool
}

func New(logger *zap.Logger, db Pool) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// conn returns the transaction stored in ctx, or the pool when there is none.
func (p *postgresRepository) conn(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

// inTx runs fn inside the caller's transaction, or inside a short-lived one
// when the caller did not open any.
func (p *postgresRepository) inTx(ctx context.Context, fn func(q DataBase) error) (err error) {
	if tx, txErr := extractTx(ctx); txErr == nil {
		return fn(tx)
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			rbErr := tx.Rollback(ctx)
			logger.CheckError(rbErr, p.logger, "failed rollback of tx", zap.Error(rbErr))
			return
		}
		err = tx.Commit(ctx)
	}()

	return fn(tx)
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func collect[T any](rows pgx.Rows, scan func(row pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}
