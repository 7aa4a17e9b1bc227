package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/library/config"
	"github.com/project/library/db"
	"github.com/project/library/internal/controller"
	"github.com/project/library/internal/usecase/library"
	"github.com/project/library/internal/usecase/outbox"
	"github.com/project/library/internal/usecase/repository"
	"github.com/project/library/internal/usecase/repository/gormrepo"
	"go.uber.org/zap"
)

type outboxStore interface {
	library.OutboxRepository
	outbox.Repository
}

// storage bundles the repositories of one driver.
type storage struct {
	categories library.CategoriesRepository
	books      library.BooksRepository
	rentals    library.RentalsRepository
	outbox     outboxStore
	transactor repository.Transactor
	pinger     controller.Pinger
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	logRepo := layerLogger(cfg.Log.LogDBRepo, logger)
	logTransactor := layerLogger(cfg.Log.LogTransactor, logger)

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		gormDB, err := gormrepo.Open(cfg.Storage.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		if err = gormrepo.Migrate(gormDB); err != nil {
			_ = gormrepo.Close(gormDB)
			return nil, err
		}
		logger.Info("sqlite storage ready", zap.String("dsn", cfg.Storage.SQLiteDSN))

		store := gormrepo.New(logRepo, gormDB, cfg.Outbox.AttemptsRetry)
		return &storage{
			categories: store,
			books:      store,
			rentals:    store,
			outbox:     store,
			transactor: store,
			pinger:     store,
			close: func() {
				if err := gormrepo.Close(gormDB); err != nil {
					logger.Error("can not close sqlite", zap.Error(err))
				}
			},
		}, nil

	case config.DriverPostgres:
		dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
		if err != nil {
			return nil, fmt.Errorf("can not create pgxpool: %w", err)
		}
		if err = db.SetupPostgres(dbPool, logger); err != nil {
			dbPool.Close()
			return nil, err
		}

		repo := repository.New(logRepo, dbPool)
		return &storage{
			categories: repo,
			books:      repo,
			rentals:    repo,
			outbox:     repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry),
			transactor: repository.NewTransactor(logTransactor, dbPool),
			pinger:     dbPool,
			close:      dbPool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// layerLogger hands a layer the process logger only when its flag is on.
func layerLogger(enabled bool, logger *zap.Logger) *zap.Logger {
	if enabled {
		return logger
	}
	return nil
}
