package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/project/library/config"
	"github.com/project/library/internal/usecase/repository"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

type (
	GlobalHandler = func(kind repository.OutboxKind) (KindHandler, error)
	KindHandler   = func(ctx context.Context, data []byte) error

	Repository interface {
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	Outbox interface {
		Start(ctx context.Context, workers, batchSize int, waitTime, inProgressTTL time.Duration) *sync.WaitGroup
	}
)

var deliveredMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "library_outbox_messages_total",
	Help: "Outbox messages handled by the relay, by kind and result",
}, []string{"kind", "result"})

func init() {
	prometheus.MustRegister(deliveredMessages)
}

var _ Outbox = (*outboxImpl)(nil)

type outboxImpl struct {
	logger           *zap.Logger
	outboxRepository Repository
	globalHandler    GlobalHandler
	cfg              *config.Config
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	outboxRepository Repository,
	globalHandler GlobalHandler,
	cfg *config.Config,
	transactor Transactor,
) *outboxImpl {
	return &outboxImpl{
		logger:           logger,
		outboxRepository: outboxRepository,
		globalHandler:    globalHandler,
		cfg:              cfg,
		transactor:       transactor,
	}
}

// Start launches the relay workers. The returned group is done once every
// worker observed ctx cancellation.
func (o *outboxImpl) Start(
	ctx context.Context,
	workers int,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) *sync.WaitGroup {
	wg := new(sync.WaitGroup)

	for workerID := 1; workerID <= workers; workerID++ {
		wg.Add(1)
		go o.worker(ctx, wg, batchSize, waitTime, inProgressTTL)
	}

	return wg
}

func (o *outboxImpl) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(waitTime)
			select {
			case <-ctx.Done():
				return
			default:
				if !o.cfg.Outbox.Enabled {
					continue
				}

				err := o.iteration(ctx, batchSize, inProgressTTL)
				logger.CheckError(err, o.logger, "worker stage error", zap.Error(err))
			}
		}
	}
}

// iteration claims a batch in its own transaction and delivers it outside of
// it. A claim that is never marked expires after inProgressTTL.
func (o *outboxImpl) iteration(ctx context.Context, batchSize int, inProgressTTL time.Duration) error {
	var messages []repository.OutboxData

	err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
		var err error
		messages, err = o.outboxRepository.GetMessages(ctx, batchSize, inProgressTTL)
		return err
	})
	if logger.CheckError(err, o.logger, "can not fetch messages from outbox", zap.Error(err)) {
		return err
	}

	if len(messages) > 0 {
		logger.MakeInfo(o.logger, "messages fetched", zap.Int("size", len(messages)))
	}

	successKeys := make([]string, 0, len(messages))
	failKeys := make([]string, 0, len(messages))
	for _, message := range messages {
		key := message.IdempotencyKey
		kind := message.Kind.String()

		kindHandler, taskErr := o.globalHandler(message.Kind)

		if logger.CheckError(taskErr, o.logger, "unexpected kind", zap.String("key", key), zap.Error(taskErr)) {
			deliveredMessages.WithLabelValues(kind, "unsupported").Inc()
			failKeys = append(failKeys, key)
			continue
		}

		taskErr = kindHandler(ctx, message.RawData)

		if logger.CheckError(taskErr, o.logger, "kind error", zap.String("key", key), zap.Error(taskErr)) {
			deliveredMessages.WithLabelValues(kind, "failed").Inc()
			failKeys = append(failKeys, key)
			continue
		}

		deliveredMessages.WithLabelValues(kind, "delivered").Inc()
		successKeys = append(successKeys, key)
	}

	err = o.outboxRepository.MarkAs(ctx, successKeys, repository.Success)
	if logger.CheckError(err, o.logger, "Mark as 'Success' outbox error", zap.Error(err)) {
		return err
	}

	err = o.outboxRepository.MarkAs(ctx, failKeys, repository.Created)
	if logger.CheckError(err, o.logger, "Mark as 'Created' for fail task outbox error", zap.Error(err)) {
		return err
	}

	return nil
}
