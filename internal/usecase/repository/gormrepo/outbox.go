package gormrepo

import (
	"context"
	"time"

	"github.com/project/library/internal/usecase/repository"
	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

func (s *Store) SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error {
	model := outboxModel{
		IdempotencyKey: idempotencyKey,
		Data:           message,
		Status:         repository.Created.String(),
		Kind:           int(kind),
	}

	return s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
}

// GetMessages claims up to batchSize rows that are new or whose claim expired.
func (s *Store) GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error) {
	var claimed []outboxModel

	err := s.WithTx(ctx, func(ctx context.Context) error {
		now := s.db.NowFunc()

		err := s.conn(ctx).
			Where("status = ? OR (status = ? AND updated_at < ?)",
				repository.Created.String(), repository.InProgress.String(), now.Add(-inProgressTTL)).
			Order("created_at").
			Limit(batchSize).
			Find(&claimed).Error
		if err != nil || len(claimed) == 0 {
			return err
		}

		keys := lo.Map(claimed, func(m outboxModel, _ int) string { return m.IdempotencyKey })

		return s.conn(ctx).Model(&outboxModel{}).
			Where("idempotency_key IN ?", keys).
			Updates(map[string]any{"status": repository.InProgress.String(), "updated_at": now}).Error
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(claimed, func(m outboxModel, _ int) repository.OutboxData {
		return repository.OutboxData{
			IdempotencyKey: m.IdempotencyKey,
			Kind:           repository.OutboxKind(m.Kind),
			RawData:        m.Data,
		}
	}), nil
}

// MarkAs follows the same attempt accounting as the PostgreSQL outbox: a row
// sent back to CREATED too many times is abandoned.
func (s *Store) MarkAs(ctx context.Context, idempotencyKeys []string, status repository.Status) error {
	if len(idempotencyKeys) == 0 {
		return nil
	}

	const query = `
UPDATE outbox
SET
    status = CASE
        WHEN status = 'IN_PROGRESS' AND @status = 'CREATED' AND attempts + 1 > @retry THEN 'ABANDONED'
        ELSE @status
    END,
    attempts = CASE
        WHEN status = 'IN_PROGRESS' AND (@status = 'CREATED' OR @status = 'SUCCESS') THEN attempts + 1
        ELSE attempts
    END,
    updated_at = @now
WHERE idempotency_key IN @keys
`
	return s.conn(ctx).Exec(query, map[string]any{
		"status": status.String(),
		"retry":  s.attemptsRetry,
		"now":    s.db.NowFunc(),
		"keys":   idempotencyKeys,
	}).Error
}
