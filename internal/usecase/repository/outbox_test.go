package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

const attemptsRetry = 3

var (
	borrowedEvent = []byte(`{"event":"rental.borrowed","rental_id":1,"book_id":1}`)
	createdEvent  = []byte(`{"event":"book.created","book_id":2}`)
)

func Test_outboxRepository_SendMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		kind       OutboxKind
		message    []byte
		txL        txLayer
		errRequire error
	}{
		{name: "rental event joins the caller transaction",
			key: "rental_borrowed_1", kind: OutboxKindRental, message: borrowedEvent, txL: extract},

		{name: "book event on the pool",
			key: "book_created_2", kind: OutboxKindBook, message: createdEvent, txL: none},

		{name: "failure inside the caller transaction",
			key: "rental_borrowed_1", kind: OutboxKindRental, message: borrowedEvent, txL: extract,
			errRequire: errInternal},

		{name: "failure on the pool",
			key: "book_created_2", kind: OutboxKindBook, message: createdEvent, txL: none,
			errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx, target := context.Background(), pool
			if tt.txL == extract {
				ctx, target = callerTx(t)
			}

			expected := target.ExpectExec(`INSERT INTO outbox`).WithArgs(tt.key, tt.message, tt.kind)
			if tt.errRequire != nil {
				expected.WillReturnError(tt.errRequire)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err = NewOutbox(pool, attemptsRetry).SendMessage(ctx, tt.key, tt.kind, tt.message)
			require.ErrorIs(t, err, tt.errRequire)
			require.NoError(t, target.ExpectationsWereMet())
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func Test_outboxRepository_SendMessageDuplicateKey(t *testing.T) {
	t.Parallel()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)

	pool.ExpectExec(`ON CONFLICT \(idempotency_key\) DO NOTHING`).
		WithArgs("rental_returned_1", borrowedEvent, OutboxKindRental).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = NewOutbox(pool, attemptsRetry).SendMessage(context.Background(), "rental_returned_1", OutboxKindRental, borrowedEvent)
	require.NoError(t, err)
	require.NoError(t, pool.ExpectationsWereMet())
}

func Test_outboxRepository_GetMessages(t *testing.T) {
	t.Parallel()

	claimed := []OutboxData{
		{IdempotencyKey: "rental_borrowed_1", Kind: OutboxKindRental, RawData: borrowedEvent},
		{IdempotencyKey: "book_created_2", Kind: OutboxKindBook, RawData: createdEvent},
	}

	tests := []struct {
		name       string
		batchSize  int
		ttl        time.Duration
		interval   string
		want       []OutboxData
		txL        txLayer
		errL       errLayer
		errRequire error
	}{
		{name: "claim inside the worker transaction",
			batchSize: 2, ttl: 30 * time.Second, interval: "30000 ms",
			want: claimed, txL: extract},

		{name: "claim on the pool",
			batchSize: 10, ttl: time.Second, interval: "1000 ms",
			want: claimed, txL: none},

		{name: "nothing to claim",
			batchSize: 10, ttl: time.Second, interval: "1000 ms",
			want: []OutboxData{}, txL: none},

		{name: "query fails",
			batchSize: 10, ttl: time.Second, interval: "1000 ms",
			txL: extract, errL: db, errRequire: errInternal},

		{name: "row does not scan",
			batchSize: 10, ttl: time.Second, interval: "1000 ms",
			txL: none, errL: scan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx, target := context.Background(), pool
			if tt.txL == extract {
				ctx, target = callerTx(t)
			}

			expected := target.ExpectQuery(`FOR UPDATE SKIP LOCKED`).WithArgs(tt.interval, tt.batchSize)
			switch tt.errL {
			case db:
				expected.WillReturnError(tt.errRequire)
			case scan:
				expected.WillReturnRows(pgxmock.NewRows([]string{"idempotency_key", "data", "kind"}).
					AddRow(-1, -1, -1))
			default:
				rows := pgxmock.NewRows([]string{"idempotency_key", "data", "kind"})
				for _, m := range tt.want {
					rows.AddRow(m.IdempotencyKey, m.RawData, m.Kind)
				}
				expected.WillReturnRows(rows)
			}

			messages, err := NewOutbox(pool, attemptsRetry).GetMessages(ctx, tt.batchSize, tt.ttl)
			require.NoError(t, target.ExpectationsWereMet())

			switch {
			case tt.errL == scan:
				require.Error(t, err)
				require.Nil(t, messages)
			case tt.errRequire != nil:
				require.ErrorIs(t, err, tt.errRequire)
				require.Nil(t, messages)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, messages)
			}
		})
	}
}

func Test_outboxRepository_MarkAs(t *testing.T) {
	t.Parallel()

	keys := []string{"rental_borrowed_1", "book_created_2"}

	tests := []struct {
		name       string
		keys       []string
		status     Status
		txL        txLayer
		errRequire error
	}{
		{name: "delivered batch", keys: keys, status: Success, txL: none},
		{name: "failed batch goes back for a retry", keys: keys, status: Created, txL: none},
		{name: "inside a transaction", keys: keys, status: Success, txL: extract},
		{name: "update fails", keys: keys, status: Success, txL: none, errRequire: errInternal},
		{name: "empty batch touches nothing", keys: []string{}, status: Success, txL: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx, target := context.Background(), pool
			if tt.txL == extract {
				ctx, target = callerTx(t)
			}

			if len(tt.keys) > 0 {
				expected := target.ExpectExec(`UPDATE outbox`).WithArgs(tt.status.String(), tt.keys, attemptsRetry)
				if tt.errRequire != nil {
					expected.WillReturnError(tt.errRequire)
				} else {
					expected.WillReturnResult(pgxmock.NewResult("UPDATE", int64(len(tt.keys))))
				}
			}

			err = NewOutbox(pool, attemptsRetry).MarkAs(ctx, tt.keys, tt.status)
			require.ErrorIs(t, err, tt.errRequire)
			require.NoError(t, target.ExpectationsWereMet())
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "CREATED", Created.String())
	require.Equal(t, "IN_PROGRESS", InProgress.String())
	require.Equal(t, "SUCCESS", Success.String())
	require.Equal(t, "ABANDONED", Abandoned.String())
	require.Panics(t, func() { _ = Status(42).String() })
}
