package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// txLayer says whether the statement runs on the pool or on a transaction
// the caller keeps in the context.
type txLayer uint

const (
	none txLayer = iota
	extract
)

// errLayer picks the step a test case breaks.
type errLayer uint

const (
	null errLayer = iota
	db
	scan
	callback
	beginTx
	commitTx
	rollBackTx
)

var errInternal = errors.New("internal error")

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	return context.WithValue(ctx, txInjector{}, tx)
}

// callerTx keeps a transaction of a separate mock pool in the context. A
// repository that ignores it and goes to its own pool hits a mock with no
// expectations and fails.
func callerTx(t *testing.T) (context.Context, pgxmock.PgxPoolIface) {
	t.Helper()

	txMock, err := pgxmock.NewPool()
	require.NoError(t, err)

	return insertTxInMock(context.Background(), txMock), txMock
}
