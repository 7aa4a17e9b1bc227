package library

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/usecase/library/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	errInternal = errors.New("internal error")
	testNow     = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	testToday   = entity.DateOf(testNow)
	testMarked  = testNow.Add(time.Second)
)

// markedAt is what the store answers when it moved every id to OVERDUE.
func markedAt(ids ...int64) map[int64]time.Time {
	marked := make(map[int64]time.Time, len(ids))
	for _, id := range ids {
		marked[id] = testMarked
	}
	return marked
}

type testEnv struct {
	categories *mocks.MockCategoriesRepository
	books      *mocks.MockBooksRepository
	rentals    *mocks.MockRentalsRepository
	outbox     *mocks.MockOutboxRepository
	library    *libraryImpl
}

// initTest wires a library over strict mocks. The transactor runs the
// function in place, so expectations set on repositories cover the whole
// transaction body.
func initTest(t *testing.T, opts ...Option) (context.Context, *testEnv) {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		categories: mocks.NewMockCategoriesRepository(ctrl),
		books:      mocks.NewMockBooksRepository(ctrl),
		rentals:    mocks.NewMockRentalsRepository(ctrl),
		outbox:     mocks.NewMockOutboxRepository(ctrl),
	}

	transactor := mocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, function func(context.Context) error) error {
			return function(ctx)
		}).AnyTimes()

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	env.library = New(logger, env.categories, env.books, env.rentals, env.outbox, transactor, opts...)

	return context.Background(), env
}

func testBook(id int64, status entity.BookStatus) entity.Book {
	return entity.Book{
		ID:         id,
		Title:      "Dune",
		Author:     "Frank Herbert",
		Status:     status,
		Categories: []entity.Category{{ID: 1, Name: "Fiction"}},
	}
}

func testRental(id, bookID int64, status entity.RentalStatus, due time.Time) entity.Rental {
	return entity.Rental{
		ID:        id,
		BookID:    bookID,
		BookTitle: "Dune",
		DueDate:   entity.DateOf(due),
		Status:    status,
	}
}

func requireReason(t *testing.T, err error, reason entity.Reason) {
	t.Helper()
	e, ok := entity.AsError(err)
	require.True(t, ok, "expected *entity.Error, got %v", err)
	require.Equal(t, reason, e.Reason)
}
