package library

import (
	"context"
	"testing"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()

	fiction := entity.Category{ID: 1, Name: "Fiction"}

	tests := []struct {
		name        string
		title       string
		categoryIDs []int64
		prepare     func(env *testEnv)
		kind        error
	}{
		{name: "valid create",
			title:       "Dune",
			categoryIDs: []int64{1, 1},
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategories(gomock.Any(), []int64{1}).Return([]entity.Category{fiction}, nil)
				env.books.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b entity.Book) (entity.Book, error) {
						b.ID = 1
						return b, nil
					})
				env.outbox.EXPECT().SendMessage(gomock.Any(), "book_created_1", repository.OutboxKindBook, gomock.Any()).Return(nil)
			}},

		{name: "blank title",
			title:       " ",
			categoryIDs: []int64{1},
			prepare:     func(*testEnv) {},
			kind:        entity.ErrInvalidRequest},

		{name: "no categories",
			title:   "Dune",
			prepare: func(*testEnv) {},
			kind:    entity.ErrInvalidRequest},

		{name: "missing category persists nothing",
			title:       "Dune",
			categoryIDs: []int64{1, 99},
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategories(gomock.Any(), []int64{1, 99}).Return([]entity.Category{fiction}, nil)
			},
			kind: entity.ErrNotFound},

		{name: "create with internal error",
			title:       "Dune",
			categoryIDs: []int64{1},
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategories(gomock.Any(), []int64{1}).Return([]entity.Category{fiction}, nil)
				env.books.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(entity.Book{}, errInternal)
			},
			kind: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := initTest(t)
			test.prepare(env)

			book, err := env.library.CreateBook(ctx, test.title, "Frank Herbert", test.categoryIDs)
			if test.kind != nil {
				require.ErrorIs(t, err, test.kind)
				require.Empty(t, book)
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(1), book.ID)
			require.Equal(t, entity.BookAvailable, book.Status)
			require.Equal(t, []entity.Category{fiction}, book.Categories)
		})
	}
}

func TestUpdateBookStatus(t *testing.T) {
	t.Parallel()

	const bookID = int64(1)

	tests := []struct {
		name    string
		status  entity.BookStatus
		prepare func(env *testEnv)
		kind    error
		reason  entity.Reason
	}{
		{name: "valid update",
			status: entity.BookUnavailable,
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(testBook(bookID, entity.BookAvailable), nil)
				env.rentals.EXPECT().ListActiveRentalsByBook(gomock.Any(), bookID).Return(nil, nil)
				env.books.EXPECT().UpdateBookStatus(gomock.Any(), bookID, entity.BookUnavailable).
					Return(testBook(bookID, entity.BookUnavailable), nil)
				env.outbox.EXPECT().SendMessage(gomock.Any(), gomock.Any(), repository.OutboxKindBook, gomock.Any()).Return(nil)
			}},

		{name: "unknown status",
			status:  "LOST",
			prepare: func(*testEnv) {},
			kind:    entity.ErrInvalidRequest,
			reason:  entity.ReasonInvalidField},

		{name: "unknown book",
			status: entity.BookUnavailable,
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(entity.Book{}, entity.BookNotFound(bookID))
			},
			kind:   entity.ErrNotFound,
			reason: entity.ReasonNotFound},

		{name: "active rental locks the status",
			status: entity.BookUnavailable,
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(testBook(bookID, entity.BookUnavailable), nil)
				env.rentals.EXPECT().ListActiveRentalsByBook(gomock.Any(), bookID).
					Return([]entity.Rental{testRental(2, bookID, entity.RentalBorrowed, testToday)}, nil)
			},
			kind:   entity.ErrResourceInUse,
			reason: entity.ReasonRentalActive},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := initTest(t)
			test.prepare(env)

			book, err := env.library.UpdateBookStatus(ctx, bookID, test.status)
			if test.kind != nil {
				require.ErrorIs(t, err, test.kind)
				requireReason(t, err, test.reason)
				require.Empty(t, book)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.status, book.Status)
		})
	}
}

func TestUpdateBookCategories(t *testing.T) {
	t.Parallel()

	const bookID = int64(1)
	science := entity.Category{ID: 2, Name: "Science"}
	history := entity.Category{ID: 3, Name: "History"}

	tests := []struct {
		name        string
		categoryIDs []int64
		prepare     func(env *testEnv)
		kind        error
	}{
		{name: "replace set",
			categoryIDs: []int64{3, 2},
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(testBook(bookID, entity.BookAvailable), nil)
				env.categories.EXPECT().GetCategories(gomock.Any(), []int64{3, 2}).Return([]entity.Category{science, history}, nil)
				env.books.EXPECT().ReplaceBookCategories(gomock.Any(), bookID, []int64{2, 3}).Return(nil)
			}},

		{name: "empty set",
			prepare: func(*testEnv) {},
			kind:    entity.ErrInvalidRequest},

		{name: "unknown book",
			categoryIDs: []int64{2},
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(entity.Book{}, entity.BookNotFound(bookID))
			},
			kind: entity.ErrNotFound},

		{name: "unknown category keeps old set",
			categoryIDs: []int64{2, 99},
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBookForUpdate(gomock.Any(), bookID).Return(testBook(bookID, entity.BookAvailable), nil)
				env.categories.EXPECT().GetCategories(gomock.Any(), []int64{2, 99}).Return([]entity.Category{science}, nil)
			},
			kind: entity.ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := initTest(t)
			test.prepare(env)

			book, err := env.library.UpdateBookCategories(ctx, bookID, test.categoryIDs)
			if test.kind != nil {
				require.ErrorIs(t, err, test.kind)
				require.Empty(t, book)
				return
			}

			require.NoError(t, err)
			require.Equal(t, []entity.Category{science, history}, book.Categories)
		})
	}
}

func TestSearchBooksNormalizesFilter(t *testing.T) {
	t.Parallel()

	ctx, env := initTest(t)
	env.books.EXPECT().SearchBooks(gomock.Any(), entity.BookFilter{Title: "dune", Category: "Fiction"}).
		Return([]entity.Book{testBook(1, entity.BookAvailable)}, nil)

	books, err := env.library.SearchBooks(ctx, entity.BookFilter{Title: " dune ", Author: "  ", Category: "Fiction"})
	require.NoError(t, err)
	require.Len(t, books, 1)
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	ctx, env := initTest(t)
	env.books.EXPECT().GetBook(gomock.Any(), int64(9)).Return(entity.Book{}, entity.BookNotFound(9))
	env.books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(testBook(1, entity.BookAvailable), nil)

	_, err := env.library.GetBook(ctx, 9)
	require.ErrorIs(t, err, entity.ErrNotFound)

	book, err := env.library.GetBook(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, testBook(1, entity.BookAvailable), book)
}
