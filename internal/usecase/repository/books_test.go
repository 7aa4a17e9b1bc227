package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/library/internal/entity"
	"github.com/stretchr/testify/require"
)

var (
	bookColumnNames     = []string{"id", "title", "author", "status", "created_at", "updated_at"}
	bookCategoryColumns = []string{"book_id", "id", "name", "created_at", "updated_at"}
)

func testBook() entity.Book {
	return entity.Book{
		ID:     1,
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: entity.BookAvailable,
		Categories: []entity.Category{
			{ID: 1, Name: "Fiction", CreatedAt: testTime, UpdatedAt: testTime},
			{ID: 2, Name: "Science Fiction", CreatedAt: testTime, UpdatedAt: testTime},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func expectBookRow(mock pgxmock.PgxPoolIface, pattern string, book entity.Book) {
	mock.ExpectQuery(pattern).WithArgs(book.ID).
		WillReturnRows(pgxmock.NewRows(bookColumnNames).
			AddRow(book.ID, book.Title, book.Author, book.Status, book.CreatedAt, book.UpdatedAt))
}

func expectCategoriesOf(mock pgxmock.PgxPoolIface, books ...entity.Book) {
	ids := make([]int64, 0, len(books))
	rows := pgxmock.NewRows(bookCategoryColumns)
	for _, b := range books {
		ids = append(ids, b.ID)
		for _, c := range b.Categories {
			rows.AddRow(b.ID, c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
		}
	}
	mock.ExpectQuery(`FROM book_category bc`).WithArgs(ids).WillReturnRows(rows)
}

func Test_postgresRepository_CreateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		errL       errLayer
		errRequire error
	}{
		{name: "ok own transaction", txL: none, errL: null},
		{name: "ok caller transaction", txL: extract, errL: null},
		{name: "missing category", txL: none, errL: db, errRequire: entity.ErrNotFound},
		{name: "insert failure", txL: none, errL: scan, errRequire: errInternal},
		{name: "commit failure", txL: none, errL: commitTx, errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			ctx := context.Background()

			want := testBook()

			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			} else {
				mock.ExpectBegin()
			}

			insert := mock.ExpectQuery(`INSERT INTO book`).WithArgs(want.Title, want.Author, string(want.Status))
			if tt.errL == scan {
				insert.WillReturnError(errInternal)
				mock.ExpectRollback()
			} else {
				insert.WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(want.ID, testTime, testTime))

				link := mock.ExpectExec(`INSERT INTO book_category`).WithArgs(want.ID, []int64{1, 2})
				if tt.errL == db {
					link.WillReturnError(&pgconn.PgError{Code: ErrForeignKeyViolation})
					mock.ExpectRollback()
				} else {
					link.WillReturnResult(pgxmock.NewResult("INSERT", 2))
					if tt.txL == none {
						commit := mock.ExpectCommit()
						if tt.errL == commitTx {
							commit.WillReturnError(errInternal)
						}
					}
				}
			}

			repo := New(nil, mock)
			book, err := repo.CreateBook(ctx, entity.Book{
				Title:      want.Title,
				Author:     want.Author,
				Status:     want.Status,
				Categories: want.Categories,
			})

			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				require.Equal(t, entity.Book{}, book)
				return
			}
			require.NoError(t, err)
			require.Equal(t, want, book)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_GetBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		forUpdate  bool
		found      bool
		errRequire error
	}{
		{name: "ok", found: true},
		{name: "ok locked", forUpdate: true, found: true},
		{name: "not found", found: false, errRequire: entity.ErrNotFound},
		{name: "not found locked", forUpdate: true, found: false, errRequire: entity.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)

			want := testBook()
			pattern := `FROM book b\s+WHERE b.id = \$1`
			if tt.forUpdate {
				pattern += `\s+FOR UPDATE`
			}

			if tt.found {
				expectBookRow(mock, pattern, want)
				expectCategoriesOf(mock, want)
			} else {
				mock.ExpectQuery(pattern).WithArgs(want.ID).WillReturnRows(pgxmock.NewRows(bookColumnNames))
			}

			repo := New(nil, mock)
			var book entity.Book
			if tt.forUpdate {
				book, err = repo.GetBookForUpdate(context.Background(), want.ID)
			} else {
				book, err = repo.GetBook(context.Background(), want.ID)
			}

			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				return
			}
			require.NoError(t, err)
			require.Equal(t, want, book)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_ListBooksByCategory(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	first := testBook()
	second := testBook()
	second.ID = 2
	second.Title = "Hyperion"
	second.Categories = nil

	mock.ExpectQuery(`WHERE bc.category_id = \$1`).WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(bookColumnNames).
			AddRow(first.ID, first.Title, first.Author, first.Status, testTime, testTime).
			AddRow(second.ID, second.Title, second.Author, second.Status, testTime, testTime))
	expectCategoriesOf(mock, first, second)

	books, err := New(nil, mock).ListBooksByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, first.Categories, books[0].Categories)
	require.Equal(t, []entity.Category{}, books[1].Categories)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_ListBooksEmpty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	mock.ExpectQuery(`FROM book b\s+ORDER BY b.id`).WillReturnRows(pgxmock.NewRows(bookColumnNames))

	books, err := New(nil, mock).ListBooks(context.Background())
	require.NoError(t, err)
	require.Empty(t, books)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_UpdateBookStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	want := testBook()
	want.Status = entity.BookUnavailable

	mock.ExpectQuery(`UPDATE book b`).WithArgs(string(entity.BookUnavailable), want.ID).
		WillReturnRows(pgxmock.NewRows(bookColumnNames).
			AddRow(want.ID, want.Title, want.Author, want.Status, testTime, testTime))
	expectCategoriesOf(mock, want)

	mock.ExpectQuery(`UPDATE book b`).WithArgs(string(entity.BookUnavailable), int64(42)).
		WillReturnRows(pgxmock.NewRows(bookColumnNames))

	repo := New(nil, mock)

	book, err := repo.UpdateBookStatus(context.Background(), want.ID, entity.BookUnavailable)
	require.NoError(t, err)
	require.Equal(t, want, book)

	_, err = repo.UpdateBookStatus(context.Background(), 42, entity.BookUnavailable)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_ReplaceBookCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		categoryIDs []int64
		errL        errLayer
		errRequire  error
	}{
		{name: "replace with new set", categoryIDs: []int64{3, 4}, errL: null},
		{name: "delete fails", categoryIDs: []int64{3}, errL: db, errRequire: errInternal},
		{name: "category vanished", categoryIDs: []int64{3}, errL: callback, errRequire: entity.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)

			mock.ExpectBegin()
			del := mock.ExpectExec(`DELETE FROM book_category`).WithArgs(int64(1))
			switch tt.errL {
			case db:
				del.WillReturnError(errInternal)
				mock.ExpectRollback()
			case callback:
				del.WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectExec(`INSERT INTO book_category`).WithArgs(int64(1), tt.categoryIDs).
					WillReturnError(&pgconn.PgError{Code: ErrForeignKeyViolation})
				mock.ExpectRollback()
			default:
				del.WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectExec(`INSERT INTO book_category`).WithArgs(int64(1), tt.categoryIDs).
					WillReturnResult(pgxmock.NewResult("INSERT", int64(len(tt.categoryIDs))))
				mock.ExpectCommit()
			}

			err = New(nil, mock).ReplaceBookCategories(context.Background(), 1, tt.categoryIDs)
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
