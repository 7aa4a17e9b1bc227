package controller

import (
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/library/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		prepare func(env *testEnv)
		status  int
		code    string
		field   string
	}{
		{name: "valid create",
			body: `{"title":"Dune","author":"Frank Herbert","categoryIds":[1]}`,
			prepare: func(env *testEnv) {
				env.books.EXPECT().CreateBook(gomock.Any(), "Dune", "Frank Herbert", []int64{1}).
					Return(testBook(1, entity.BookAvailable), nil)
			},
			status: http.StatusCreated},

		{name: "no categories",
			body:    `{"title":"Dune","author":"Frank Herbert","categoryIds":[]}`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation,
			field:   "categoryIds"},

		{name: "non positive category id",
			body:    `{"title":"Dune","author":"Frank Herbert","categoryIds":[0]}`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation,
			field:   "categoryIds[0]"},

		{name: "missing author",
			body:    `{"title":"Dune","categoryIds":[1]}`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation,
			field:   "author"},

		{name: "blank title rejected by the use case",
			body: `{"title":"  ","author":"Frank Herbert","categoryIds":[1]}`,
			prepare: func(env *testEnv) {
				env.books.EXPECT().CreateBook(gomock.Any(), "  ", "Frank Herbert", []int64{1}).
					Return(entity.Book{}, entity.InvalidInput(entity.ResourceBook, validation.Errors{"title": validation.ErrRequired}))
			},
			status: http.StatusBadRequest,
			code:   codeValidation,
			field:  "title"},

		{name: "unknown category",
			body: `{"title":"Dune","author":"Frank Herbert","categoryIds":[1,99]}`,
			prepare: func(env *testEnv) {
				env.books.EXPECT().CreateBook(gomock.Any(), "Dune", "Frank Herbert", []int64{1, 99}).
					Return(entity.Book{}, entity.CategoryNotFound(99))
			},
			status: http.StatusNotFound,
			code:   codeNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initTest(t)
			test.prepare(env)

			rec := env.do(http.MethodPost, "/api/books", test.body)
			require.Equal(t, test.status, rec.Code)

			if test.code == "" {
				var resp bookResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.Equal(t, int64(1), resp.ID)
				require.Equal(t, entity.BookAvailable, resp.Status)
				require.Equal(t, []categoryResponse{{ID: 1, Name: "Fiction"}}, resp.Categories)
				return
			}

			resp := decodeError(t, rec)
			require.Equal(t, test.code, resp.ErrorCode)
			if test.field != "" {
				require.Contains(t, resp.Errors, test.field)
			}
		})
	}
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		prepare func(env *testEnv)
		status  int
		code    string
	}{
		{name: "found",
			path: "/api/books/1",
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(testBook(1, entity.BookAvailable), nil)
			},
			status: http.StatusOK},

		{name: "invalid id",
			path:    "/api/books/abc",
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation},

		{name: "unknown book",
			path: "/api/books/9",
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBook(gomock.Any(), int64(9)).Return(entity.Book{}, entity.BookNotFound(9))
			},
			status: http.StatusNotFound,
			code:   codeNotFound},

		{name: "internal error",
			path: "/api/books/1",
			prepare: func(env *testEnv) {
				env.books.EXPECT().GetBook(gomock.Any(), int64(1)).Return(entity.Book{}, errInternal)
			},
			status: http.StatusInternalServerError,
			code:   codeInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initTest(t)
			test.prepare(env)

			rec := env.do(http.MethodGet, test.path, "")
			require.Equal(t, test.status, rec.Code)

			if test.code == "" {
				var resp bookResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.Equal(t, "Dune", resp.Title)
				return
			}

			resp := decodeError(t, rec)
			require.Equal(t, test.code, resp.ErrorCode)
			require.Equal(t, test.path, resp.Path)
		})
	}
}

func TestUpdateBookStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		prepare func(env *testEnv)
		status  int
		code    string
	}{
		{name: "valid update",
			body: `{"status":"UNAVAILABLE"}`,
			prepare: func(env *testEnv) {
				env.books.EXPECT().UpdateBookStatus(gomock.Any(), int64(1), entity.BookUnavailable).
					Return(testBook(1, entity.BookUnavailable), nil)
			},
			status: http.StatusOK},

		{name: "unknown status",
			body:    `{"status":"LOST"}`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation},

		{name: "locked by rental",
			body: `{"status":"AVAILABLE"}`,
			prepare: func(env *testEnv) {
				env.books.EXPECT().UpdateBookStatus(gomock.Any(), int64(1), entity.BookAvailable).
					Return(entity.Book{}, entity.BookStatusLocked(1, entity.RentalBorrowed))
			},
			status: http.StatusConflict,
			code:   codeInUse},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initTest(t)
			test.prepare(env)

			rec := env.do(http.MethodPatch, "/api/books/1/status", test.body)
			require.Equal(t, test.status, rec.Code)

			if test.code == "" {
				var resp bookResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.Equal(t, entity.BookUnavailable, resp.Status)
				return
			}

			resp := decodeError(t, rec)
			require.Equal(t, test.code, resp.ErrorCode)
		})
	}
}

func TestUpdateBookCategories(t *testing.T) {
	t.Parallel()

	t.Run("replaced", func(t *testing.T) {
		t.Parallel()

		env := initTest(t)
		book := testBook(1, entity.BookAvailable)
		book.Categories = []entity.Category{{ID: 2, Name: "Science"}, {ID: 3, Name: "History"}}
		env.books.EXPECT().UpdateBookCategories(gomock.Any(), int64(1), []int64{3, 2}).Return(book, nil)

		rec := env.do(http.MethodPut, "/api/books/1/categories", `{"categoryIds":[3,2]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp bookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, []categoryResponse{{ID: 2, Name: "Science"}, {ID: 3, Name: "History"}}, resp.Categories)
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		env := initTest(t)

		rec := env.do(http.MethodPut, "/api/books/1/categories", `{"categoryIds":[]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, codeValidation, decodeError(t, rec).ErrorCode)
	})
}

func TestSearchBooks(t *testing.T) {
	t.Parallel()

	env := initTest(t)
	env.books.EXPECT().SearchBooks(gomock.Any(), entity.BookFilter{Title: "dune", Category: "Fiction"}).
		Return([]entity.Book{testBook(1, entity.BookAvailable)}, nil)

	rec := env.do(http.MethodGet, "/api/books/search?title=dune&category=Fiction", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []bookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	env := initTest(t)
	env.books.EXPECT().ListBooks(gomock.Any()).Return(nil, nil)

	rec := env.do(http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}
