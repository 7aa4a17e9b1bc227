package controller

import (
	"net/http"
	"testing"

	"github.com/project/library/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		prepare func(env *testEnv)
		status  int
		code    string
		message string
	}{
		{name: "valid create",
			body: `{"name":"Fiction"}`,
			prepare: func(env *testEnv) {
				env.categories.EXPECT().CreateCategory(gomock.Any(), "Fiction").
					Return(entity.Category{ID: 1, Name: "Fiction"}, nil)
			},
			status: http.StatusCreated},

		{name: "missing name",
			body:    `{}`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeValidation,
			message: "Validation failed"},

		{name: "not json",
			body:    `name=Fiction`,
			prepare: func(*testEnv) {},
			status:  http.StatusBadRequest,
			code:    codeMalformedJSON,
			message: "Invalid JSON format"},

		{name: "duplicate name",
			body: `{"name":"Fiction"}`,
			prepare: func(env *testEnv) {
				env.categories.EXPECT().CreateCategory(gomock.Any(), "Fiction").
					Return(entity.Category{}, entity.DuplicateCategory("Fiction"))
			},
			status:  http.StatusConflict,
			code:    codeDuplicate,
			message: `Category "Fiction" already exists`},

		{name: "internal error",
			body: `{"name":"Fiction"}`,
			prepare: func(env *testEnv) {
				env.categories.EXPECT().CreateCategory(gomock.Any(), "Fiction").Return(entity.Category{}, errInternal)
			},
			status:  http.StatusInternalServerError,
			code:    codeInternal,
			message: "Internal server error"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initTest(t)
			test.prepare(env)

			rec := env.do(http.MethodPost, "/api/categories", test.body)
			require.Equal(t, test.status, rec.Code)

			if test.code == "" {
				require.JSONEq(t, `{"id":1,"name":"Fiction"}`, rec.Body.String())
				return
			}

			resp := decodeError(t, rec)
			require.Equal(t, test.code, resp.ErrorCode)
			require.Equal(t, test.message, resp.Message)
			require.Equal(t, "/api/categories", resp.Path)
		})
	}
}

func TestCategoryReads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		prepare  func(env *testEnv)
		status   int
		expected string
	}{
		{name: "get category",
			path: "/api/categories/1",
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(entity.Category{ID: 1, Name: "Fiction"}, nil)
			},
			status:   http.StatusOK,
			expected: `{"id":1,"name":"Fiction"}`},

		{name: "list categories",
			path: "/api/categories",
			prepare: func(env *testEnv) {
				env.categories.EXPECT().ListCategories(gomock.Any()).
					Return([]entity.Category{{ID: 1, Name: "Fiction"}, {ID: 2, Name: "Science"}}, nil)
			},
			status:   http.StatusOK,
			expected: `[{"id":1,"name":"Fiction"},{"id":2,"name":"Science"}]`},

		{name: "books of category",
			path: "/api/categories/1/books",
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategoryBooks(gomock.Any(), int64(1)).
					Return([]entity.Book{testBook(1, entity.BookAvailable)}, nil)
			},
			status: http.StatusOK,
			expected: `[{"id":1,"title":"Dune","author":"Frank Herbert","status":"AVAILABLE",
				"categories":[{"id":1,"name":"Fiction"}]}]`},

		{name: "books of unknown category",
			path: "/api/categories/9/books",
			prepare: func(env *testEnv) {
				env.categories.EXPECT().GetCategoryBooks(gomock.Any(), int64(9)).Return(nil, entity.CategoryNotFound(9))
			},
			status: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initTest(t)
			test.prepare(env)

			rec := env.do(http.MethodGet, test.path, "")
			require.Equal(t, test.status, rec.Code)

			if test.expected != "" {
				require.JSONEq(t, test.expected, rec.Body.String())
				return
			}

			resp := decodeError(t, rec)
			require.Equal(t, codeNotFound, resp.ErrorCode)
			require.Equal(t, "Category not found: id=9", resp.Message)
		})
	}
}
