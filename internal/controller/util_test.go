package controller

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/internal/controller/mocks"
	"github.com/project/library/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	errInternal = errors.New("internal error")
	testNow     = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	testDue     = time.Date(2026, time.March, 24, 0, 0, 0, 0, time.UTC)
)

type testEnv struct {
	categories *mocks.MockCategoriesUseCase
	books      *mocks.MockBooksUseCase
	rentals    *mocks.MockRentalsUseCase
	pinger     *mocks.MockPinger
	echo       *echo.Echo
}

func initTest(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		categories: mocks.NewMockCategoriesUseCase(ctrl),
		books:      mocks.NewMockBooksUseCase(ctrl),
		rentals:    mocks.NewMockRentalsUseCase(ctrl),
		pinger:     mocks.NewMockPinger(ctrl),
		echo:       echo.New(),
	}

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	service := New(logger, env.categories, env.books, env.rentals, env.pinger)
	service.now = func() time.Time { return testNow }
	service.Register(env.echo)

	return env
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, rec.Code, resp.Status)
	require.True(t, testNow.Equal(resp.Timestamp))
	return resp
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

func testRental(id, bookID int64, status entity.RentalStatus) entity.Rental {
	return entity.Rental{
		ID:        id,
		BookID:    bookID,
		BookTitle: "Dune",
		DueDate:   testDue,
		Status:    status,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}
