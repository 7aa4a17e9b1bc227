package controller

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/project/library/internal/entity"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

type (
	CategoriesUseCase interface {
		CreateCategory(ctx context.Context, name string) (entity.Category, error)
		GetCategory(ctx context.Context, id int64) (entity.Category, error)
		ListCategories(ctx context.Context) ([]entity.Category, error)
		GetCategoryBooks(ctx context.Context, categoryID int64) ([]entity.Book, error)
	}

	BooksUseCase interface {
		CreateBook(ctx context.Context, title, author string, categoryIDs []int64) (entity.Book, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		ListBooks(ctx context.Context) ([]entity.Book, error)
		SearchBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error)
		UpdateBookStatus(ctx context.Context, id int64, status entity.BookStatus) (entity.Book, error)
		UpdateBookCategories(ctx context.Context, id int64, categoryIDs []int64) (entity.Book, error)
	}

	RentalsUseCase interface {
		BorrowBook(ctx context.Context, bookID int64, dueDate time.Time) (entity.Rental, error)
		ReturnBook(ctx context.Context, rentalID int64) (entity.Rental, error)
		GetRental(ctx context.Context, id int64) (entity.Rental, error)
		ListRentals(ctx context.Context) ([]entity.Rental, error)
		ListOverdueRentals(ctx context.Context) ([]entity.Rental, error)
	}

	// Pinger reports whether the storage behind the use cases answers.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)

var tracer = otel.Tracer("github.com/project/library/internal/controller")

type implementation struct {
	logger            *zap.Logger
	validate          *validator.Validate
	categoriesUseCase CategoriesUseCase
	booksUseCase      BooksUseCase
	rentalsUseCase    RentalsUseCase
	pinger            Pinger
	now               func() time.Time
}

func New(
	logger *zap.Logger,
	categoriesUseCase CategoriesUseCase,
	booksUseCase BooksUseCase,
	rentalsUseCase RentalsUseCase,
	pinger Pinger,
) *implementation {
	return &implementation{
		logger:            logger,
		validate:          newValidator(),
		categoriesUseCase: categoriesUseCase,
		booksUseCase:      booksUseCase,
		rentalsUseCase:    rentalsUseCase,
		pinger:            pinger,
		now:               time.Now,
	}
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Register mounts every route on e and installs the error presenter.
func (i *implementation) Register(e *echo.Echo) {
	e.HTTPErrorHandler = i.errorHandler
	e.JSONSerializer = jsonSerializer{}
	e.Use(middleware.Recover(), requestID(), i.accessLog())

	e.GET("/health", i.Health)

	api := e.Group("/api")

	api.POST("/categories", i.CreateCategory)
	api.GET("/categories", i.ListCategories)
	api.GET("/categories/:id", i.GetCategory)
	api.GET("/categories/:id/books", i.GetCategoryBooks)

	api.POST("/books", i.CreateBook)
	api.GET("/books", i.ListBooks)
	api.GET("/books/search", i.SearchBooks)
	api.GET("/books/:id", i.GetBook)
	api.PATCH("/books/:id/status", i.UpdateBookStatus)
	api.PUT("/books/:id/categories", i.UpdateBookCategories)

	api.POST("/rentals/borrow", i.BorrowBook)
	api.PUT("/rentals/:id/return", i.ReturnBook)
	api.GET("/rentals", i.ListRentals)
	api.GET("/rentals/overdue", i.ListOverdueRentals)
	api.GET("/rentals/:id", i.GetRental)
}
