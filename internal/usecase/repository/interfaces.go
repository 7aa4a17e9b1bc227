package repository

import (
	"context"
	"time"

	"github.com/project/library/internal/entity"
)

type (
	CategoriesRepository interface {
		CreateCategory(ctx context.Context, category entity.Category) (entity.Category, error)
		GetCategory(ctx context.Context, id int64) (entity.Category, error)
		GetCategoryByName(ctx context.Context, name string) (entity.Category, error)
		GetCategories(ctx context.Context, ids []int64) ([]entity.Category, error)
		ListCategories(ctx context.Context) ([]entity.Category, error)
	}

	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, id int64) (entity.Book, error)
		GetBookForUpdate(ctx context.Context, id int64) (entity.Book, error)
		ListBooks(ctx context.Context) ([]entity.Book, error)
		ListBooksByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error)
		SearchBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error)
		UpdateBookStatus(ctx context.Context, id int64, status entity.BookStatus) (entity.Book, error)
		ReplaceBookCategories(ctx context.Context, id int64, categoryIDs []int64) error
	}

	RentalsRepository interface {
		CreateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error)
		GetRental(ctx context.Context, id int64) (entity.Rental, error)
		GetRentalForUpdate(ctx context.Context, id int64) (entity.Rental, error)
		ListRentals(ctx context.Context) ([]entity.Rental, error)
		ListActiveRentalsByBook(ctx context.Context, bookID int64) ([]entity.Rental, error)
		ListActiveRentalsDueBefore(ctx context.Context, date time.Time) ([]entity.Rental, error)
		UpdateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error)
		MarkOverdue(ctx context.Context, ids []int64) (map[int64]time.Time, error)
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindRental
	OutboxKindBook
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindRental:
		return "rental"
	case OutboxKindBook:
		return "book"
	default:
		return "undefined"
	}
}
