package library

import (
	"context"
	"time"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/usecase/repository"
	"go.uber.org/zap"
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
		SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

var _ CategoriesUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)
var _ RentalsUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger               *zap.Logger
	categoriesRepository CategoriesRepository
	booksRepository      BooksRepository
	rentalsRepository    RentalsRepository
	outboxRepository     OutboxRepository
	transactor           Transactor

	now               func() time.Time
	rejectPastDueDate bool
}

func New(
	logger *zap.Logger,
	categoriesRepository CategoriesRepository,
	booksRepository BooksRepository,
	rentalsRepository RentalsRepository,
	outboxRepository OutboxRepository,
	transactor Transactor,
	opts ...Option,
) *libraryImpl {
	l := &libraryImpl{
		logger:               logger,
		categoriesRepository: categoriesRepository,
		booksRepository:      booksRepository,
		rentalsRepository:    rentalsRepository,
		outboxRepository:     outboxRepository,
		transactor:           transactor,
		now:                  time.Now,
		rejectPastDueDate:    true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// today is the current calendar date in UTC.
func (l *libraryImpl) today() time.Time {
	return entity.DateOf(l.now().UTC())
}
