package library

import (
	"context"
	"time"

	"github.com/project/library/internal/entity"
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
)
