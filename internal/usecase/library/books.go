package library

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func requireCategories(categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return entity.InvalidInput(entity.ResourceBook, validation.Errors{"categories": validation.ErrRequired})
	}
	return nil
}

func (l *libraryImpl) CreateBook(ctx context.Context, title, author string, categoryIDs []int64) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	book := entity.Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Status: entity.BookAvailable,
	}

	err := book.Validate()
	if err == nil {
		err = requireCategories(categoryIDs)
	}

	if err == nil {
		err = l.transactor.WithTx(ctx, func(ctx context.Context) error {
			categories, txErr := l.resolveCategories(ctx, categoryIDs)
			if txErr != nil {
				return txErr
			}

			book.Categories = categories
			created, txErr := l.booksRepository.CreateBook(ctx, book)
			if txErr != nil {
				return txErr
			}
			book = created

			return l.emitBook(ctx, EventBookCreated, book)
		})
	}

	if log.ErrorCreateBook(l.logger, err, "Failed create book", traceID, book.Title, categoryIDs) {
		span.SetAttributes(attribute.String("book_title", book.Title))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.Int64("book_id", book.ID))
	log.InfoCreateBook(l.logger, "Created the book", traceID, book)
	return book, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))

	book, err := l.booksRepository.GetBook(ctx, id)
	if log.ErrorBook(l.logger, log.GetBook, err, "Failed get book", traceID, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoBook(l.logger, log.GetBook, "Got the book", traceID, id)
	return book, nil
}

func (l *libraryImpl) ListBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	books, err := l.booksRepository.ListBooks(ctx)
	if log.ErrorList(l.logger, log.ListBooks, err, "Failed list books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoList(l.logger, log.ListBooks, "Listed books", traceID, len(books))
	return books, nil
}

func (l *libraryImpl) SearchBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	filter = filter.Normalize()

	books, err := l.booksRepository.SearchBooks(ctx, filter)
	if log.ErrorSearchBooks(l.logger, err, "Failed search books", traceID, filter) {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("found", len(books)))
	log.InfoSearchBooks(l.logger, "Searched books", traceID, filter, len(books))
	return books, nil
}

// UpdateBookStatus is the manual status edit. It is refused while the book
// has an active rental, the rental lifecycle owns the status then.
func (l *libraryImpl) UpdateBookStatus(ctx context.Context, id int64, status entity.BookStatus) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id), attribute.String("status", string(status)))

	var (
		book entity.Book
		from entity.BookStatus
		err  error
	)

	if !status.Valid() {
		err = entity.InvalidInput(entity.ResourceBook, validation.Errors{"status": validation.ErrInInvalid})
	}

	if err == nil {
		err = l.transactor.WithTx(ctx, func(ctx context.Context) error {
			current, txErr := l.booksRepository.GetBookForUpdate(ctx, id)
			if txErr != nil {
				return txErr
			}

			active, found, txErr := l.activeRental(ctx, traceID, id)
			if txErr != nil {
				return txErr
			}
			if found {
				return entity.BookStatusLocked(id, active.Status)
			}

			from = current.Status
			book, txErr = l.setStatus(ctx, current, status)
			if txErr != nil {
				return txErr
			}

			return l.emitBook(ctx, EventBookStatusChanged, book)
		})
	}

	if log.ErrorUpdateBookStatus(l.logger, err, "Failed update book status", traceID, id, status) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBookStatus(l.logger, "Updated the book status", traceID, id, from, status)
	return book, nil
}

func (l *libraryImpl) UpdateBookCategories(ctx context.Context, id int64, categoryIDs []int64) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))

	var book entity.Book
	err := requireCategories(categoryIDs)

	if err == nil {
		err = l.transactor.WithTx(ctx, func(ctx context.Context) error {
			var txErr error
			book, txErr = l.booksRepository.GetBookForUpdate(ctx, id)
			if txErr != nil {
				return txErr
			}

			categories, txErr := l.resolveCategories(ctx, categoryIDs)
			if txErr != nil {
				return txErr
			}

			ids := lo.Map(categories, func(c entity.Category, _ int) int64 { return c.ID })

			if txErr = l.booksRepository.ReplaceBookCategories(ctx, id, ids); txErr != nil {
				return txErr
			}

			book.Categories = categories
			return nil
		})
	}

	if log.ErrorUpdateBookCategories(l.logger, err, "Failed update book categories", traceID, id, categoryIDs) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBookCategories(l.logger, "Updated the book categories", traceID, id, book.CategoryIDs())
	return book, nil
}
