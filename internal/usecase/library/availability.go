package library

import (
	"context"
	"fmt"

	"github.com/project/library/internal/entity"
)

// setStatus is the only place that writes Book.Status. It does not check
// rentals: callers decide whether the transition is allowed and hold the
// transaction it runs in.
func (l *libraryImpl) setStatus(ctx context.Context, book entity.Book, status entity.BookStatus) (entity.Book, error) {
	updated, err := l.booksRepository.UpdateBookStatus(ctx, book.ID, status)
	if err != nil {
		return entity.Book{}, fmt.Errorf("can not set status %s of book %d: %w", status, book.ID, err)
	}

	return updated, nil
}
