package library

import (
	"context"
	"time"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BorrowBook opens a rental. The checks run in a fixed order inside one
// transaction: the book must exist, must have no active rental and must be
// AVAILABLE, then the due date policy applies.
func (l *libraryImpl) BorrowBook(ctx context.Context, bookID int64, dueDate time.Time) (entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", bookID))

	dueDate = entity.DateOf(dueDate)
	today := l.today()

	var rental entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, txErr := l.booksRepository.GetBookForUpdate(ctx, bookID)
		if txErr != nil {
			return txErr
		}

		active, found, txErr := l.activeRental(ctx, traceID, bookID)
		if txErr != nil {
			return txErr
		}
		if found {
			return entity.BookAlreadyRented(bookID, active.Status)
		}

		if book.Status != entity.BookAvailable {
			return entity.BookNotRentable(bookID, book.Status)
		}

		if l.rejectPastDueDate && dueDate.Before(today) {
			return entity.DueDateInPast(bookID, dueDate)
		}

		if book, txErr = l.setStatus(ctx, book, entity.BookUnavailable); txErr != nil {
			return txErr
		}

		rental, txErr = l.rentalsRepository.CreateRental(ctx, entity.NewRental(book, dueDate))
		if txErr != nil {
			return txErr
		}

		return l.emitRental(ctx, EventRentalBorrowed, rental)
	})

	if log.ErrorBorrowBook(l.logger, err, "Failed borrow book", traceID, bookID, dueDate) {
		span.RecordError(err)
		return entity.Rental{}, err
	}

	span.SetAttributes(attribute.Int64("rental_id", rental.ID))
	log.InfoBorrowBook(l.logger, "Borrowed the book", traceID, rental)
	return rental, nil
}

// ReturnBook closes a BORROWED or OVERDUE rental and frees its book. The
// book row is locked before the rental, the same order BorrowBook uses.
func (l *libraryImpl) ReturnBook(ctx context.Context, rentalID int64) (entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("rental_id", rentalID))

	today := l.today()

	var rental entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, txErr := l.rentalsRepository.GetRental(ctx, rentalID)
		if txErr != nil {
			return txErr
		}

		book, txErr := l.booksRepository.GetBookForUpdate(ctx, current.BookID)
		if txErr != nil {
			return txErr
		}

		if current, txErr = l.rentalsRepository.GetRentalForUpdate(ctx, rentalID); txErr != nil {
			return txErr
		}

		returned, txErr := current.Return(today)
		if txErr != nil {
			return txErr
		}

		if rental, txErr = l.rentalsRepository.UpdateRental(ctx, returned); txErr != nil {
			return txErr
		}

		if _, txErr = l.setStatus(ctx, book, entity.BookAvailable); txErr != nil {
			return txErr
		}

		return l.emitRental(ctx, EventRentalReturned, rental)
	})

	if log.ErrorRental(l.logger, log.ReturnBook, err, "Failed return book", traceID, rentalID) {
		span.RecordError(err)
		return entity.Rental{}, err
	}

	log.InfoReturnBook(l.logger, "Returned the book", traceID, rental)
	return rental, nil
}

func (l *libraryImpl) GetRental(ctx context.Context, id int64) (entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("rental_id", id))

	var rental entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		found, txErr := l.rentalsRepository.GetRental(ctx, id)
		if txErr != nil {
			return txErr
		}

		reconciled, txErr := l.reconcile(ctx, traceID, []entity.Rental{found})
		if txErr != nil {
			return txErr
		}

		rental = reconciled[0]
		return nil
	})

	if log.ErrorRental(l.logger, log.GetRental, err, "Failed get rental", traceID, id) {
		span.RecordError(err)
		return entity.Rental{}, err
	}

	log.InfoRental(l.logger, log.GetRental, "Got the rental", traceID, id)
	return rental, nil
}

func (l *libraryImpl) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var rentals []entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		all, txErr := l.rentalsRepository.ListRentals(ctx)
		if txErr != nil {
			return txErr
		}

		rentals, txErr = l.reconcile(ctx, traceID, all)
		return txErr
	})

	if log.ErrorList(l.logger, log.ListRentals, err, "Failed list rentals", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoList(l.logger, log.ListRentals, "Listed rentals", traceID, len(rentals))
	return rentals, nil
}

// ListOverdueRentals returns every active rental past its due date and
// persists the OVERDUE status of the ones that were still BORROWED. A second
// call on the same day finds nothing left to change.
func (l *libraryImpl) ListOverdueRentals(ctx context.Context) ([]entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var rentals []entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		due, txErr := l.rentalsRepository.ListActiveRentalsDueBefore(ctx, l.today())
		if txErr != nil {
			return txErr
		}

		reconciled, txErr := l.reconcile(ctx, traceID, due)
		if txErr != nil {
			return txErr
		}

		rentals = lo.Filter(reconciled, func(r entity.Rental, _ int) bool { return r.Status.Active() })
		return nil
	})

	if log.ErrorList(l.logger, log.ListOverdueRentals, err, "Failed list overdue rentals", traceID) {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("overdue", len(rentals)))
	log.InfoList(l.logger, log.ListOverdueRentals, "Listed overdue rentals", traceID, len(rentals))
	return rentals, nil
}

// reconcile moves past due BORROWED rentals to OVERDUE, stores the change
// and writes one event per row the store actually moved. A row the store
// left alone was changed by someone else meanwhile and is read again. It
// must run inside a transaction.
func (l *libraryImpl) reconcile(ctx context.Context, traceID string, rentals []entity.Rental) ([]entity.Rental, error) {
	reconciled, transitioned := entity.ReconcileOverdue(rentals, l.today())
	if len(transitioned) == 0 {
		return reconciled, nil
	}

	ids := lo.Map(transitioned, func(r entity.Rental, _ int) int64 { return r.ID })
	marked, err := l.rentalsRepository.MarkOverdue(ctx, ids)
	if err != nil {
		return nil, err
	}

	changed := make([]entity.Rental, 0, len(marked))
	for i, r := range reconciled {
		if rentals[i].Status == r.Status {
			continue
		}

		updatedAt, ok := marked[r.ID]
		if !ok {
			current, err := l.rentalsRepository.GetRental(ctx, r.ID)
			if err != nil {
				return nil, err
			}
			reconciled[i] = current
			continue
		}

		r.UpdatedAt = updatedAt
		reconciled[i] = r
		changed = append(changed, r)
	}

	for _, r := range changed {
		if err := l.emitRental(ctx, EventRentalOverdue, r); err != nil {
			return nil, err
		}
	}

	if len(changed) > 0 {
		log.InfoReconcileOverdue(l.logger, traceID, changed)
	}
	return reconciled, nil
}

// activeRental finds the rental holding the book, if any.
func (l *libraryImpl) activeRental(ctx context.Context, traceID string, bookID int64) (entity.Rental, bool, error) {
	rentals, err := l.rentalsRepository.ListActiveRentalsByBook(ctx, bookID)
	if err != nil {
		return entity.Rental{}, false, err
	}

	active, found, err := entity.SingleActive(bookID, rentals)
	if err != nil {
		log.WarnInconsistentState(l.logger, traceID, bookID, err)
		return entity.Rental{}, false, err
	}

	return active, found, nil
}
