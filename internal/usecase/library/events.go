package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/usecase/repository"
)

// Names of the events written to the outbox. The name doubles as the routing
// key on the broker.
const (
	EventBookCreated       = "book.created"
	EventBookStatusChanged = "book.status_changed"
	EventRentalBorrowed    = "rental.borrowed"
	EventRentalReturned    = "rental.returned"
	EventRentalOverdue     = "rental.overdue"
)

type RentalEvent struct {
	Event        string              `json:"event"`
	RentalID     int64               `json:"rental_id"`
	BookID       int64               `json:"book_id"`
	Status       entity.RentalStatus `json:"status"`
	DueDate      string              `json:"due_date"`
	ReturnedDate *string             `json:"returned_date"`
	OccurredAt   time.Time           `json:"occurred_at"`
}

type BookEvent struct {
	Event       string            `json:"event"`
	BookID      int64             `json:"book_id"`
	Title       string            `json:"title"`
	Status      entity.BookStatus `json:"status"`
	CategoryIDs []int64           `json:"category_ids"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

func eventKey(event string, id int64, suffix ...string) string {
	key := fmt.Sprintf("%s_%d", strings.ReplaceAll(event, ".", "_"), id)
	for _, s := range suffix {
		key += "_" + s
	}
	return key
}

func (l *libraryImpl) emitRental(ctx context.Context, event string, rental entity.Rental) error {
	payload := RentalEvent{
		Event:      event,
		RentalID:   rental.ID,
		BookID:     rental.BookID,
		Status:     rental.Status,
		DueDate:    rental.DueDate.Format(entity.DateLayout),
		OccurredAt: l.now().UTC(),
	}
	if rental.ReturnedDate != nil {
		returned := rental.ReturnedDate.Format(entity.DateLayout)
		payload.ReturnedDate = &returned
	}

	serialized, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return err
	}

	return l.outboxRepository.SendMessage(ctx, eventKey(event, rental.ID), repository.OutboxKindRental, serialized)
}

func (l *libraryImpl) emitBook(ctx context.Context, event string, book entity.Book) error {
	payload := BookEvent{
		Event:       event,
		BookID:      book.ID,
		Title:       book.Title,
		Status:      book.Status,
		CategoryIDs: book.CategoryIDs(),
		OccurredAt:  l.now().UTC(),
	}

	serialized, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return err
	}

	// A book changes status many times, the update timestamp tells the events apart.
	key := eventKey(event, book.ID)
	if event == EventBookStatusChanged {
		key = eventKey(event, book.ID, fmt.Sprint(book.UpdatedAt.UnixNano()))
	}

	return l.outboxRepository.SendMessage(ctx, key, repository.OutboxKindBook, serialized)
}
