package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kinds of failures surfaced by the catalog and rental use cases. Every
// *Error unwraps to exactly one of them.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrResourceInUse     = errors.New("resource in use")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInconsistentState = errors.New("inconsistent state")
)

type Resource string

const (
	ResourceBook     Resource = "book"
	ResourceCategory Resource = "category"
	ResourceRental   Resource = "rental"
)

type Reason string

const (
	ReasonNotFound              Reason = "not_found"
	ReasonAlreadyRented         Reason = "already_rented"
	ReasonNotRentable           Reason = "not_rentable"
	ReasonAlreadyReturned       Reason = "already_returned"
	ReasonRentalActive          Reason = "rental_active"
	ReasonDueDateInPast         Reason = "due_date_in_past"
	ReasonDuplicateName         Reason = "duplicate_name"
	ReasonInvalidField          Reason = "invalid_field"
	ReasonMultipleActiveRentals Reason = "multiple_active_rentals"
)

// Error carries the structured context of a rejected operation. It never
// holds user facing text, the presenter at the boundary builds that.
type Error struct {
	Kind     error
	Reason   Reason
	Resource Resource
	ID       int64
	Status   string
	Name     string
	DueDate  time.Time
	Count    int
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Resource))
	if e.ID != 0 {
		fmt.Fprintf(&b, " %d", e.ID)
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	b.WriteString(": ")
	b.WriteString(string(e.Reason))
	if e.Status != "" {
		fmt.Fprintf(&b, " (status %s)", e.Status)
	}
	if !e.DueDate.IsZero() {
		fmt.Fprintf(&b, " (due %s)", e.DueDate.Format(DateLayout))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// AsError extracts the first *Error in the chain of err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func notFound(resource Resource, id int64) error {
	return &Error{Kind: ErrNotFound, Reason: ReasonNotFound, Resource: resource, ID: id}
}

func BookNotFound(id int64) error {
	return notFound(ResourceBook, id)
}

func CategoryNotFound(id int64) error {
	return notFound(ResourceCategory, id)
}

func RentalNotFound(id int64) error {
	return notFound(ResourceRental, id)
}

// BookAlreadyRented reports the status of the active rental that blocks a borrow.
func BookAlreadyRented(bookID int64, current RentalStatus) error {
	return &Error{
		Kind:     ErrResourceInUse,
		Reason:   ReasonAlreadyRented,
		Resource: ResourceBook,
		ID:       bookID,
		Status:   string(current),
	}
}

func BookNotRentable(bookID int64, current BookStatus) error {
	return &Error{
		Kind:     ErrInvalidRequest,
		Reason:   ReasonNotRentable,
		Resource: ResourceBook,
		ID:       bookID,
		Status:   string(current),
	}
}

func RentalAlreadyReturned(rentalID int64) error {
	return &Error{
		Kind:     ErrInvalidRequest,
		Reason:   ReasonAlreadyReturned,
		Resource: ResourceRental,
		ID:       rentalID,
		Status:   string(RentalReturned),
	}
}

// BookStatusLocked rejects a direct status edit while a rental is outstanding.
func BookStatusLocked(bookID int64, current RentalStatus) error {
	return &Error{
		Kind:     ErrResourceInUse,
		Reason:   ReasonRentalActive,
		Resource: ResourceBook,
		ID:       bookID,
		Status:   string(current),
	}
}

func DueDateInPast(bookID int64, due time.Time) error {
	return &Error{
		Kind:     ErrInvalidRequest,
		Reason:   ReasonDueDateInPast,
		Resource: ResourceBook,
		ID:       bookID,
		DueDate:  DateOf(due),
	}
}

func DuplicateCategory(name string) error {
	return &Error{
		Kind:     ErrDuplicateResource,
		Reason:   ReasonDuplicateName,
		Resource: ResourceCategory,
		Name:     name,
	}
}

func InvalidInput(resource Resource, cause error) error {
	return &Error{
		Kind:     ErrInvalidRequest,
		Reason:   ReasonInvalidField,
		Resource: resource,
		Cause:    cause,
	}
}

func MultipleActiveRentals(bookID int64, count int) error {
	return &Error{
		Kind:     ErrInconsistentState,
		Reason:   ReasonMultipleActiveRentals,
		Resource: ResourceBook,
		ID:       bookID,
		Count:    count,
	}
}
