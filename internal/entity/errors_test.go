package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		kind   error
		reason Reason
	}{
		{name: "book not found", err: BookNotFound(1), kind: ErrNotFound, reason: ReasonNotFound},
		{name: "category not found", err: CategoryNotFound(99), kind: ErrNotFound, reason: ReasonNotFound},
		{name: "rental not found", err: RentalNotFound(5), kind: ErrNotFound, reason: ReasonNotFound},
		{name: "already rented", err: BookAlreadyRented(1, RentalOverdue), kind: ErrResourceInUse, reason: ReasonAlreadyRented},
		{name: "not rentable", err: BookNotRentable(1, BookUnavailable), kind: ErrInvalidRequest, reason: ReasonNotRentable},
		{name: "already returned", err: RentalAlreadyReturned(2), kind: ErrInvalidRequest, reason: ReasonAlreadyReturned},
		{name: "status locked", err: BookStatusLocked(1, RentalBorrowed), kind: ErrResourceInUse, reason: ReasonRentalActive},
		{name: "past due date", err: DueDateInPast(1, today), kind: ErrInvalidRequest, reason: ReasonDueDateInPast},
		{name: "duplicate category", err: DuplicateCategory("Fiction"), kind: ErrDuplicateResource, reason: ReasonDuplicateName},
		{name: "multiple active", err: MultipleActiveRentals(1, 2), kind: ErrInconsistentState, reason: ReasonMultipleActiveRentals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("function execution error: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.kind)

			e, ok := AsError(wrapped)
			require.True(t, ok)
			require.Equal(t, tt.reason, e.Reason)
			require.NotEmpty(t, e.Error())
		})
	}
}

func TestErrorMessageCarriesContext(t *testing.T) {
	t.Parallel()

	require.Equal(t, "book 1: already_rented (status OVERDUE)", BookAlreadyRented(1, RentalOverdue).Error())
	require.Equal(t, `category "Fiction": duplicate_name`, DuplicateCategory("Fiction").Error())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Book{Title: "Dune", Author: "Herbert", Status: BookAvailable}.Validate())

	err := Book{Title: "  ", Author: "Herbert", Status: BookAvailable}.Validate()
	require.ErrorIs(t, err, ErrInvalidRequest)

	err = Book{Title: "Dune", Author: "Herbert", Status: "LOST"}.Validate()
	require.ErrorIs(t, err, ErrInvalidRequest)

	require.NoError(t, Category{Name: "Fiction"}.Validate())
	require.ErrorIs(t, Category{Name: ""}.Validate(), ErrInvalidRequest)
}

func TestBookFilter(t *testing.T) {
	t.Parallel()

	require.True(t, BookFilter{Title: " ", Author: ""}.Empty())
	f := BookFilter{Title: " dune ", Category: "SF"}.Normalize()
	require.Equal(t, BookFilter{Title: "dune", Category: "SF"}, f)
	require.False(t, f.Empty())
}
