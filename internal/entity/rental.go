package entity

import "time"

type RentalStatus string

const (
	RentalBorrowed RentalStatus = "BORROWED"
	RentalOverdue  RentalStatus = "OVERDUE"
	RentalReturned RentalStatus = "RETURNED"
)

// Active reports whether the rental still holds its book.
func (s RentalStatus) Active() bool {
	return s == RentalBorrowed || s == RentalOverdue
}

// ActiveStatuses lists the statuses that count for book exclusivity.
var ActiveStatuses = []RentalStatus{RentalBorrowed, RentalOverdue}

type Rental struct {
	ID           int64        `json:"id"`
	BookID       int64        `json:"book_id"`
	BookTitle    string       `json:"book_title"`
	DueDate      time.Time    `json:"due_date"`
	ReturnedDate *time.Time   `json:"returned_date,omitempty"`
	Status       RentalStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewRental(book Book, due time.Time) Rental {
	return Rental{
		BookID:    book.ID,
		BookTitle: book.Title,
		DueDate:   DateOf(due),
		Status:    RentalBorrowed,
	}
}

// Return moves the rental into its terminal state.
func (r Rental) Return(today time.Time) (Rental, error) {
	if r.Status == RentalReturned {
		return r, RentalAlreadyReturned(r.ID)
	}
	returned := DateOf(today)
	r.ReturnedDate = &returned
	r.Status = RentalReturned
	return r, nil
}

// IsOverdue is true when the rental is not returned and today is past its due date.
func IsOverdue(r Rental, today time.Time) bool {
	return r.Status != RentalReturned && DateOf(today).After(DateOf(r.DueDate))
}

// ReconcileOverdue returns rentals with every past-due BORROWED entry moved to
// OVERDUE, plus the subset that changed. The input is left untouched.
func ReconcileOverdue(rentals []Rental, today time.Time) (reconciled []Rental, transitioned []Rental) {
	reconciled = make([]Rental, len(rentals))
	for i, r := range rentals {
		if r.Status == RentalBorrowed && IsOverdue(r, today) {
			r.Status = RentalOverdue
			transitioned = append(transitioned, r)
		}
		reconciled[i] = r
	}
	return reconciled, transitioned
}

// SingleActive picks the active rental out of the rows stored for one book.
// More than one is a storage level violation and is reported, never resolved.
func SingleActive(bookID int64, rentals []Rental) (Rental, bool, error) {
	var (
		found Rental
		count int
	)
	for _, r := range rentals {
		if r.Status.Active() {
			found = r
			count++
		}
	}
	switch count {
	case 0:
		return Rental{}, false, nil
	case 1:
		return found, true, nil
	default:
		return Rental{}, false, MultipleActiveRentals(bookID, count)
	}
}
