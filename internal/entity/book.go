package entity

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type BookStatus string

const (
	BookAvailable   BookStatus = "AVAILABLE"
	BookUnavailable BookStatus = "UNAVAILABLE"
)

func (s BookStatus) Valid() bool {
	return s == BookAvailable || s == BookUnavailable
}

// Book is a catalog entry. Categories is a snapshot of the association
// rows, the categories themselves keep no reference back to the book.
type Book struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Status     BookStatus `json:"status"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (b Book) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(b.Categories))
	for _, c := range b.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

func (b Book) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.By(notBlank), validation.RuneLength(1, maxNameLength)),
		validation.Field(&b.Author, validation.Required, validation.By(notBlank), validation.RuneLength(1, maxNameLength)),
		validation.Field(&b.Status, validation.Required, validation.In(BookAvailable, BookUnavailable)),
	)
	if err != nil {
		return InvalidInput(ResourceBook, err)
	}
	return nil
}

// BookFilter selects books for search. Blank fields do not filter.
type BookFilter struct {
	Title    string
	Author   string
	Category string
}

func (f BookFilter) Normalize() BookFilter {
	return BookFilter{
		Title:    strings.TrimSpace(f.Title),
		Author:   strings.TrimSpace(f.Author),
		Category: strings.TrimSpace(f.Category),
	}
}

func (f BookFilter) Empty() bool {
	n := f.Normalize()
	return n.Title == "" && n.Author == "" && n.Category == ""
}
