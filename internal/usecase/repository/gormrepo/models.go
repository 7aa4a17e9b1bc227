package gormrepo

import (
	"time"

	"github.com/project/library/internal/entity"
)

type categoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:category_name_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (categoryModel) TableName() string {
	return "category"
}

func (c categoryModel) toEntity() entity.Category {
	return entity.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type bookModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Author    string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(16);not null;default:'AVAILABLE'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (bookModel) TableName() string {
	return "book"
}

func (b bookModel) toEntity() entity.Book {
	return entity.Book{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Status:     entity.BookStatus(b.Status),
		Categories: []entity.Category{},
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// bookCategoryModel is the association index. The embedded relations exist
// only so AutoMigrate emits the foreign keys.
type bookCategoryModel struct {
	BookID     int64         `gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64         `gorm:"primaryKey;autoIncrement:false;index"`
	Book       bookModel     `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Category   categoryModel `gorm:"foreignKey:CategoryID"`
}

func (bookCategoryModel) TableName() string {
	return "book_category"
}

type rentalModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	BookID       int64      `gorm:"not null"`
	Book         bookModel  `gorm:"foreignKey:BookID"`
	DueDate      time.Time  `gorm:"not null"`
	ReturnedDate *time.Time
	Status       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (rentalModel) TableName() string {
	return "rental"
}

// rentalRow is a rental joined with its book title.
type rentalRow struct {
	ID           int64
	BookID       int64
	BookTitle    string
	DueDate      time.Time
	ReturnedDate *time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r rentalRow) toEntity() entity.Rental {
	rental := entity.Rental{
		ID:        r.ID,
		BookID:    r.BookID,
		BookTitle: r.BookTitle,
		DueDate:   entity.DateOf(r.DueDate),
		Status:    entity.RentalStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.ReturnedDate != nil {
		returned := entity.DateOf(*r.ReturnedDate)
		rental.ReturnedDate = &returned
	}
	return rental
}

type outboxModel struct {
	IdempotencyKey string    `gorm:"primaryKey;type:varchar(255)"`
	Data           []byte    `gorm:"not null"`
	Status         string    `gorm:"type:varchar(16);not null"`
	Kind           int       `gorm:"not null"`
	Attempts       int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (outboxModel) TableName() string {
	return "outbox"
}
