package controller

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/internal/entity"
	"github.com/samber/lo"
)

type (
	categoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	bookRequest struct {
		Title       string  `json:"title" validate:"required"`
		Author      string  `json:"author" validate:"required"`
		CategoryIDs []int64 `json:"categoryIds" validate:"required,min=1,dive,gt=0"`
	}

	bookStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=AVAILABLE UNAVAILABLE"`
	}

	bookCategoriesRequest struct {
		CategoryIDs []int64 `json:"categoryIds" validate:"required,min=1,dive,gt=0"`
	}

	borrowRequest struct {
		BookID  int64  `json:"bookId" validate:"required,gt=0"`
		DueDate string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	}
)

type (
	categoryResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	bookResponse struct {
		ID         int64              `json:"id"`
		Title      string             `json:"title"`
		Author     string             `json:"author"`
		Status     entity.BookStatus  `json:"status"`
		Categories []categoryResponse `json:"categories"`
	}

	rentalResponse struct {
		ID           int64               `json:"id"`
		BookID       int64               `json:"bookId"`
		BookTitle    string              `json:"bookTitle"`
		DueDate      string              `json:"dueDate"`
		ReturnedDate *string             `json:"returnedDate"`
		Status       entity.RentalStatus `json:"status"`
		CreatedAt    time.Time           `json:"createdAt"`
		UpdatedAt    time.Time           `json:"updatedAt"`
	}
)

func toCategory(c entity.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toCategories(categories []entity.Category) []categoryResponse {
	return lo.Map(categories, func(c entity.Category, _ int) categoryResponse {
		return toCategory(c)
	})
}

func toBook(b entity.Book) bookResponse {
	return bookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Status:     b.Status,
		Categories: toCategories(b.Categories),
	}
}

func toBooks(books []entity.Book) []bookResponse {
	return lo.Map(books, func(b entity.Book, _ int) bookResponse {
		return toBook(b)
	})
}

func toRental(r entity.Rental) rentalResponse {
	resp := rentalResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		BookTitle: r.BookTitle,
		DueDate:   r.DueDate.Format(entity.DateLayout),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.ReturnedDate != nil {
		resp.ReturnedDate = lo.ToPtr(r.ReturnedDate.Format(entity.DateLayout))
	}
	return resp
}

func toRentals(rentals []entity.Rental) []rentalResponse {
	return lo.Map(rentals, func(r entity.Rental, _ int) rentalResponse {
		return toRental(r)
	})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidField("id", "must be a positive integer")
	}
	return id, nil
}
