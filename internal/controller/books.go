package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	CreateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_create_book_duration_ms",
		Help:    "Duration of CreateBook in ms",
		Buckets: prometheus.DefBuckets,
	})

	GetBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_get_book_duration_ms",
		Help:    "Duration of GetBook in ms",
		Buckets: prometheus.DefBuckets,
	})

	ListBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_list_books_duration_ms",
		Help:    "Duration of ListBooks in ms",
		Buckets: prometheus.DefBuckets,
	})

	SearchBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_search_books_duration_ms",
		Help:    "Duration of SearchBooks in ms",
		Buckets: prometheus.DefBuckets,
	})

	UpdateBookStatusDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_update_book_status_duration_ms",
		Help:    "Duration of UpdateBookStatus in ms",
		Buckets: prometheus.DefBuckets,
	})

	UpdateBookCategoriesDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_update_book_categories_duration_ms",
		Help:    "Duration of UpdateBookCategories in ms",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		CreateBookDuration,
		GetBookDuration,
		ListBooksDuration,
		SearchBooksDuration,
		UpdateBookStatusDuration,
		UpdateBookCategoriesDuration,
	)
}

func (i *implementation) CreateBook(c echo.Context) error {
	start := time.Now()

	defer func() {
		CreateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.CreateBook)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	var req bookRequest
	if err := i.bind(c, &req); log.ErrorCreateBook(i.logger, err, "Got invalid request", traceID, req.Title, req.CategoryIDs) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.String("book_title", req.Title))
	span.SetAttributes(attribute.Int64Slice("category_ids", req.CategoryIDs))

	book, err := i.booksUseCase.CreateBook(ctx, req.Title, req.Author, req.CategoryIDs)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, toBook(book))
}

func (i *implementation) GetBook(c echo.Context) error {
	start := time.Now()

	defer func() {
		GetBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.GetBook)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorBook(i.logger, log.GetBook, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("book_id", id))

	book, err := i.booksUseCase.GetBook(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBook(book))
}

func (i *implementation) ListBooks(c echo.Context) error {
	start := time.Now()

	defer func() {
		ListBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.ListBooks)
	defer span.End()

	books, err := i.booksUseCase.ListBooks(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBooks(books))
}

func (i *implementation) SearchBooks(c echo.Context) error {
	start := time.Now()

	defer func() {
		SearchBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.SearchBooks)
	defer span.End()

	filter := entity.BookFilter{
		Title:    c.QueryParam("title"),
		Author:   c.QueryParam("author"),
		Category: c.QueryParam("category"),
	}
	span.SetAttributes(
		attribute.String("title", filter.Title),
		attribute.String("author", filter.Author),
		attribute.String("category", filter.Category),
	)

	books, err := i.booksUseCase.SearchBooks(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBooks(books))
}

func (i *implementation) UpdateBookStatus(c echo.Context) error {
	start := time.Now()

	defer func() {
		UpdateBookStatusDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.UpdateBookStatus)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorBook(i.logger, log.UpdateBookStatus, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}

	var req bookStatusRequest
	if err = i.bind(c, &req); log.ErrorBook(i.logger, log.UpdateBookStatus, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("book_id", id), attribute.String("status", req.Status))

	book, err := i.booksUseCase.UpdateBookStatus(ctx, id, entity.BookStatus(req.Status))
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBook(book))
}

func (i *implementation) UpdateBookCategories(c echo.Context) error {
	start := time.Now()

	defer func() {
		UpdateBookCategoriesDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.UpdateBookCategories)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorBook(i.logger, log.UpdateBookCategories, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}

	var req bookCategoriesRequest
	if err = i.bind(c, &req); log.ErrorUpdateBookCategories(i.logger, err, "Got invalid request", traceID, id, req.CategoryIDs) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("book_id", id), attribute.Int64Slice("category_ids", req.CategoryIDs))

	book, err := i.booksUseCase.UpdateBookCategories(ctx, id, req.CategoryIDs)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBook(book))
}
