package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	CreateCategoryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_create_category_duration_ms",
		Help:    "Duration of CreateCategory in ms",
		Buckets: prometheus.DefBuckets,
	})

	GetCategoryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_get_category_duration_ms",
		Help:    "Duration of GetCategory in ms",
		Buckets: prometheus.DefBuckets,
	})

	ListCategoriesDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_list_categories_duration_ms",
		Help:    "Duration of ListCategories in ms",
		Buckets: prometheus.DefBuckets,
	})

	GetCategoryBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_get_category_books_duration_ms",
		Help:    "Duration of GetCategoryBooks in ms",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		CreateCategoryDuration,
		GetCategoryDuration,
		ListCategoriesDuration,
		GetCategoryBooksDuration,
	)
}

func (i *implementation) CreateCategory(c echo.Context) error {
	start := time.Now()

	defer func() {
		CreateCategoryDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.CreateCategory)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	var req categoryRequest
	if err := i.bind(c, &req); log.ErrorCreateCategory(i.logger, err, "Got invalid request", traceID, req.Name) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.String("category_name", req.Name))

	category, err := i.categoriesUseCase.CreateCategory(ctx, req.Name)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, toCategory(category))
}

func (i *implementation) GetCategory(c echo.Context) error {
	start := time.Now()

	defer func() {
		GetCategoryDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.GetCategory)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorCategory(i.logger, log.GetCategory, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("category_id", id))

	category, err := i.categoriesUseCase.GetCategory(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toCategory(category))
}

func (i *implementation) ListCategories(c echo.Context) error {
	start := time.Now()

	defer func() {
		ListCategoriesDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.ListCategories)
	defer span.End()

	categories, err := i.categoriesUseCase.ListCategories(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toCategories(categories))
}

func (i *implementation) GetCategoryBooks(c echo.Context) error {
	start := time.Now()

	defer func() {
		GetCategoryBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.GetCategoryBooks)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorCategory(i.logger, log.GetCategoryBooks, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("category_id", id))

	books, err := i.categoriesUseCase.GetCategoryBooks(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toBooks(books))
}
