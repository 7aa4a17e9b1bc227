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
	BorrowBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_borrow_book_duration_ms",
		Help:    "Duration of BorrowBook in ms",
		Buckets: prometheus.DefBuckets,
	})

	ReturnBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_return_book_duration_ms",
		Help:    "Duration of ReturnBook in ms",
		Buckets: prometheus.DefBuckets,
	})

	GetRentalDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_get_rental_duration_ms",
		Help:    "Duration of GetRental in ms",
		Buckets: prometheus.DefBuckets,
	})

	ListRentalsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_list_rentals_duration_ms",
		Help:    "Duration of ListRentals in ms",
		Buckets: prometheus.DefBuckets,
	})

	ListOverdueRentalsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "library_list_overdue_rentals_duration_ms",
		Help:    "Duration of ListOverdueRentals in ms",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		BorrowBookDuration,
		ReturnBookDuration,
		GetRentalDuration,
		ListRentalsDuration,
		ListOverdueRentalsDuration,
	)
}

func (i *implementation) BorrowBook(c echo.Context) error {
	start := time.Now()

	defer func() {
		BorrowBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.BorrowBook)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	var req borrowRequest
	if err := i.bind(c, &req); log.ErrorBook(i.logger, log.BorrowBook, err, "Got invalid request", traceID, req.BookID) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("book_id", req.BookID), attribute.String("due_date", req.DueDate))

	// Already checked by the datetime rule.
	dueDate, _ := entity.ParseDate(req.DueDate)

	rental, err := i.rentalsUseCase.BorrowBook(ctx, req.BookID, dueDate)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, toRental(rental))
}

func (i *implementation) ReturnBook(c echo.Context) error {
	start := time.Now()

	defer func() {
		ReturnBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.ReturnBook)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorRental(i.logger, log.ReturnBook, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("rental_id", id))

	rental, err := i.rentalsUseCase.ReturnBook(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toRental(rental))
}

func (i *implementation) GetRental(c echo.Context) error {
	start := time.Now()

	defer func() {
		GetRentalDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.GetRental)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	id, err := pathID(c)
	if log.ErrorRental(i.logger, log.GetRental, err, "Got invalid request", traceID, id) {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int64("rental_id", id))

	rental, err := i.rentalsUseCase.GetRental(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toRental(rental))
}

func (i *implementation) ListRentals(c echo.Context) error {
	start := time.Now()

	defer func() {
		ListRentalsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.ListRentals)
	defer span.End()

	rentals, err := i.rentalsUseCase.ListRentals(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toRentals(rentals))
}

func (i *implementation) ListOverdueRentals(c echo.Context) error {
	start := time.Now()

	defer func() {
		ListOverdueRentalsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := tracer.Start(c.Request().Context(), log.ListOverdueRentals)
	defer span.End()

	rentals, err := i.rentalsUseCase.ListOverdueRentals(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, toRentals(rentals))
}
