package log

import (
	"time"

	"github.com/project/library/internal/entity"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

func InfoBorrowBook(l *zap.Logger, msg string, traceID string, rental entity.Rental) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("rental_id", rental.ID),
		zap.Int64("book_id", rental.BookID),
		zap.String("due_date", rental.DueDate.Format(entity.DateLayout)),
		zap.String("action", BorrowBook))
}

func ErrorBorrowBook(l *zap.Logger, err error, msg string, traceID string, bookID int64, due time.Time) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("due_date", due.Format(entity.DateLayout)),
		zap.Error(err),
		zap.String("action", BorrowBook))
}

func InfoReturnBook(l *zap.Logger, msg string, traceID string, rental entity.Rental) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("rental_id", rental.ID),
		zap.Int64("book_id", rental.BookID),
		zap.String("action", ReturnBook))
}

func InfoRental(l *zap.Logger, action Action, msg string, traceID string, rentalID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("rental_id", rentalID),
		zap.String("action", action))
}

func ErrorRental(l *zap.Logger, action Action, err error, msg string, traceID string, rentalID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("rental_id", rentalID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoReconcileOverdue(l *zap.Logger, traceID string, transitioned []entity.Rental) {
	if len(transitioned) == 0 {
		return
	}
	ids := make([]int64, 0, len(transitioned))
	for _, r := range transitioned {
		ids = append(ids, r.ID)
	}
	logger.MakeInfo(l, "rentals became overdue",
		zap.String("trace_id", traceID),
		zap.Int64s("rental_ids", ids),
		zap.String("action", ReconcileOverdue))
}

// WarnInconsistentState flags storage that broke the single active rental rule.
func WarnInconsistentState(l *zap.Logger, traceID string, bookID int64, err error) {
	logger.MakeWarn(l, "inconsistent rental state",
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err))
}
