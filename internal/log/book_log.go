package log

import (
	"github.com/project/library/internal/entity"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateBook(l *zap.Logger, msg string, traceID string, book entity.Book) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", book.ID),
		zap.String("book_title", book.Title),
		zap.Int64s("category_ids", book.CategoryIDs()),
		zap.String("action", CreateBook))
}

func ErrorCreateBook(l *zap.Logger, err error, msg string, traceID, title string, categoryIDs []int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Int64s("category_ids", categoryIDs),
		zap.Error(err),
		zap.String("action", CreateBook))
}

// InfoBook and ErrorBook cover the read paths keyed by a single book id.
func InfoBook(l *zap.Logger, action Action, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", action))
}

func ErrorBook(l *zap.Logger, action Action, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoSearchBooks(l *zap.Logger, msg string, traceID string, filter entity.BookFilter, found int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("title", filter.Title),
		zap.String("author", filter.Author),
		zap.String("category", filter.Category),
		zap.Int("found", found),
		zap.String("action", SearchBooks))
}

func ErrorSearchBooks(l *zap.Logger, err error, msg string, traceID string, filter entity.BookFilter) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("title", filter.Title),
		zap.String("author", filter.Author),
		zap.String("category", filter.Category),
		zap.Error(err),
		zap.String("action", SearchBooks))
}

func InfoUpdateBookStatus(l *zap.Logger, msg string, traceID string, bookID int64, from, to entity.BookStatus) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(to)),
		zap.String("action", UpdateBookStatus))
}

func ErrorUpdateBookStatus(l *zap.Logger, err error, msg string, traceID string, bookID int64, status entity.BookStatus) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("to_status", string(status)),
		zap.Error(err),
		zap.String("action", UpdateBookStatus))
}

func InfoUpdateBookCategories(l *zap.Logger, msg string, traceID string, bookID int64, categoryIDs []int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Int64s("category_ids", categoryIDs),
		zap.String("action", UpdateBookCategories))
}

func ErrorUpdateBookCategories(l *zap.Logger, err error, msg string, traceID string, bookID int64, categoryIDs []int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Int64s("category_ids", categoryIDs),
		zap.Error(err),
		zap.String("action", UpdateBookCategories))
}
