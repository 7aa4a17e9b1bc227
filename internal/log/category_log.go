package log

import (
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateCategory(l *zap.Logger, msg string, traceID, name string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("category_name", name),
			zap.String("action", CreateCategory))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("category_id", id[0]),
		zap.String("category_name", name),
		zap.String("action", CreateCategory))
}

func ErrorCreateCategory(l *zap.Logger, err error, msg string, traceID, name string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("category_name", name),
		zap.Error(err),
		zap.String("action", CreateCategory))
}

func InfoCategory(l *zap.Logger, action Action, msg string, traceID string, categoryID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("category_id", categoryID),
		zap.String("action", action))
}

func ErrorCategory(l *zap.Logger, action Action, err error, msg string, traceID string, categoryID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("category_id", categoryID),
		zap.Error(err),
		zap.String("action", action))
}

// ErrorList is shared by the listing endpoints that take no arguments.
func ErrorList(l *zap.Logger, action Action, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoList(l *zap.Logger, action Action, msg string, traceID string, size int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("size", size),
		zap.String("action", action))
}
