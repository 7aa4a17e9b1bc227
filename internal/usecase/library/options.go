package library

import "time"

type Option func(*libraryImpl)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(l *libraryImpl) {
		if now != nil {
			l.now = now
		}
	}
}

// WithPastDueDatePolicy controls whether a borrow with a due date before
// today is rejected. Rejection is the default.
func WithPastDueDatePolicy(reject bool) Option {
	return func(l *libraryImpl) {
		l.rejectPastDueDate = reject
	}
}
