package entity

import "time"

// DateLayout is the calendar date format used for due and returned dates.
const DateLayout = time.DateOnly

// DateOf drops the clock part of t, keeping the calendar date t has in its
// own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
