// Package calendar provides civil (timezone-free) calendar arithmetic:
// a plain date-and-time-of-day value and an engine that can add calendar
// units to it, diff two values, and report month lengths.
package calendar

import "time"

// CivilDateTime is a calendar date and time of day with millisecond
// precision and no timezone attached. Conversions to and from epoch
// milliseconds always reinterpret the value as UTC wall clock, so the
// round trip is exact in both directions.
type CivilDateTime struct {
	Year        int
	Month       int // 1..12
	Day         int // 1..days in month
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// FromEpochMs reads the instant's components as observed in UTC.
func FromEpochMs(ms int64) CivilDateTime {
	t := time.UnixMilli(ms).UTC()
	return CivilDateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Time returns the value as a time.Time in UTC.
func (dt CivilDateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Millisecond*int(time.Millisecond), time.UTC)
}

// EpochMs converts the value back to epoch milliseconds, symmetric with
// FromEpochMs.
func (dt CivilDateTime) EpochMs() int64 {
	return dt.Time().UnixMilli()
}
