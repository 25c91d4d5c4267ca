// Package temporal provides two duration/date-arithmetic builders: a fixed
// Duration operating on pure millisecond totals, and a calendar-aware
// RelativeDate that applies leap years, variable month lengths and
// mixed-sign offsets correctly.
package temporal

import (
	"time"

	"github.com/pkg/errors"
	"github.com/xhit/go-str2duration/v2"

	"github.com/klntsky/temporal-api/calendar"
	"github.com/klntsky/temporal-api/internal/safenum"
)

// Weeks creates a fixed-duration builder seeded with n weeks (1 if omitted).
func Weeks(n ...float64) *Duration { return new(Duration).AddWeeks(argOrOne(n)) }

// Days creates a fixed-duration builder seeded with n days (1 if omitted).
func Days(n ...float64) *Duration { return new(Duration).AddDays(argOrOne(n)) }

// Hours creates a fixed-duration builder seeded with n hours (1 if omitted).
func Hours(n ...float64) *Duration { return new(Duration).AddHours(argOrOne(n)) }

// Minutes creates a fixed-duration builder seeded with n minutes (1 if omitted).
func Minutes(n ...float64) *Duration { return new(Duration).AddMinutes(argOrOne(n)) }

// Seconds creates a fixed-duration builder seeded with n seconds (1 if omitted).
func Seconds(n ...float64) *Duration { return new(Duration).AddSeconds(argOrOne(n)) }

// Milliseconds creates a fixed-duration builder seeded with n milliseconds (1 if omitted).
func Milliseconds(n ...float64) *Duration { return new(Duration).AddMilliseconds(argOrOne(n)) }

func argOrOne(n []float64) float64 {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

// ParseDuration builds a fixed-duration builder from a human duration
// string such as "1d12h" or "90m". Day and week notations are supported in
// addition to the standard Go duration units.
func ParseDuration(s string) (*Duration, error) {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse duration %q", s)
	}
	return Milliseconds(float64(d.Milliseconds())), nil
}

// FromDate constructs a RelativeDate anchored at the given instant. The
// input may be a time.Time, a numeric epoch-millisecond timestamp, or an
// ISO-8601 date/time string. String inputs without an explicit zone are
// read as UTC.
func FromDate(input any, opts ...FromDateOption) (RelativeDate, error) {
	props := fromDateProps{engine: calendar.Gregorian()}
	for _, opt := range opts {
		opt(&props)
	}
	switch v := input.(type) {
	case time.Time:
		if v.IsZero() {
			return RelativeDate{}, ErrInvalidDateInput
		}
		return newRelativeDate(v.UnixMilli(), props.engine), nil
	case string:
		t, err := parseISO(v)
		if err != nil {
			return RelativeDate{}, ErrInvalidDateInput
		}
		return newRelativeDate(t.UnixMilli(), props.engine), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		ms := numericToFloat(v)
		if err := safenum.CheckSafeInteger(ms, "fromDate"); err != nil {
			return RelativeDate{}, err
		}
		return newRelativeDate(int64(ms), props.engine), nil
	default:
		return RelativeDate{}, ErrUnsupportedInput
	}
}

// FromTime constructs a RelativeDate anchored at t. It is the statically
// typed equivalent of FromDate(t) and cannot fail.
func FromTime(t time.Time, opts ...FromDateOption) RelativeDate {
	props := fromDateProps{engine: calendar.Gregorian()}
	for _, opt := range opts {
		opt(&props)
	}
	return newRelativeDate(t.UnixMilli(), props.engine)
}

// FromNow constructs a RelativeDate anchored at the current instant.
func FromNow(opts ...FromDateOption) RelativeDate {
	return FromTime(time.Now(), opts...)
}

// isoLayouts are tried in order, most specific first. Layouts without a
// zone designator parse as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date string %q", s)
}

func numericToFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
