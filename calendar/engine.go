package calendar

import (
	"time"

	"github.com/pkg/errors"
)

// Unit is a calendar unit, ordered from largest to smallest.
type Unit int

const (
	UnitYears Unit = iota
	UnitMonths
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitMilliseconds
)

const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
)

// maxEpochMs bounds the representable instants to the epoch-millisecond
// values a float64 can hold exactly (±2^53−1). Keeping every instant
// inside it also keeps all internal int64 arithmetic overflow-free.
const maxEpochMs = 1<<53 - 1

// maxYear over-approximates the year reachable from maxEpochMs; it lets
// month arithmetic reject absurd targets before building a time.Time.
const maxYear = 300_000

// ErrOutOfRange is returned by Add when the resulting instant cannot be
// represented. Callers must not recover or clamp; the failure surfaces
// as is.
var ErrOutOfRange = errors.New("calendar: resolved date outside representable range")

// Components is a signed per-unit calendar difference. All populated
// fields carry the same sign (or are zero).
type Components struct {
	Years        int64
	Months       int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// Engine performs calendar arithmetic on civil date-times. Each Add call
// applies a single signed amount of a single unit; callers that need a
// mixed-sign adjustment must issue one call per unit.
type Engine interface {
	// Add applies amount units to dt. Adding months or years clamps the
	// day to the end of the resulting month (Jan 31 + 1 month = Feb 28),
	// it never rolls over into the following month. Fails with
	// ErrOutOfRange when the result leaves the representable range.
	Add(dt CivilDateTime, unit Unit, amount int64) (CivilDateTime, error)
	// Difference reports the signed calendar span from a to b, with
	// largest as the biggest unit populated. The whole-month count is the
	// largest step from a toward b that does not overshoot b. Both inputs
	// must be representable values.
	Difference(a, b CivilDateTime, largest Unit) Components
	// DaysInMonth reports the length of dt's month.
	DaysInMonth(dt CivilDateTime) int
}

// Gregorian returns the default engine, implementing proleptic Gregorian
// rules (leap years, variable month lengths) in the UTC calendar.
func Gregorian() Engine {
	return gregorian{}
}

type gregorian struct{}

func (gregorian) Add(dt CivilDateTime, unit Unit, amount int64) (CivilDateTime, error) {
	switch unit {
	case UnitYears:
		return addMonthsChecked(dt, amount, 12)
	case UnitMonths:
		return addMonthsChecked(dt, amount, 1)
	case UnitDays:
		return addMsChecked(dt, amount, msPerDay)
	case UnitHours:
		return addMsChecked(dt, amount, msPerHour)
	case UnitMinutes:
		return addMsChecked(dt, amount, msPerMinute)
	case UnitSeconds:
		return addMsChecked(dt, amount, msPerSecond)
	case UnitMilliseconds:
		return addMsChecked(dt, amount, 1)
	}
	return dt, nil
}

func (gregorian) Difference(a, b CivilDateTime, largest Unit) Components {
	var c Components
	aMs, bMs := a.EpochMs(), b.EpochMs()
	if largest >= UnitDays {
		splitMs(bMs-aMs, largest, &c)
		return c
	}
	// Whole months first. The year/month field delta is an upper bound on
	// the magnitude; back it off until a + months no longer overshoots b.
	months := int64(b.Year-a.Year)*12 + int64(b.Month-a.Month)
	if bMs >= aMs {
		for months > 0 && addMonths(a, months).EpochMs() > bMs {
			months--
		}
	} else {
		for months < 0 && addMonths(a, months).EpochMs() < bMs {
			months++
		}
	}
	if largest == UnitYears {
		c.Years = months / 12
		c.Months = months % 12
	} else {
		c.Months = months
	}
	splitMs(bMs-addMonths(a, months).EpochMs(), UnitDays, &c)
	return c
}

func (gregorian) DaysInMonth(dt CivilDateTime) int {
	return daysIn(dt.Year, dt.Month)
}

// addMsChecked applies amount*factor milliseconds, rejecting any result
// outside ±maxEpochMs. The bound check runs before the multiplication so
// int64 arithmetic can never wrap: validated inputs go up to 2^53−1
// units, far more than amount*msPerDay can hold.
func addMsChecked(dt CivilDateTime, amount, factor int64) (CivilDateTime, error) {
	base := dt.EpochMs()
	if amount > (maxEpochMs-base)/factor || amount < (-maxEpochMs-base)/factor {
		return CivilDateTime{}, ErrOutOfRange
	}
	return FromEpochMs(base + amount*factor), nil
}

// addMonthsChecked guards the month shift the same way: the target year
// is bounded before any time.Time is built (time.Date silently wraps its
// seconds for astronomic years), then the exact result is checked against
// the representable range.
func addMonthsChecked(dt CivilDateTime, amount, factor int64) (CivilDateTime, error) {
	if amount > (1<<60)/factor || amount < -(1<<60)/factor {
		return CivilDateTime{}, ErrOutOfRange
	}
	months := amount * factor
	if year := (int64(dt.Year)*12 + int64(dt.Month-1) + months) / 12; year > maxYear || year < -maxYear {
		return CivilDateTime{}, ErrOutOfRange
	}
	out := addMonths(dt, months)
	if ms := out.EpochMs(); ms > maxEpochMs || ms < -maxEpochMs {
		return CivilDateTime{}, ErrOutOfRange
	}
	return out, nil
}

// addMonths shifts dt by a signed number of months, clamping the day to
// the end of the target month when needed. Time of day is preserved.
// The caller is responsible for keeping the result in range.
func addMonths(dt CivilDateTime, months int64) CivilDateTime {
	total := int64(dt.Year)*12 + int64(dt.Month-1) + months
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	out := dt
	out.Year = int(year)
	out.Month = int(month) + 1
	if dim := daysIn(out.Year, out.Month); out.Day > dim {
		out.Day = dim
	}
	return out
}

// daysIn relies on time.Date normalizing day 0 to the last day of the
// previous month.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// splitMs distributes a signed millisecond span over the units from
// largest down to milliseconds. Go's truncating division keeps every
// component on the same side of zero as ms.
func splitMs(ms int64, largest Unit, c *Components) {
	if largest <= UnitDays {
		c.Days = ms / msPerDay
		ms -= c.Days * msPerDay
	}
	if largest <= UnitHours {
		c.Hours = ms / msPerHour
		ms -= c.Hours * msPerHour
	}
	if largest <= UnitMinutes {
		c.Minutes = ms / msPerMinute
		ms -= c.Minutes * msPerMinute
	}
	if largest <= UnitSeconds {
		c.Seconds = ms / msPerSecond
		ms -= c.Seconds * msPerSecond
	}
	c.Milliseconds = ms
}
