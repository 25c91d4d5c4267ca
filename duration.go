package temporal

import (
	"time"

	"github.com/hako/durafmt"

	"github.com/klntsky/temporal-api/internal/safenum"
)

// Milliseconds per unit, shared by both builders.
const (
	MsPerSecond = 1_000
	MsPerMinute = 60 * MsPerSecond
	MsPerHour   = 60 * MsPerMinute
	MsPerDay    = 24 * MsPerHour
	MsPerWeek   = 7 * MsPerDay
)

// Duration accumulates a fixed-length span as a single millisecond total.
// Unlike RelativeDate it has no calendar anchor: every unit is a constant
// number of milliseconds, so contributions commute exactly and the builder
// mutates in place. A single instance must not be shared across concurrent
// callers.
//
// Fractional and negative contributions are legal: AddHours(1.5) adds 90
// minutes, AddHours(-24) subtracts a day.
type Duration struct {
	totalMs float64
	err     error
}

func (d *Duration) add(unit string, n, factor float64) *Duration {
	if d.err != nil {
		return d
	}
	if err := safenum.CheckFiniteMagnitude(n, unit); err != nil {
		d.err = err
		return d
	}
	d.totalMs += n * factor
	return d
}

func (d *Duration) get(factor float64) (float64, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.totalMs / factor, nil
}

// AddWeeks adds n weeks to the total and returns the same builder.
func (d *Duration) AddWeeks(n float64) *Duration { return d.add("weeks", n, MsPerWeek) }

// AddDays adds n days to the total and returns the same builder.
func (d *Duration) AddDays(n float64) *Duration { return d.add("days", n, MsPerDay) }

// AddHours adds n hours to the total and returns the same builder.
func (d *Duration) AddHours(n float64) *Duration { return d.add("hours", n, MsPerHour) }

// AddMinutes adds n minutes to the total and returns the same builder.
func (d *Duration) AddMinutes(n float64) *Duration { return d.add("minutes", n, MsPerMinute) }

// AddSeconds adds n seconds to the total and returns the same builder.
func (d *Duration) AddSeconds(n float64) *Duration { return d.add("seconds", n, MsPerSecond) }

// AddMilliseconds adds n milliseconds to the total and returns the same builder.
func (d *Duration) AddMilliseconds(n float64) *Duration { return d.add("milliseconds", n, 1) }

// Weeks returns the accumulated total expressed in weeks. The result may
// be fractional: Days(15) reads back as 15/7 weeks.
func (d *Duration) Weeks() (float64, error) { return d.get(MsPerWeek) }

// Days returns the accumulated total expressed in days.
func (d *Duration) Days() (float64, error) { return d.get(MsPerDay) }

// Hours returns the accumulated total expressed in hours.
func (d *Duration) Hours() (float64, error) { return d.get(MsPerHour) }

// Minutes returns the accumulated total expressed in minutes.
func (d *Duration) Minutes() (float64, error) { return d.get(MsPerMinute) }

// Seconds returns the accumulated total expressed in seconds.
func (d *Duration) Seconds() (float64, error) { return d.get(MsPerSecond) }

// Milliseconds returns the accumulated total in milliseconds.
func (d *Duration) Milliseconds() (float64, error) { return d.get(1) }

// Err reports the first validation error hit by the chain, if any. Once
// set, every later Add call is a no-op and every getter returns the error.
func (d *Duration) Err() error { return d.err }

// AsDuration converts the total to a time.Duration.
func (d *Duration) AsDuration() (time.Duration, error) {
	if d.err != nil {
		return 0, d.err
	}
	return time.Duration(d.totalMs * float64(time.Millisecond)), nil
}

// String renders the total as humanized text, e.g. "2 days 3 hours".
func (d *Duration) String() string {
	if d.err != nil {
		return "invalid duration"
	}
	return durafmt.Parse(time.Duration(d.totalMs * float64(time.Millisecond))).String()
}
