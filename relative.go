package temporal

import (
	"time"

	"github.com/klntsky/temporal-api/calendar"
	"github.com/klntsky/temporal-api/internal/safenum"
)

// Offsets is the accumulated signed adjustment per calendar unit. The
// components are kept separate rather than collapsed into one millisecond
// delta: the calendar engine refuses a single adjustment mixing positive
// and negative units, and months and years have no fixed length anyway.
// Weeks have no field of their own; they fold into Days at 7 per week.
type Offsets struct {
	Years        int64
	Months       int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// RelativeDate accumulates calendar-unit offsets against a fixed anchor
// instant and resolves them on demand. Every WithXxx call returns a new
// value sharing the anchor with its parent, so any intermediate builder
// can be kept and branched later; no instance is ever mutated after
// construction, making all of them safe for concurrent reads.
type RelativeDate struct {
	anchor   calendar.CivilDateTime
	anchorMs int64
	offsets  Offsets
	engine   calendar.Engine
	err      error
}

func newRelativeDate(epochMs int64, engine calendar.Engine) RelativeDate {
	return RelativeDate{
		anchor:   calendar.FromEpochMs(epochMs),
		anchorMs: epochMs,
		engine:   engine,
	}
}

func (rd RelativeDate) withOffset(unit string, n float64, apply func(*Offsets, int64)) RelativeDate {
	if rd.err != nil {
		return rd
	}
	if err := safenum.CheckSafeInteger(n, unit); err != nil {
		rd.err = err
		return rd
	}
	// rd is a copy; mutating its offsets leaves the parent untouched
	apply(&rd.offsets, int64(n))
	return rd
}

// WithYears returns a new builder with n added to the years offset.
func (rd RelativeDate) WithYears(n float64) RelativeDate {
	return rd.withOffset("years", n, func(o *Offsets, v int64) { o.Years += v })
}

// WithMonths returns a new builder with n added to the months offset.
func (rd RelativeDate) WithMonths(n float64) RelativeDate {
	return rd.withOffset("months", n, func(o *Offsets, v int64) { o.Months += v })
}

// WithWeeks returns a new builder with n*7 added to the days offset.
func (rd RelativeDate) WithWeeks(n float64) RelativeDate {
	return rd.withOffset("weeks", n, func(o *Offsets, v int64) { o.Days += v * 7 })
}

// WithDays returns a new builder with n added to the days offset.
func (rd RelativeDate) WithDays(n float64) RelativeDate {
	return rd.withOffset("days", n, func(o *Offsets, v int64) { o.Days += v })
}

// WithHours returns a new builder with n added to the hours offset.
func (rd RelativeDate) WithHours(n float64) RelativeDate {
	return rd.withOffset("hours", n, func(o *Offsets, v int64) { o.Hours += v })
}

// WithMinutes returns a new builder with n added to the minutes offset.
func (rd RelativeDate) WithMinutes(n float64) RelativeDate {
	return rd.withOffset("minutes", n, func(o *Offsets, v int64) { o.Minutes += v })
}

// WithSeconds returns a new builder with n added to the seconds offset.
func (rd RelativeDate) WithSeconds(n float64) RelativeDate {
	return rd.withOffset("seconds", n, func(o *Offsets, v int64) { o.Seconds += v })
}

// WithMilliseconds returns a new builder with n added to the milliseconds offset.
func (rd RelativeDate) WithMilliseconds(n float64) RelativeDate {
	return rd.withOffset("milliseconds", n, func(o *Offsets, v int64) { o.Milliseconds += v })
}

// resolveTarget applies the accumulated offsets to the anchor, one engine
// call per nonzero unit, always in the order years, months, days, hours,
// minutes, seconds, milliseconds regardless of the order of WithXxx calls.
// Per-unit application keeps each component's sign intact when the signs
// differ across units.
func (rd RelativeDate) resolveTarget() (calendar.CivilDateTime, error) {
	target := rd.anchor
	steps := []struct {
		unit   calendar.Unit
		amount int64
	}{
		{calendar.UnitYears, rd.offsets.Years},
		{calendar.UnitMonths, rd.offsets.Months},
		{calendar.UnitDays, rd.offsets.Days},
		{calendar.UnitHours, rd.offsets.Hours},
		{calendar.UnitMinutes, rd.offsets.Minutes},
		{calendar.UnitSeconds, rd.offsets.Seconds},
		{calendar.UnitMilliseconds, rd.offsets.Milliseconds},
	}
	for _, step := range steps {
		if step.amount == 0 {
			continue
		}
		next, err := rd.engine.Add(target, step.unit, step.amount)
		if err != nil {
			// engine failures surface as is, no recovery or clamping
			return calendar.CivilDateTime{}, err
		}
		target = next
	}
	return target, nil
}

// DeltaMs returns the exact signed millisecond distance between the anchor
// and the resolved target, accounting for variable month and year lengths.
func (rd RelativeDate) DeltaMs() (int64, error) {
	if rd.err != nil {
		return 0, rd.err
	}
	target, err := rd.resolveTarget()
	if err != nil {
		return 0, err
	}
	return target.EpochMs() - rd.anchorMs, nil
}

// Milliseconds returns DeltaMs as a float64.
func (rd RelativeDate) Milliseconds() (float64, error) { return rd.deltaIn(1) }

// Seconds returns the resolved delta expressed in seconds.
func (rd RelativeDate) Seconds() (float64, error) { return rd.deltaIn(MsPerSecond) }

// Minutes returns the resolved delta expressed in minutes.
func (rd RelativeDate) Minutes() (float64, error) { return rd.deltaIn(MsPerMinute) }

// Hours returns the resolved delta expressed in hours.
func (rd RelativeDate) Hours() (float64, error) { return rd.deltaIn(MsPerHour) }

// Days returns the resolved delta expressed in days.
func (rd RelativeDate) Days() (float64, error) { return rd.deltaIn(MsPerDay) }

// Weeks returns the resolved delta expressed in weeks.
func (rd RelativeDate) Weeks() (float64, error) { return rd.deltaIn(MsPerWeek) }

func (rd RelativeDate) deltaIn(factor float64) (float64, error) {
	delta, err := rd.DeltaMs()
	if err != nil {
		return 0, err
	}
	return float64(delta) / factor, nil
}

// Months returns the resolved delta as a fractional month count. Whole
// months are measured by the calendar engine; any remainder below a month
// is divided by the length of the month at the whole-month point, since
// "half a month" is only meaningful relative to the month actually being
// traversed.
func (rd RelativeDate) Months() (float64, error) {
	if rd.err != nil {
		return 0, rd.err
	}
	target, err := rd.resolveTarget()
	if err != nil {
		return 0, err
	}
	diff := rd.engine.Difference(rd.anchor, target, calendar.UnitYears)
	whole := diff.Years*12 + diff.Months
	base, err := rd.engine.Add(rd.anchor, calendar.UnitMonths, whole)
	if err != nil {
		return 0, err
	}
	remMs := target.EpochMs() - base.EpochMs()
	if remMs == 0 {
		return float64(whole), nil
	}
	monthMs := float64(rd.engine.DaysInMonth(base)) * MsPerDay
	return float64(whole) + float64(remMs)/monthMs, nil
}

// Years returns the resolved delta as a fractional year count, defined as
// Months()/12.
func (rd RelativeDate) Years() (float64, error) {
	months, err := rd.Months()
	if err != nil {
		return 0, err
	}
	return months / 12, nil
}

// Timestamp returns the absolute epoch milliseconds of the resolved target.
func (rd RelativeDate) Timestamp() (int64, error) {
	delta, err := rd.DeltaMs()
	if err != nil {
		return 0, err
	}
	return rd.anchorMs + delta, nil
}

// Time returns the resolved target as a time.Time in UTC.
func (rd RelativeDate) Time() (time.Time, error) {
	ts, err := rd.Timestamp()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ts).UTC(), nil
}

// Anchor returns the anchor instant as a time.Time in UTC.
func (rd RelativeDate) Anchor() time.Time {
	return time.UnixMilli(rd.anchorMs).UTC()
}

// Err reports the first validation error hit by the chain, if any. Once
// set, every later WithXxx call passes it through unchanged and every
// getter returns it.
func (rd RelativeDate) Err() error { return rd.err }
