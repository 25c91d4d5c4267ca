package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func civil(year, month, day, hour, minute, second, ms int) CivilDateTime {
	return CivilDateTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Millisecond: ms,
	}
}

func mustAdd(t *testing.T, dt CivilDateTime, unit Unit, amount int64) CivilDateTime {
	t.Helper()
	out, err := Gregorian().Add(dt, unit, amount)
	require.NoError(t, err)
	return out
}

func TestFromEpochMsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ms := range []int64{0, 1, -1, 1612137600000, -2208988800000, 253402300799999} {
		require.Equal(t, ms, FromEpochMs(ms).EpochMs())
	}
	require.Equal(t, civil(1970, 1, 1, 0, 0, 0, 0), FromEpochMs(0))
	require.Equal(t, civil(1969, 12, 31, 23, 59, 59, 999), FromEpochMs(-1))
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	t.Parallel()

	require.Equal(t, civil(2021, 2, 28, 0, 0, 0, 0),
		mustAdd(t, civil(2021, 1, 31, 0, 0, 0, 0), UnitMonths, 1))
	require.Equal(t, civil(2020, 2, 29, 0, 0, 0, 0),
		mustAdd(t, civil(2020, 1, 31, 0, 0, 0, 0), UnitMonths, 1))
	require.Equal(t, civil(2021, 2, 28, 12, 30, 0, 0),
		mustAdd(t, civil(2021, 3, 31, 12, 30, 0, 0), UnitMonths, -1))
	require.Equal(t, civil(2021, 6, 30, 0, 0, 0, 0),
		mustAdd(t, civil(2021, 5, 31, 0, 0, 0, 0), UnitMonths, 1))
	// crossing a year boundary in both directions
	require.Equal(t, civil(2022, 1, 30, 0, 0, 0, 0),
		mustAdd(t, civil(2021, 11, 30, 0, 0, 0, 0), UnitMonths, 2))
	require.Equal(t, civil(2020, 11, 30, 0, 0, 0, 0),
		mustAdd(t, civil(2021, 1, 30, 0, 0, 0, 0), UnitMonths, -2))
}

func TestAddYears(t *testing.T) {
	t.Parallel()

	require.Equal(t, civil(2021, 2, 28, 0, 0, 0, 0),
		mustAdd(t, civil(2020, 2, 29, 0, 0, 0, 0), UnitYears, 1))
	require.Equal(t, civil(2024, 2, 29, 0, 0, 0, 0),
		mustAdd(t, civil(2020, 2, 29, 0, 0, 0, 0), UnitYears, 4))
	require.Equal(t, civil(1923, 6, 15, 0, 0, 0, 0),
		mustAdd(t, civil(2023, 6, 15, 0, 0, 0, 0), UnitYears, -100))
}

func TestAddFixedUnits(t *testing.T) {
	t.Parallel()

	require.Equal(t, civil(2021, 3, 1, 0, 0, 0, 0),
		mustAdd(t, civil(2021, 2, 28, 0, 0, 0, 0), UnitDays, 1))
	require.Equal(t, civil(2020, 2, 29, 0, 0, 0, 0),
		mustAdd(t, civil(2020, 2, 28, 0, 0, 0, 0), UnitDays, 1))
	require.Equal(t, civil(2021, 1, 1, 1, 0, 0, 0),
		mustAdd(t, civil(2020, 12, 31, 23, 0, 0, 0), UnitHours, 2))
	require.Equal(t, civil(2021, 1, 1, 0, 0, 0, 1),
		mustAdd(t, civil(2020, 12, 31, 23, 59, 59, 999), UnitMilliseconds, 2))
	require.Equal(t, civil(2020, 12, 31, 23, 59, 0, 0),
		mustAdd(t, civil(2021, 1, 1, 0, 0, 0, 0), UnitMinutes, -1))
}

func TestAddRejectsUnrepresentableResults(t *testing.T) {
	t.Parallel()
	eng := Gregorian()
	epoch := civil(1970, 1, 1, 0, 0, 0, 0)

	// day counts whose millisecond value no longer fits must fail loudly
	// instead of wrapping int64 into a bogus instant
	for _, amount := range []int64{1e12, -1e12, 1<<53 - 1, -(1<<53 - 1)} {
		_, err := eng.Add(epoch, UnitDays, amount)
		require.ErrorIs(t, err, ErrOutOfRange, "days %d", amount)
	}
	_, err := eng.Add(epoch, UnitHours, 1e16)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = eng.Add(epoch, UnitYears, 1e9)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = eng.Add(epoch, UnitMonths, -(1<<53 - 1))
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = eng.Add(epoch, UnitMilliseconds, 1<<53-1)
	require.NoError(t, err, "the extreme representable instant is still fine")

	// large but representable spans stay exact
	got := mustAdd(t, epoch, UnitDays, 100_000_000)
	require.Equal(t, int64(100_000_000)*24*3600*1000, got.EpochMs())
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	eng := Gregorian()

	require.Equal(t, 29, eng.DaysInMonth(civil(2020, 2, 1, 0, 0, 0, 0)))
	require.Equal(t, 28, eng.DaysInMonth(civil(2021, 2, 1, 0, 0, 0, 0)))
	require.Equal(t, 28, eng.DaysInMonth(civil(2100, 2, 1, 0, 0, 0, 0))) // century, not leap
	require.Equal(t, 29, eng.DaysInMonth(civil(2000, 2, 1, 0, 0, 0, 0))) // 400-year rule
	require.Equal(t, 31, eng.DaysInMonth(civil(2021, 1, 15, 0, 0, 0, 0)))
	require.Equal(t, 30, eng.DaysInMonth(civil(2021, 4, 30, 0, 0, 0, 0)))
}

func TestDifferenceWholeMonthsAndRemainder(t *testing.T) {
	t.Parallel()
	eng := Gregorian()

	diff := eng.Difference(civil(2021, 1, 15, 0, 0, 0, 0), civil(2021, 2, 20, 0, 0, 0, 0), UnitMonths)
	require.Equal(t, Components{Months: 1, Days: 5}, diff)

	diff = eng.Difference(civil(2020, 1, 15, 0, 0, 0, 0), civil(2022, 3, 20, 6, 0, 0, 0), UnitYears)
	require.Equal(t, Components{Years: 2, Months: 2, Days: 5, Hours: 6}, diff)

	// the raw month-field delta overshoots here: Jan 31 + 1 month clamps to
	// Feb 28, which is past Feb 20, so only 0 whole months fit
	diff = eng.Difference(civil(2021, 1, 31, 0, 0, 0, 0), civil(2021, 2, 20, 0, 0, 0, 0), UnitMonths)
	require.Equal(t, Components{Months: 0, Days: 20}, diff)

	// exact whole-month span, no remainder
	diff = eng.Difference(civil(2021, 1, 31, 0, 0, 0, 0), civil(2021, 2, 28, 0, 0, 0, 0), UnitMonths)
	require.Equal(t, Components{Months: 1}, diff)
}

func TestDifferenceBackward(t *testing.T) {
	t.Parallel()
	eng := Gregorian()

	diff := eng.Difference(civil(2021, 3, 20, 0, 0, 0, 0), civil(2021, 1, 15, 0, 0, 0, 0), UnitMonths)
	require.Equal(t, Components{Months: -2, Days: -5}, diff)

	// stepping back one month from Feb 28 would clamp to Jan 28 and
	// overshoot past Jan 31, so zero whole months fit
	diff = eng.Difference(civil(2021, 2, 28, 0, 0, 0, 0), civil(2021, 1, 31, 0, 0, 0, 0), UnitMonths)
	require.Equal(t, Components{Months: 0, Days: -28}, diff)
}

func TestDifferenceDaysLargest(t *testing.T) {
	t.Parallel()
	eng := Gregorian()

	diff := eng.Difference(civil(2021, 1, 1, 0, 0, 0, 0), civil(2021, 1, 3, 4, 5, 6, 7), UnitDays)
	require.Equal(t, Components{Days: 2, Hours: 4, Minutes: 5, Seconds: 6, Milliseconds: 7}, diff)

	diff = eng.Difference(civil(2021, 1, 3, 0, 0, 0, 0), civil(2021, 1, 1, 12, 0, 0, 0), UnitHours)
	require.Equal(t, Components{Hours: -36}, diff)
}

func TestCivilTimeIsUTC(t *testing.T) {
	t.Parallel()

	dt := civil(2021, 3, 4, 5, 6, 7, 890)
	require.Equal(t, time.Date(2021, 3, 4, 5, 6, 7, 890e6, time.UTC), dt.Time())
	require.Equal(t, dt, FromEpochMs(dt.EpochMs()))
}
