package temporal

import (
	"github.com/pkg/errors"

	"github.com/klntsky/temporal-api/internal/safenum"
)

// ValidationError is a rejected numeric argument to a unit setter or to
// FromDate. Unit names the offending call site; the message text per
// cause is a compatibility contract.
type ValidationError = safenum.Error

// ValidationCause identifies why a ValidationError was raised.
type ValidationCause = safenum.Cause

const (
	// CauseNotFinite: NaN or ±Inf where a finite number is required
	// (fixed-duration setters).
	CauseNotFinite = safenum.CauseNotFinite
	// CauseMagnitude: integer part beyond the safe range (fixed-duration
	// setters).
	CauseMagnitude = safenum.CauseMagnitude
	// CauseNotFiniteInt: NaN or ±Inf where a finite integer is required
	// (relative-date setters and FromDate).
	CauseNotFiniteInt = safenum.CauseNotFiniteInt
	// CauseFraction: fractional value where an integer is required.
	CauseFraction = safenum.CauseFraction
	// CauseRange: integer beyond the safe range.
	CauseRange = safenum.CauseRange
)

// ErrInvalidDateInput is returned by FromDate when a string or time input
// does not parse to a valid instant.
var ErrInvalidDateInput = errors.New("fromDate: Invalid date input")

// ErrUnsupportedInput is returned by FromDate for input types it does not
// recognize.
var ErrUnsupportedInput = errors.New("fromDate: Input must be a Date object, timestamp (number), or ISO date string")
