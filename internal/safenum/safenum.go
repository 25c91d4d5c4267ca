package safenum

import "math"

// MaxSafeInteger is the largest magnitude that a float64 can hold without
// losing integer precision (2^53 - 1). Values beyond it would silently
// corrupt offset arithmetic, so they are rejected up front.
const MaxSafeInteger = 1<<53 - 1

// Cause identifies why a numeric argument was rejected.
type Cause int

const (
	// CauseNotFinite: NaN or ±Inf given where a finite number is required.
	CauseNotFinite Cause = iota
	// CauseMagnitude: the integer part of the value exceeds MaxSafeInteger.
	CauseMagnitude
	// CauseNotFiniteInt: NaN or ±Inf given where a finite integer is required.
	CauseNotFiniteInt
	// CauseFraction: a fractional value given where an integer is required.
	CauseFraction
	// CauseRange: an integer value beyond MaxSafeInteger.
	CauseRange
)

var causeText = map[Cause]string{
	CauseNotFinite:    "value must be a finite number",
	CauseMagnitude:    "absolute value exceeds safe range",
	CauseNotFiniteInt: "value must be a finite integer",
	CauseFraction:     "value must be an integer (no decimals)",
	CauseRange:        "value exceeds safe integer range",
}

// Error is a rejected numeric argument, tagged with the unit (or entry
// point) name it was passed to. The message texts are a compatibility
// contract and must not change.
type Error struct {
	Unit  string
	Cause Cause
}

func (e *Error) Error() string {
	return e.Unit + ": " + causeText[e.Cause]
}

// CheckFiniteMagnitude accepts any finite value whose truncated integer
// part fits MaxSafeInteger. Fractional values are allowed.
func CheckFiniteMagnitude(n float64, unit string) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return &Error{Unit: unit, Cause: CauseNotFinite}
	}
	if math.Abs(math.Trunc(n)) > MaxSafeInteger {
		return &Error{Unit: unit, Cause: CauseMagnitude}
	}
	return nil
}

// CheckSafeInteger accepts only finite whole values within MaxSafeInteger.
func CheckSafeInteger(n float64, unit string) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return &Error{Unit: unit, Cause: CauseNotFiniteInt}
	}
	if n != math.Trunc(n) {
		return &Error{Unit: unit, Cause: CauseFraction}
	}
	if math.Abs(n) > MaxSafeInteger {
		return &Error{Unit: unit, Cause: CauseRange}
	}
	return nil
}
