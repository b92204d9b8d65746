package bound

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a proposed value fails its lower or upper
// bound predicate, or when an interval is configured with its lower limit
// above its upper limit.
var ErrOutOfRange = errors.New("value out of range")

// Predicate reports whether a candidate value satisfies one end of the
// interval.
type Predicate func(v int64) bool

// Limit returns the current value of one end of the interval. Limits are
// functions so that a bound can be computed from external state, such as
// the month a day field belongs to.
type Limit func() int64

// Value holds an integral quantity that never leaves its configured
// interval. Both ends are inclusive. Thread safety is the caller's
// responsibility; Value itself holds no locks and does no I/O.
type Value struct {
	val     int64
	lowerOK Predicate
	upperOK Predicate
	lower   Limit
	upper   Limit
}

// New creates a Value with the given bound predicates, limit functions and
// initial value. It fails with ErrOutOfRange if the lower limit exceeds the
// upper limit or if the initial value fails either predicate. Construction
// is atomic: on failure no Value is returned.
func New(lowerOK, upperOK Predicate, lower, upper Limit, initial int64) (*Value, error) {
	if upper() < lower() {
		return nil, fmt.Errorf("%w: lower limit %d above upper limit %d",
			ErrOutOfRange, lower(), upper())
	}
	if !lowerOK(initial) || !upperOK(initial) {
		return nil, fmt.Errorf("%w: initial value %d not within [%d, %d]",
			ErrOutOfRange, initial, lower(), upper())
	}
	return &Value{
		val:     initial,
		lowerOK: lowerOK,
		upperOK: upperOK,
		lower:   lower,
		upper:   upper,
	}, nil
}

// NewStatic creates a Value confined to the fixed interval [lower, upper].
func NewStatic(lower, upper, initial int64) (*Value, error) {
	return New(
		func(v int64) bool { return v >= lower },
		func(v int64) bool { return v <= upper },
		func() int64 { return lower },
		func() int64 { return upper },
		initial,
	)
}

// NewModular creates a Value confined to [0, base-1], the interval of a
// fixed-modulus field such as seconds or weekdays.
func NewModular(base, initial int64) (*Value, error) {
	if base < 1 {
		return nil, fmt.Errorf("%w: modular base %d must be positive", ErrOutOfRange, base)
	}
	return NewStatic(0, base-1, initial)
}

// Get returns the value held.
func (v *Value) Get() int64 { return v.val }

// Lower returns the current lower limit.
func (v *Value) Lower() int64 { return v.lower() }

// Upper returns the current upper limit.
func (v *Value) Upper() int64 { return v.upper() }

// Span returns the number of representable values in the interval,
// upper - lower + 1. It is at least 1 for any interval that satisfied the
// construction invariant.
func (v *Value) Span() int64 {
	s := v.upper() - v.lower() + 1
	if s < 1 {
		// A dynamic bound moved underneath us; treat the interval as a
		// single value so the modular arithmetic stays defined.
		return 1
	}
	return s
}

// Set replaces the value. It fails with ErrOutOfRange if the new value
// violates either predicate; the held value is untouched on failure.
func (v *Value) Set(newVal int64) error {
	if !v.lowerOK(newVal) || !v.upperOK(newVal) {
		return fmt.Errorf("%w: %d not within [%d, %d]",
			ErrOutOfRange, newVal, v.lower(), v.upper())
	}
	v.val = newVal
	return nil
}

// Add adds n units to the value, wrapping across the upper bound as needed.
// It returns the number of boundary crossings so the caller can carry the
// count into the next coarser field. The computation is division-based and
// O(1) regardless of n: n/Span() whole wraps, plus at most one more if the
// remainder crosses the upper bound from the starting position.
func (v *Value) Add(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	span := v.Span()
	wraps := n / uint64(span)
	rem := int64(n % uint64(span))
	if !v.upperOK(v.val + rem) {
		v.val = v.val + rem - span
		wraps++
	} else {
		v.val += rem
	}
	return wraps
}

// Sub subtracts n units from the value, wrapping across the lower bound as
// needed, and returns the number of boundary crossings. Symmetric to Add.
func (v *Value) Sub(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	span := v.Span()
	wraps := n / uint64(span)
	rem := int64(n % uint64(span))
	if !v.lowerOK(v.val - rem) {
		v.val = v.val - rem + span
		wraps++
	} else {
		v.val -= rem
	}
	return wraps
}

// Inc adds a single unit. It returns true if the value wrapped around to
// the lower limit.
func (v *Value) Inc() bool {
	v.val++
	if !v.upperOK(v.val) {
		v.val = v.lower()
		return true
	}
	return false
}

// Dec subtracts a single unit. It returns true if the value wrapped around
// to the upper limit. The upper limit is evaluated at wrap time, so a
// dependent bound updated just before Dec is honored.
func (v *Value) Dec() bool {
	v.val--
	if !v.lowerOK(v.val) {
		v.val = v.upper()
		return true
	}
	return false
}

// ReEvaluate re-checks the held value against the current bounds and clamps
// it to the nearest limit if it has been left outside by a dynamic bound
// change. It returns true if a clamp occurred. This is the only operation
// that clamps rather than rejects.
func (v *Value) ReEvaluate() bool {
	if !v.upperOK(v.val) {
		v.val = v.upper()
		return true
	}
	if !v.lowerOK(v.val) {
		v.val = v.lower()
		return true
	}
	return false
}

// Cmp compares the held values of two bounded quantities. It returns -1 if
// v is less than o, 0 if equal, and +1 if greater. Only the values are
// compared; the intervals play no part.
func (v *Value) Cmp(o *Value) int {
	return v.CmpInt(o.val)
}

// CmpInt compares the held value against a raw integer.
func (v *Value) CmpInt(n int64) int {
	switch {
	case v.val < n:
		return -1
	case v.val > n:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both values hold the same quantity.
func (v *Value) Equal(o *Value) bool { return v.val == o.val }

// Less reports whether v holds a smaller quantity than o.
func (v *Value) Less(o *Value) bool { return v.val < o.val }

// LessEq reports whether v holds a quantity no greater than o's.
func (v *Value) LessEq(o *Value) bool { return v.val <= o.val }

// Greater reports whether v holds a larger quantity than o.
func (v *Value) Greater(o *Value) bool { return v.val > o.val }

// GreaterEq reports whether v holds a quantity no smaller than o's.
func (v *Value) GreaterEq(o *Value) bool { return v.val >= o.val }

// String returns the value with its current interval, e.g. "6 [2, 9]".
func (v *Value) String() string {
	return fmt.Sprintf("%d [%d, %d]", v.val, v.lower(), v.upper())
}
