package wallclock

import "time"

// Clock supplies the current instant. Implementations must be safe for
// concurrent use.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant. It is the deterministic
// Clock used by tests and by deployments pinned to a reference time.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// Parts holds a calendar decomposition of an instant. Month, Weekday and
// YearDay are zero-based (January = 0, Sunday = 0, 1 January = 0); Day
// counts from 1.
type Parts struct {
	Year    int64
	Month   int64
	Day     int64
	Weekday int64
	YearDay int64
	Hour    int64
	Minute  int64
	Second  int64
}

// Decompose splits t into calendar field values.
func Decompose(t time.Time) Parts {
	return Parts{
		Year:    int64(t.Year()),
		Month:   int64(t.Month()) - 1,
		Day:     int64(t.Day()),
		Weekday: int64(t.Weekday()),
		YearDay: int64(t.YearDay()) - 1,
		Hour:    int64(t.Hour()),
		Minute:  int64(t.Minute()),
		Second:  int64(t.Second()),
	}
}
