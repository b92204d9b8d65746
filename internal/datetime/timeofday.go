package datetime

import (
	"fmt"

	"chrono/internal/bound"
)

const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
)

// TimeOfDay is a wall-clock time: bounded hours [0, 23], minutes [0, 59]
// and seconds [0, 59]. All three intervals are fixed, so carries chain
// through plain moduli: a seconds overflow feeds the minutes field, whose
// overflow feeds the hours field, whose overflow is returned to the caller
// as a day count.
type TimeOfDay struct {
	hours   *bound.Value
	minutes *bound.Value
	seconds *bound.Value
}

// NewTimeOfDay creates a TimeOfDay. It fails with bound.ErrOutOfRange if
// any field is outside its interval.
func NewTimeOfDay(hours, minutes, seconds int64) (*TimeOfDay, error) {
	t := &TimeOfDay{}

	var err error
	if t.hours, err = bound.NewModular(hoursPerDay, hours); err != nil {
		return nil, fmt.Errorf("hours: %w", err)
	}
	if t.minutes, err = bound.NewModular(minutesPerHour, minutes); err != nil {
		return nil, fmt.Errorf("minutes: %w", err)
	}
	if t.seconds, err = bound.NewModular(secondsPerMinute, seconds); err != nil {
		return nil, fmt.Errorf("seconds: %w", err)
	}
	return t, nil
}

// Hours returns the hours field, 0 through 23.
func (t *TimeOfDay) Hours() int64 { return t.hours.Get() }

// Minutes returns the minutes field, 0 through 59.
func (t *TimeOfDay) Minutes() int64 { return t.minutes.Get() }

// Seconds returns the seconds field, 0 through 59.
func (t *TimeOfDay) Seconds() int64 { return t.seconds.Get() }

// Set replaces all three fields at once. The whole tuple is validated
// before anything is committed.
func (t *TimeOfDay) Set(hours, minutes, seconds int64) error {
	if hours < 0 || hours >= hoursPerDay {
		return fmt.Errorf("hours: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, hours, hoursPerDay-1)
	}
	if minutes < 0 || minutes >= minutesPerHour {
		return fmt.Errorf("minutes: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, minutes, minutesPerHour-1)
	}
	if seconds < 0 || seconds >= secondsPerMinute {
		return fmt.Errorf("seconds: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, seconds, secondsPerMinute-1)
	}
	if err := t.hours.Set(hours); err != nil {
		return fmt.Errorf("hours: %w", err)
	}
	if err := t.minutes.Set(minutes); err != nil {
		return fmt.Errorf("minutes: %w", err)
	}
	if err := t.seconds.Set(seconds); err != nil {
		return fmt.Errorf("seconds: %w", err)
	}
	return nil
}

// AddHours adds n hours and returns the number of days passed.
func (t *TimeOfDay) AddHours(n uint64) uint64 {
	return t.hours.Add(n)
}

// AddMinutes adds n minutes, carrying into hours, and returns the number
// of days passed.
func (t *TimeOfDay) AddMinutes(n uint64) uint64 {
	return t.AddHours(t.minutes.Add(n))
}

// AddSeconds adds n seconds, carrying through minutes and hours, and
// returns the number of days passed.
func (t *TimeOfDay) AddSeconds(n uint64) uint64 {
	return t.AddMinutes(t.seconds.Add(n))
}

// SubHours subtracts n hours and returns the number of days borrowed.
func (t *TimeOfDay) SubHours(n uint64) uint64 {
	return t.hours.Sub(n)
}

// SubMinutes subtracts n minutes, borrowing from hours, and returns the
// number of days borrowed.
func (t *TimeOfDay) SubMinutes(n uint64) uint64 {
	return t.SubHours(t.minutes.Sub(n))
}

// SubSeconds subtracts n seconds, borrowing through minutes and hours, and
// returns the number of days borrowed.
func (t *TimeOfDay) SubSeconds(n uint64) uint64 {
	return t.SubMinutes(t.seconds.Sub(n))
}

// Cmp orders two times lexicographically by hours, minutes and seconds,
// short-circuiting on the first differing field. It returns -1, 0 or +1.
func (t *TimeOfDay) Cmp(o *TimeOfDay) int {
	if c := t.hours.Cmp(o.hours); c != 0 {
		return c
	}
	if c := t.minutes.Cmp(o.minutes); c != 0 {
		return c
	}
	return t.seconds.Cmp(o.seconds)
}

// Equal reports whether both times hold the same fields.
func (t *TimeOfDay) Equal(o *TimeOfDay) bool { return t.Cmp(o) == 0 }

// Before reports whether t is earlier in the day than o.
func (t *TimeOfDay) Before(o *TimeOfDay) bool { return t.Cmp(o) < 0 }

// After reports whether t is later in the day than o.
func (t *TimeOfDay) After(o *TimeOfDay) bool { return t.Cmp(o) > 0 }

// String returns the time in the form "23:59:59".
func (t *TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours.Get(), t.minutes.Get(), t.seconds.Get())
}
