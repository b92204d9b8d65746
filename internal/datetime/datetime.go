package datetime

import (
	"fmt"
)

// DateTime joins a Date and a TimeOfDay into one instant. Time-of-day
// carries terminate in a day count which is fed straight into the calendar
// day walk, so arithmetic crosses midnight, month and year boundaries in
// one call.
type DateTime struct {
	date *Date
	time *TimeOfDay
}

// NewDateTime creates a DateTime from a fully decomposed tuple. It fails
// with bound.ErrOutOfRange if any field is outside its interval.
func NewDateTime(day, month, year, weekday, yearday, hours, minutes, seconds int64) (*DateTime, error) {
	d, err := NewDate(day, month, year, weekday, yearday)
	if err != nil {
		return nil, err
	}
	t, err := NewTimeOfDay(hours, minutes, seconds)
	if err != nil {
		return nil, err
	}
	return &DateTime{date: d, time: t}, nil
}

// Date returns the calendar part. The returned pointer shares state with
// the DateTime.
func (dt *DateTime) Date() *Date { return dt.date }

// Time returns the wall-clock part. The returned pointer shares state with
// the DateTime.
func (dt *DateTime) Time() *TimeOfDay { return dt.time }

// Set replaces every field at once. Both parts are validated before either
// is committed.
func (dt *DateTime) Set(day, month, year, weekday, yearday, hours, minutes, seconds int64) error {
	// Probe the time tuple first so a bad time cannot leave a committed
	// date behind.
	if _, err := NewTimeOfDay(hours, minutes, seconds); err != nil {
		return err
	}
	if err := dt.date.Set(day, month, year, weekday, yearday); err != nil {
		return err
	}
	return dt.time.Set(hours, minutes, seconds)
}

// AddDays advances the date part by n days.
func (dt *DateTime) AddDays(n uint64) { dt.date.AddDays(n) }

// SubDays regresses the date part by n days.
func (dt *DateTime) SubDays(n uint64) { dt.date.SubDays(n) }

// AddHours adds n hours, carrying whole days into the date.
func (dt *DateTime) AddHours(n uint64) {
	dt.date.AddDays(dt.time.AddHours(n))
}

// AddMinutes adds n minutes, carrying whole days into the date.
func (dt *DateTime) AddMinutes(n uint64) {
	dt.date.AddDays(dt.time.AddMinutes(n))
}

// AddSeconds adds n seconds, carrying whole days into the date.
func (dt *DateTime) AddSeconds(n uint64) {
	dt.date.AddDays(dt.time.AddSeconds(n))
}

// SubHours subtracts n hours, borrowing whole days from the date.
func (dt *DateTime) SubHours(n uint64) {
	dt.date.SubDays(dt.time.SubHours(n))
}

// SubMinutes subtracts n minutes, borrowing whole days from the date.
func (dt *DateTime) SubMinutes(n uint64) {
	dt.date.SubDays(dt.time.SubMinutes(n))
}

// SubSeconds subtracts n seconds, borrowing whole days from the date.
func (dt *DateTime) SubSeconds(n uint64) {
	dt.date.SubDays(dt.time.SubSeconds(n))
}

// Cmp orders two instants by date first, then time of day. It returns -1,
// 0 or +1.
func (dt *DateTime) Cmp(o *DateTime) int {
	if c := dt.date.Cmp(o.date); c != 0 {
		return c
	}
	return dt.time.Cmp(o.time)
}

// Equal reports whether both instants name the same date and time.
func (dt *DateTime) Equal(o *DateTime) bool { return dt.Cmp(o) == 0 }

// Before reports whether dt is earlier than o.
func (dt *DateTime) Before(o *DateTime) bool { return dt.Cmp(o) < 0 }

// After reports whether dt is later than o.
func (dt *DateTime) After(o *DateTime) bool { return dt.Cmp(o) > 0 }

// String returns the instant in the form "Tuesday, 12 May 2020 10:15:30".
func (dt *DateTime) String() string {
	return fmt.Sprintf("%s %s", dt.date, dt.time)
}
