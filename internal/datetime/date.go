package datetime

import (
	"fmt"

	"chrono/internal/bound"
	"chrono/internal/calendar"
)

// Date is a calendar instant: a free-running year plus bounded month, day,
// weekday and day-of-year fields. The day and day-of-year bounds are
// dependent: they are computed from the month and year the Date currently
// holds, so the field tuple is always a valid calendar date.
//
// Months are counted from January = 0, weekdays from Sunday = 0 and the
// day of year from 0; the day of month runs from 1.
type Date struct {
	year    int64
	month   *bound.Value
	day     *bound.Value
	weekday *bound.Value
	yearday *bound.Value
}

// NewDate creates a Date from a pre-decomposed tuple. It fails with
// bound.ErrOutOfRange if any field is outside its interval: day in
// [1, MonthDays(month, year)], month in [0, 11], weekday in [0, 6] and
// yearday in [0, YearDays(year)-1].
func NewDate(day, month, year, weekday, yearday int64) (*Date, error) {
	d := &Date{year: year}

	var err error
	if d.month, err = bound.NewModular(calendar.MonthsPerYear, month); err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	// The day bound closes over the owning Date, observing month and year
	// without holding a copy; month must already be constructed.
	if d.day, err = bound.New(
		func(v int64) bool { return v >= 1 },
		func(v int64) bool { return v <= calendar.MonthDays(d.month.Get(), d.year) },
		func() int64 { return 1 },
		func() int64 { return calendar.MonthDays(d.month.Get(), d.year) },
		day,
	); err != nil {
		return nil, fmt.Errorf("day: %w", err)
	}
	if d.weekday, err = bound.NewModular(calendar.DaysPerWeek, weekday); err != nil {
		return nil, fmt.Errorf("weekday: %w", err)
	}
	if d.yearday, err = bound.New(
		func(v int64) bool { return v >= 0 },
		func(v int64) bool { return v < calendar.YearDays(d.year) },
		func() int64 { return 0 },
		func() int64 { return calendar.YearDays(d.year) - 1 },
		yearday,
	); err != nil {
		return nil, fmt.Errorf("yearday: %w", err)
	}
	return d, nil
}

// Day returns the day of the month, starting at 1.
func (d *Date) Day() int64 { return d.day.Get() }

// Month returns the number of months after January, 0 through 11.
func (d *Date) Month() int64 { return d.month.Get() }

// Year returns the year.
func (d *Date) Year() int64 { return d.year }

// Weekday returns the number of days after Sunday, 0 through 6.
func (d *Date) Weekday() int64 { return d.weekday.Get() }

// YearDay returns the number of days after 1 January of the held year,
// starting at 0.
func (d *Date) YearDay() int64 { return d.yearday.Get() }

// Set replaces every field at once. The whole tuple is validated before
// anything is committed, so a rejected Set leaves the Date untouched.
func (d *Date) Set(day, month, year, weekday, yearday int64) error {
	if month < 0 || month >= calendar.MonthsPerYear {
		return fmt.Errorf("month: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, month, calendar.MonthsPerYear-1)
	}
	if limit := calendar.MonthDays(month, year); day < 1 || day > limit {
		return fmt.Errorf("day: %w: %d not within [1, %d]",
			bound.ErrOutOfRange, day, limit)
	}
	if weekday < 0 || weekday >= calendar.DaysPerWeek {
		return fmt.Errorf("weekday: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, weekday, calendar.DaysPerWeek-1)
	}
	if limit := calendar.YearDays(year); yearday < 0 || yearday >= limit {
		return fmt.Errorf("yearday: %w: %d not within [0, %d]",
			bound.ErrOutOfRange, yearday, limit-1)
	}

	// Commit order matters: the day and yearday bounds read month and year.
	d.year = year
	if err := d.month.Set(month); err != nil {
		return fmt.Errorf("month: %w", err)
	}
	if err := d.day.Set(day); err != nil {
		return fmt.Errorf("day: %w", err)
	}
	if err := d.weekday.Set(weekday); err != nil {
		return fmt.Errorf("weekday: %w", err)
	}
	if err := d.yearday.Set(yearday); err != nil {
		return fmt.Errorf("yearday: %w", err)
	}
	return nil
}

// AddDays advances the date by n days.
//
// The weekday shift does not depend on the month walk and is applied up
// front. Whole leap cycles are consumed by division, then the remainder is
// walked one month boundary at a time: a step either stays inside the
// current month or lands exactly on the first of the next, with the day
// field's wrap count carried into the month field and the month's wrap
// count into the year. The loop runs at most one iteration per month
// boundary inside a single leap cycle, however large n is.
func (d *Date) AddDays(n uint64) {
	if n == 0 {
		return
	}
	d.weekday.Add(n)

	d.year += calendar.LeapCycleYears * int64(n/uint64(calendar.LeapCycleDays))
	rem := n % uint64(calendar.LeapCycleDays)

	for rem > 0 {
		room := uint64(d.day.Upper() - d.day.Get())
		step := rem
		if rem > room {
			step = room + 1
		}
		// Year day first: its wrap must use the length of the year being
		// left, before any carry advances d.year.
		d.yearday.Add(step)
		carry := d.day.Add(step)
		d.year += int64(d.month.Add(carry))
		rem -= step
	}
}

// SubDays regresses the date by n days, the mirror of AddDays.
//
// A backward step that crosses a month boundary cannot rely on the day
// field's own wrap: the landing value is the last day of the month being
// entered, a bound the field cannot see until the month borrow has been
// applied. The walk therefore steps the day down to 1, propagates the
// borrow through month and year, and only then lets the day wrap so that
// Dec evaluates the freshly current month's limit.
func (d *Date) SubDays(n uint64) {
	if n == 0 {
		return
	}
	d.weekday.Sub(n)

	d.year -= calendar.LeapCycleYears * int64(n/uint64(calendar.LeapCycleDays))
	rem := n % uint64(calendar.LeapCycleDays)

	for rem > 0 {
		room := uint64(d.day.Get() - d.day.Lower())
		if rem <= room {
			d.day.Sub(rem)
			d.yearday.Sub(rem)
			return
		}
		d.day.Sub(room)
		d.year -= int64(d.month.Sub(1))
		d.day.Dec()
		// Year day after the borrow: a wrap lands in the previous year's
		// range, which d.year now reflects.
		d.yearday.Sub(room + 1)
		rem -= room + 1
	}
}

// Cmp orders two dates lexicographically by year, month and day, short-
// circuiting on the first differing field. Weekday and year day carry no
// ordering information. It returns -1, 0 or +1.
func (d *Date) Cmp(o *Date) int {
	switch {
	case d.year < o.year:
		return -1
	case d.year > o.year:
		return 1
	}
	if c := d.month.Cmp(o.month); c != 0 {
		return c
	}
	return d.day.Cmp(o.day)
}

// Equal reports whether both dates name the same year, month and day.
func (d *Date) Equal(o *Date) bool { return d.Cmp(o) == 0 }

// Before reports whether d is earlier than o.
func (d *Date) Before(o *Date) bool { return d.Cmp(o) < 0 }

// After reports whether d is later than o.
func (d *Date) After(o *Date) bool { return d.Cmp(o) > 0 }

// String returns the date in the form "Tuesday, 12 May 2020".
func (d *Date) String() string {
	return fmt.Sprintf("%s, %d %s %d",
		calendar.WeekdayName(d.weekday.Get()),
		d.day.Get(),
		calendar.MonthName(d.month.Get()),
		d.year,
	)
}
