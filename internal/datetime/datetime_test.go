package datetime

import (
	"errors"
	"testing"

	"chrono/internal/bound"
	"chrono/internal/calendar"
)

func mustDateTime(t *testing.T, day, month, year, weekday, yearday, hours, minutes, seconds int64) *DateTime {
	t.Helper()
	dt, err := NewDateTime(day, month, year, weekday, yearday, hours, minutes, seconds)
	if err != nil {
		t.Fatalf("NewDateTime failed: %v", err)
	}
	return dt
}

func TestNewDateTime(t *testing.T) {
	dt := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 15, 30)
	if dt.Date().Day() != 12 || dt.Time().Hours() != 10 {
		t.Errorf("got %s", dt)
	}

	if _, err := NewDateTime(32, calendar.January, 2020, 0, 0, 0, 0, 0); !errors.Is(err, bound.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for bad date, got %v", err)
	}
	if _, err := NewDateTime(1, calendar.January, 2020, 2, 0, 24, 0, 0); !errors.Is(err, bound.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for bad time, got %v", err)
	}
}

func TestDateTime_Set_Atomic(t *testing.T) {
	dt := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 15, 30)

	// Valid date but invalid time: nothing may change.
	err := dt.Set(1, calendar.January, 2021, calendar.Friday, 0, 25, 0, 0)
	if !errors.Is(err, bound.ErrOutOfRange) {
		t.Fatalf("Expected ErrOutOfRange, got %v", err)
	}
	if dt.Date().Day() != 12 || dt.Date().Year() != 2020 || dt.Time().Hours() != 10 {
		t.Error("Failed Set must not partially commit")
	}

	if err := dt.Set(1, calendar.January, 2021, calendar.Friday, 0, 0, 0, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if dt.Date().Year() != 2021 || dt.Time().Hours() != 0 {
		t.Errorf("got %s after Set", dt)
	}
}

func TestDateTime_AddSeconds_MidnightCarry(t *testing.T) {
	// 31 Dec 2019 23:59:59 + 1s crosses second, minute, hour, day, month
	// and year boundaries in one call.
	dt := mustDateTime(t, 31, calendar.December, 2019, calendar.Tuesday, 364, 23, 59, 59)
	dt.AddSeconds(1)

	if dt.Date().Day() != 1 || dt.Date().Month() != calendar.January || dt.Date().Year() != 2020 {
		t.Errorf("date = %s, want 1 Jan 2020", dt.Date())
	}
	if dt.Time().Hours() != 0 || dt.Time().Minutes() != 0 || dt.Time().Seconds() != 0 {
		t.Errorf("time = %s, want 00:00:00", dt.Time())
	}
	if dt.Date().Weekday() != calendar.Wednesday || dt.Date().YearDay() != 0 {
		t.Errorf("weekday/yearday = %d/%d, want 3/0", dt.Date().Weekday(), dt.Date().YearDay())
	}
}

func TestDateTime_SubSeconds_MidnightBorrow(t *testing.T) {
	dt := mustDateTime(t, 1, calendar.January, 2020, calendar.Wednesday, 0, 0, 0, 0)
	dt.SubSeconds(1)

	if dt.Date().Day() != 31 || dt.Date().Month() != calendar.December || dt.Date().Year() != 2019 {
		t.Errorf("date = %s, want 31 Dec 2019", dt.Date())
	}
	if dt.Time().Hours() != 23 || dt.Time().Minutes() != 59 || dt.Time().Seconds() != 59 {
		t.Errorf("time = %s, want 23:59:59", dt.Time())
	}
}

func TestDateTime_AddHours_DayCarry(t *testing.T) {
	dt := mustDateTime(t, 28, calendar.February, 2020, calendar.Friday, 58, 23, 0, 0)
	dt.AddHours(2)

	if dt.Date().Day() != 29 || dt.Date().Month() != calendar.February {
		t.Errorf("date = %s, want 29 Feb 2020", dt.Date())
	}
	if dt.Time().Hours() != 1 {
		t.Errorf("hours = %d, want 1", dt.Time().Hours())
	}
}

func TestDateTime_Compare(t *testing.T) {
	a := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 0, 0)
	b := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 0, 1)
	c := mustDateTime(t, 13, calendar.May, 2020, calendar.Wednesday, 133, 0, 0, 0)
	same := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 0, 0)

	if !a.Before(b) || !b.After(a) {
		t.Error("time ordering broken")
	}
	if !b.Before(c) {
		t.Error("date must dominate time of day")
	}
	if !a.Equal(same) || a.Cmp(same) != 0 {
		t.Error("equal instants should compare equal")
	}
}

func TestDateTime_String(t *testing.T) {
	dt := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 15, 30)
	if got := dt.String(); got != "Tuesday, 12 May 2020 10:15:30" {
		t.Errorf("String() = %q", got)
	}
}
