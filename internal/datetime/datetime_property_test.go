package datetime

import (
	"testing"

	"chrono/internal/calendar"
)

// Stepping one day at a time must agree with a single bulk shift,
// whatever month boundaries the walk crosses.
func TestDate_Property_AddDaysMatchesSingleSteps(t *testing.T) {
	for _, n := range []uint64{1, 27, 31, 59, 365, 366, 400} {
		bulk := mustDate(t, 15, calendar.February, 2019, calendar.Friday, 45)
		step := mustDate(t, 15, calendar.February, 2019, calendar.Friday, 45)

		bulk.AddDays(n)
		for i := uint64(0); i < n; i++ {
			step.AddDays(1)
		}

		if !bulk.Equal(step) || bulk.Weekday() != step.Weekday() || bulk.YearDay() != step.YearDay() {
			t.Errorf("n=%d: bulk %s (wd %d, yd %d) != stepped %s (wd %d, yd %d)",
				n, bulk, bulk.Weekday(), bulk.YearDay(), step, step.Weekday(), step.YearDay())
		}
	}
}

// A single whole non-leap year of daily steps lands on the same calendar
// day of the next year.
func TestDate_Property_YearOfSingleSteps(t *testing.T) {
	d := mustDate(t, 1, calendar.January, 2019, calendar.Tuesday, 0)
	for i := 0; i < 365; i++ {
		d.AddDays(1)
	}
	if d.Day() != 1 || d.Month() != calendar.January || d.Year() != 2020 {
		t.Errorf("after 365 daily steps: %s, want 1 Jan 2020", d)
	}
	if d.Weekday() != calendar.Wednesday || d.YearDay() != 0 {
		t.Errorf("weekday/yearday = %d/%d, want 3/0", d.Weekday(), d.YearDay())
	}
}

// The weekday cycles mod 7 regardless of the month-by-month path the
// calendar fields take.
func TestDate_Property_WeekdayConsistency(t *testing.T) {
	for _, n := range []uint64{1, 6, 7, 30, 31, 100, 365, 366, 1461} {
		d := mustDate(t, 12, calendar.May, 2020, calendar.Tuesday, 132)
		d.AddDays(n)
		if want := calendar.WeekdayAfter(calendar.Tuesday, n); d.Weekday() != want {
			t.Errorf("n=%d: weekday = %d, want %d", n, d.Weekday(), want)
		}
	}
}

// Shifting forward then back by the same amount is an identity on every
// field, including across leap days.
func TestDate_Property_AddSubRoundTrip(t *testing.T) {
	for _, n := range []uint64{1, 29, 31, 60, 365, 366, 1461, 5000} {
		d := mustDate(t, 28, calendar.February, 2020, calendar.Friday, 58)
		d.AddDays(n)
		d.SubDays(n)
		if d.Day() != 28 || d.Month() != calendar.February || d.Year() != 2020 {
			t.Errorf("n=%d: round trip landed on %s", n, d)
		}
		if d.Weekday() != calendar.Friday || d.YearDay() != 58 {
			t.Errorf("n=%d: weekday/yearday = %d/%d, want 5/58", n, d.Weekday(), d.YearDay())
		}
	}
}

// One leap cycle of seconds moves a DateTime exactly four years forward
// without disturbing the time of day.
func TestDateTime_Property_LeapCycleOfSeconds(t *testing.T) {
	const secondsPerDay = 24 * 60 * 60
	dt := mustDateTime(t, 12, calendar.May, 2020, calendar.Tuesday, 132, 10, 15, 30)
	dt.AddSeconds(uint64(calendar.LeapCycleDays) * secondsPerDay)

	if dt.Date().Day() != 12 || dt.Date().Month() != calendar.May || dt.Date().Year() != 2024 {
		t.Errorf("date = %s, want 12 May 2024", dt.Date())
	}
	if dt.Time().Hours() != 10 || dt.Time().Minutes() != 15 || dt.Time().Seconds() != 30 {
		t.Errorf("time = %s, want 10:15:30", dt.Time())
	}
	if dt.Date().Weekday() != calendar.Sunday {
		t.Errorf("weekday = %d, want %d", dt.Date().Weekday(), calendar.Sunday)
	}
}
