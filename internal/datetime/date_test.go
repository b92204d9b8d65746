package datetime

import (
	"errors"
	"testing"

	"chrono/internal/bound"
	"chrono/internal/calendar"
)

func mustDate(t *testing.T, day, month, year, weekday, yearday int64) *Date {
	t.Helper()
	d, err := NewDate(day, month, year, weekday, yearday)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d, %d, %d) failed: %v", day, month, year, weekday, yearday, err)
	}
	return d
}

func TestNewDate_Valid(t *testing.T) {
	d := mustDate(t, 12, calendar.May, 2020, calendar.Tuesday, 132)

	if d.Day() != 12 || d.Month() != calendar.May || d.Year() != 2020 {
		t.Errorf("got %d/%d/%d, want 12/4/2020", d.Day(), d.Month(), d.Year())
	}
	if d.Weekday() != calendar.Tuesday || d.YearDay() != 132 {
		t.Errorf("got weekday %d yearday %d, want 2/132", d.Weekday(), d.YearDay())
	}
}

func TestNewDate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		day     int64
		month   int64
		year    int64
		weekday int64
		yearday int64
	}{
		{name: "day zero", day: 0, month: calendar.January, year: 2020, weekday: 0, yearday: 0},
		{name: "day past January", day: 32, month: calendar.January, year: 2020, weekday: 0, yearday: 0},
		{name: "29 Feb common year", day: 29, month: calendar.February, year: 2021, weekday: 0, yearday: 59},
		{name: "month 12", day: 1, month: 12, year: 2020, weekday: 0, yearday: 0},
		{name: "negative weekday", day: 1, month: calendar.January, year: 2020, weekday: -1, yearday: 0},
		{name: "yearday past leap year", day: 1, month: calendar.January, year: 2020, weekday: 0, yearday: 366},
		{name: "yearday past common year", day: 1, month: calendar.January, year: 2021, weekday: 0, yearday: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.day, tt.month, tt.year, tt.weekday, tt.yearday)
			if !errors.Is(err, bound.ErrOutOfRange) {
				t.Errorf("Expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestNewDate_LeapDay(t *testing.T) {
	d := mustDate(t, 29, calendar.February, 2020, calendar.Saturday, 59)
	if d.Day() != 29 {
		t.Errorf("Expected day 29, got %d", d.Day())
	}
}

func TestDate_Set(t *testing.T) {
	d := mustDate(t, 12, calendar.May, 2020, calendar.Tuesday, 132)

	if err := d.Set(29, calendar.February, 2024, calendar.Thursday, 59); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if d.Day() != 29 || d.Month() != calendar.February || d.Year() != 2024 {
		t.Errorf("got %d/%d/%d after Set", d.Day(), d.Month(), d.Year())
	}

	// Rejected Set leaves every field untouched.
	if err := d.Set(29, calendar.February, 2023, calendar.Wednesday, 59); !errors.Is(err, bound.ErrOutOfRange) {
		t.Fatalf("Expected ErrOutOfRange, got %v", err)
	}
	if d.Day() != 29 || d.Month() != calendar.February || d.Year() != 2024 ||
		d.Weekday() != calendar.Thursday || d.YearDay() != 59 {
		t.Error("Failed Set must not partially commit")
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name  string
		start [5]int64 // day, month, year, weekday, yearday
		n     uint64
		want  [5]int64
	}{
		{
			name:  "zero is a no-op",
			start: [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
			n:     0,
			want:  [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
		},
		{
			name:  "within month",
			start: [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
			n:     10,
			want:  [5]int64{22, calendar.May, 2020, calendar.Friday, 142},
		},
		{
			name:  "31 Jan into February",
			start: [5]int64{31, calendar.January, 2020, calendar.Friday, 30},
			n:     1,
			want:  [5]int64{1, calendar.February, 2020, calendar.Saturday, 31},
		},
		{
			name:  "28 Feb leap year lands on 29 Feb",
			start: [5]int64{28, calendar.February, 2020, calendar.Friday, 58},
			n:     1,
			want:  [5]int64{29, calendar.February, 2020, calendar.Saturday, 59},
		},
		{
			name:  "29 Feb leap year into March",
			start: [5]int64{29, calendar.February, 2020, calendar.Saturday, 59},
			n:     1,
			want:  [5]int64{1, calendar.March, 2020, calendar.Sunday, 60},
		},
		{
			name:  "28 Feb common year into March",
			start: [5]int64{28, calendar.February, 2021, calendar.Sunday, 58},
			n:     1,
			want:  [5]int64{1, calendar.March, 2021, calendar.Monday, 59},
		},
		{
			name:  "31 Dec into the next year",
			start: [5]int64{31, calendar.December, 2019, calendar.Tuesday, 364},
			n:     1,
			want:  [5]int64{1, calendar.January, 2020, calendar.Wednesday, 0},
		},
		{
			name:  "365 days from 1 Jan common year",
			start: [5]int64{1, calendar.January, 2019, calendar.Tuesday, 0},
			n:     365,
			want:  [5]int64{1, calendar.January, 2020, calendar.Wednesday, 0},
		},
		{
			name:  "366 days from 1 Jan leap year",
			start: [5]int64{1, calendar.January, 2020, calendar.Wednesday, 0},
			n:     366,
			want:  [5]int64{1, calendar.January, 2021, calendar.Friday, 0},
		},
		{
			name:  "whole leap cycle",
			start: [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
			n:     1461,
			want:  [5]int64{12, calendar.May, 2024, calendar.Sunday, 132},
		},
		{
			name:  "several leap cycles plus remainder",
			start: [5]int64{31, calendar.January, 2020, calendar.Friday, 30},
			n:     3*1461 + 1,
			want:  [5]int64{1, calendar.February, 2032, calendar.Sunday, 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDate(t, tt.start[0], tt.start[1], tt.start[2], tt.start[3], tt.start[4])
			d.AddDays(tt.n)
			got := [5]int64{d.Day(), d.Month(), d.Year(), d.Weekday(), d.YearDay()}
			if got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_SubDays(t *testing.T) {
	tests := []struct {
		name  string
		start [5]int64
		n     uint64
		want  [5]int64
	}{
		{
			name:  "zero is a no-op",
			start: [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
			n:     0,
			want:  [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
		},
		{
			name:  "within month",
			start: [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
			n:     11,
			want:  [5]int64{1, calendar.May, 2020, calendar.Friday, 121},
		},
		{
			name:  "1 Feb back to 31 Jan",
			start: [5]int64{1, calendar.February, 2020, calendar.Saturday, 31},
			n:     1,
			want:  [5]int64{31, calendar.January, 2020, calendar.Friday, 30},
		},
		{
			name:  "1 Mar leap year back to 29 Feb",
			start: [5]int64{1, calendar.March, 2020, calendar.Sunday, 60},
			n:     1,
			want:  [5]int64{29, calendar.February, 2020, calendar.Saturday, 59},
		},
		{
			name:  "1 Mar common year back to 28 Feb",
			start: [5]int64{1, calendar.March, 2021, calendar.Monday, 59},
			n:     1,
			want:  [5]int64{28, calendar.February, 2021, calendar.Sunday, 58},
		},
		{
			name:  "1 Jan back into the previous year",
			start: [5]int64{1, calendar.January, 2020, calendar.Wednesday, 0},
			n:     1,
			want:  [5]int64{31, calendar.December, 2019, calendar.Tuesday, 364},
		},
		{
			name:  "whole leap cycle",
			start: [5]int64{12, calendar.May, 2024, calendar.Sunday, 132},
			n:     1461,
			want:  [5]int64{12, calendar.May, 2020, calendar.Tuesday, 132},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDate(t, tt.start[0], tt.start[1], tt.start[2], tt.start[3], tt.start[4])
			d.SubDays(tt.n)
			got := [5]int64{d.Day(), d.Month(), d.Year(), d.Weekday(), d.YearDay()}
			if got != tt.want {
				t.Errorf("SubDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_Compare(t *testing.T) {
	earlier := mustDate(t, 31, calendar.December, 2019, calendar.Tuesday, 364)
	later := mustDate(t, 1, calendar.January, 2020, calendar.Wednesday, 0)
	sameAsLater := mustDate(t, 1, calendar.January, 2020, calendar.Wednesday, 0)

	if !earlier.Before(later) || !later.After(earlier) {
		t.Error("year ordering broken")
	}
	if !later.Equal(sameAsLater) || later.Cmp(sameAsLater) != 0 {
		t.Error("equal dates should compare equal")
	}

	// Same year, differing month.
	feb := mustDate(t, 1, calendar.February, 2020, calendar.Saturday, 31)
	if !later.Before(feb) {
		t.Error("month ordering broken")
	}

	// Same year and month, differing day.
	jan2 := mustDate(t, 2, calendar.January, 2020, calendar.Thursday, 1)
	if !later.Before(jan2) {
		t.Error("day ordering broken")
	}

	// Weekday and yearday are ignored by comparison.
	skewed := mustDate(t, 1, calendar.January, 2020, calendar.Sunday, 300)
	if !later.Equal(skewed) {
		t.Error("weekday and yearday must not affect equality")
	}
}

func TestDate_String(t *testing.T) {
	d := mustDate(t, 12, calendar.May, 2020, calendar.Tuesday, 132)
	if got := d.String(); got != "Tuesday, 12 May 2020" {
		t.Errorf("String() = %q, want %q", got, "Tuesday, 12 May 2020")
	}
}
