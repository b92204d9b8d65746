package calendar

import (
	"testing"
)

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name  string
		month int64
		year  int64
		want  int64
	}{
		{name: "January", month: January, year: 2021, want: 31},
		{name: "February common year", month: February, year: 2021, want: 28},
		{name: "February leap year", month: February, year: 2020, want: 29},
		{name: "April", month: April, year: 2021, want: 30},
		{name: "June", month: June, year: 2021, want: 30},
		{name: "July and August both 31", month: August, year: 2021, want: 31},
		{name: "September", month: September, year: 2021, want: 30},
		{name: "December", month: December, year: 2021, want: 31},
		{name: "invalid month", month: 12, year: 2021, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthDays(tt.month, tt.year); got != tt.want {
				t.Errorf("MonthDays(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestYearDays(t *testing.T) {
	if got := YearDays(2020); got != 366 {
		t.Errorf("YearDays(2020) = %d, want 366", got)
	}
	if got := YearDays(2021); got != 365 {
		t.Errorf("YearDays(2021) = %d, want 365", got)
	}
}

func TestYearDays_MatchesMonthSum(t *testing.T) {
	for year := int64(2019); year <= 2024; year++ {
		var sum int64
		for month := January; month <= December; month++ {
			sum += MonthDays(month, year)
		}
		if sum != YearDays(year) {
			t.Errorf("year %d: month sum %d != YearDays %d", year, sum, YearDays(year))
		}
	}
}

func TestLeapCycleDays(t *testing.T) {
	// Any four consecutive years cover exactly one leap cycle under the
	// divisible-by-four rule.
	for start := int64(2018); start <= 2022; start++ {
		var sum int64
		for y := start; y < start+LeapCycleYears; y++ {
			sum += YearDays(y)
		}
		if sum != LeapCycleDays {
			t.Errorf("cycle starting %d: %d days, want %d", start, sum, LeapCycleDays)
		}
	}
}

func TestWeekdayAfter(t *testing.T) {
	tests := []struct {
		name    string
		weekday int64
		days    uint64
		want    int64
	}{
		{name: "no shift", weekday: Tuesday, days: 0, want: Tuesday},
		{name: "one day", weekday: Tuesday, days: 1, want: Wednesday},
		{name: "whole week", weekday: Tuesday, days: 7, want: Tuesday},
		{name: "wrap past Saturday", weekday: Friday, days: 3, want: Monday},
		{name: "large shift", weekday: Sunday, days: 365, want: Monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayAfter(tt.weekday, tt.days); got != tt.want {
				t.Errorf("WeekdayAfter(%d, %d) = %d, want %d", tt.weekday, tt.days, got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if MonthName(January) != "January" || MonthShortName(December) != "Dec" {
		t.Error("month name lookup broken")
	}
	if WeekdayName(Sunday) != "Sunday" || WeekdayShortName(Saturday) != "Sat" {
		t.Error("weekday name lookup broken")
	}
	if MonthName(-1) != "" || MonthName(12) != "" || WeekdayName(7) != "" {
		t.Error("out-of-range names should be empty")
	}
}
