package wallclock

import (
	"testing"
	"time"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    Parts
	}{
		{
			name:    "leap day",
			instant: time.Date(2020, time.February, 29, 13, 45, 7, 0, time.UTC),
			want:    Parts{Year: 2020, Month: 1, Day: 29, Weekday: 6, YearDay: 59, Hour: 13, Minute: 45, Second: 7},
		},
		{
			name:    "new year midnight",
			instant: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:    Parts{Year: 2021, Month: 0, Day: 1, Weekday: 5, YearDay: 0},
		},
		{
			name:    "end of year",
			instant: time.Date(2019, time.December, 31, 23, 59, 59, 0, time.UTC),
			want:    Parts{Year: 2019, Month: 11, Day: 31, Weekday: 2, YearDay: 364, Hour: 23, Minute: 59, Second: 59},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decompose(tt.instant); got != tt.want {
				t.Errorf("Decompose() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2020, time.May, 12, 10, 15, 30, 0, time.UTC)
	c := FixedClock{Instant: instant}
	if !c.Now().Equal(instant) {
		t.Errorf("FixedClock.Now() = %v, want %v", c.Now(), instant)
	}
	if !c.Now().Equal(c.Now()) {
		t.Error("FixedClock must be stable across calls")
	}
}

func TestSystemClock_UTC(t *testing.T) {
	if loc := (SystemClock{}).Now().Location(); loc != time.UTC {
		t.Errorf("SystemClock location = %v, want UTC", loc)
	}
}
