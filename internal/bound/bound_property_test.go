package bound

import (
	"testing"
)

// TestValue_Property_AddMatchesRepeatedInc verifies that the division-based
// Add agrees with n single-unit increments, both in final value and in the
// total number of wraps.
func TestValue_Property_AddMatchesRepeatedInc(t *testing.T) {
	for n := uint64(0); n <= 50; n++ {
		bulk, err := NewStatic(2, 9, 6)
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}
		step, err := NewStatic(2, 9, 6)
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}

		bulkWraps := bulk.Add(n)

		var stepWraps uint64
		for i := uint64(0); i < n; i++ {
			if step.Inc() {
				stepWraps++
			}
		}

		if bulk.Get() != step.Get() {
			t.Errorf("n=%d: Add value %d != repeated Inc value %d", n, bulk.Get(), step.Get())
		}
		if bulkWraps != stepWraps {
			t.Errorf("n=%d: Add wraps %d != repeated Inc wraps %d", n, bulkWraps, stepWraps)
		}
	}
}

// TestValue_Property_SubMatchesRepeatedDec is the mirror image for Sub.
func TestValue_Property_SubMatchesRepeatedDec(t *testing.T) {
	for n := uint64(0); n <= 50; n++ {
		bulk, err := NewStatic(2, 9, 6)
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}
		step, err := NewStatic(2, 9, 6)
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}

		bulkWraps := bulk.Sub(n)

		var stepWraps uint64
		for i := uint64(0); i < n; i++ {
			if step.Dec() {
				stepWraps++
			}
		}

		if bulk.Get() != step.Get() {
			t.Errorf("n=%d: Sub value %d != repeated Dec value %d", n, bulk.Get(), step.Get())
		}
		if bulkWraps != stepWraps {
			t.Errorf("n=%d: Sub wraps %d != repeated Dec wraps %d", n, bulkWraps, stepWraps)
		}
	}
}

// TestValue_Property_AddSubRoundTrip verifies that Add(n) followed by Sub(n)
// restores the original value for any n, and that the forward and backward
// wrap counts cancel.
func TestValue_Property_AddSubRoundTrip(t *testing.T) {
	deltas := []uint64{0, 1, 3, 7, 8, 9, 16, 100, 1000, 12345}

	for _, start := range []int64{2, 5, 9} {
		for _, n := range deltas {
			v, err := NewStatic(2, 9, start)
			if err != nil {
				t.Fatalf("NewStatic failed: %v", err)
			}

			forward := v.Add(n)
			backward := v.Sub(n)

			if v.Get() != start {
				t.Errorf("start=%d n=%d: round trip ended at %d", start, n, v.Get())
			}
			if forward != backward {
				t.Errorf("start=%d n=%d: forward wraps %d != backward wraps %d",
					start, n, forward, backward)
			}
		}
	}
}

// TestValue_Property_InvariantHolds verifies that the value stays inside the
// interval after any mixed sequence of operations.
func TestValue_Property_InvariantHolds(t *testing.T) {
	v, err := NewStatic(-3, 11, 0)
	if err != nil {
		t.Fatalf("NewStatic failed: %v", err)
	}

	check := func(op string) {
		t.Helper()
		if v.Get() < v.Lower() || v.Get() > v.Upper() {
			t.Fatalf("after %s: value %d escaped [%d, %d]", op, v.Get(), v.Lower(), v.Upper())
		}
	}

	// Deterministic mixed walk.
	for i := uint64(1); i <= 200; i++ {
		switch i % 4 {
		case 0:
			v.Add(i * 13)
			check("Add")
		case 1:
			v.Sub(i * 7)
			check("Sub")
		case 2:
			v.Inc()
			check("Inc")
		case 3:
			v.Dec()
			check("Dec")
		}
	}
}

// TestValue_Property_AddWholeSpanIsIdentity verifies that adding exactly one
// span wraps once and returns the value to its starting point, from every
// position in the interval.
func TestValue_Property_AddWholeSpanIsIdentity(t *testing.T) {
	for start := int64(2); start <= 9; start++ {
		v, err := NewStatic(2, 9, start)
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}
		span := uint64(v.Span())

		if wraps := v.Add(span); wraps != 1 {
			t.Errorf("start=%d: Add(span) wraps = %d, want 1", start, wraps)
		}
		if v.Get() != start {
			t.Errorf("start=%d: Add(span) moved value to %d", start, v.Get())
		}

		if wraps := v.Sub(span); wraps != 1 {
			t.Errorf("start=%d: Sub(span) wraps = %d, want 1", start, wraps)
		}
		if v.Get() != start {
			t.Errorf("start=%d: Sub(span) moved value to %d", start, v.Get())
		}
	}
}
