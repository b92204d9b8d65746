// Package wallclock bridges the host's notion of time into the calendar
// field model. It defines a small Clock interface so callers can run
// against the real system clock or a fixed instant in tests, and a
// Decompose helper that splits a time.Time into the zero-based field
// values the datetime package expects.
package wallclock
