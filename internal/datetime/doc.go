// Package datetime composes bounded fields into calendar and clock value
// types with carry propagation between fields. Time-of-day fields carry
// through fixed moduli (seconds into minutes into hours); calendar day
// arithmetic walks non-uniform month lengths, fast-pathing whole four-year
// leap cycles so the cost is bounded regardless of the delta.
//
// The types are not thread-safe; a shared instance needs external
// synchronization, and instances must be used through the pointers the
// constructors return.
package datetime
