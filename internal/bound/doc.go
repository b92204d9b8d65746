// Package bound provides an integral value confined to an inclusive
// interval with wrap-around arithmetic. Overflow and underflow report the
// number of boundary crossings so callers can propagate carries into a
// coarser field (seconds into minutes, days into months, and so on).
// Bounds may be dynamic: they are supplied as functions, which allows an
// interval to depend on external state such as a sibling calendar field.
package bound
