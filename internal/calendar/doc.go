// Package calendar provides the Gregorian-like limit functions the bounded
// date fields are confined by: days per month (February leap-sensitive),
// days per year, and weekday arithmetic. The leap rule is the simplified
// every-fourth-year one, so a leap cycle of four consecutive years always
// covers exactly 1461 days.
package calendar
