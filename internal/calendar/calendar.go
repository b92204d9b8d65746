package calendar

// Months are counted from January = 0 and weekdays from Sunday = 0.
const (
	January int64 = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Weekday values.
const (
	Sunday int64 = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const (
	// MonthsPerYear is the modulus of the month field.
	MonthsPerYear int64 = 12
	// DaysPerWeek is the modulus of the weekday field.
	DaysPerWeek int64 = 7
	// LeapCycleYears is the length of the fast-path block for bulk day
	// arithmetic.
	LeapCycleYears int64 = 4
	// LeapCycleDays is the total day count of one leap cycle: three common
	// years and one leap year.
	LeapCycleDays int64 = 3*365 + 366
)

// IsLeap reports whether the year is a leap year. The rule is the
// simplified divisible-by-four one; century exceptions are not modeled.
func IsLeap(year int64) bool {
	return year%4 == 0
}

// MonthDays returns the number of days in the given month of the given
// year, 28 through 31.
func MonthDays(month, year int64) int64 {
	switch month {
	case January, March, May, July, August, October, December:
		return 31
	case April, June, September, November:
		return 30
	case February:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// YearDays returns the number of days in the given year, 365 or 366.
func YearDays(year int64) int64 {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// WeekdayAfter returns the weekday reached days days after the given
// weekday.
func WeekdayAfter(weekday int64, days uint64) int64 {
	return int64((uint64(weekday) + days) % uint64(DaysPerWeek))
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthShortNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayShortNames = [...]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// MonthName returns the English name of the month, or "" if month is not
// in [0, 11].
func MonthName(month int64) string {
	if month < 0 || month >= MonthsPerYear {
		return ""
	}
	return monthNames[month]
}

// MonthShortName returns the three-letter month name, or "" if month is
// not in [0, 11].
func MonthShortName(month int64) string {
	if month < 0 || month >= MonthsPerYear {
		return ""
	}
	return monthShortNames[month]
}

// WeekdayName returns the English name of the weekday, or "" if weekday is
// not in [0, 6].
func WeekdayName(weekday int64) string {
	if weekday < 0 || weekday >= DaysPerWeek {
		return ""
	}
	return weekdayNames[weekday]
}

// WeekdayShortName returns the three-letter weekday name, or "" if weekday
// is not in [0, 6].
func WeekdayShortName(weekday int64) string {
	if weekday < 0 || weekday >= DaysPerWeek {
		return ""
	}
	return weekdayShortNames[weekday]
}
