package generator

import "time"

// DaysInMonth returns the number of days in the given month, applying
// the Gregorian leap year rule for February.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	default: // February
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

// isLeapYear applies the standard rule: divisible by 4, except
// centuries unless divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
