package ulpforms

import (
	"strconv"
	"time"
)

// timeNow is swapped in tests that pin the composite date rules to a date.
var timeNow = time.Now

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the day upper bound for a month/year pair: 31 for the
// long months, 30 for the short ones, and the February rule otherwise. When
// the year is not known yet (year == 0) February resolves to 29 so no valid
// selection is cut off before the year is entered.
func DaysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year == 0 || IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// ValidateDateOfBirth runs the composite rule over the three date parts and
// returns the failure message, or "" when the date passes. A partially filled
// date passes here; the per-field required rules own that case.
func ValidateDateOfBirth(monthValue, dayValue, yearValue string) string {
	return validateDateOfBirthAt(monthValue, dayValue, yearValue, timeNow())
}

func validateDateOfBirthAt(monthValue, dayValue, yearValue string, now time.Time) string {
	month, _ := strconv.Atoi(monthValue)
	day, _ := strconv.Atoi(dayValue)
	year, _ := strconv.Atoi(yearValue)

	if month == 0 || day == 0 || year == 0 {
		return ""
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return "Invalid date"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return "Date of birth cannot be in the future"
	}

	if year < now.Year()-120 {
		return "Please enter a valid year"
	}

	return ""
}
