package entity

import "time"

// DateLayout is the calendar-date wire format used across the domain.
// Dates are kept as strings so that lexicographic order equals calendar order,
// which is what the report date-range filters rely on.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
