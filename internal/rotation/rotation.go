// Package rotation implements the 12-day cycle arithmetic.
package rotation

import "workout-tracker/internal/domain"

// IsValidDay reports whether n is a usable cycle day.
func IsValidDay(n int) bool {
	return n >= 1 && n <= domain.CycleLength
}

// NextDay returns the day after current, wrapping 12 back to 1.
// The caller guarantees current is in [1,12].
func NextDay(current int) int {
	return (current % domain.CycleLength) + 1
}

// PreviousDay returns the day before current, wrapping 1 back to 12.
func PreviousDay(current int) int {
	if current == 1 {
		return domain.CycleLength
	}
	return current - 1
}
