package services

import "time"

// CountBusinessDays counts the Monday-Friday dates in the inclusive range
// [start, end]. Weekends never count; public holidays are not considered.
// Returns 0 when start is after end.
func CountBusinessDays(start time.Time, end time.Time) int {
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		count++
	}
	return count
}
