// Package advent holds the calendar rules: when a day tile may be opened,
// how its effective styling is resolved, the shape of day content, and the
// viewer-local opened-day tracking.
package advent

import "time"

// CanOpen reports whether a day tile is openable on the given date.
// Test mode bypasses date gating entirely; otherwise a tile opens only in
// December, once the day of month has reached its number. A dayNumber above
// 31 never opens outside test mode, which is fine.
func CanOpen(dayNumber int, testMode bool, today time.Time) bool {
	if testMode {
		return true
	}
	return today.Month() == time.December && today.Day() >= dayNumber
}
