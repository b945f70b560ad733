// Package expiry holds card expiry calculations shared by request validation
// and bank request formatting. A card is valid through the last instant of
// its expiry month, computed in UTC.
package expiry

import (
	"fmt"
	"time"
)

// EndOfMonth returns the last instant of the given month in UTC.
func EndOfMonth(year int, month time.Month) time.Time {
	firstNext := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond)
}

// Expired reports whether 'at' is strictly after the end of the expiry month.
func Expired(month, year int, at time.Time) bool {
	return at.UTC().After(EndOfMonth(year, time.Month(month)))
}

// CardFace returns the expiry as MM/YYYY, the format the bank expects.
func CardFace(month, year int) string {
	return fmt.Sprintf("%02d/%04d", month, year)
}
