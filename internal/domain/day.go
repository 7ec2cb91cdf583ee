package domain

import "time"

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay returns true if a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastDay returns true if day's calendar date is strictly before now's.
// Each value is read in its own location, so a UTC day and a local now
// compare by date, not by instant.
func IsPastDay(day, now time.Time) bool {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// DaysBetween returns the number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseDay parses a YYYY-MM-DD calendar day
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDay formats t as a YYYY-MM-DD calendar day
func FormatDay(t time.Time) string {
	return t.Format(DateFormat)
}
