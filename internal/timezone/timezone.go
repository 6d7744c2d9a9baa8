package timezone

import (
	"strings"
	"time"
)

// Consultation times are naive wall-clock values. They are parsed and stored
// in UTC so that equality and day-range queries behave the same on every
// engine. Multi-timezone booking is not supported.

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 3:04 PM"
	SlotLayout     = "3:04 PM"
)

func Location() *time.Location {
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate parses a YYYY-MM-DD string at midnight.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location())
}

// ParseDateTime combines a YYYY-MM-DD date and a 12-hour clock time such as
// "2:00 PM" into one timestamp. The AM/PM marker is case-insensitive.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+strings.ToUpper(clock), Location())
}

// DayBounds returns the half-open interval [start of day, start of next day).
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, Location())
	return start, start.AddDate(0, 0, 1)
}
