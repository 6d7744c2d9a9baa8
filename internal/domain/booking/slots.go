package booking

import (
	"time"

	"github.com/BruksfildServices01/lawfirm-api/internal/timezone"
)

// DefaultSlots are the daily consultation start times, in display order.
var DefaultSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// FormatSlot renders the time-of-day the way DefaultSlots spells it:
// 12-hour clock, no leading zero, AM/PM suffix. Drivers may hand back
// timestamps in the host zone, so t is converted to UTC first.
func FormatSlot(t time.Time) string {
	return t.In(timezone.Location()).Format(timezone.SlotLayout)
}

// AvailableSlots returns DefaultSlots minus the times already booked, keeping
// the fixed order. Booked times that match no slot are ignored.
func AvailableSlots(booked []time.Time) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[FormatSlot(b)] = struct{}{}
	}

	available := make([]string, 0, len(DefaultSlots))
	for _, slot := range DefaultSlots {
		if _, ok := taken[slot]; ok {
			continue
		}
		available = append(available, slot)
	}
	return available
}
