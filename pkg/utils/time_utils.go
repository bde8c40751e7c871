package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Whole-day window in minutes since local midnight.
const (
	DayStartMinute = 0
	DayEndMinute   = 1440
)

// ParseOpeningHours converts an "HH:MM-HH:MM" string into (open, close)
// offsets in minutes since midnight. Malformed inputs fall back to the
// whole-day window rather than returning an error.
func ParseOpeningHours(s string) (int, int) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return DayStartMinute, DayEndMinute
	}

	open, okOpen := parseClock(strings.TrimSpace(parts[0]))
	closeAt, okClose := parseClock(strings.TrimSpace(parts[1]))
	if !okOpen || !okClose || closeAt < open {
		return DayStartMinute, DayEndMinute
	}
	return open, closeAt
}

func parseClock(s string) (int, bool) {
	hm := strings.SplitN(s, ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	h, errH := strconv.Atoi(hm[0])
	m, errM := strconv.Atoi(hm[1])
	if errH != nil || errM != nil || h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatMinutes renders an offset in minutes since midnight as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
