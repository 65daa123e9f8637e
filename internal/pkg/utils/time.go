package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converts a wall-clock string "HH:MM" to minutes since
// midnight. It is deliberately permissive: malformed parts count as zero and
// reversed ranges are the caller's problem. No timezone handling anywhere,
// every time in the system is a local wall-clock string.
func TimeToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	var minutes int
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// ParseTimeSlot splits "HH:MM-HH:MM" into start and end clock strings.
func ParseTimeSlot(timeSlot string) (string, string, error) {
	parts := strings.SplitN(timeSlot, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("time slot %q is not in HH:MM-HH:MM format", timeSlot)
	}
	return parts[0], parts[1], nil
}

// IsSlotDuringLeave reports whether a slot collides with a leave window.
// A leave without start/end times is a full-day leave and blocks everything;
// otherwise the classic half-open overlap check applies.
func IsSlotDuringLeave(slotStart, slotEnd int, leaveStart, leaveEnd *string) bool {
	if leaveStart == nil || leaveEnd == nil {
		return true
	}
	return slotStart < TimeToMinutes(*leaveEnd) && slotEnd > TimeToMinutes(*leaveStart)
}

// ParseDateYYYYMMDD parses a "YYYY-MM-DD" date in the process-local timezone.
func ParseDateYYYYMMDD(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, time.Local)
}

// StartOfToday returns local midnight of the current day.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// MinutesSinceMidnight returns the current local wall-clock position in minutes.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
