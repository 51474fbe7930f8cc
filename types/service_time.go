package types

import (
	"fmt"
	"strconv"
	"strings"
)

// maxServiceSeconds is the latest instant a ServiceTime can represent:
// 47:59:59, one second short of the second midnight. GTFS allows times past
// 24:00:00 to describe service that continues after midnight on the same
// service day; this package saturates rather than wraps at that boundary.
const maxServiceSeconds = 47*3600 + 59*60 + 59

// ServiceTime is a time of day expressed relative to the start of a service
// day rather than a wall clock. Hours in [0, 24) fall on the service day
// itself; hours in [24, 48) ("overflow") describe the following calendar
// day's early hours without changing which service day the trip belongs to.
type ServiceTime struct {
	seconds  int
	overflow bool
}

// NewServiceTime builds a ServiceTime from a seconds-since-midnight value.
// It returns an error if seconds falls outside [0, 47:59:59].
func NewServiceTime(seconds int) (ServiceTime, error) {
	if seconds < 0 || seconds > maxServiceSeconds {
		return ServiceTime{}, fmt.Errorf("service time out of range: %d seconds", seconds)
	}
	return ServiceTime{seconds: seconds, overflow: seconds >= 24*3600}, nil
}

// ParseServiceTime parses a GTFS time string (H:MM:SS or HH:MM:SS). Hours may
// run from 0 to 47 (the latest accepted time is 47:59:59); minutes and
// seconds must be zero-padded to two digits.
func ParseServiceTime(s string) (ServiceTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ServiceTime{}, fmt.Errorf("invalid service time format: %s (expected HH:MM:SS)", s)
	}
	if len(parts[1]) != 2 || len(parts[2]) != 2 {
		return ServiceTime{}, fmt.Errorf("invalid zero padding in minutes/seconds: %s", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return ServiceTime{}, fmt.Errorf("invalid hours in service time: %s", parts[0])
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return ServiceTime{}, fmt.Errorf("invalid minutes in service time: %s", parts[1])
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds < 0 || seconds > 59 {
		return ServiceTime{}, fmt.Errorf("invalid seconds in service time: %s", parts[2])
	}

	return NewServiceTime(hours*3600 + minutes*60 + seconds)
}

// String renders the time back as HH:MM:SS, including overflow hours >= 24.
func (t ServiceTime) String() string {
	h := t.seconds / 3600
	m := (t.seconds % 3600) / 60
	s := t.seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ToSeconds returns the total seconds since the start of the service day.
func (t ServiceTime) ToSeconds() int { return t.seconds }

// IsOverflow reports whether the time falls on or after the 24:00:00 boundary.
func (t ServiceTime) IsOverflow() bool { return t.overflow }

// Before reports whether t occurs strictly earlier than other.
func (t ServiceTime) Before(other ServiceTime) bool { return t.seconds < other.seconds }

// After reports whether t occurs strictly later than other.
func (t ServiceTime) After(other ServiceTime) bool { return t.seconds > other.seconds }

// Equal reports whether t and other denote the same instant.
func (t ServiceTime) Equal(other ServiceTime) bool { return t.seconds == other.seconds }

// Compare returns -1, 0, or 1 as t is before, equal to, or after other.
func (t ServiceTime) Compare(other ServiceTime) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// AddDuration adds a non-negative number of seconds to t, saturating at
// 47:59:59 rather than overflowing past the representable range.
func (t ServiceTime) AddDuration(durationSeconds int) (ServiceTime, error) {
	if durationSeconds < 0 {
		return ServiceTime{}, fmt.Errorf("duration must be non-negative: %d", durationSeconds)
	}
	total := t.seconds + durationSeconds
	if total > maxServiceSeconds {
		total = maxServiceSeconds
	}
	return ServiceTime{seconds: total, overflow: total >= 24*3600}, nil
}
