package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// ExceptionType indicates whether a calendar_dates.txt row adds or removes
// service on the given date.
type ExceptionType int

const (
	ServiceAdded   ExceptionType = 1
	ServiceRemoved ExceptionType = 2
)

// CalendarDate is an exception to the weekly pattern in calendar.txt (calendar_dates.txt).
type CalendarDate struct {
	ServiceID     ids.ServiceId
	Date          types.GTFSDate
	ExceptionType ExceptionType
}

// ValidateRow enforces calendar_dates.txt's within-row rules: service_id
// can never be empty and exception_type must be one of the closed set.
func (c *CalendarDate) ValidateRow() error {
	if c.ServiceID.IsEmpty() {
		return newMissingValue("service_id", "can never be empty", c.snapshot())
	}
	if c.ExceptionType != ServiceAdded && c.ExceptionType != ServiceRemoved {
		return newInvalidValue("exception_type", "must be 1 (added) or 2 (removed)", c.snapshot())
	}
	return nil
}

func (c *CalendarDate) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "calendar_dates", Fields: map[string]string{
		"service_id": c.ServiceID.String(),
		"date":       c.Date.String(),
	}}
}
