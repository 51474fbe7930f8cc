package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Calendar defines a weekly service pattern with a validity range (calendar.txt).
type Calendar struct {
	ServiceID ids.ServiceId
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
	StartDate types.GTFSDate
	EndDate   types.GTFSDate
}

// ValidateRow enforces calendar.txt's within-row rules: service_id must be
// non-empty, and start_date must not be after end_date.
func (c *Calendar) ValidateRow() error {
	if c.ServiceID.IsEmpty() {
		return newMissingValue("service_id", "can never be empty", c.snapshot())
	}
	if c.StartDate.After(&c.EndDate) {
		return newInvalidValue("start_date, end_date", "start_date cannot be after end_date", c.snapshot())
	}
	return nil
}

func (c *Calendar) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "calendar", Fields: map[string]string{
		"service_id": c.ServiceID.String(),
		"start_date": c.StartDate.String(),
		"end_date":   c.EndDate.String(),
	}}
}
