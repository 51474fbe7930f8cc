package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Timeframe is a named time-of-day window used by fare leg rules to vary
// pricing (timeframes.txt). An absent start_time defaults to 00:00:00 and
// an absent end_time defaults to 24:00:00, but the two fields must be set
// or absent together.
type Timeframe struct {
	TimeframeGroupID ids.TimeframeGroupId
	StartTime        *types.ServiceTime
	EndTime          *types.ServiceTime
	ServiceID        ids.ServiceId
}

// ValidateRow enforces timeframes.txt's within-row rules:
// timeframe_group_id and service_id can never be empty, start_time and
// end_time must be set together, and start_time cannot be after end_time.
func (t *Timeframe) ValidateRow() error {
	if t.TimeframeGroupID.IsEmpty() {
		return newMissingValue("timeframe_group_id", "can never be empty", t.snapshot())
	}
	if t.ServiceID.IsEmpty() {
		return newMissingValue("service_id", "can never be empty", t.snapshot())
	}
	if t.StartTime != nil && t.EndTime == nil {
		return newMissingValue("end_time", "required when start_time is defined", t.snapshot())
	}
	if t.EndTime != nil && t.StartTime == nil {
		return newMissingValue("start_time", "required when end_time is defined", t.snapshot())
	}
	if t.StartTime != nil && t.EndTime != nil && t.StartTime.After(*t.EndTime) {
		return newInvalidValue("start_time, end_time", "start_time cannot be after end_time", t.snapshot())
	}
	return nil
}

func (t *Timeframe) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "timeframes", Fields: map[string]string{
		"timeframe_group_id": t.TimeframeGroupID.String(),
		"service_id":         t.ServiceID.String(),
	}}
}
