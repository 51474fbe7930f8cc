package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Frequency describes headway-based or exact repeating service for a trip
// (frequencies.txt). Its primary key is (trip_id, start_time).
type Frequency struct {
	TripID      ids.TripId
	StartTime   types.ServiceTime
	EndTime     types.ServiceTime
	HeadwaySecs int
	ExactTimes  types.ExactTimes
}

// ValidateRow enforces frequencies.txt's within-row rules: start_time must
// not be after end_time, and an exact-schedule frequency's headway must fit
// strictly within the window.
func (f *Frequency) ValidateRow() error {
	if f.TripID.IsEmpty() {
		return newMissingValue("trip_id", "can never be empty", f.snapshot())
	}
	if f.StartTime.After(f.EndTime) {
		return newInvalidValue("start_time, end_time", "start_time cannot be after end_time", f.snapshot())
	}
	if f.ExactTimes == types.ScheduleBased {
		headwayEnd, err := f.StartTime.AddDuration(f.HeadwaySecs)
		if err != nil || !headwayEnd.Before(f.EndTime) {
			return newInvalidValue("headway_secs", "start_time + headway must be before end_time when exact_times is schedule-based", f.snapshot())
		}
	}
	return nil
}

func (f *Frequency) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "frequencies", Fields: map[string]string{
		"trip_id":    f.TripID.String(),
		"start_time": f.StartTime.String(),
	}}
}
