package schema

import "github.com/transitdata/gtfs-dataset/ids"

// LocationGroupStop assigns a stop to a location group (location_groups_stops.txt).
type LocationGroupStop struct {
	LocationGroupID ids.LocationGroupId
	StopID          ids.StopId
}

// ValidateRow enforces location_groups_stops.txt's within-row rules:
// location_group_id and stop_id can never be empty.
func (l *LocationGroupStop) ValidateRow() error {
	if l.LocationGroupID.IsEmpty() {
		return newMissingValue("location_group_id", "can never be empty", l.snapshot())
	}
	if l.StopID.IsEmpty() {
		return newMissingValue("stop_id", "can never be empty", l.snapshot())
	}
	return nil
}

func (l *LocationGroupStop) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "location_group_stops", Fields: map[string]string{
		"location_group_id": l.LocationGroupID.String(),
		"stop_id":           l.StopID.String(),
	}}
}
