package schema

import "github.com/transitdata/gtfs-dataset/ids"

// LocationGroup names a group of stops where a rider may request flexible
// pickup or drop-off (location_groups.txt).
type LocationGroup struct {
	LocationGroupID   ids.LocationGroupId
	LocationGroupName string
}

// ValidateRow enforces location_groups.txt's one within-row rule:
// location_group_id can never be empty.
func (l *LocationGroup) ValidateRow() error {
	if l.LocationGroupID.IsEmpty() {
		return newMissingValue("location_group_id", "can never be empty", l.snapshot())
	}
	return nil
}

func (l *LocationGroup) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "location_groups", Fields: map[string]string{
		"location_group_id": l.LocationGroupID.String(),
	}}
}
