package schema

import "github.com/transitdata/gtfs-dataset/ids"

// StopArea assigns a stop to an area (stops_areas.txt). A station assigned
// here implicitly covers its child platforms unless they are assigned
// elsewhere.
type StopArea struct {
	AreaID ids.AreaId
	StopID ids.StopId
}

// ValidateRow enforces stops_areas.txt's within-row rules: area_id and
// stop_id can never be empty.
func (s *StopArea) ValidateRow() error {
	if s.AreaID.IsEmpty() {
		return newMissingValue("area_id", "can never be empty", s.snapshot())
	}
	if s.StopID.IsEmpty() {
		return newMissingValue("stop_id", "can never be empty", s.snapshot())
	}
	return nil
}

func (s *StopArea) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "stop_areas", Fields: map[string]string{
		"area_id": s.AreaID.String(),
		"stop_id": s.StopID.String(),
	}}
}
