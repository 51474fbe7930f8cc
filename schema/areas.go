package schema

import "github.com/transitdata/gtfs-dataset/ids"

// Area names a geographic grouping of stops used by fare leg rules (areas.txt).
type Area struct {
	AreaID   ids.AreaId
	AreaName string
}

// ValidateRow enforces areas.txt's one within-row rule: area_id can never
// be empty.
func (a *Area) ValidateRow() error {
	if a.AreaID.IsEmpty() {
		return newMissingValue("area_id", "can never be empty", a.snapshot())
	}
	return nil
}

func (a *Area) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "areas", Fields: map[string]string{"area_id": a.AreaID.String()}}
}
