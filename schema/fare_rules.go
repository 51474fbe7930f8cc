package schema

import "github.com/transitdata/gtfs-dataset/ids"

// FareRule specifies how a legacy fare_attributes.txt fare applies to an
// itinerary (fare_rules.txt).
type FareRule struct {
	FareID        ids.FareId
	RouteID       ids.RouteId
	OriginID      string
	DestinationID string
	ContainsID    string
}

// ValidateRow enforces fare_rules.txt's one within-row rule: fare_id can
// never be empty.
func (f *FareRule) ValidateRow() error {
	if f.FareID.IsEmpty() {
		return newMissingValue("fare_id", "can never be empty", f.snapshot())
	}
	return nil
}

func (f *FareRule) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_rules", Fields: map[string]string{
		"fare_id": f.FareID.String(),
	}}
}
