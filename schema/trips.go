package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Trip is a sequence of two or more stops occurring during a specific time
// period (trips.txt).
type Trip struct {
	TripID               ids.TripId
	RouteID              ids.RouteId
	ServiceID            ids.ServiceId
	TripHeadsign         string
	TripShortName        string
	DirectionID          *int
	BlockID              string
	ShapeID              ids.ShapeId // empty when absent
	WheelchairAccessible types.WheelchairBoarding
	BikesAllowed         types.BikesAllowed
}

// ValidateRow enforces trips.txt's within-row rules: trip_id, route_id, and
// service_id can never be empty.
func (t *Trip) ValidateRow() error {
	if t.TripID.IsEmpty() {
		return newMissingValue("trip_id", "can never be empty", t.snapshot())
	}
	if t.RouteID.IsEmpty() {
		return newMissingValue("route_id", "can never be empty", t.snapshot())
	}
	if t.ServiceID.IsEmpty() {
		return newMissingValue("service_id", "can never be empty", t.snapshot())
	}
	return nil
}

func (t *Trip) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "trips", Fields: map[string]string{
		"trip_id":    t.TripID.String(),
		"route_id":   t.RouteID.String(),
		"service_id": t.ServiceID.String(),
		"shape_id":   t.ShapeID.String(),
	}}
}
