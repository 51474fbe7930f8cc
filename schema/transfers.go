package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Transfer specifies additional rules and overrides for a transfer a
// rider makes between routes at a pair of stops or trips (transfers.txt).
type Transfer struct {
	FromStopID      ids.StopId
	ToStopID        ids.StopId
	FromRouteID     ids.RouteId
	ToRouteID       ids.RouteId
	FromTripID      ids.TripId
	ToTripID        ids.TripId
	TransferType    types.TransferType
	MinTransferTime *int
}

// ValidateRow enforces transfers.txt's within-row rules: from_stop_id and
// to_stop_id are required for in-seat and impossible transfers and
// forbidden for no-in-seat-transfer rows, and from_trip_id/to_trip_id are
// required for both in-seat and no-in-seat-transfer rows.
func (t *Transfer) ValidateRow() error {
	switch t.TransferType {
	case types.TransferInSeat, types.TransferNotPossible:
		if t.FromStopID.IsEmpty() || t.ToStopID.IsEmpty() {
			return newMissingValue("from_stop_id, to_stop_id", "required when transfer_type is in-seat-transfer or no-transfer-possible", t.snapshot())
		}
	case types.TransferInSeatNotPossible:
		if !t.FromStopID.IsEmpty() || !t.ToStopID.IsEmpty() {
			return newForbiddenValue("from_stop_id, to_stop_id", "forbidden when transfer_type is no-in-seat-transfer", t.snapshot())
		}
	}

	switch t.TransferType {
	case types.TransferInSeat, types.TransferInSeatNotPossible:
		if t.FromTripID.IsEmpty() || t.ToTripID.IsEmpty() {
			return newMissingValue("from_trip_id, to_trip_id", "required when transfer_type is in-seat-transfer or no-in-seat-transfer", t.snapshot())
		}
	}

	if t.MinTransferTime != nil && *t.MinTransferTime < 0 {
		return newInvalidValue("min_transfer_time", "must be non-negative", t.snapshot())
	}
	return nil
}

func (t *Transfer) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "transfers", Fields: map[string]string{
		"from_stop_id": t.FromStopID.String(),
		"to_stop_id":   t.ToStopID.String(),
		"from_trip_id": t.FromTripID.String(),
		"to_trip_id":   t.ToTripID.String(),
	}}
}
