package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// StopTime is when a vehicle arrives at and departs from a stop, location
// group, or GeoJSON location for a specific trip (stop_times.txt).
type StopTime struct {
	TripID            ids.TripId
	ArrivalTime       *types.ServiceTime
	DepartureTime     *types.ServiceTime
	StopID            ids.StopId // empty when absent
	LocationGroupID   string     // empty when absent
	LocationID        string     // empty when absent
	StopSequence      int
	StopHeadsign      string

	StartPickupDropOffWindow *types.ServiceTime
	EndPickupDropOffWindow   *types.ServiceTime

	PickupType        *types.PickupType
	DropOffType       *types.DropOffType
	ContinuousPickup  *types.ContinuousPickup
	ContinuousDropOff *types.ContinuousDropOff
	ShapeDistTraveled *float64
	Timepoint         *types.Timepoint

	PickupBookingRuleID   ids.BookingRuleId
	DropOffBookingRuleID  ids.BookingRuleId
}

// ValidateRow enforces stop_times.txt's conditional presence rules and
// performs the in-place defaulting this table documents:
// windowed stop-times have their pickup_type/drop_off_type codes cleared
// when they describe regularly-scheduled service (and, for pickup_type,
// must-coordinate-with-driver service), and non-windowed
// stop-times get regularly-scheduled defaults when the columns are absent.
func (st *StopTime) ValidateRow() error {
	if st.TripID.IsEmpty() {
		return newMissingValue("trip_id", "can never be empty", st.snapshot())
	}

	locationCount := 0
	if !st.StopID.IsEmpty() {
		locationCount++
	}
	if st.LocationGroupID != "" {
		locationCount++
	}
	if st.LocationID != "" {
		locationCount++
	}
	if locationCount != 1 {
		return newMissingValue("stop_id, location_group_id, or location_id", "exactly one of them must be present", st.snapshot())
	}

	if st.ShapeDistTraveled != nil && *st.ShapeDistTraveled < 0 {
		return newInvalidValue("shape_dist_traveled", "must be non-negative", st.snapshot())
	}

	windowed := st.StartPickupDropOffWindow != nil || st.EndPickupDropOffWindow != nil
	if windowed {
		if st.ArrivalTime != nil || st.DepartureTime != nil {
			return newForbiddenValue("arrival_time, departure_time", "forbidden when a pickup/drop-off window is defined", st.snapshot())
		}
	} else if st.Timepoint == nil || *st.Timepoint == types.TimepointExact {
		if st.ArrivalTime == nil || st.DepartureTime == nil {
			return newMissingValue("arrival_time, departure_time", "required because timepoint is exact", st.snapshot())
		}
	}

	if windowed {
		if st.ContinuousPickup != nil || st.ContinuousDropOff != nil {
			return newForbiddenValue("continuous_pickup, continuous_drop_off", "forbidden when a pickup/drop-off window is defined", st.snapshot())
		}
		if st.PickupType != nil && (*st.PickupType == types.PickupRegularlyScheduled || *st.PickupType == types.PickupMustCoordinateDriver) {
			st.PickupType = nil
		}
		if st.DropOffType != nil && *st.DropOffType == types.DropOffRegularlyScheduled {
			st.DropOffType = nil
		}
	} else {
		if st.PickupType == nil {
			regularly := types.PickupRegularlyScheduled
			st.PickupType = &regularly
		}
		if st.DropOffType == nil {
			regularly := types.DropOffRegularlyScheduled
			st.DropOffType = &regularly
		}
	}

	return nil
}

func (st *StopTime) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "stop_times", Fields: map[string]string{
		"trip_id":       st.TripID.String(),
		"stop_id":       st.StopID.String(),
		"stop_sequence": itoa(st.StopSequence),
	}}
}
