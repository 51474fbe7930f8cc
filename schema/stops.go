package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Stop represents a location from stops.txt: a stop/platform, station,
// entrance/exit, generic node, or boarding area.
type Stop struct {
	StopID             ids.StopId
	StopCode           string
	StopName           string
	StopDesc           string
	Coordinate         *types.Coordinate
	LocationType       types.LocationType
	ParentStation      ids.StopId // empty when absent
	StopTimezone       string
	LevelID            ids.LevelId // empty when absent
	StopURL            string
	WheelchairBoarding types.WheelchairBoarding
	PlatformCode       string
	ZoneID             string
}

// ValidateRow enforces stops.txt's conditional presence rules:
//   - stop_id must never be empty.
//   - stop-or-platform (default), station: stop_name and coordinates required.
//   - entrance-or-exit, generic-node, boarding-area: parent_station required.
//   - station: parent_station forbidden.
func (s *Stop) ValidateRow() error {
	if s.StopID.IsEmpty() {
		return newMissingValue("stop_id", "can never be empty", s.snapshot())
	}

	switch s.LocationType {
	case types.LocationStopOrPlatform, types.LocationStation:
		if s.StopName == "" {
			return newMissingValue("stop_name", "required for stop-or-platform and station location types", s.snapshot())
		}
		if s.Coordinate == nil {
			return newMissingValue("stop_lat, stop_lon", "required for stop-or-platform and station location types", s.snapshot())
		}
	case types.LocationEntranceExit, types.LocationGenericNode, types.LocationBoardingArea:
		if s.ParentStation.IsEmpty() {
			return newMissingValue("parent_station", "required for entrance/exit, generic node, and boarding area location types", s.snapshot())
		}
	}

	if s.LocationType == types.LocationStation && !s.ParentStation.IsEmpty() {
		return newForbiddenValue("parent_station", "forbidden for stations", s.snapshot())
	}

	return nil
}

func (s *Stop) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "stops", Fields: map[string]string{
		"stop_id":        s.StopID.String(),
		"location_type":  itoa(int(s.LocationType)),
		"parent_station": s.ParentStation.String(),
	}}
}
