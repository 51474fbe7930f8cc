package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

func TestStop_ValidateRow(t *testing.T) {
	coord := &types.Coordinate{Latitude: 1, Longitude: 1}

	t.Run("requires stop_id", func(t *testing.T) {
		s := Stop{}
		require.Error(t, s.ValidateRow())
	})

	t.Run("platform requires name and coordinate", func(t *testing.T) {
		s := Stop{StopID: "s1", LocationType: types.LocationStopOrPlatform}
		err := s.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stop_name")
	})

	t.Run("platform with name but no coordinate still fails", func(t *testing.T) {
		s := Stop{StopID: "s1", LocationType: types.LocationStopOrPlatform, StopName: "Main St"}
		err := s.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stop_lat")
	})

	t.Run("valid platform passes", func(t *testing.T) {
		s := Stop{StopID: "s1", LocationType: types.LocationStopOrPlatform, StopName: "Main St", Coordinate: coord}
		require.NoError(t, s.ValidateRow())
	})

	t.Run("entrance requires parent_station", func(t *testing.T) {
		s := Stop{StopID: "e1", LocationType: types.LocationEntranceExit}
		err := s.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent_station")
	})

	t.Run("station forbids parent_station", func(t *testing.T) {
		s := Stop{StopID: "st1", LocationType: types.LocationStation, StopName: "Union", Coordinate: coord, ParentStation: "other"}
		err := s.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent_station")
	})
}

func TestRoute_ValidateRow(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		r := Route{RouteID: "r1"}
		err := r.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "route_short_name")
	})

	t.Run("short name alone suffices", func(t *testing.T) {
		r := Route{RouteID: "r1", RouteShortName: "10"}
		require.NoError(t, r.ValidateRow())
	})
}

func TestTrip_ValidateRow(t *testing.T) {
	t.Run("requires route_id and service_id", func(t *testing.T) {
		tr := Trip{TripID: "t1"}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "route_id")
	})

	t.Run("fully populated trip passes", func(t *testing.T) {
		tr := Trip{TripID: "t1", RouteID: "r1", ServiceID: "s1"}
		require.NoError(t, tr.ValidateRow())
	})
}

func TestStopTime_ValidateRow(t *testing.T) {
	t.Run("requires exactly one of stop_id, location_group_id, location_id", func(t *testing.T) {
		st := StopTime{TripID: "t1"}
		err := st.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "location_id")
	})

	t.Run("stop_id alone is fine and defaults pickup/drop_off types", func(t *testing.T) {
		arrival := mustTime(t, "08:00:00")
		departure := mustTime(t, "08:01:00")
		st := StopTime{TripID: "t1", StopID: "s1", StopSequence: 1, ArrivalTime: &arrival, DepartureTime: &departure}
		require.NoError(t, st.ValidateRow())
		require.NotNil(t, st.PickupType)
		assert.Equal(t, types.PickupRegularlyScheduled, *st.PickupType)
		require.NotNil(t, st.DropOffType)
		assert.Equal(t, types.DropOffRegularlyScheduled, *st.DropOffType)
	})

	t.Run("absent timepoint defaults to exact and requires arrival/departure", func(t *testing.T) {
		st := StopTime{TripID: "t1", StopID: "s1", StopSequence: 1}
		err := st.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "arrival_time")
	})

	t.Run("windowed stop-time forbids arrival/departure time", func(t *testing.T) {
		window := mustTime(t, "08:00:00")
		st := StopTime{TripID: "t1", LocationGroupID: "lg1", StartPickupDropOffWindow: &window, EndPickupDropOffWindow: &window, ArrivalTime: &window}
		err := st.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "arrival_time")
	})

	t.Run("negative shape_dist_traveled rejected", func(t *testing.T) {
		neg := -1.0
		st := StopTime{TripID: "t1", StopID: "s1", ShapeDistTraveled: &neg}
		err := st.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shape_dist_traveled")
	})
}

func mustTime(t *testing.T, s string) types.ServiceTime {
	t.Helper()
	tt, err := types.ParseServiceTime(s)
	require.NoError(t, err)
	return tt
}

func TestCalendar_ValidateRow(t *testing.T) {
	start, err := types.ParseGTFSDate("20240101")
	require.NoError(t, err)
	end, err := types.ParseGTFSDate("20231231")
	require.NoError(t, err)

	c := Calendar{ServiceID: "s1", StartDate: *start, EndDate: *end}
	err2 := c.ValidateRow()
	require.Error(t, err2)
	assert.Contains(t, err2.Error(), "start_date")
}

func TestFrequency_ValidateRow(t *testing.T) {
	start := mustTime(t, "08:00:00")
	end := mustTime(t, "09:00:00")

	t.Run("schedule-based headway must fit strictly inside window", func(t *testing.T) {
		f := Frequency{TripID: "t1", StartTime: start, EndTime: end, HeadwaySecs: 3600, ExactTimes: types.ScheduleBased}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "headway_secs")
	})

	t.Run("frequency-based headway has no window constraint", func(t *testing.T) {
		f := Frequency{TripID: "t1", StartTime: start, EndTime: end, HeadwaySecs: 3600, ExactTimes: types.FrequencyBased}
		require.NoError(t, f.ValidateRow())
	})
}

func TestTransfer_ValidateRow(t *testing.T) {
	t.Run("in-seat transfer requires stop and trip ids", func(t *testing.T) {
		tr := Transfer{TransferType: types.TransferInSeat}
		err := tr.ValidateRow()
		require.Error(t, err)
	})

	t.Run("fully populated in-seat transfer passes", func(t *testing.T) {
		tr := Transfer{
			TransferType: types.TransferInSeat,
			FromStopID:   "a", ToStopID: "b",
			FromTripID: "t1", ToTripID: "t2",
		}
		require.NoError(t, tr.ValidateRow())
	})

	t.Run("no-in-seat-transfer forbids stop ids", func(t *testing.T) {
		tr := Transfer{TransferType: types.TransferInSeatNotPossible, FromStopID: "a", FromTripID: "t1", ToTripID: "t2"}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "from_stop_id")
	})
}

func TestPathway_ValidateRow(t *testing.T) {
	t.Run("exit gate cannot be bidirectional", func(t *testing.T) {
		p := Pathway{PathwayID: "p1", FromStopID: "a", ToStopID: "b", PathwayMode: types.PathwayExitGate, IsBidirectional: true}
		err := p.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is_bidirectional")
	})
}

func TestBookingRule_ValidateRow(t *testing.T) {
	t.Run("same-day booking requires minimum duration", func(t *testing.T) {
		b := BookingRule{BookingRuleID: "b1", BookingType: types.BookingSameDayWithNotice}
		err := b.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prior_notice_duration_min")
	})

	t.Run("prior-days booking requires last day", func(t *testing.T) {
		b := BookingRule{BookingRuleID: "b1", BookingType: types.BookingPriorDaysWithNotice}
		err := b.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prior_notice_last_day")
	})

	t.Run("prior-days booking fully populated passes", func(t *testing.T) {
		day := 2
		lastTime := mustTime(t, "18:00:00")
		b := BookingRule{
			BookingRuleID:      "b1",
			BookingType:        types.BookingPriorDaysWithNotice,
			PriorNoticeLastDay: &day, PriorNoticeLastTime: &lastTime,
		}
		require.NoError(t, b.ValidateRow())
	})

	t.Run("real-time booking forbids max duration", func(t *testing.T) {
		max := 60
		b := BookingRule{BookingRuleID: "b1", BookingType: types.BookingRealTime, PriorNoticeDurationMax: &max}
		err := b.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prior_notice_duration_max")
	})
}

func TestTranslation_ValidateRow(t *testing.T) {
	t.Run("feed_info rows forbid record addressing", func(t *testing.T) {
		recID := "x"
		tr := Translation{TableName: TranslatedFeedInfo, FieldName: "feed_publisher_name", Language: "en", Translation: "x", RecordID: &recID}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feed_info")
	})

	t.Run("stop_times rows require record_sub_id alongside record_id", func(t *testing.T) {
		recID := "t1"
		tr := Translation{TableName: TranslatedStopTimes, FieldName: "stop_headsign", Language: "en", Translation: "x", RecordID: &recID}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record_sub_id")
	})

	t.Run("stops rows forbid record_sub_id", func(t *testing.T) {
		recID := "s1"
		subID := "x"
		tr := Translation{TableName: TranslatedStops, FieldName: "stop_name", Language: "en", Translation: "x", RecordID: &recID, RecordSubID: &subID}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record_sub_id")
	})

	t.Run("field_value addressing is a valid alternative to record_id", func(t *testing.T) {
		val := "Main St"
		tr := Translation{TableName: TranslatedStops, FieldName: "stop_name", Language: "en", Translation: "x", FieldValue: &val}
		require.NoError(t, tr.ValidateRow())
	})

	t.Run("invalid language tag rejected", func(t *testing.T) {
		val := "Main St"
		tr := Translation{TableName: TranslatedStops, FieldName: "stop_name", Language: "not-a-tag!!", Translation: "x", FieldValue: &val}
		err := tr.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "language")
	})
}

func TestFareTransferRule_ValidateRow(t *testing.T) {
	t.Run("same leg group requires transfer_count", func(t *testing.T) {
		f := FareTransferRule{FromLegGroupID: "g1", ToLegGroupID: "g1"}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transfer_count")
	})

	t.Run("differing leg groups forbid transfer_count", func(t *testing.T) {
		count := 1
		f := FareTransferRule{FromLegGroupID: "g1", ToLegGroupID: "g2", TransferCount: &count}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transfer_count")
	})

	t.Run("duration_limit and duration_limit_type travel together", func(t *testing.T) {
		limit := 1800
		f := FareTransferRule{FromLegGroupID: "g1", ToLegGroupID: "g2", DurationLimit: &limit}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration_limit_type")
	})
}

func TestFareAttribute_ValidateRow(t *testing.T) {
	t.Run("negative price rejected", func(t *testing.T) {
		f := FareAttribute{FareID: "f1", Price: -1, CurrencyType: "USD"}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("malformed currency rejected", func(t *testing.T) {
		f := FareAttribute{FareID: "f1", Price: 1, CurrencyType: "NOTACODE"}
		err := f.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency_type")
	})

	t.Run("well-formed fare passes", func(t *testing.T) {
		f := FareAttribute{FareID: "f1", Price: 1.5, CurrencyType: "USD"}
		require.NoError(t, f.ValidateRow())
	})
}

func TestAttribution_ValidateRow(t *testing.T) {
	t.Run("more than one scope is ambiguous", func(t *testing.T) {
		a := Attribution{OrganizationName: "Agency", AgencyID: ids.AgencyId("a1"), RouteID: ids.RouteId("r1")}
		err := a.ValidateRow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agency_id")
	})

	t.Run("single scope is fine", func(t *testing.T) {
		a := Attribution{OrganizationName: "Agency", RouteID: ids.RouteId("r1")}
		require.NoError(t, a.ValidateRow())
	})
}
