package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-dataset/dataset"
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/schema"
	"github.com/transitdata/gtfs-dataset/types"
)

func serviceTime(t *testing.T, s string) types.ServiceTime {
	t.Helper()
	st, err := types.ParseServiceTime(s)
	require.NoError(t, err)
	return st
}

func basicAgency(id string) schema.Agency {
	return schema.Agency{AgencyID: ids.AgencyId(id), AgencyName: "Agency " + id, AgencyTimezone: "America/Los_Angeles"}
}

func TestCheckAgencies_RequiresSharedTimezone(t *testing.T) {
	ds := dataset.New()
	a := basicAgency("1")
	b := basicAgency("2")
	b.AgencyTimezone = "America/New_York"
	ds.Agencies = []schema.Agency{a, b}

	err := checkAgencies(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agency_timezone")
}

func TestCheckAgencies_RequiresUniqueID(t *testing.T) {
	ds := dataset.New()
	ds.Agencies = []schema.Agency{basicAgency("1"), basicAgency("1")}

	err := checkAgencies(ds)
	require.Error(t, err)
}

func TestCheckAgencies_SingleAgencyNeedsNoID(t *testing.T) {
	ds := dataset.New()
	a := basicAgency("")
	ds.Agencies = []schema.Agency{a}

	require.NoError(t, checkAgencies(ds))
}

func TestCheckStopsHierarchy_WalksFullParentChain(t *testing.T) {
	ds := dataset.New()
	station := schema.Stop{StopID: "station", LocationType: types.LocationStation}
	platform := schema.Stop{StopID: "platform", LocationType: types.LocationStopOrPlatform, ParentStation: "station"}
	entrance := schema.Stop{StopID: "entrance", LocationType: types.LocationEntranceExit, ParentStation: "platform"}
	ds.Stops[station.StopID] = station
	ds.Stops[platform.StopID] = platform
	ds.Stops[entrance.StopID] = entrance

	require.NoError(t, checkStopsHierarchy(ds))
}

func TestCheckStopsHierarchy_RejectsChainNotEndingAtStation(t *testing.T) {
	ds := dataset.New()
	a := schema.Stop{StopID: "a", LocationType: types.LocationStopOrPlatform, ParentStation: "b"}
	b := schema.Stop{StopID: "b", LocationType: types.LocationStopOrPlatform}
	ds.Stops[a.StopID] = a
	ds.Stops[b.StopID] = b

	err := checkStopsHierarchy(ds)
	require.Error(t, err)
}

func TestCheckStopsHierarchy_RejectsCycle(t *testing.T) {
	ds := dataset.New()
	a := schema.Stop{StopID: "a", LocationType: types.LocationStopOrPlatform, ParentStation: "b"}
	b := schema.Stop{StopID: "b", LocationType: types.LocationStopOrPlatform, ParentStation: "a"}
	ds.Stops[a.StopID] = a
	ds.Stops[b.StopID] = b

	err := checkStopsHierarchy(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestCheckStopsHierarchy_RejectsMissingLevel(t *testing.T) {
	ds := dataset.New()
	s := schema.Stop{StopID: "a", LocationType: types.LocationStopOrPlatform, LevelID: "missing"}
	ds.Stops[s.StopID] = s

	err := checkStopsHierarchy(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level_id")
}

func TestCheckStopTimes_SortsByArrivalTimeNotSequence(t *testing.T) {
	ds := dataset.New()
	mk := func(seq int, arr string) schema.StopTime {
		a := serviceTime(t, arr)
		return schema.StopTime{TripID: "t1", StopSequence: seq, ArrivalTime: &a}
	}
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 1}] = mk(1, "08:00:00")
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 3}] = mk(3, "08:10:00")
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 2}] = mk(2, "08:20:00")
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1", ServiceID: "s1"}

	err := checkStopTimes(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop_sequence")
}

func TestCheckStopTimes_AcceptsMonotonicSequenceByArrival(t *testing.T) {
	ds := dataset.New()
	mk := func(seq int, arr string) schema.StopTime {
		a := serviceTime(t, arr)
		return schema.StopTime{TripID: "t1", StopSequence: seq, ArrivalTime: &a}
	}
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 1}] = mk(1, "08:00:00")
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 2}] = mk(2, "08:10:00")
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 3}] = mk(3, "08:20:00")
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1", ServiceID: "s1"}

	require.NoError(t, checkStopTimes(ds))
}

func TestCheckShapes_RejectsTiedDistances(t *testing.T) {
	ds := dataset.New()
	d := 5.0
	ds.Shapes[dataset.ShapePointKey{ShapeID: "shp", Seq: 1}] = schema.Shape{ShapeID: "shp", ShapePtSequence: 1, ShapeDistTraveled: &d}
	ds.Shapes[dataset.ShapePointKey{ShapeID: "shp", Seq: 2}] = schema.Shape{ShapeID: "shp", ShapePtSequence: 2, ShapeDistTraveled: &d}

	err := checkShapes(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape_dist_traveled")
}

func TestCheckFareGraph_ValidatesZoneIDReferences(t *testing.T) {
	ds := dataset.New()
	ds.FareAttributes["f1"] = schema.FareAttribute{FareID: "f1", CurrencyType: "USD"}
	ds.FareRules = []schema.FareRule{{FareID: "f1", OriginID: "zone-missing"}}

	err := checkFareGraph(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin_id")
}

func TestCheckFareGraph_AcceptsKnownZoneID(t *testing.T) {
	ds := dataset.New()
	ds.Stops["s1"] = schema.Stop{StopID: "s1", ZoneID: "zone-a"}
	ds.FareAttributes["f1"] = schema.FareAttribute{FareID: "f1", CurrencyType: "USD"}
	ds.FareRules = []schema.FareRule{{FareID: "f1", OriginID: "zone-a"}}

	require.NoError(t, checkFareGraph(ds))
}

func TestCheckFareGraph_TimeframeOverlapScopedToServiceID(t *testing.T) {
	ds := dataset.New()
	ds.Calendar["svc1"] = schema.Calendar{ServiceID: "svc1"}
	ds.Calendar["svc2"] = schema.Calendar{ServiceID: "svc2"}
	morning := serviceTime(t, "06:00:00")
	noon := serviceTime(t, "12:00:00")
	evening := serviceTime(t, "18:00:00")

	ds.Timeframes = []schema.Timeframe{
		{TimeframeGroupID: "tg1", ServiceID: "svc1", StartTime: &morning, EndTime: &evening},
		{TimeframeGroupID: "tg1", ServiceID: "svc1", StartTime: &noon, EndTime: &evening},
	}
	err := checkFareGraph(ds)
	require.Error(t, err)

	ds.Timeframes[1].ServiceID = "svc2"
	require.NoError(t, checkFareGraph(ds))
}

func TestCheckFareGraph_FareMediaReference(t *testing.T) {
	ds := dataset.New()
	ds.FareProducts[dataset.FareProductKey{FareProductID: "fp1"}] = schema.FareProduct{
		FareProductID: "fp1", FareMediaID: "missing-media", Currency: "USD",
	}
	err := checkFareGraph(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fare_media_id")
}

func TestCheckFareGraph_NetworkIDFromRouteField(t *testing.T) {
	ds := dataset.New()
	ds.Routes["r1"] = schema.Route{RouteID: "r1", NetworkID: "net-a", RouteShortName: "1"}
	ds.FareLegRules = []schema.FareLegRule{{LegGroupID: "lg1", NetworkID: "net-a", FareProductID: "fp1"}}
	ds.FareProducts[dataset.FareProductKey{FareProductID: "fp1"}] = schema.FareProduct{FareProductID: "fp1", Currency: "USD"}

	require.NoError(t, checkFareGraph(ds))
}

func TestCheckTrips_RequiresShapeWhenContinuousPickupPresent(t *testing.T) {
	ds := dataset.New()
	avail := types.ContinuousPickupAvailable
	ds.Routes["r1"] = schema.Route{RouteID: "r1", RouteShortName: "1", ContinuousPickup: &avail}
	ds.Calendar["s1"] = schema.Calendar{ServiceID: "s1"}
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1", ServiceID: "s1"}

	err := checkTrips(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape_id")
}

func TestCheckRoutes_RejectsContinuousRouteWithWindowedStopTime(t *testing.T) {
	ds := dataset.New()
	avail := types.ContinuousPickupAvailable
	ds.Routes["r1"] = schema.Route{RouteID: "r1", RouteShortName: "1", ContinuousPickup: &avail}
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1", ServiceID: "s1"}
	start := serviceTime(t, "08:00:00")
	ds.StopTimes[dataset.StopTimeKey{TripID: "t1", StopSequence: 1}] = schema.StopTime{
		TripID: "t1", StopSequence: 1, StartPickupDropOffWindow: &start,
	}

	err := checkRoutes(ds)
	require.Error(t, err)
}

func TestCheckFeedInfoCrossLanguage_RequiresFeedInfoWhenTranslationsPresent(t *testing.T) {
	ds := dataset.New()
	ds.Translations = []schema.Translation{{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "fr", Translation: "x"}}

	err := checkFeedInfoCrossLanguage(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed_info")
}

func TestCheckFeedInfoCrossLanguage_MultilingualRequiresEqualSets(t *testing.T) {
	ds := dataset.New()
	ds.FeedInfo = &schema.FeedInfo{FeedPublisherName: "Agency", FeedLang: "mul"}
	rid1 := "agency1"
	rid2 := "agency2"
	ds.Translations = []schema.Translation{
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "fr", Translation: "x", RecordID: &rid1},
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "de", Translation: "y", RecordID: &rid2},
	}

	err := checkFeedInfoCrossLanguage(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")
}

func TestCheckFeedInfoCrossLanguage_MultilingualAcceptsEqualSets(t *testing.T) {
	ds := dataset.New()
	ds.FeedInfo = &schema.FeedInfo{FeedPublisherName: "Agency", FeedLang: "mul"}
	rid := "agency1"
	ds.Translations = []schema.Translation{
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "fr", Translation: "x", RecordID: &rid},
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "de", Translation: "y", RecordID: &rid},
	}

	require.NoError(t, checkFeedInfoCrossLanguage(ds))
}

func TestCheckFeedInfoCrossLanguage_NonMulRejectsUnmatchedLanguages(t *testing.T) {
	ds := dataset.New()
	ds.FeedInfo = &schema.FeedInfo{FeedPublisherName: "Agency", FeedLang: "en"}
	rid := "agency1"
	ds.Translations = []schema.Translation{
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "fr", Translation: "x", RecordID: &rid},
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "de", Translation: "y", RecordID: &rid},
	}

	err := checkFeedInfoCrossLanguage(ds)
	require.Error(t, err)
}

func TestCheckFeedInfoCrossLanguage_NonMulAcceptsSingleOtherLanguage(t *testing.T) {
	ds := dataset.New()
	ds.FeedInfo = &schema.FeedInfo{FeedPublisherName: "Agency", FeedLang: "en"}
	rid := "agency1"
	ds.Translations = []schema.Translation{
		{TableName: schema.TranslatedAgency, FieldName: "agency_name", Language: "fr", Translation: "x", RecordID: &rid},
	}

	require.NoError(t, checkFeedInfoCrossLanguage(ds))
}

func TestCheckCalendarCoverage_RequiresAtLeastOneSource(t *testing.T) {
	ds := dataset.New()
	err := checkCalendarCoverage(ds)
	require.Error(t, err)
}

func TestCheckLocationGroupDisjointness_RejectsCollisionWithStopID(t *testing.T) {
	ds := dataset.New()
	ds.Stops["shared"] = schema.Stop{StopID: "shared"}
	ds.LocationGroups["shared"] = schema.LocationGroup{LocationGroupID: "shared"}

	err := checkLocationGroupDisjointness(ds)
	require.Error(t, err)
}
