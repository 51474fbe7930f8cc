package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/schema"
)

func TestNew_InitializesMappingTables(t *testing.T) {
	ds := New()
	require.NotNil(t, ds.Stops)
	require.NotNil(t, ds.Routes)
	require.NotNil(t, ds.Trips)
	require.NotNil(t, ds.StopTimes)
	require.NotNil(t, ds.Calendar)
	require.NotNil(t, ds.FareAttributes)
	require.Nil(t, ds.Agencies)
	require.Nil(t, ds.FareRules)
}

func TestStopTimesForTrip(t *testing.T) {
	ds := New()
	ds.StopTimes[StopTimeKey{TripID: "t1", StopSequence: 1}] = schema.StopTime{TripID: "t1", StopSequence: 1}
	ds.StopTimes[StopTimeKey{TripID: "t1", StopSequence: 2}] = schema.StopTime{TripID: "t1", StopSequence: 2}
	ds.StopTimes[StopTimeKey{TripID: "t2", StopSequence: 1}] = schema.StopTime{TripID: "t2", StopSequence: 1}

	got := ds.StopTimesForTrip("t1")
	assert.Len(t, got, 2)

	assert.Empty(t, ds.StopTimesForTrip("unknown"))
}

func TestTripsForRoute(t *testing.T) {
	ds := New()
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1"}
	ds.Trips["t2"] = schema.Trip{TripID: "t2", RouteID: "r1"}
	ds.Trips["t3"] = schema.Trip{TripID: "t3", RouteID: "r2"}

	got := ds.TripsForRoute("r1")
	assert.Len(t, got, 2)
}

func TestStopTimesForRoute_ComposesTripsAndStopTimes(t *testing.T) {
	ds := New()
	ds.Trips["t1"] = schema.Trip{TripID: "t1", RouteID: "r1"}
	ds.Trips["t2"] = schema.Trip{TripID: "t2", RouteID: "r2"}
	ds.StopTimes[StopTimeKey{TripID: "t1", StopSequence: 1}] = schema.StopTime{TripID: "t1", StopSequence: 1}
	ds.StopTimes[StopTimeKey{TripID: "t2", StopSequence: 1}] = schema.StopTime{TripID: "t2", StopSequence: 1}

	got := ds.StopTimesForRoute("r1")
	require.Len(t, got, 1)
	assert.Equal(t, ids.TripId("t1"), got[0].TripID)
}

func TestLocationGroupsForStop(t *testing.T) {
	ds := New()
	ds.LocationGroupsStops = []schema.LocationGroupStop{
		{LocationGroupID: "lg1", StopID: "s1"},
		{LocationGroupID: "lg2", StopID: "s1"},
		{LocationGroupID: "lg1", StopID: "s2"},
	}

	got := ds.LocationGroupsForStop("s1")
	assert.ElementsMatch(t, []ids.LocationGroupId{"lg1", "lg2"}, got)
}

func TestAreasForStop(t *testing.T) {
	ds := New()
	ds.StopsAreas = []schema.StopArea{
		{AreaID: "a1", StopID: "s1"},
		{AreaID: "a2", StopID: "s2"},
	}

	got := ds.AreasForStop("s1")
	assert.Equal(t, []ids.AreaId{"a1"}, got)
}

func TestShapePointsForShape(t *testing.T) {
	ds := New()
	ds.Shapes[ShapePointKey{ShapeID: "sh1", Seq: 1}] = schema.Shape{ShapeID: "sh1", ShapePtSequence: 1}
	ds.Shapes[ShapePointKey{ShapeID: "sh1", Seq: 2}] = schema.Shape{ShapeID: "sh1", ShapePtSequence: 2}
	ds.Shapes[ShapePointKey{ShapeID: "sh2", Seq: 1}] = schema.Shape{ShapeID: "sh2", ShapePtSequence: 1}

	got := ds.ShapePointsForShape("sh1")
	assert.Len(t, got, 2)
}

func TestGetStop_GetTrip_GetRoute(t *testing.T) {
	ds := New()
	ds.Stops["s1"] = schema.Stop{StopID: "s1"}
	ds.Trips["t1"] = schema.Trip{TripID: "t1"}
	ds.Routes["r1"] = schema.Route{RouteID: "r1"}

	_, ok := ds.GetStop("s1")
	assert.True(t, ok)
	_, ok = ds.GetStop("missing")
	assert.False(t, ok)

	_, ok = ds.GetTrip("t1")
	assert.True(t, ok)

	_, ok = ds.GetRoute("r1")
	assert.True(t, ok)
}
