// Package dataset holds the in-memory relational representation of a
// loaded GTFS feed: one mapping per primary-keyed table, one ordered
// sequence per table whose full tuple is the key, plus the query methods
// the validator and downstream consumers need.
package dataset

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/schema"
)

// StopTimeKey is the primary key of stop_times: (trip_id, stop_sequence).
type StopTimeKey struct {
	TripID       ids.TripId
	StopSequence int
}

// ShapePointKey is the primary key of shapes: (shape_id, shape_pt_sequence).
type ShapePointKey struct {
	ShapeID ids.ShapeId
	Seq     int
}

// FrequencyKey is the primary key of frequencies: (trip_id, start_time as text).
type FrequencyKey struct {
	TripID    ids.TripId
	StartTime string
}

// CalendarDateKey is the primary key of calendar_dates: (service_id, date as text).
type CalendarDateKey struct {
	ServiceID ids.ServiceId
	Date      string
}

// FareProductKey is the primary key of fare_products: (fare_product_id, optional fare_media_id).
type FareProductKey struct {
	FareProductID ids.FareProductId
	FareMediaID   ids.FareMediaId
}

// Dataset is the fully loaded, not-yet-validated relational view of a
// feed. Mapping-keyed tables are Go maps; tables with no natural primary
// key are ordered slices, in insertion order. FeedInfo is a pointer
// because the table holds at most one record.
type Dataset struct {
	Agencies []schema.Agency

	Stops  map[ids.StopId]schema.Stop
	Routes map[ids.RouteId]schema.Route
	Trips  map[ids.TripId]schema.Trip

	StopTimes map[StopTimeKey]schema.StopTime

	Calendar      map[ids.ServiceId]schema.Calendar
	CalendarDates map[CalendarDateKey]schema.CalendarDate

	FareAttributes map[ids.FareId]schema.FareAttribute
	FareRules      []schema.FareRule
	Timeframes     []schema.Timeframe

	FareMedia      map[ids.FareMediaId]schema.FareMedia
	FareProducts   map[FareProductKey]schema.FareProduct
	FareLegRules   []schema.FareLegRule
	FareTransfers  []schema.FareTransferRule

	Areas      map[ids.AreaId]schema.Area
	StopsAreas []schema.StopArea

	Networks       map[ids.NetworkId]schema.Network
	RoutesNetworks map[ids.RouteId]schema.RouteNetwork

	Shapes      map[ShapePointKey]schema.Shape
	Frequencies map[FrequencyKey]schema.Frequency

	Transfers []schema.Transfer

	Pathways map[ids.PathwayId]schema.Pathway
	Levels   map[ids.LevelId]schema.Level

	LocationGroups      map[ids.LocationGroupId]schema.LocationGroup
	LocationGroupsStops []schema.LocationGroupStop

	BookingRules map[ids.BookingRuleId]schema.BookingRule

	Translations []schema.Translation
	FeedInfo     *schema.FeedInfo
	Attributions []schema.Attribution
}

// New returns an empty dataset with every mapping table initialized, ready
// for the loader to populate.
func New() *Dataset {
	return &Dataset{
		Stops:               make(map[ids.StopId]schema.Stop),
		Routes:              make(map[ids.RouteId]schema.Route),
		Trips:               make(map[ids.TripId]schema.Trip),
		StopTimes:           make(map[StopTimeKey]schema.StopTime),
		Calendar:            make(map[ids.ServiceId]schema.Calendar),
		CalendarDates:       make(map[CalendarDateKey]schema.CalendarDate),
		FareAttributes:      make(map[ids.FareId]schema.FareAttribute),
		FareMedia:           make(map[ids.FareMediaId]schema.FareMedia),
		FareProducts:        make(map[FareProductKey]schema.FareProduct),
		Areas:               make(map[ids.AreaId]schema.Area),
		Networks:            make(map[ids.NetworkId]schema.Network),
		RoutesNetworks:      make(map[ids.RouteId]schema.RouteNetwork),
		Shapes:              make(map[ShapePointKey]schema.Shape),
		Frequencies:         make(map[FrequencyKey]schema.Frequency),
		Pathways:            make(map[ids.PathwayId]schema.Pathway),
		Levels:              make(map[ids.LevelId]schema.Level),
		LocationGroups:      make(map[ids.LocationGroupId]schema.LocationGroup),
		BookingRules:        make(map[ids.BookingRuleId]schema.BookingRule),
	}
}

// GetStop looks up a stop by identifier.
func (d *Dataset) GetStop(id ids.StopId) (schema.Stop, bool) {
	s, ok := d.Stops[id]
	return s, ok
}

// GetTrip looks up a trip by identifier.
func (d *Dataset) GetTrip(id ids.TripId) (schema.Trip, bool) {
	t, ok := d.Trips[id]
	return t, ok
}

// GetRoute looks up a route by identifier.
func (d *Dataset) GetRoute(id ids.RouteId) (schema.Route, bool) {
	r, ok := d.Routes[id]
	return r, ok
}

// StopTimesForTrip returns every stop_times record for the given trip, in
// unspecified order — callers that need arrival-time order must sort.
func (d *Dataset) StopTimesForTrip(trip ids.TripId) []schema.StopTime {
	var out []schema.StopTime
	for key, st := range d.StopTimes {
		if key.TripID == trip {
			out = append(out, st)
		}
	}
	return out
}

// TripsForRoute returns every trip belonging to the given route.
func (d *Dataset) TripsForRoute(route ids.RouteId) []schema.Trip {
	var out []schema.Trip
	for _, t := range d.Trips {
		if t.RouteID == route {
			out = append(out, t)
		}
	}
	return out
}

// StopTimesForRoute composes TripsForRoute and StopTimesForTrip to list
// every stop-time belonging to any trip of the given route.
func (d *Dataset) StopTimesForRoute(route ids.RouteId) []schema.StopTime {
	var out []schema.StopTime
	for _, t := range d.TripsForRoute(route) {
		out = append(out, d.StopTimesForTrip(t.TripID)...)
	}
	return out
}

// LocationGroupsForStop returns the location groups that the given stop
// belongs to, per location_groups_stops.txt.
func (d *Dataset) LocationGroupsForStop(stop ids.StopId) []ids.LocationGroupId {
	var out []ids.LocationGroupId
	for _, row := range d.LocationGroupsStops {
		if row.StopID == stop {
			out = append(out, row.LocationGroupID)
		}
	}
	return out
}

// AreasForStop returns the areas the given stop is explicitly assigned to
// via stops_areas.txt.
func (d *Dataset) AreasForStop(stop ids.StopId) []ids.AreaId {
	var out []ids.AreaId
	for _, row := range d.StopsAreas {
		if row.StopID == stop {
			out = append(out, row.AreaID)
		}
	}
	return out
}

// ShapePointsForShape returns every point of the given shape in unspecified
// map-iteration order — callers needing sequence order must sort by Seq.
func (d *Dataset) ShapePointsForShape(shape ids.ShapeId) []schema.Shape {
	var out []schema.Shape
	for key, pt := range d.Shapes {
		if key.ShapeID == shape {
			out = append(out, pt)
		}
	}
	return out
}
