// Package ids defines the distinct identifier types used across the GTFS
// data model. Every entity family gets its own string newtype so that, for
// example, a StopId can never be passed where a RouteId is expected even
// though both are backed by plain strings.
package ids

// AgencyId identifies a transit agency (agency.agency_id).
type AgencyId string

func (id AgencyId) String() string   { return string(id) }
func (id AgencyId) IsEmpty() bool    { return id == "" }
func (id AgencyId) Less(o AgencyId) bool { return id < o }

// StopId identifies a stop, station, entrance, generic node, or boarding area (stops.stop_id).
type StopId string

func (id StopId) String() string { return string(id) }
func (id StopId) IsEmpty() bool  { return id == "" }
func (id StopId) Less(o StopId) bool { return id < o }

// RouteId identifies a route (routes.route_id).
type RouteId string

func (id RouteId) String() string    { return string(id) }
func (id RouteId) IsEmpty() bool     { return id == "" }
func (id RouteId) Less(o RouteId) bool { return id < o }

// TripId identifies a trip (trips.trip_id).
type TripId string

func (id TripId) String() string  { return string(id) }
func (id TripId) IsEmpty() bool   { return id == "" }
func (id TripId) Less(o TripId) bool { return id < o }

// ShapeId identifies a shape polyline (shapes.shape_id).
type ShapeId string

func (id ShapeId) String() string   { return string(id) }
func (id ShapeId) IsEmpty() bool    { return id == "" }
func (id ShapeId) Less(o ShapeId) bool { return id < o }

// ServiceId identifies a service pattern shared by calendar.txt and calendar_dates.txt.
type ServiceId string

func (id ServiceId) String() string    { return string(id) }
func (id ServiceId) IsEmpty() bool     { return id == "" }
func (id ServiceId) Less(o ServiceId) bool { return id < o }

// FareId identifies a legacy fare_attributes.txt fare.
type FareId string

func (id FareId) String() string  { return string(id) }
func (id FareId) IsEmpty() bool   { return id == "" }
func (id FareId) Less(o FareId) bool { return id < o }

// FareMediaId identifies a fare medium (fare_media.txt).
type FareMediaId string

func (id FareMediaId) String() string     { return string(id) }
func (id FareMediaId) IsEmpty() bool      { return id == "" }
func (id FareMediaId) Less(o FareMediaId) bool { return id < o }

// FareProductId identifies a fare product (fare_products.txt).
type FareProductId string

func (id FareProductId) String() string       { return string(id) }
func (id FareProductId) IsEmpty() bool        { return id == "" }
func (id FareProductId) Less(o FareProductId) bool { return id < o }

// AreaId identifies an area grouping of locations (areas.txt).
type AreaId string

func (id AreaId) String() string  { return string(id) }
func (id AreaId) IsEmpty() bool   { return id == "" }
func (id AreaId) Less(o AreaId) bool { return id < o }

// NetworkId identifies a network grouping of routes (networks.txt).
type NetworkId string

func (id NetworkId) String() string     { return string(id) }
func (id NetworkId) IsEmpty() bool      { return id == "" }
func (id NetworkId) Less(o NetworkId) bool { return id < o }

// PathwayId identifies a pathway edge (pathways.txt).
type PathwayId string

func (id PathwayId) String() string     { return string(id) }
func (id PathwayId) IsEmpty() bool      { return id == "" }
func (id PathwayId) Less(o PathwayId) bool { return id < o }

// LevelId identifies a station level (levels.txt).
type LevelId string

func (id LevelId) String() string   { return string(id) }
func (id LevelId) IsEmpty() bool    { return id == "" }
func (id LevelId) Less(o LevelId) bool { return id < o }

// LocationGroupId identifies a location group (location_groups.txt).
type LocationGroupId string

func (id LocationGroupId) String() string          { return string(id) }
func (id LocationGroupId) IsEmpty() bool           { return id == "" }
func (id LocationGroupId) Less(o LocationGroupId) bool { return id < o }

// AttributionId identifies an attribution record (attributions.txt).
type AttributionId string

func (id AttributionId) String() string       { return string(id) }
func (id AttributionId) IsEmpty() bool        { return id == "" }
func (id AttributionId) Less(o AttributionId) bool { return id < o }

// BookingRuleId identifies a booking rule (booking_rules.txt).
type BookingRuleId string

func (id BookingRuleId) String() string       { return string(id) }
func (id BookingRuleId) IsEmpty() bool        { return id == "" }
func (id BookingRuleId) Less(o BookingRuleId) bool { return id < o }

// FareLegRuleId identifies the leg_group_id column of fare_leg_rules.txt,
// which fare_transfer_rules.txt references but which is not itself a
// primary key of any mapping-keyed table.
type FareLegRuleId string

func (id FareLegRuleId) String() string        { return string(id) }
func (id FareLegRuleId) IsEmpty() bool         { return id == "" }
func (id FareLegRuleId) Less(o FareLegRuleId) bool { return id < o }

// TimeframeGroupId identifies a named set of time windows (timeframes.timeframe_group_id).
type TimeframeGroupId string

func (id TimeframeGroupId) String() string           { return string(id) }
func (id TimeframeGroupId) IsEmpty() bool            { return id == "" }
func (id TimeframeGroupId) Less(o TimeframeGroupId) bool { return id < o }
