package validator

import (
	"strconv"

	"github.com/transitdata/gtfs-dataset/gtfserr"
	"github.com/transitdata/gtfs-dataset/schema"
)

// These builders translate a schema record into the opaque RecordSnapshot
// the gtfserr diagnostics carry, so the validator never needs to format a
// record by hand at each call site.

func agencySnap(a schema.Agency) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "agency", Fields: map[string]string{
		"agency_id": a.AgencyID.String(), "agency_name": a.AgencyName,
	}}
}

func stopSnap(s schema.Stop) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "stops", Fields: map[string]string{
		"stop_id": s.StopID.String(), "parent_station": s.ParentStation.String(),
	}}
}

func routeSnap(r schema.Route) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "routes", Fields: map[string]string{
		"route_id": r.RouteID.String(), "agency_id": r.AgencyID.String(), "network_id": r.NetworkID.String(),
	}}
}

func tripSnap(t schema.Trip) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "trips", Fields: map[string]string{
		"trip_id": t.TripID.String(), "route_id": t.RouteID.String(), "service_id": t.ServiceID.String(),
	}}
}

func stopTimeSnap(st schema.StopTime) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "stop_times", Fields: map[string]string{
		"trip_id": st.TripID.String(), "stop_id": st.StopID.String(), "stop_sequence": strconv.Itoa(st.StopSequence),
	}}
}

func fareAttrSnap(f schema.FareAttribute) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "fare_attributes", Fields: map[string]string{
		"fare_id": f.FareID.String(), "agency_id": f.AgencyID.String(),
	}}
}

func fareRuleSnap(f schema.FareRule) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "fare_rules", Fields: map[string]string{
		"fare_id": f.FareID.String(), "route_id": f.RouteID.String(),
	}}
}

func timeframeSnap(t schema.Timeframe) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "timeframes", Fields: map[string]string{
		"timeframe_group_id": t.TimeframeGroupID.String(), "service_id": t.ServiceID.String(),
	}}
}

func fareProductSnap(f schema.FareProduct) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "fare_products", Fields: map[string]string{
		"fare_product_id": f.FareProductID.String(), "fare_media_id": f.FareMediaID.String(),
	}}
}

func fareLegRuleSnap(f schema.FareLegRule) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "fare_leg_rules", Fields: map[string]string{
		"leg_group_id": f.LegGroupID.String(), "fare_product_id": f.FareProductID.String(),
	}}
}

func fareTransferSnap(f schema.FareTransferRule) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "fare_transfers", Fields: map[string]string{
		"from_leg_group_id": f.FromLegGroupID.String(), "to_leg_group_id": f.ToLegGroupID.String(),
	}}
}

func stopAreaSnap(s schema.StopArea) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "stops_areas", Fields: map[string]string{
		"area_id": s.AreaID.String(), "stop_id": s.StopID.String(),
	}}
}

func routeNetworkSnap(r schema.RouteNetwork) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "routes_networks", Fields: map[string]string{
		"network_id": r.NetworkID.String(), "route_id": r.RouteID.String(),
	}}
}

func shapeSnap(s schema.Shape) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "shapes", Fields: map[string]string{
		"shape_id": s.ShapeID.String(), "shape_pt_sequence": strconv.Itoa(s.ShapePtSequence),
	}}
}

func frequencySnap(f schema.Frequency) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "frequencies", Fields: map[string]string{
		"trip_id": f.TripID.String(), "start_time": f.StartTime.String(),
	}}
}

func transferSnap(t schema.Transfer) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "transfers", Fields: map[string]string{
		"from_stop_id": t.FromStopID.String(), "to_stop_id": t.ToStopID.String(),
		"from_trip_id": t.FromTripID.String(), "to_trip_id": t.ToTripID.String(),
	}}
}

func pathwaySnap(p schema.Pathway) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "pathways", Fields: map[string]string{
		"pathway_id": p.PathwayID.String(), "from_stop_id": p.FromStopID.String(), "to_stop_id": p.ToStopID.String(),
	}}
}

func locationGroupStopSnap(l schema.LocationGroupStop) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "location_groups_stops", Fields: map[string]string{
		"location_group_id": l.LocationGroupID.String(), "stop_id": l.StopID.String(),
	}}
}

func bookingRuleSnap(b schema.BookingRule) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "booking_rules", Fields: map[string]string{
		"booking_rule_id": b.BookingRuleID.String(),
	}}
}

func translationSnap(t schema.Translation) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "translations", Fields: map[string]string{
		"table_name": string(t.TableName), "field_name": t.FieldName, "language": t.Language,
	}}
}

func feedInfoSnap(f schema.FeedInfo) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "feed_info", Fields: map[string]string{
		"feed_publisher_name": f.FeedPublisherName, "feed_lang": f.FeedLang,
	}}
}

func attributionSnap(a schema.Attribution) gtfserr.RecordSnapshot {
	return gtfserr.RecordSnapshot{Table: "attributions", Fields: map[string]string{
		"attribution_id": a.AttributionID.String(), "organization_name": a.OrganizationName,
	}}
}
