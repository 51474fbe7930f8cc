package validator

import (
	"errors"
	"os"
	"sort"
	"strconv"

	"github.com/transitdata/gtfs-dataset/dataset"
	"github.com/transitdata/gtfs-dataset/gtfserr"
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/schema"
	"github.com/transitdata/gtfs-dataset/types"
)

// stationLocationType is stops.txt's location_type value for a station, the
// only kind of stop a parent_station chain may terminate at.
const stationLocationType = types.LocationStation

// dayStart and dayEnd bound a timeframe whose start_time/end_time are both
// absent, per timeframes.txt's documented default window.
var (
	dayStart = mustServiceTime(0)
	dayEnd   = mustServiceTime(24 * 3600)
)

func mustServiceTime(seconds int) types.ServiceTime {
	t, err := types.NewServiceTime(seconds)
	if err != nil {
		panic(err)
	}
	return t
}

var errNotAnInteger = errors.New("not an integer")

const multilingualSentinel = "mul"

func itoaInt(v int) string { return strconv.Itoa(v) }

func floatStr(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// ValidateDataset runs the 18 ordered cross-table checks against an
// already row-validated dataset, stopping at the first failing step.
// Checks that only make sense once earlier tables are known to be
// internally consistent are ordered after those tables' own checks.
func ValidateDataset(ds *dataset.Dataset) error {
	checks := []func(*dataset.Dataset) error{
		checkAgencies,
		checkStopsHierarchy,
		checkRoutes,
		checkTrips,
		checkStopTimes,
		checkCalendarCoverage,
		checkFareGraph,
		checkStopAreasAndRouteNetworks,
		checkShapes,
		checkFrequencies,
		checkTransfers,
		checkPathways,
		checkLocationGroupDisjointness,
		checkLocationGroupStops,
		checkBookingRules,
		checkTranslations,
		checkFeedInfoCrossLanguage,
		checkAttributions,
	}
	for _, check := range checks {
		if err := check(ds); err != nil {
			return err
		}
	}
	return nil
}

// Step 1: if more than one agency is defined, each must carry an
// agency_id, every agency_id must be unique, and every agency must share
// the same agency_timezone.
func checkAgencies(ds *dataset.Dataset) error {
	if len(ds.Agencies) <= 1 {
		return nil
	}
	seen := make(map[ids.AgencyId]schema.Agency, len(ds.Agencies))
	first := ds.Agencies[0]
	for _, a := range ds.Agencies {
		if a.AgencyID.IsEmpty() {
			return gtfserr.NewDatasetMissingValue("agency_id", "required when more than one agency is defined", agencySnap(a))
		}
		if prior, dup := seen[a.AgencyID]; dup {
			return gtfserr.NewPrimaryKeyNotUnique("agency_id", a.AgencyID.String(), agencySnap(prior), agencySnap(a))
		}
		seen[a.AgencyID] = a
		if a.AgencyTimezone != first.AgencyTimezone {
			return gtfserr.NewInconsistentValue("agency_timezone", a.AgencyTimezone, "every agency must share the same agency_timezone", agencySnap(first), agencySnap(a))
		}
	}
	return nil
}

// Step 2: every stop's level_id, when set, must resolve, and walking
// parent_station upward from any stop must reach a station in finitely many
// steps without revisiting a stop.
func checkStopsHierarchy(ds *dataset.Dataset) error {
	for _, s := range ds.Stops {
		if !s.LevelID.IsEmpty() {
			if _, ok := ds.Levels[s.LevelID]; !ok {
				return gtfserr.NewForeignKeyNotFound("level_id", s.LevelID.String(), "levels.level_id", stopSnap(s))
			}
		}
		if s.ParentStation.IsEmpty() {
			continue
		}
		if err := walkStopHierarchy(ds, s); err != nil {
			return err
		}
	}
	return nil
}

func walkStopHierarchy(ds *dataset.Dataset, start schema.Stop) error {
	visited := map[ids.StopId]bool{start.StopID: true}
	cur := start
	for {
		if cur.ParentStation.IsEmpty() {
			if cur.LocationType == stationLocationType {
				return nil
			}
			return gtfserr.NewInconsistentValue("location_type", itoaInt(int(cur.LocationType)), "parent_station chain must terminate at a station", stopSnap(start), stopSnap(cur))
		}
		parent, ok := ds.Stops[cur.ParentStation]
		if !ok {
			return gtfserr.NewForeignKeyNotFound("parent_station", cur.ParentStation.String(), "stops.stop_id", stopSnap(cur))
		}
		if visited[parent.StopID] {
			return gtfserr.NewInconsistentValue("parent_station", parent.StopID.String(), "parent_station chain forms a cycle", stopSnap(start))
		}
		visited[parent.StopID] = true
		cur = parent
	}
}

// Step 3: when multiple agencies are defined, a route's agency_id, when
// present, must match a known agency; a route with continuous pickup or
// drop-off may not have any trip whose stop-times define a
// pickup-drop-off window; network_id is forbidden on every route row once
// routes_networks.txt defines any assignment at all.
func checkRoutes(ds *dataset.Dataset) error {
	stopTimesByTrip := groupStopTimesByTrip(ds)
	tripsByRoute := groupTripsByRoute(ds)

	for _, r := range ds.Routes {
		if len(ds.Agencies) > 1 && !r.AgencyID.IsEmpty() {
			if _, ok := findAgency(ds, r.AgencyID); !ok {
				return gtfserr.NewForeignKeyNotFound("agency_id", r.AgencyID.String(), "agency.agency_id", routeSnap(r))
			}
		}
		if len(ds.RoutesNetworks) > 0 && !r.NetworkID.IsEmpty() {
			return gtfserr.NewInvalidCombination([]string{"network_id"}, "forbidden on every route row once routes_networks.txt defines any assignment", routeSnap(r))
		}
		if r.ContinuousPickup == nil && r.ContinuousDropOff == nil {
			continue
		}
		for _, trip := range tripsByRoute[r.RouteID] {
			for _, st := range stopTimesByTrip[trip.TripID] {
				if st.StartPickupDropOffWindow != nil || st.EndPickupDropOffWindow != nil {
					return gtfserr.NewInvalidCombination([]string{"continuous_pickup", "continuous_drop_off", "start_pickup_drop_off_window"}, "a route with continuous pickup or drop-off may not have a trip with a pickup-drop-off window", routeSnap(r), stopTimeSnap(st))
				}
			}
		}
	}
	return nil
}

func findAgency(ds *dataset.Dataset, id ids.AgencyId) (schema.Agency, bool) {
	for _, a := range ds.Agencies {
		if a.AgencyID == id {
			return a, true
		}
	}
	return schema.Agency{}, false
}

func groupStopTimesByTrip(ds *dataset.Dataset) map[ids.TripId][]schema.StopTime {
	byTrip := make(map[ids.TripId][]schema.StopTime)
	for _, st := range ds.StopTimes {
		byTrip[st.TripID] = append(byTrip[st.TripID], st)
	}
	return byTrip
}

func groupTripsByRoute(ds *dataset.Dataset) map[ids.RouteId][]schema.Trip {
	byRoute := make(map[ids.RouteId][]schema.Trip)
	for _, t := range ds.Trips {
		byRoute[t.RouteID] = append(byRoute[t.RouteID], t)
	}
	return byRoute
}

// Step 4: a trip's route_id and service_id must resolve, its shape_id, when
// set, must resolve, and a trip may omit shape_id only when the dataset
// contains no route with continuous pickup/drop-off and no stop-time with a
// pickup-drop-off window.
func checkTrips(ds *dataset.Dataset) error {
	needsShape := anyContinuousRoute(ds) || anyWindowedStopTime(ds)
	for _, t := range ds.Trips {
		if _, ok := ds.Routes[t.RouteID]; !ok {
			return gtfserr.NewForeignKeyNotFound("route_id", t.RouteID.String(), "routes.route_id", tripSnap(t))
		}
		if !serviceIDExists(ds, t.ServiceID) {
			return gtfserr.NewForeignKeyNotFound("service_id", t.ServiceID.String(), "calendar.service_id or calendar_dates.service_id", tripSnap(t))
		}
		if t.ShapeID.IsEmpty() {
			if needsShape {
				return gtfserr.NewDatasetMissingValue("shape_id", "required because the dataset has a continuous route or a stop-time pickup-drop-off window", tripSnap(t))
			}
			continue
		}
		if !shapeExists(ds, t.ShapeID) {
			return gtfserr.NewForeignKeyNotFound("shape_id", t.ShapeID.String(), "shapes.shape_id", tripSnap(t))
		}
	}
	return nil
}

func anyContinuousRoute(ds *dataset.Dataset) bool {
	for _, r := range ds.Routes {
		if r.ContinuousPickup != nil || r.ContinuousDropOff != nil {
			return true
		}
	}
	return false
}

func anyWindowedStopTime(ds *dataset.Dataset) bool {
	for _, st := range ds.StopTimes {
		if st.StartPickupDropOffWindow != nil || st.EndPickupDropOffWindow != nil {
			return true
		}
	}
	return false
}

func serviceIDExists(ds *dataset.Dataset, id ids.ServiceId) bool {
	if _, ok := ds.Calendar[id]; ok {
		return true
	}
	for key := range ds.CalendarDates {
		if key.ServiceID == id {
			return true
		}
	}
	return false
}

func shapeExists(ds *dataset.Dataset, id ids.ShapeId) bool {
	for key := range ds.Shapes {
		if key.ShapeID == id {
			return true
		}
	}
	return false
}

// Step 5: stop_times.txt's trip_id, stop_id, and booking-rule references
// must resolve; within each trip, sorting by arrival_time, stop_sequence
// must be strictly increasing and any present shape_dist_traveled values
// must be strictly increasing. Rows with an absent arrival_time collate
// after rows with one present, breaking ties (and ties between equal
// arrival times) by stop_sequence, since the source document leaves the
// tiebreak unspecified.
func checkStopTimes(ds *dataset.Dataset) error {
	byTrip := make(map[ids.TripId][]schema.StopTime)
	for _, st := range ds.StopTimes {
		if _, ok := ds.Trips[st.TripID]; !ok {
			return gtfserr.NewForeignKeyNotFound("trip_id", st.TripID.String(), "trips.trip_id", stopTimeSnap(st))
		}
		if !st.StopID.IsEmpty() {
			if _, ok := ds.Stops[st.StopID]; !ok {
				return gtfserr.NewForeignKeyNotFound("stop_id", st.StopID.String(), "stops.stop_id", stopTimeSnap(st))
			}
		}
		if !st.PickupBookingRuleID.IsEmpty() {
			if _, ok := ds.BookingRules[st.PickupBookingRuleID]; !ok {
				return gtfserr.NewForeignKeyNotFound("pickup_booking_rule_id", st.PickupBookingRuleID.String(), "booking_rules.booking_rule_id", stopTimeSnap(st))
			}
		}
		if !st.DropOffBookingRuleID.IsEmpty() {
			if _, ok := ds.BookingRules[st.DropOffBookingRuleID]; !ok {
				return gtfserr.NewForeignKeyNotFound("drop_off_booking_rule_id", st.DropOffBookingRuleID.String(), "booking_rules.booking_rule_id", stopTimeSnap(st))
			}
		}
		byTrip[st.TripID] = append(byTrip[st.TripID], st)
	}

	for _, trip := range sortedTripIDs(byTrip) {
		rows := byTrip[trip]
		sort.SliceStable(rows, func(i, j int) bool {
			ti, iHas := arrivalSeconds(rows[i])
			tj, jHas := arrivalSeconds(rows[j])
			if iHas != jHas {
				return iHas
			}
			if iHas && ti != tj {
				return ti < tj
			}
			return rows[i].StopSequence < rows[j].StopSequence
		})

		haveSeq := false
		lastSeq := 0
		var lastDist *float64
		var lastRow schema.StopTime
		for _, st := range rows {
			if haveSeq && st.StopSequence <= lastSeq {
				return gtfserr.NewInconsistentValue("stop_sequence", itoaInt(st.StopSequence), "stop_sequence must be strictly increasing in arrival-time order", stopTimeSnap(lastRow), stopTimeSnap(st))
			}
			lastSeq, haveSeq = st.StopSequence, true

			if st.ShapeDistTraveled != nil {
				if lastDist != nil && *st.ShapeDistTraveled <= *lastDist {
					return gtfserr.NewInconsistentValue("shape_dist_traveled", floatStr(*st.ShapeDistTraveled), "shape_dist_traveled must be strictly increasing in arrival-time order", stopTimeSnap(lastRow), stopTimeSnap(st))
				}
				lastDist = st.ShapeDistTraveled
			}
			lastRow = st
		}
	}
	return nil
}

func arrivalSeconds(st schema.StopTime) (int, bool) {
	if st.ArrivalTime == nil {
		return 0, false
	}
	return st.ArrivalTime.ToSeconds(), true
}

func sortedTripIDs(byTrip map[ids.TripId][]schema.StopTime) []ids.TripId {
	out := make([]ids.TripId, 0, len(byTrip))
	for id := range byTrip {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Step 6: calendar and calendar_dates may not both be empty (modulo the
// test-only escape valve), and if calendar is empty every trip's
// service_id must appear in calendar_dates.
func checkCalendarCoverage(ds *dataset.Dataset) error {
	if len(ds.Calendar) == 0 && len(ds.CalendarDates) == 0 && !ignoreMissingCalendarDates() {
		return gtfserr.NewDatasetMissingValue("calendar, calendar_dates", "at least one of calendar.txt or calendar_dates.txt must define services")
	}
	if len(ds.Calendar) > 0 {
		return nil
	}
	for _, t := range ds.Trips {
		found := false
		for key := range ds.CalendarDates {
			if key.ServiceID == t.ServiceID {
				found = true
				break
			}
		}
		if !found {
			return gtfserr.NewForeignKeyNotFound("service_id", t.ServiceID.String(), "calendar_dates.service_id", tripSnap(t))
		}
	}
	return nil
}

func ignoreMissingCalendarDates() bool {
	return os.Getenv("__TEST__IGNORE_MISSING_CALENDAR_DATES") != ""
}

// Step 7: the fare graph. fare_rules' fare_id, optional route_id, and
// optional origin_id/destination_id/contains_id (matched against stops'
// zone_id values) must resolve; timeframes' service_id must resolve and no
// two timeframes sharing a (timeframe_group_id, service_id) pair may
// overlap; fare_products' optional fare_media_id must resolve; fare_leg_rules'
// network_id, area, timeframe-group, and fare_product references must
// resolve; fare_transfer_rules' leg-group and optional fare_product
// references must resolve.
func checkFareGraph(ds *dataset.Dataset) error {
	zoneIDs := collectZoneIDs(ds)
	multipleAgencies := len(ds.Agencies) > 1
	for _, fa := range ds.FareAttributes {
		if fa.AgencyID.IsEmpty() {
			if multipleAgencies {
				return gtfserr.NewDatasetMissingValue("agency_id", "required when more than one agency is defined", fareAttrSnap(fa))
			}
			continue
		}
		if _, ok := findAgency(ds, fa.AgencyID); !ok {
			return gtfserr.NewForeignKeyNotFound("agency_id", fa.AgencyID.String(), "agency.agency_id", fareAttrSnap(fa))
		}
	}
	for _, fr := range ds.FareRules {
		if !fareIDExists(ds, fr.FareID) {
			return gtfserr.NewForeignKeyNotFound("fare_id", fr.FareID.String(), "fare_attributes.fare_id", fareRuleSnap(fr))
		}
		if !fr.RouteID.IsEmpty() {
			if _, ok := ds.Routes[fr.RouteID]; !ok {
				return gtfserr.NewForeignKeyNotFound("route_id", fr.RouteID.String(), "routes.route_id", fareRuleSnap(fr))
			}
		}
		if fr.OriginID != "" && !zoneIDs[fr.OriginID] {
			return gtfserr.NewForeignKeyNotFound("origin_id", fr.OriginID, "stops.zone_id", fareRuleSnap(fr))
		}
		if fr.DestinationID != "" && !zoneIDs[fr.DestinationID] {
			return gtfserr.NewForeignKeyNotFound("destination_id", fr.DestinationID, "stops.zone_id", fareRuleSnap(fr))
		}
		if fr.ContainsID != "" && !zoneIDs[fr.ContainsID] {
			return gtfserr.NewForeignKeyNotFound("contains_id", fr.ContainsID, "stops.zone_id", fareRuleSnap(fr))
		}
	}

	for _, tf := range ds.Timeframes {
		if !serviceIDExists(ds, tf.ServiceID) {
			return gtfserr.NewForeignKeyNotFound("service_id", tf.ServiceID.String(), "calendar.service_id or calendar_dates.service_id", timeframeSnap(tf))
		}
	}
	if err := checkTimeframeOverlaps(ds); err != nil {
		return err
	}

	for _, fp := range ds.FareProducts {
		if !fp.FareMediaID.IsEmpty() {
			if _, ok := ds.FareMedia[fp.FareMediaID]; !ok {
				return gtfserr.NewForeignKeyNotFound("fare_media_id", fp.FareMediaID.String(), "fare_media.fare_media_id", fareProductSnap(fp))
			}
		}
	}

	for _, flr := range ds.FareLegRules {
		if !flr.NetworkID.IsEmpty() && !networkIDExists(ds, flr.NetworkID) {
			return gtfserr.NewForeignKeyNotFound("network_id", flr.NetworkID.String(), "networks.network_id", fareLegRuleSnap(flr))
		}
		if !flr.FromAreaID.IsEmpty() {
			if _, ok := ds.Areas[flr.FromAreaID]; !ok {
				return gtfserr.NewForeignKeyNotFound("from_area_id", flr.FromAreaID.String(), "areas.area_id", fareLegRuleSnap(flr))
			}
		}
		if !flr.ToAreaID.IsEmpty() {
			if _, ok := ds.Areas[flr.ToAreaID]; !ok {
				return gtfserr.NewForeignKeyNotFound("to_area_id", flr.ToAreaID.String(), "areas.area_id", fareLegRuleSnap(flr))
			}
		}
		if !flr.FromTimeframeGroupID.IsEmpty() && !timeframeGroupExists(ds, flr.FromTimeframeGroupID) {
			return gtfserr.NewForeignKeyNotFound("from_timeframe_group_id", flr.FromTimeframeGroupID.String(), "timeframes.timeframe_group_id", fareLegRuleSnap(flr))
		}
		if !flr.ToTimeframeGroupID.IsEmpty() && !timeframeGroupExists(ds, flr.ToTimeframeGroupID) {
			return gtfserr.NewForeignKeyNotFound("to_timeframe_group_id", flr.ToTimeframeGroupID.String(), "timeframes.timeframe_group_id", fareLegRuleSnap(flr))
		}
		if !flr.FareProductID.IsEmpty() && !fareProductExists(ds, flr.FareProductID) {
			return gtfserr.NewForeignKeyNotFound("fare_product_id", flr.FareProductID.String(), "fare_products.fare_product_id", fareLegRuleSnap(flr))
		}
	}

	for _, ftr := range ds.FareTransfers {
		if !legGroupExists(ds, ftr.FromLegGroupID) {
			return gtfserr.NewForeignKeyNotFound("from_leg_group_id", ftr.FromLegGroupID.String(), "fare_leg_rules.leg_group_id", fareTransferSnap(ftr))
		}
		if !legGroupExists(ds, ftr.ToLegGroupID) {
			return gtfserr.NewForeignKeyNotFound("to_leg_group_id", ftr.ToLegGroupID.String(), "fare_leg_rules.leg_group_id", fareTransferSnap(ftr))
		}
		if !ftr.FareProductID.IsEmpty() && !fareProductExists(ds, ftr.FareProductID) {
			return gtfserr.NewForeignKeyNotFound("fare_product_id", ftr.FareProductID.String(), "fare_products.fare_product_id", fareTransferSnap(ftr))
		}
	}

	return nil
}

func collectZoneIDs(ds *dataset.Dataset) map[string]bool {
	zones := make(map[string]bool)
	for _, s := range ds.Stops {
		if s.ZoneID != "" {
			zones[s.ZoneID] = true
		}
	}
	return zones
}

func fareIDExists(ds *dataset.Dataset, id ids.FareId) bool {
	_, ok := ds.FareAttributes[id]
	return ok
}

func fareProductExists(ds *dataset.Dataset, id ids.FareProductId) bool {
	for key := range ds.FareProducts {
		if key.FareProductID == id {
			return true
		}
	}
	return false
}

func timeframeGroupExists(ds *dataset.Dataset, id ids.TimeframeGroupId) bool {
	for _, tf := range ds.Timeframes {
		if tf.TimeframeGroupID == id {
			return true
		}
	}
	return false
}

func legGroupExists(ds *dataset.Dataset, id ids.FareLegRuleId) bool {
	for _, flr := range ds.FareLegRules {
		if flr.LegGroupID == id {
			return true
		}
	}
	return false
}

// networkIDExists matches a network_id against networks.txt, against
// routes_networks.txt assignments, and against routes.txt's own network_id
// column, since a feed may define a network purely through one of these
// without ever listing it in networks.txt.
func networkIDExists(ds *dataset.Dataset, id ids.NetworkId) bool {
	if _, ok := ds.Networks[id]; ok {
		return true
	}
	for _, rn := range ds.RoutesNetworks {
		if rn.NetworkID == id {
			return true
		}
	}
	for _, r := range ds.Routes {
		if r.NetworkID == id {
			return true
		}
	}
	return false
}

// checkTimeframeOverlaps rejects two timeframes sharing a
// (timeframe_group_id, service_id) pair whose [start_time, end_time)
// windows overlap; a timeframe with neither bound set spans the full day
// and conflicts with any other timeframe in its group.
func checkTimeframeOverlaps(ds *dataset.Dataset) error {
	type groupKey struct {
		group   ids.TimeframeGroupId
		service ids.ServiceId
	}
	byGroup := make(map[groupKey][]schema.Timeframe)
	for _, tf := range ds.Timeframes {
		k := groupKey{tf.TimeframeGroupID, tf.ServiceID}
		byGroup[k] = append(byGroup[k], tf)
	}
	for _, group := range byGroup {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				aStart, aEnd := timeframeBounds(group[i])
				bStart, bEnd := timeframeBounds(group[j])
				if aStart.Before(bEnd) && bStart.Before(aEnd) {
					return gtfserr.NewOverlappingIntervals("two timeframes in the same timeframe_group_id and service_id overlap", timeframeSnap(group[i]), timeframeSnap(group[j]))
				}
			}
		}
	}
	return nil
}

func timeframeBounds(t schema.Timeframe) (types.ServiceTime, types.ServiceTime) {
	start := dayStart
	end := dayEnd
	if t.StartTime != nil {
		start = *t.StartTime
	}
	if t.EndTime != nil {
		end = *t.EndTime
	}
	return start, end
}

// Step 8: stops_areas.txt and routes_networks.txt references must resolve.
func checkStopAreasAndRouteNetworks(ds *dataset.Dataset) error {
	for _, sa := range ds.StopsAreas {
		if _, ok := ds.Areas[sa.AreaID]; !ok {
			return gtfserr.NewForeignKeyNotFound("area_id", sa.AreaID.String(), "areas.area_id", stopAreaSnap(sa))
		}
		if _, ok := ds.Stops[sa.StopID]; !ok {
			return gtfserr.NewForeignKeyNotFound("stop_id", sa.StopID.String(), "stops.stop_id", stopAreaSnap(sa))
		}
	}
	for _, rn := range ds.RoutesNetworks {
		if _, ok := ds.Networks[rn.NetworkID]; !ok {
			return gtfserr.NewForeignKeyNotFound("network_id", rn.NetworkID.String(), "networks.network_id", routeNetworkSnap(rn))
		}
		if _, ok := ds.Routes[rn.RouteID]; !ok {
			return gtfserr.NewForeignKeyNotFound("route_id", rn.RouteID.String(), "routes.route_id", routeNetworkSnap(rn))
		}
	}
	return nil
}

// Step 9: for each shape, sorting by shape_pt_sequence, present
// shape_dist_traveled values must be strictly increasing.
func checkShapes(ds *dataset.Dataset) error {
	byShape := make(map[ids.ShapeId][]schema.Shape)
	for _, pt := range ds.Shapes {
		byShape[pt.ShapeID] = append(byShape[pt.ShapeID], pt)
	}
	for _, shapeID := range sortedShapeIDs(byShape) {
		points := byShape[shapeID]
		sort.Slice(points, func(i, j int) bool { return points[i].ShapePtSequence < points[j].ShapePtSequence })
		var lastDist *float64
		var lastPt schema.Shape
		for _, pt := range points {
			if pt.ShapeDistTraveled == nil {
				continue
			}
			if lastDist != nil && *pt.ShapeDistTraveled <= *lastDist {
				return gtfserr.NewInconsistentValue("shape_dist_traveled", floatStr(*pt.ShapeDistTraveled), "must be strictly increasing along a shape's point sequence", shapeSnap(lastPt), shapeSnap(pt))
			}
			lastDist = pt.ShapeDistTraveled
			lastPt = pt
		}
	}
	return nil
}

func sortedShapeIDs(byShape map[ids.ShapeId][]schema.Shape) []ids.ShapeId {
	out := make([]ids.ShapeId, 0, len(byShape))
	for id := range byShape {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Step 10: frequencies.txt's trip_id must resolve, and no two frequency
// windows for the same trip may overlap.
func checkFrequencies(ds *dataset.Dataset) error {
	byTrip := make(map[ids.TripId][]schema.Frequency)
	for _, f := range ds.Frequencies {
		if _, ok := ds.Trips[f.TripID]; !ok {
			return gtfserr.NewForeignKeyNotFound("trip_id", f.TripID.String(), "trips.trip_id", frequencySnap(f))
		}
		byTrip[f.TripID] = append(byTrip[f.TripID], f)
	}
	for _, windows := range byTrip {
		for i := 0; i < len(windows); i++ {
			for j := i + 1; j < len(windows); j++ {
				a, b := windows[i], windows[j]
				if a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime) {
					return gtfserr.NewOverlappingIntervals("two frequencies windows for the same trip overlap", frequencySnap(a), frequencySnap(b))
				}
			}
		}
	}
	return nil
}

// Step 11: transfers.txt's optional stop, route, and trip endpoints must
// resolve.
func checkTransfers(ds *dataset.Dataset) error {
	for _, t := range ds.Transfers {
		if !t.FromStopID.IsEmpty() {
			if _, ok := ds.Stops[t.FromStopID]; !ok {
				return gtfserr.NewForeignKeyNotFound("from_stop_id", t.FromStopID.String(), "stops.stop_id", transferSnap(t))
			}
		}
		if !t.ToStopID.IsEmpty() {
			if _, ok := ds.Stops[t.ToStopID]; !ok {
				return gtfserr.NewForeignKeyNotFound("to_stop_id", t.ToStopID.String(), "stops.stop_id", transferSnap(t))
			}
		}
		if !t.FromTripID.IsEmpty() {
			if _, ok := ds.Trips[t.FromTripID]; !ok {
				return gtfserr.NewForeignKeyNotFound("from_trip_id", t.FromTripID.String(), "trips.trip_id", transferSnap(t))
			}
		}
		if !t.ToTripID.IsEmpty() {
			if _, ok := ds.Trips[t.ToTripID]; !ok {
				return gtfserr.NewForeignKeyNotFound("to_trip_id", t.ToTripID.String(), "trips.trip_id", transferSnap(t))
			}
		}
		if !t.FromRouteID.IsEmpty() {
			if _, ok := ds.Routes[t.FromRouteID]; !ok {
				return gtfserr.NewForeignKeyNotFound("from_route_id", t.FromRouteID.String(), "routes.route_id", transferSnap(t))
			}
		}
		if !t.ToRouteID.IsEmpty() {
			if _, ok := ds.Routes[t.ToRouteID]; !ok {
				return gtfserr.NewForeignKeyNotFound("to_route_id", t.ToRouteID.String(), "routes.route_id", transferSnap(t))
			}
		}
	}
	return nil
}

// Step 12: pathways.txt's endpoints must resolve and must not coincide. The
// exit-gate/bidirectional rule and the permitted location-type set are both
// already enforced: the former at row validation, the latter vacuously
// (every defined location_type is permitted).
func checkPathways(ds *dataset.Dataset) error {
	for _, p := range ds.Pathways {
		if _, ok := ds.Stops[p.FromStopID]; !ok {
			return gtfserr.NewForeignKeyNotFound("from_stop_id", p.FromStopID.String(), "stops.stop_id", pathwaySnap(p))
		}
		if _, ok := ds.Stops[p.ToStopID]; !ok {
			return gtfserr.NewForeignKeyNotFound("to_stop_id", p.ToStopID.String(), "stops.stop_id", pathwaySnap(p))
		}
		if p.FromStopID == p.ToStopID {
			return gtfserr.NewInvalidCombination([]string{"from_stop_id", "to_stop_id"}, "a pathway cannot connect a stop to itself", pathwaySnap(p))
		}
	}
	return nil
}

// Step 13: the union of stop_id and location_group_id values must be a set
// -- no location_group_id may collide with a stop_id. A GeoJSON locations
// companion file, which would add a third namespace to this union, is
// outside this dataset's scope.
func checkLocationGroupDisjointness(ds *dataset.Dataset) error {
	for _, lg := range ds.LocationGroups {
		if collidingStop, ok := ds.Stops[ids.StopId(lg.LocationGroupID.String())]; ok {
			return gtfserr.NewInconsistentValue("location_group_id", lg.LocationGroupID.String(), "location_group_id must not collide with a stop_id", stopSnap(collidingStop))
		}
	}
	return nil
}

// Step 14: location_groups_stops.txt's references must resolve.
func checkLocationGroupStops(ds *dataset.Dataset) error {
	for _, row := range ds.LocationGroupsStops {
		if _, ok := ds.LocationGroups[row.LocationGroupID]; !ok {
			return gtfserr.NewForeignKeyNotFound("location_group_id", row.LocationGroupID.String(), "location_groups.location_group_id", locationGroupStopSnap(row))
		}
		if _, ok := ds.Stops[row.StopID]; !ok {
			return gtfserr.NewForeignKeyNotFound("stop_id", row.StopID.String(), "stops.stop_id", locationGroupStopSnap(row))
		}
	}
	return nil
}

// Step 15: booking_rules.txt's prior_notice_service_id, where set, must
// resolve the same way a trip's service_id does.
func checkBookingRules(ds *dataset.Dataset) error {
	for _, b := range ds.BookingRules {
		if !b.PriorNoticeServiceID.IsEmpty() && !serviceIDExists(ds, b.PriorNoticeServiceID) {
			return gtfserr.NewForeignKeyNotFound("prior_notice_service_id", b.PriorNoticeServiceID.String(), "calendar.service_id or calendar_dates.service_id", bookingRuleSnap(b))
		}
	}
	return nil
}

// Step 16: translations.txt's table_name/record_id pairs must resolve to an
// actual record of that table, with record_sub_id interpreted per table
// (presence/absence of record_sub_id itself is a row-level rule).
func checkTranslations(ds *dataset.Dataset) error {
	for _, t := range ds.Translations {
		if t.RecordID == nil {
			continue
		}
		if err := checkTranslationRecordReference(ds, t); err != nil {
			return err
		}
	}
	return nil
}

func checkTranslationRecordReference(ds *dataset.Dataset, t schema.Translation) error {
	snap := translationSnap(t)
	recordID := *t.RecordID
	switch t.TableName {
	case schema.TranslatedAgency:
		if _, ok := findAgency(ds, ids.AgencyId(recordID)); !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "agency.agency_id", snap)
		}
	case schema.TranslatedStops:
		if _, ok := ds.Stops[ids.StopId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "stops.stop_id", snap)
		}
	case schema.TranslatedRoutes:
		if _, ok := ds.Routes[ids.RouteId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "routes.route_id", snap)
		}
	case schema.TranslatedTrips:
		if _, ok := ds.Trips[ids.TripId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "trips.trip_id", snap)
		}
	case schema.TranslatedStopTimes:
		if t.RecordSubID == nil {
			return nil
		}
		seq, err := atoiLenient(*t.RecordSubID)
		if err != nil {
			return gtfserr.NewInconsistentValue("record_sub_id", *t.RecordSubID, "must be an integer stop_sequence", snap)
		}
		key := dataset.StopTimeKey{TripID: ids.TripId(recordID), StopSequence: seq}
		if _, ok := ds.StopTimes[key]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id, record_sub_id", recordID+"/"+*t.RecordSubID, "stop_times.(trip_id, stop_sequence)", snap)
		}
	case schema.TranslatedCalendar:
		if _, ok := ds.Calendar[ids.ServiceId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "calendar.service_id", snap)
		}
	case schema.TranslatedCalendarDates:
		if t.RecordSubID == nil {
			return nil
		}
		key := dataset.CalendarDateKey{ServiceID: ids.ServiceId(recordID), Date: *t.RecordSubID}
		if _, ok := ds.CalendarDates[key]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id, record_sub_id", recordID+"/"+*t.RecordSubID, "calendar_dates.(service_id, date)", snap)
		}
	case schema.TranslatedFareAttributes:
		if _, ok := ds.FareAttributes[ids.FareId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "fare_attributes.fare_id", snap)
		}
	case schema.TranslatedFareRules:
		if !fareIDExists(ds, ids.FareId(recordID)) {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "fare_attributes.fare_id", snap)
		}
		if t.RecordSubID != nil {
			if _, ok := ds.Routes[ids.RouteId(*t.RecordSubID)]; !ok {
				return gtfserr.NewForeignKeyNotFound("record_sub_id", *t.RecordSubID, "routes.route_id", snap)
			}
		}
	case schema.TranslatedFrequencies:
		if t.RecordSubID == nil {
			return nil
		}
		key := dataset.FrequencyKey{TripID: ids.TripId(recordID), StartTime: *t.RecordSubID}
		if _, ok := ds.Frequencies[key]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id, record_sub_id", recordID+"/"+*t.RecordSubID, "frequencies.(trip_id, start_time)", snap)
		}
	case schema.TranslatedShapes:
		if !shapeExists(ds, ids.ShapeId(recordID)) {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "shapes.shape_id", snap)
		}
	case schema.TranslatedTransfers:
		if _, ok := ds.Stops[ids.StopId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "stops.stop_id", snap)
		}
		if t.RecordSubID != nil {
			if _, ok := ds.Stops[ids.StopId(*t.RecordSubID)]; !ok {
				return gtfserr.NewForeignKeyNotFound("record_sub_id", *t.RecordSubID, "stops.stop_id", snap)
			}
		}
	case schema.TranslatedPathways:
		if _, ok := ds.Pathways[ids.PathwayId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "pathways.pathway_id", snap)
		}
	case schema.TranslatedLevels:
		if _, ok := ds.Levels[ids.LevelId(recordID)]; !ok {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "levels.level_id", snap)
		}
	case schema.TranslatedAttributions:
		found := false
		for _, a := range ds.Attributions {
			if a.AttributionID.String() == recordID {
				found = true
				break
			}
		}
		if !found {
			return gtfserr.NewForeignKeyNotFound("record_id", recordID, "attributions.attribution_id", snap)
		}
	}
	return nil
}

func atoiLenient(s string) (int, error) {
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0, errNotAnInteger
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// Step 17: translations.txt may only be non-empty when feed_info.txt is
// present. If feed_lang is the multilingual sentinel, every language
// present in translations must translate the same set of (record_id,
// record_sub_id) pairs. Otherwise, if translations name more than one
// language and none of them matches feed_lang, the feed is inconsistent.
func checkFeedInfoCrossLanguage(ds *dataset.Dataset) error {
	if len(ds.Translations) > 0 && ds.FeedInfo == nil {
		return gtfserr.NewDatasetMissingValue("feed_info", "required when translations.txt is non-empty")
	}
	if ds.FeedInfo == nil {
		return nil
	}
	if ds.FeedInfo.FeedLang == multilingualSentinel {
		return checkMultilingualTranslationParity(ds)
	}
	langs := collectTranslationLanguages(ds)
	if len(langs) > 1 && !langs[ds.FeedInfo.FeedLang] {
		return gtfserr.NewInconsistentValue("feed_lang", ds.FeedInfo.FeedLang, "translations name more than one language and none matches feed_lang", feedInfoSnap(*ds.FeedInfo))
	}
	return nil
}

func collectTranslationLanguages(ds *dataset.Dataset) map[string]bool {
	langs := make(map[string]bool)
	for _, t := range ds.Translations {
		if t.Language != "" {
			langs[t.Language] = true
		}
	}
	return langs
}

func checkMultilingualTranslationParity(ds *dataset.Dataset) error {
	byLang := make(map[string]map[string]bool)
	for _, t := range ds.Translations {
		if byLang[t.Language] == nil {
			byLang[t.Language] = make(map[string]bool)
		}
		byLang[t.Language][translationRecordKey(t)] = true
	}
	var first map[string]bool
	for _, lang := range sortedLanguages(byLang) {
		set := byLang[lang]
		if first == nil {
			first = set
			continue
		}
		if !sameStringSet(first, set) {
			return gtfserr.NewInconsistentValue("language", lang, "a multilingual feed must translate the same set of records in every language")
		}
	}
	return nil
}

func sortedLanguages(byLang map[string]map[string]bool) []string {
	out := make([]string, 0, len(byLang))
	for lang := range byLang {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func translationRecordKey(t schema.Translation) string {
	key := ""
	if t.RecordID != nil {
		key = *t.RecordID
	}
	if t.RecordSubID != nil {
		key += "/" + *t.RecordSubID
	}
	return key
}

func sameStringSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// Step 18: attributions.txt's optional agency_id, route_id, and trip_id
// must resolve.
func checkAttributions(ds *dataset.Dataset) error {
	for _, a := range ds.Attributions {
		if !a.AgencyID.IsEmpty() {
			if _, ok := findAgency(ds, a.AgencyID); !ok {
				return gtfserr.NewForeignKeyNotFound("agency_id", a.AgencyID.String(), "agency.agency_id", attributionSnap(a))
			}
		}
		if !a.RouteID.IsEmpty() {
			if _, ok := ds.Routes[a.RouteID]; !ok {
				return gtfserr.NewForeignKeyNotFound("route_id", a.RouteID.String(), "routes.route_id", attributionSnap(a))
			}
		}
		if !a.TripID.IsEmpty() {
			if _, ok := ds.Trips[a.TripID]; !ok {
				return gtfserr.NewForeignKeyNotFound("trip_id", a.TripID.String(), "trips.trip_id", attributionSnap(a))
			}
		}
	}
	return nil
}
