package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Route is a group of trips displayed to riders as a single service (routes.txt).
type Route struct {
	RouteID           ids.RouteId
	AgencyID          ids.AgencyId // empty when absent
	RouteShortName    string
	RouteLongName     string
	RouteDesc         string
	RouteType         types.RouteType
	RouteURL          string
	RouteColor        string
	RouteTextColor    string
	RouteSortOrder    *int
	ContinuousPickup  *types.ContinuousPickup
	ContinuousDropOff *types.ContinuousDropOff
	NetworkID         ids.NetworkId // empty when absent
}

// ValidateRow enforces routes.txt's within-row rules: route_id must be
// non-empty, and at least one of route_short_name or route_long_name must be
// present.
func (r *Route) ValidateRow() error {
	if r.RouteID.IsEmpty() {
		return newMissingValue("route_id", "can never be empty", r.snapshot())
	}
	if r.RouteShortName == "" && r.RouteLongName == "" {
		return newMissingValue("route_short_name, route_long_name", "at least one must be present", r.snapshot())
	}
	return nil
}

func (r *Route) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "routes", Fields: map[string]string{
		"route_id":   r.RouteID.String(),
		"agency_id":  r.AgencyID.String(),
		"network_id": r.NetworkID.String(),
	}}
}
