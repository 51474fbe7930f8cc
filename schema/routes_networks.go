package schema

import "github.com/transitdata/gtfs-dataset/ids"

// RouteNetwork assigns a route to a network, as an alternative to setting
// routes.network_id directly (routes_networks.txt).
type RouteNetwork struct {
	NetworkID ids.NetworkId
	RouteID   ids.RouteId
}

// ValidateRow enforces routes_networks.txt's within-row rules: network_id
// and route_id can never be empty.
func (r *RouteNetwork) ValidateRow() error {
	if r.NetworkID.IsEmpty() {
		return newMissingValue("network_id", "can never be empty", r.snapshot())
	}
	if r.RouteID.IsEmpty() {
		return newMissingValue("route_id", "can never be empty", r.snapshot())
	}
	return nil
}

func (r *RouteNetwork) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "route_networks", Fields: map[string]string{
		"network_id": r.NetworkID.String(),
		"route_id":   r.RouteID.String(),
	}}
}
