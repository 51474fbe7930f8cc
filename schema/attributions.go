package schema

import "github.com/transitdata/gtfs-dataset/ids"

// Attribution credits an organization for the dataset or a subset of it
// (attributions.txt).
type Attribution struct {
	AttributionID    ids.AttributionId
	AgencyID         ids.AgencyId
	RouteID          ids.RouteId
	TripID           ids.TripId
	OrganizationName string
	IsProducer       bool
	IsOperator       bool
	IsAuthority      bool
	AttributionURL   string
	AttributionEmail string
	AttributionPhone string
}

// ValidateRow enforces attributions.txt's within-row rules:
// organization_name can never be empty, and at most one of
// agency_id/route_id/trip_id may be set, since an attribution scoped to
// more than one entity kind is ambiguous.
func (a *Attribution) ValidateRow() error {
	if a.OrganizationName == "" {
		return newMissingValue("organization_name", "can never be empty", a.snapshot())
	}
	scopes := 0
	if !a.AgencyID.IsEmpty() {
		scopes++
	}
	if !a.RouteID.IsEmpty() {
		scopes++
	}
	if !a.TripID.IsEmpty() {
		scopes++
	}
	if scopes > 1 {
		return newForbiddenValue("agency_id, route_id, trip_id", "at most one may be set; an unset attribution applies to the whole dataset", a.snapshot())
	}
	return nil
}

func (a *Attribution) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "attributions", Fields: map[string]string{
		"attribution_id":    a.AttributionID.String(),
		"organization_name": a.OrganizationName,
	}}
}
