package schema

import "github.com/transitdata/gtfs-dataset/ids"

// FareLegRule prices a single leg of a journey matching a network, area,
// and/or timeframe pattern (fare_leg_rules.txt).
type FareLegRule struct {
	LegGroupID           ids.FareLegRuleId
	NetworkID            ids.NetworkId
	FromAreaID           ids.AreaId
	ToAreaID             ids.AreaId
	FromTimeframeGroupID ids.TimeframeGroupId
	ToTimeframeGroupID   ids.TimeframeGroupId
	FareProductID        ids.FareProductId
	RulePriority         *int
}

// ValidateRow enforces fare_leg_rules.txt's one within-row rule:
// fare_product_id can never be empty.
func (f *FareLegRule) ValidateRow() error {
	if f.FareProductID.IsEmpty() {
		return newMissingValue("fare_product_id", "can never be empty", f.snapshot())
	}
	return nil
}

func (f *FareLegRule) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_leg_rules", Fields: map[string]string{
		"leg_group_id":    f.LegGroupID.String(),
		"fare_product_id": f.FareProductID.String(),
	}}
}
