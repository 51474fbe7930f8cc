package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// FareTransferRule prices a transfer between two groups of fare legs
// (fare_transfers.txt).
type FareTransferRule struct {
	FromLegGroupID    ids.FareLegRuleId
	ToLegGroupID      ids.FareLegRuleId
	TransferCount     *int
	DurationLimit     *int
	DurationLimitType *types.DurationLimitType
	FareTransferType  types.FareTransferType
	FareProductID     ids.FareProductId
}

// ValidateRow enforces fare_transfers.txt's within-row rules:
// transfer_count is required exactly when from_leg_group_id and
// to_leg_group_id are equal (and forbidden when they differ), and
// duration_limit_type is required exactly when duration_limit is set.
func (f *FareTransferRule) ValidateRow() error {
	sameLegGroup := f.FromLegGroupID == f.ToLegGroupID
	if f.TransferCount != nil && !sameLegGroup {
		return newForbiddenValue("transfer_count", "forbidden when from_leg_group_id and to_leg_group_id differ", f.snapshot())
	}
	if f.TransferCount == nil && sameLegGroup {
		return newMissingValue("transfer_count", "required when from_leg_group_id and to_leg_group_id are equal", f.snapshot())
	}
	if f.DurationLimitType != nil && f.DurationLimit == nil {
		return newMissingValue("duration_limit", "required when duration_limit_type is defined", f.snapshot())
	}
	if f.DurationLimit != nil && f.DurationLimitType == nil {
		return newMissingValue("duration_limit_type", "required when duration_limit is defined", f.snapshot())
	}
	return nil
}

func (f *FareTransferRule) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_transfer_rules", Fields: map[string]string{
		"from_leg_group_id": f.FromLegGroupID.String(),
		"to_leg_group_id":   f.ToLegGroupID.String(),
	}}
}
