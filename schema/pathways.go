package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Pathway links two locations within a station complex (pathways.txt).
type Pathway struct {
	PathwayID            ids.PathwayId
	FromStopID           ids.StopId
	ToStopID             ids.StopId
	PathwayMode          types.PathwayMode
	IsBidirectional      bool
	Length               *float64
	TraversalTime        *int
	StairCount           *int
	MaxSlope             *float64
	MinWidth             *float64
	SignpostedAs         string
	ReversedSignpostedAs string
}

// ValidateRow enforces pathways.txt's within-row rules: required
// identifiers, exit gates must be unidirectional, and non-negative length
// and minimum width.
func (p *Pathway) ValidateRow() error {
	if p.PathwayID.IsEmpty() {
		return newMissingValue("pathway_id", "can never be empty", p.snapshot())
	}
	if p.FromStopID.IsEmpty() || p.ToStopID.IsEmpty() {
		return newMissingValue("from_stop_id, to_stop_id", "can never be empty", p.snapshot())
	}
	if p.PathwayMode == types.PathwayExitGate && p.IsBidirectional {
		return newInvalidValue("is_bidirectional", "must be false when pathway_mode is exit-gate", p.snapshot())
	}
	if p.Length != nil && *p.Length < 0 {
		return newInvalidValue("length", "must be non-negative", p.snapshot())
	}
	if p.MinWidth != nil && *p.MinWidth < 0 {
		return newInvalidValue("min_width", "must be non-negative", p.snapshot())
	}
	return nil
}

func (p *Pathway) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "pathways", Fields: map[string]string{
		"pathway_id":   p.PathwayID.String(),
		"from_stop_id": p.FromStopID.String(),
		"to_stop_id":   p.ToStopID.String(),
	}}
}
