package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Shape is one point of an ordered polyline approximating a trip's physical
// path (shapes.txt).
type Shape struct {
	ShapeID           ids.ShapeId
	Point             types.Coordinate
	ShapePtSequence   int
	ShapeDistTraveled *float64
}

// ValidateRow enforces shapes.txt's within-row rules: shape_id can never be
// empty and shape_dist_traveled, when present, must be non-negative.
func (s *Shape) ValidateRow() error {
	if s.ShapeID.IsEmpty() {
		return newMissingValue("shape_id", "can never be empty", s.snapshot())
	}
	if s.ShapeDistTraveled != nil && *s.ShapeDistTraveled < 0 {
		return newInvalidValue("shape_dist_traveled", "must be non-negative", s.snapshot())
	}
	return nil
}

func (s *Shape) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "shapes", Fields: map[string]string{
		"shape_id":          s.ShapeID.String(),
		"shape_pt_sequence": itoa(s.ShapePtSequence),
	}}
}
