package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// FareMedia describes a physical or virtual holder used to carry and
// validate a fare product (fare_media.txt).
type FareMedia struct {
	FareMediaID   ids.FareMediaId
	FareMediaName string
	FareMediaType types.FareMediaType
}

// ValidateRow enforces fare_media.txt's one within-row rule: fare_media_id
// can never be empty.
func (f *FareMedia) ValidateRow() error {
	if f.FareMediaID.IsEmpty() {
		return newMissingValue("fare_media_id", "can never be empty", f.snapshot())
	}
	return nil
}

func (f *FareMedia) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "fare_media", Fields: map[string]string{
		"fare_media_id": f.FareMediaID.String(),
	}}
}
