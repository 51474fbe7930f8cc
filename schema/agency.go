package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// Agency is a transit brand operating one or more routes (agency.txt).
// agency.txt has no intrinsic primary key; uniqueness of agency_id is a
// dataset-stage rule enforced only when more than one agency is present.
type Agency struct {
	AgencyID       ids.AgencyId
	AgencyName     string
	AgencyURL      string
	AgencyTimezone string
	AgencyLang     string
	AgencyPhone    string
	AgencyFareURL  string
	AgencyEmail    string
}

// ValidateRow enforces agency.txt's within-row rules: agency_name must be
// present, and agency_lang, when set, must be a well-formed BCP 47 tag.
// agency_id is not checked here; the loader reads a blank agency_id cell
// the same as an absent column.
func (a *Agency) ValidateRow() error {
	if a.AgencyName == "" {
		return newMissingValue("agency_name", "agency_name must be non-empty", a.snapshot())
	}
	if a.AgencyLang != "" {
		if err := types.ValidateLanguageTag(a.AgencyLang); err != nil {
			return newInvalidValue("agency_lang", err.Error(), a.snapshot())
		}
	}
	return nil
}

func (a *Agency) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "agency", Fields: map[string]string{
		"agency_id":   a.AgencyID.String(),
		"agency_name": a.AgencyName,
	}}
}
