package schema

import "github.com/transitdata/gtfs-dataset/types"

// TranslatedTable names a table whose fields translations.txt may target.
type TranslatedTable string

const (
	TranslatedAgency        TranslatedTable = "agency"
	TranslatedStops         TranslatedTable = "stops"
	TranslatedRoutes        TranslatedTable = "routes"
	TranslatedTrips         TranslatedTable = "trips"
	TranslatedStopTimes     TranslatedTable = "stop_times"
	TranslatedPathways      TranslatedTable = "pathways"
	TranslatedLevels        TranslatedTable = "levels"
	TranslatedFeedInfo      TranslatedTable = "feed_info"
	TranslatedAttributions  TranslatedTable = "attributions"
	TranslatedCalendar      TranslatedTable = "calendar"
	TranslatedCalendarDates TranslatedTable = "calendar_dates"
	TranslatedFareAttributes TranslatedTable = "fare_attributes"
	TranslatedFareRules     TranslatedTable = "fare_rules"
	TranslatedFrequencies   TranslatedTable = "frequencies"
	TranslatedShapes        TranslatedTable = "shapes"
	TranslatedTransfers     TranslatedTable = "transfers"
)

// noRecordSubID is the set of tables for which translations.txt forbids
// record_sub_id: for them, record_id alone names the translated record.
var noRecordSubID = map[TranslatedTable]bool{
	TranslatedAgency:        true,
	TranslatedStops:         true,
	TranslatedRoutes:        true,
	TranslatedTrips:         true,
	TranslatedPathways:      true,
	TranslatedLevels:        true,
	TranslatedFareAttributes: true,
	TranslatedShapes:        true,
	TranslatedCalendar:      true,
	TranslatedAttributions:  true,
}

// Translation supplies a language-specific replacement for a single field
// of another table, addressed either by record identifier or by exact
// field value (translations.txt).
type Translation struct {
	TableName   TranslatedTable
	FieldName   string
	Language    string
	Translation string
	RecordID    *string
	RecordSubID *string
	FieldValue  *string
}

// ValidateRow enforces translations.txt's within-row rules: field_name and
// translation can never be empty, language must be a well-formed BCP 47
// tag, record_id/record_sub_id/field_value are forbidden for feed_info
// rows and otherwise exactly one addressing scheme (record_id or
// field_value) must be used, with record_sub_id required alongside
// record_id for stop_times rows.
func (t *Translation) ValidateRow() error {
	if t.FieldName == "" {
		return newMissingValue("field_name", "can never be empty", t.snapshot())
	}
	if t.Translation == "" {
		return newMissingValue("translation", "can never be empty", t.snapshot())
	}
	if err := types.ValidateLanguageTag(t.Language); err != nil {
		return newInvalidValue("language", err.Error(), t.snapshot())
	}

	if t.TableName == TranslatedFeedInfo {
		if t.RecordID != nil || t.RecordSubID != nil || t.FieldValue != nil {
			return newForbiddenValue("record_id, record_sub_id, field_value", "forbidden when table_name is feed_info", t.snapshot())
		}
		return nil
	}

	if t.RecordID == nil && t.FieldValue == nil {
		return newMissingValue("record_id, field_value", "one of record_id or field_value is required when table_name is not feed_info", t.snapshot())
	}
	if t.RecordID != nil && t.FieldValue != nil {
		return newForbiddenValue("record_id, field_value", "cannot both be set", t.snapshot())
	}
	if t.RecordID != nil && t.TableName == TranslatedStopTimes && t.RecordSubID == nil {
		return newMissingValue("record_sub_id", "required when table_name is stop_times and record_id is set", t.snapshot())
	}
	if t.RecordSubID != nil && noRecordSubID[t.TableName] {
		return newForbiddenValue("record_sub_id", "not allowed for this table_name", t.snapshot())
	}
	return nil
}

func (t *Translation) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "translations", Fields: map[string]string{
		"table_name": string(t.TableName),
		"field_name": t.FieldName,
		"language":   t.Language,
	}}
}
