// Package schema defines one record type per GTFS table. Every type exposes
// a ValidateRow method enforcing only within-row constraints: conditional
// field presence, enumerated domains, numeric ranges. Cross-table
// constraints belong to the validator package.
package schema

import (
	"strconv"

	"github.com/transitdata/gtfs-dataset/gtfserr"
)

// RecordSnapshot is a local alias of gtfserr.RecordSnapshot so schema files
// don't need to repeat the full import path at every call site.
type RecordSnapshot = gtfserr.RecordSnapshot

func newMissingValue(field, reason string, record RecordSnapshot) error {
	return gtfserr.NewSchemaValidationError(gtfserr.SchemaMissingValue, field, reason, record)
}

func newForbiddenValue(field, reason string, record RecordSnapshot) error {
	return gtfserr.NewSchemaValidationError(gtfserr.SchemaForbiddenValue, field, reason, record)
}

func newInvalidValue(field, reason string, record RecordSnapshot) error {
	return gtfserr.NewSchemaValidationError(gtfserr.SchemaInvalidValue, field, reason, record)
}

func itoa(v int) string { return strconv.Itoa(v) }
