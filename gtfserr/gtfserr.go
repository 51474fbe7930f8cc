// Package gtfserr defines the three-arm diagnostic taxonomy surfaced by the
// loader and validator: parse errors (external collaborator failures with
// file/line/column context), schema-validation errors (row-level, carrying
// one offending record), and dataset-validation errors (cross-row, carrying
// one or more offending records).
package gtfserr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RecordSnapshot is an opaque, loggable rendering of an offending record.
// Schema and dataset validation errors carry these instead of the live
// struct so that a diagnostic can be printed without importing every
// entity-schema type.
type RecordSnapshot struct {
	Table  string
	Fields map[string]string
}

func (r RecordSnapshot) String() string {
	return fmt.Sprintf("%s%v", r.Table, r.Fields)
}

// ParseError reports a failure in an external collaborator (CSV tokenizer,
// directory walk, or a domain-value parser) while loading the feed. Context
// frames accumulate outward as each caller that can localize the failure
// wraps it, so the innermost frame names the offending literal and outer
// frames name the file and record.
type ParseError struct {
	File    string
	Record  int
	Column  string
	Literal string
	cause   error
}

func NewParseError(file string, record int, column, literal string, cause error) *ParseError {
	return &ParseError{File: file, Record: record, Column: column, Literal: literal, cause: cause}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("while parsing %s at record %d, column %s=%q: %v", e.File, e.Record, e.Column, e.Literal, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// WithContext wraps the error with an additional context frame, matching
// the "cumulative context" propagation rule: each caller that can localize
// the failure further prepends its own description.
func WithContext(err error, context string) error {
	return errors.Wrap(err, context)
}

// SchemaValidationKind is the closed set of row-level failure kinds.
type SchemaValidationKind int

const (
	SchemaMissingValue SchemaValidationKind = iota
	SchemaForbiddenValue
	SchemaInvalidValue
)

func (k SchemaValidationKind) String() string {
	switch k {
	case SchemaMissingValue:
		return "missing-value"
	case SchemaForbiddenValue:
		return "forbidden-value"
	case SchemaInvalidValue:
		return "invalid-value"
	default:
		return "unknown"
	}
}

// SchemaValidationError reports a within-row conditional-presence violation
// detected by a single entity's ValidateRow method.
type SchemaValidationError struct {
	Kind   SchemaValidationKind
	Field  string
	Reason string
	Record RecordSnapshot
}

func NewSchemaValidationError(kind SchemaValidationKind, field, reason string, record RecordSnapshot) *SchemaValidationError {
	return &SchemaValidationError{Kind: kind, Field: field, Reason: reason, Record: record}
}

func (e *SchemaValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s for field %s; row: %s", e.Kind, e.Field, e.Record)
	}
	return fmt.Sprintf("%s for field %s; reason: %s; row: %s", e.Kind, e.Field, e.Reason, e.Record)
}

// DatasetValidationKind is the closed set of cross-table failure kinds.
type DatasetValidationKind int

const (
	DatasetPrimaryKeyNotUnique DatasetValidationKind = iota
	DatasetForeignKeyNotFound
	DatasetInconsistentValue
	DatasetInvalidCombination
	DatasetMissingValue
	DatasetOverlappingIntervals
)

func (k DatasetValidationKind) String() string {
	switch k {
	case DatasetPrimaryKeyNotUnique:
		return "primary-key-not-unique"
	case DatasetForeignKeyNotFound:
		return "foreign-key-not-found"
	case DatasetInconsistentValue:
		return "inconsistent-value"
	case DatasetInvalidCombination:
		return "invalid-combination"
	case DatasetMissingValue:
		return "missing-value"
	case DatasetOverlappingIntervals:
		return "overlapping-intervals"
	default:
		return "unknown"
	}
}

// DatasetValidationError reports a cross-table consistency violation found
// by the dataset-stage validator. It may name one field/value pair (for
// key and reference checks) or a free-form detail string (for interval
// overlap checks), and always carries the offending record(s).
type DatasetValidationError struct {
	Kind      DatasetValidationKind
	Field     string
	Value     string
	Reference string
	Fields    []string
	Reason    string
	Details   string
	Records   []RecordSnapshot
}

func newDatasetError(kind DatasetValidationKind) *DatasetValidationError {
	return &DatasetValidationError{Kind: kind}
}

func NewPrimaryKeyNotUnique(field, value string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetPrimaryKeyNotUnique)
	e.Field, e.Value, e.Records = field, value, records
	return e
}

func NewForeignKeyNotFound(field, value, reference string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetForeignKeyNotFound)
	e.Field, e.Value, e.Reference, e.Records = field, value, reference, records
	return e
}

func NewInconsistentValue(field, value, reason string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetInconsistentValue)
	e.Field, e.Value, e.Reason, e.Records = field, value, reason, records
	return e
}

func NewInvalidCombination(fields []string, reason string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetInvalidCombination)
	e.Fields, e.Reason, e.Records = fields, reason, records
	return e
}

func NewDatasetMissingValue(field, reason string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetMissingValue)
	e.Field, e.Reason, e.Records = field, reason, records
	return e
}

func NewOverlappingIntervals(details string, records ...RecordSnapshot) *DatasetValidationError {
	e := newDatasetError(DatasetOverlappingIntervals)
	e.Details, e.Records = details, records
	return e
}

func (e *DatasetValidationError) Error() string {
	var rows []string
	for _, r := range e.Records {
		rows = append(rows, r.String())
	}
	rowSummary := strings.Join(rows, ", ")

	switch e.Kind {
	case DatasetPrimaryKeyNotUnique:
		return fmt.Sprintf("primary key is not unique; %s is duplicated in %s; rows: %s", e.Value, e.Field, rowSummary)
	case DatasetForeignKeyNotFound:
		return fmt.Sprintf("foreign key in %s with value %s does not exist in %s; rows: %s", e.Field, e.Value, e.Reference, rowSummary)
	case DatasetInconsistentValue:
		return fmt.Sprintf("inconsistent field %s with value %s; reason: %s; rows: %s", e.Field, e.Value, e.Reason, rowSummary)
	case DatasetInvalidCombination:
		return fmt.Sprintf("invalid combination of fields %v; reason: %s; rows: %s", e.Fields, e.Reason, rowSummary)
	case DatasetMissingValue:
		return fmt.Sprintf("missing value for field %s; reason: %s; rows: %s", e.Field, e.Reason, rowSummary)
	case DatasetOverlappingIntervals:
		return fmt.Sprintf("overlapping intervals found: %s; rows: %s", e.Details, rowSummary)
	default:
		return fmt.Sprintf("dataset validation error; rows: %s", rowSummary)
	}
}
