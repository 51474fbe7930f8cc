// Package loader walks a directory of GTFS text files, parses each
// recognized file's rows into the typed structs defined in package schema,
// and assembles the result into a dataset.Dataset.
package loader

import (
	"strconv"
	"strings"

	"github.com/transitdata/gtfs-dataset/gtfserr"
	"github.com/transitdata/gtfs-dataset/parser"
	"github.com/transitdata/gtfs-dataset/types"
)

// row wraps a single parsed CSV record together with the enclosing file
// name and record number, so every conversion helper can build a
// gtfserr.ParseError without threading that context through every call.
type row struct {
	file   string
	record int
	values map[string]string
}

func newRow(file string, r *parser.CSVRow) *row {
	return &row{file: file, record: r.RowNumber, values: r.Values}
}

func (r *row) raw(column string) string {
	return strings.TrimSpace(r.values[column])
}

func (r *row) parseErr(column, literal string, cause error) error {
	return gtfserr.NewParseError(r.file, r.record, column, literal, cause)
}

// str returns a column's value with surrounding whitespace trimmed, defaulting to "" when the
// column is absent. GTFS treats a present-but-empty cell the same as an
// absent column for every string field.
func (r *row) str(column string) string {
	return r.raw(column)
}

// optStr returns a column's value, or nil when the cell is absent or blank.
func (r *row) optStr(column string) *string {
	v := r.raw(column)
	if v == "" {
		return nil
	}
	return &v
}

// reqStr returns a column's value, failing with a ParseError if blank.
func (r *row) reqStr(column string) (string, error) {
	v := r.raw(column)
	if v == "" {
		return "", r.parseErr(column, v, errRequiredColumnEmpty(column))
	}
	return v, nil
}

// optInt parses an optional integer column, returning nil when absent.
func (r *row) optInt(column string) (*int, error) {
	v := r.raw(column)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, r.parseErr(column, v, err)
	}
	return &n, nil
}

// intOr parses an integer column, defaulting to def when the cell is blank.
func (r *row) intOr(column string, def int) (int, error) {
	v := r.raw(column)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, r.parseErr(column, v, err)
	}
	return n, nil
}

// optFloat parses an optional floating-point column.
func (r *row) optFloat(column string) (*float64, error) {
	v := r.raw(column)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, r.parseErr(column, v, err)
	}
	return &f, nil
}

// floatOr parses a floating-point column, defaulting to def when blank.
func (r *row) floatOr(column string, def float64) (float64, error) {
	v := r.raw(column)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.parseErr(column, v, err)
	}
	return f, nil
}

// reqFloat parses a required floating-point column.
func (r *row) reqFloat(column string) (float64, error) {
	v := r.raw(column)
	if v == "" {
		return 0, r.parseErr(column, v, errRequiredColumnEmpty(column))
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.parseErr(column, v, err)
	}
	return f, nil
}

// bool01 parses a GTFS boolean column ("0" or "1"), defaulting to false.
func (r *row) bool01(column string) (bool, error) {
	v := r.raw(column)
	switch v {
	case "", "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, r.parseErr(column, v, errInvalidBoolean(column))
	}
}

// optDate parses an optional YYYYMMDD date column.
func (r *row) optDate(column string) (*types.GTFSDate, error) {
	v := r.raw(column)
	if v == "" {
		return nil, nil
	}
	d, err := types.ParseGTFSDate(v)
	if err != nil {
		return nil, r.parseErr(column, v, err)
	}
	return d, nil
}

// reqDate parses a required YYYYMMDD date column.
func (r *row) reqDate(column string) (types.GTFSDate, error) {
	v := r.raw(column)
	if v == "" {
		return types.GTFSDate{}, r.parseErr(column, v, errRequiredColumnEmpty(column))
	}
	d, err := types.ParseGTFSDate(v)
	if err != nil {
		return types.GTFSDate{}, r.parseErr(column, v, err)
	}
	return *d, nil
}

// optTime parses an optional service-time column (H[H]:MM:SS).
func (r *row) optTime(column string) (*types.ServiceTime, error) {
	v := r.raw(column)
	if v == "" {
		return nil, nil
	}
	t, err := types.ParseServiceTime(v)
	if err != nil {
		return nil, r.parseErr(column, v, err)
	}
	return &t, nil
}

// reqTime parses a required service-time column.
func (r *row) reqTime(column string) (types.ServiceTime, error) {
	v := r.raw(column)
	if v == "" {
		return types.ServiceTime{}, r.parseErr(column, v, errRequiredColumnEmpty(column))
	}
	t, err := types.ParseServiceTime(v)
	if err != nil {
		return types.ServiceTime{}, r.parseErr(column, v, err)
	}
	return t, nil
}

// optCoordinate parses an optional lat/lon column pair. Both columns must
// be present together or the pair is treated as absent; a single populated
// column is a parse error, since that cannot describe a valid coordinate.
func (r *row) optCoordinate(latColumn, lonColumn string) (*types.Coordinate, error) {
	latRaw, lonRaw := r.raw(latColumn), r.raw(lonColumn)
	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lonRaw == "" {
		return nil, r.parseErr(latColumn+","+lonColumn, latRaw+","+lonRaw, errIncompleteCoordinate)
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, r.parseErr(latColumn, latRaw, err)
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil, r.parseErr(lonColumn, lonRaw, err)
	}
	c := types.Coordinate{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return nil, r.parseErr(latColumn+","+lonColumn, latRaw+","+lonRaw, err)
	}
	return &c, nil
}
