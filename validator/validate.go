// Package validator implements the two-stage validation described for a
// loaded GTFS dataset: a row stage that checks each record against its own
// conditional-presence rules, followed by a dataset stage that checks
// references and invariants spanning multiple tables. Both stages stop at
// the first failure they find.
package validator

import "github.com/transitdata/gtfs-dataset/dataset"

// Validate runs the row stage followed by the dataset stage against an
// already loaded dataset, returning the first failure found in either
// stage. A nil result means the feed is valid.
func Validate(ds *dataset.Dataset) error {
	if err := ValidateRows(ds); err != nil {
		return err
	}
	return ValidateDataset(ds)
}
