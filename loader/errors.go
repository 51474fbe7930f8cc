package loader

import "fmt"

func errRequiredColumnEmpty(column string) error {
	return fmt.Errorf("%s is required and cannot be empty", column)
}

func errInvalidBoolean(column string) error {
	return fmt.Errorf("%s must be 0 or 1", column)
}

var errIncompleteCoordinate = fmt.Errorf("latitude and longitude must be present together")
