package validator

import "github.com/transitdata/gtfs-dataset/dataset"

// ValidateRows runs every record's ValidateRow in turn, surfacing the first
// failure and leaving the remaining records unexamined.
// Table order below is fixed for reproducibility; within a table, sequence
// tables iterate in insertion order and mapping tables in unspecified
// (Go map) order.
func ValidateRows(ds *dataset.Dataset) error {
	for i := range ds.Agencies {
		if err := (&ds.Agencies[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.Stops {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Stops[k] = v
	}
	for k, v := range ds.Routes {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Routes[k] = v
	}
	for k, v := range ds.Trips {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Trips[k] = v
	}
	for k, v := range ds.StopTimes {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.StopTimes[k] = v
	}
	for k, v := range ds.Calendar {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Calendar[k] = v
	}
	for k, v := range ds.CalendarDates {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.CalendarDates[k] = v
	}
	for k, v := range ds.FareAttributes {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.FareAttributes[k] = v
	}
	for i := range ds.FareRules {
		if err := (&ds.FareRules[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for i := range ds.Timeframes {
		if err := (&ds.Timeframes[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.FareMedia {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.FareMedia[k] = v
	}
	for k, v := range ds.FareProducts {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.FareProducts[k] = v
	}
	for i := range ds.FareLegRules {
		if err := (&ds.FareLegRules[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for i := range ds.FareTransfers {
		if err := (&ds.FareTransfers[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.Areas {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Areas[k] = v
	}
	for i := range ds.StopsAreas {
		if err := (&ds.StopsAreas[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.Networks {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Networks[k] = v
	}
	for k, v := range ds.RoutesNetworks {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.RoutesNetworks[k] = v
	}
	for k, v := range ds.Shapes {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Shapes[k] = v
	}
	for k, v := range ds.Frequencies {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Frequencies[k] = v
	}
	for i := range ds.Transfers {
		if err := (&ds.Transfers[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.Pathways {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Pathways[k] = v
	}
	for k, v := range ds.Levels {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.Levels[k] = v
	}
	for k, v := range ds.LocationGroups {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.LocationGroups[k] = v
	}
	for i := range ds.LocationGroupsStops {
		if err := (&ds.LocationGroupsStops[i]).ValidateRow(); err != nil {
			return err
		}
	}
	for k, v := range ds.BookingRules {
		if err := v.ValidateRow(); err != nil {
			return err
		}
		ds.BookingRules[k] = v
	}
	for i := range ds.Translations {
		if err := (&ds.Translations[i]).ValidateRow(); err != nil {
			return err
		}
	}
	if ds.FeedInfo != nil {
		if err := ds.FeedInfo.ValidateRow(); err != nil {
			return err
		}
	}
	for i := range ds.Attributions {
		if err := (&ds.Attributions[i]).ValidateRow(); err != nil {
			return err
		}
	}
	return nil
}
