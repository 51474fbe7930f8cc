package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/transitdata/gtfs-dataset/dataset"
	"github.com/transitdata/gtfs-dataset/gtfserr"
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/parser"
	"github.com/transitdata/gtfs-dataset/schema"
	"github.com/transitdata/gtfs-dataset/types"
)

// recognizedFiles is the closed set of GTFS Schedule file names a loader
// will read. Anything else found in the feed directory is ignored.
var recognizedFiles = []string{
	"agency.txt",
	"stops.txt",
	"routes.txt",
	"trips.txt",
	"stop_times.txt",
	"calendar.txt",
	"calendar_dates.txt",
	"fare_attributes.txt",
	"fare_rules.txt",
	"timeframes.txt",
	"fare_media.txt",
	"fare_products.txt",
	"fare_leg_rules.txt",
	"fare_transfers.txt",
	"areas.txt",
	"stops_areas.txt",
	"networks.txt",
	"routes_networks.txt",
	"shapes.txt",
	"frequencies.txt",
	"transfers.txt",
	"pathways.txt",
	"levels.txt",
	"location_groups.txt",
	"location_groups_stops.txt",
	"booking_rules.txt",
	"translations.txt",
	"feed_info.txt",
	"attributions.txt",
}

// tableParsers maps each recognized file name to the function that reads
// its rows into the dataset. A file absent from the feed directory is
// simply skipped; the dataset-stage validator is responsible for deciding
// whether a missing table is fatal.
var tableParsers = map[string]func(*parser.CSVFile, *dataset.Dataset) error{
	"agency.txt":              loadAgency,
	"stops.txt":               loadStops,
	"routes.txt":              loadRoutes,
	"trips.txt":               loadTrips,
	"stop_times.txt":          loadStopTimes,
	"calendar.txt":            loadCalendar,
	"calendar_dates.txt":      loadCalendarDates,
	"fare_attributes.txt":      loadFareAttributes,
	"fare_rules.txt":           loadFareRules,
	"timeframes.txt":           loadTimeframes,
	"fare_media.txt":           loadFareMedia,
	"fare_products.txt":        loadFareProducts,
	"fare_leg_rules.txt":       loadFareLegRules,
	"fare_transfers.txt":       loadFareTransferRules,
	"areas.txt":                loadAreas,
	"stops_areas.txt":          loadStopAreas,
	"networks.txt":             loadNetworks,
	"routes_networks.txt":      loadRouteNetworks,
	"shapes.txt":               loadShapes,
	"frequencies.txt":          loadFrequencies,
	"transfers.txt":            loadTransfers,
	"pathways.txt":             loadPathways,
	"levels.txt":               loadLevels,
	"location_groups.txt":      loadLocationGroups,
	"location_groups_stops.txt": loadLocationGroupStops,
	"booking_rules.txt":        loadBookingRules,
	"translations.txt":        loadTranslations,
	"feed_info.txt":           loadFeedInfo,
	"attributions.txt":        loadAttributions,
}

// Load reads every recognized file present in dir and assembles them into a
// Dataset. dir is read as a plain directory of text files, not a zip
// archive. Field-level failures surface as gtfserr.ParseError, wrapped
// with the file name as an outer context frame.
func Load(dir string) (*dataset.Dataset, error) {
	ds := dataset.New()

	for _, name := range recognizedFiles {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, gtfserr.WithContext(err, fmt.Sprintf("opening %s", name))
		}

		err = loadOneFile(f, name, ds)
		closeErr := f.Close()
		if err != nil {
			return nil, gtfserr.WithContext(err, fmt.Sprintf("loading %s", name))
		}
		if closeErr != nil {
			return nil, gtfserr.WithContext(closeErr, fmt.Sprintf("closing %s", name))
		}
	}

	return ds, nil
}

func loadOneFile(f *os.File, name string, ds *dataset.Dataset) error {
	csvFile, err := parser.NewCSVFile(f, name)
	if err != nil {
		return err
	}
	parse := tableParsers[name]
	return parse(csvFile, ds)
}

// readRows drains every data row of a CSVFile, invoking fn once per row.
// A parse error from fn stops the file short; it is returned as-is since
// fn's row helpers already attach file/record/column context.
func readRows(f *parser.CSVFile, fn func(*row) error) error {
	for {
		r, err := f.ReadRow()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(newRow(f.Filename, r)); err != nil {
			return err
		}
	}
}

func loadAgency(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		a := schema.Agency{
			AgencyID:       ids.AgencyId(r.str("agency_id")),
			AgencyName:     r.str("agency_name"),
			AgencyURL:      r.str("agency_url"),
			AgencyTimezone: r.str("agency_timezone"),
			AgencyLang:     r.str("agency_lang"),
			AgencyPhone:    r.str("agency_phone"),
			AgencyFareURL:  r.str("agency_fare_url"),
			AgencyEmail:    r.str("agency_email"),
		}
		if err := a.ValidateRow(); err != nil {
			return err
		}
		ds.Agencies = append(ds.Agencies, a)
		return nil
	})
}

func loadStops(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		locType, err := optParseOr(r, "location_type", types.LocationStopOrPlatform, types.ParseLocationType)
		if err != nil {
			return err
		}
		wheelchair, err := optParseOr(r, "wheelchair_boarding", types.WheelchairNoInformation, types.ParseWheelchairBoarding)
		if err != nil {
			return err
		}
		coord, err := r.optCoordinate("stop_lat", "stop_lon")
		if err != nil {
			return err
		}
		s := schema.Stop{
			StopID:             ids.StopId(r.str("stop_id")),
			StopCode:           r.str("stop_code"),
			StopName:           r.str("stop_name"),
			StopDesc:           r.str("stop_desc"),
			Coordinate:         coord,
			LocationType:       locType,
			ParentStation:      ids.StopId(r.str("parent_station")),
			StopTimezone:       r.str("stop_timezone"),
			LevelID:            ids.LevelId(r.str("level_id")),
			StopURL:            r.str("stop_url"),
			WheelchairBoarding: wheelchair,
			PlatformCode:       r.str("platform_code"),
			ZoneID:             r.str("zone_id"),
		}
		if err := s.ValidateRow(); err != nil {
			return err
		}
		ds.Stops[s.StopID] = s
		return nil
	})
}

func loadRoutes(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		routeType, err := reqParse(r, "route_type", types.ParseRouteType)
		if err != nil {
			return err
		}
		sortOrder, err := r.optInt("route_sort_order")
		if err != nil {
			return err
		}
		continuousPickup, err := optParsePtr(r, "continuous_pickup", types.ParseContinuousPickup)
		if err != nil {
			return err
		}
		continuousDropOff, err := optParsePtr(r, "continuous_drop_off", types.ParseContinuousDropOff)
		if err != nil {
			return err
		}
		route := schema.Route{
			RouteID:           ids.RouteId(r.str("route_id")),
			AgencyID:          ids.AgencyId(r.str("agency_id")),
			RouteShortName:    r.str("route_short_name"),
			RouteLongName:     r.str("route_long_name"),
			RouteDesc:         r.str("route_desc"),
			RouteType:         routeType,
			RouteURL:          r.str("route_url"),
			RouteColor:        r.str("route_color"),
			RouteTextColor:    r.str("route_text_color"),
			RouteSortOrder:    sortOrder,
			ContinuousPickup:  continuousPickup,
			ContinuousDropOff: continuousDropOff,
			NetworkID:         ids.NetworkId(r.str("network_id")),
		}
		if err := route.ValidateRow(); err != nil {
			return err
		}
		ds.Routes[route.RouteID] = route
		return nil
	})
}

func loadTrips(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		direction, err := r.optInt("direction_id")
		if err != nil {
			return err
		}
		wheelchair, err := optParseOr(r, "wheelchair_accessible", types.WheelchairNoInformation, types.ParseWheelchairBoarding)
		if err != nil {
			return err
		}
		bikes, err := optParseOr(r, "bikes_allowed", types.BikesNoInformation, types.ParseBikesAllowed)
		if err != nil {
			return err
		}
		t := schema.Trip{
			TripID:               ids.TripId(r.str("trip_id")),
			RouteID:              ids.RouteId(r.str("route_id")),
			ServiceID:            ids.ServiceId(r.str("service_id")),
			TripHeadsign:         r.str("trip_headsign"),
			TripShortName:        r.str("trip_short_name"),
			DirectionID:          direction,
			BlockID:              r.str("block_id"),
			ShapeID:              ids.ShapeId(r.str("shape_id")),
			WheelchairAccessible: wheelchair,
			BikesAllowed:         bikes,
		}
		if err := t.ValidateRow(); err != nil {
			return err
		}
		ds.Trips[t.TripID] = t
		return nil
	})
}

func loadStopTimes(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		arrival, err := r.optTime("arrival_time")
		if err != nil {
			return err
		}
		departure, err := r.optTime("departure_time")
		if err != nil {
			return err
		}
		startWindow, err := r.optTime("start_pickup_drop_off_window")
		if err != nil {
			return err
		}
		endWindow, err := r.optTime("end_pickup_drop_off_window")
		if err != nil {
			return err
		}
		stopSeq, err := r.intOr("stop_sequence", 0)
		if err != nil {
			return err
		}
		pickupType, err := optParsePtr(r, "pickup_type", types.ParsePickupType)
		if err != nil {
			return err
		}
		dropOffType, err := optParsePtr(r, "drop_off_type", types.ParseDropOffType)
		if err != nil {
			return err
		}
		continuousPickup, err := optParsePtr(r, "continuous_pickup", types.ParseContinuousPickup)
		if err != nil {
			return err
		}
		continuousDropOff, err := optParsePtr(r, "continuous_drop_off", types.ParseContinuousDropOff)
		if err != nil {
			return err
		}
		shapeDist, err := r.optFloat("shape_dist_traveled")
		if err != nil {
			return err
		}
		timepoint, err := optParsePtr(r, "timepoint", types.ParseTimepoint)
		if err != nil {
			return err
		}

		st := schema.StopTime{
			TripID:                   ids.TripId(r.str("trip_id")),
			ArrivalTime:              arrival,
			DepartureTime:            departure,
			StopID:                   ids.StopId(r.str("stop_id")),
			LocationGroupID:          r.str("location_group_id"),
			LocationID:               r.str("location_id"),
			StopSequence:             stopSeq,
			StopHeadsign:             r.str("stop_headsign"),
			StartPickupDropOffWindow: startWindow,
			EndPickupDropOffWindow:   endWindow,
			PickupType:               pickupType,
			DropOffType:              dropOffType,
			ContinuousPickup:         continuousPickup,
			ContinuousDropOff:        continuousDropOff,
			ShapeDistTraveled:        shapeDist,
			Timepoint:                timepoint,
			PickupBookingRuleID:      ids.BookingRuleId(r.str("pickup_booking_rule_id")),
			DropOffBookingRuleID:     ids.BookingRuleId(r.str("drop_off_booking_rule_id")),
		}
		if err := st.ValidateRow(); err != nil {
			return err
		}
		key := dataset.StopTimeKey{TripID: st.TripID, StopSequence: st.StopSequence}
		ds.StopTimes[key] = st
		return nil
	})
}

func loadCalendar(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		start, err := r.reqDate("start_date")
		if err != nil {
			return err
		}
		end, err := r.reqDate("end_date")
		if err != nil {
			return err
		}
		c := schema.Calendar{
			ServiceID: ids.ServiceId(r.str("service_id")),
			Monday:    r.raw("monday") == "1",
			Tuesday:   r.raw("tuesday") == "1",
			Wednesday: r.raw("wednesday") == "1",
			Thursday:  r.raw("thursday") == "1",
			Friday:    r.raw("friday") == "1",
			Saturday:  r.raw("saturday") == "1",
			Sunday:    r.raw("sunday") == "1",
			StartDate: start,
			EndDate:   end,
		}
		if err := c.ValidateRow(); err != nil {
			return err
		}
		ds.Calendar[c.ServiceID] = c
		return nil
	})
}

func loadCalendarDates(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		date, err := r.reqDate("date")
		if err != nil {
			return err
		}
		exceptionRaw, err := r.intOr("exception_type", 0)
		if err != nil {
			return err
		}
		cd := schema.CalendarDate{
			ServiceID:     ids.ServiceId(r.str("service_id")),
			Date:          date,
			ExceptionType: schema.ExceptionType(exceptionRaw),
		}
		if err := cd.ValidateRow(); err != nil {
			return err
		}
		key := dataset.CalendarDateKey{ServiceID: cd.ServiceID, Date: cd.Date.String()}
		ds.CalendarDates[key] = cd
		return nil
	})
}

func loadFareAttributes(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		price, err := r.reqFloat("price")
		if err != nil {
			return err
		}
		paymentRaw, err := r.intOr("payment_method", 0)
		if err != nil {
			return err
		}
		transfers, err := r.optInt("transfers")
		if err != nil {
			return err
		}
		transferDuration, err := r.optInt("transfer_duration")
		if err != nil {
			return err
		}
		fa := schema.FareAttribute{
			FareID:           ids.FareId(r.str("fare_id")),
			Price:            price,
			CurrencyType:     r.str("currency_type"),
			PaymentMethod:    schema.PaymentMethod(paymentRaw),
			Transfers:        transfers,
			AgencyID:         ids.AgencyId(r.str("agency_id")),
			TransferDuration: transferDuration,
		}
		if err := fa.ValidateRow(); err != nil {
			return err
		}
		ds.FareAttributes[fa.FareID] = fa
		return nil
	})
}

func loadFareRules(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		fr := schema.FareRule{
			FareID:        ids.FareId(r.str("fare_id")),
			RouteID:       ids.RouteId(r.str("route_id")),
			OriginID:      r.str("origin_id"),
			DestinationID: r.str("destination_id"),
			ContainsID:    r.str("contains_id"),
		}
		if err := fr.ValidateRow(); err != nil {
			return err
		}
		ds.FareRules = append(ds.FareRules, fr)
		return nil
	})
}

func loadTimeframes(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		start, err := r.optTime("start_time")
		if err != nil {
			return err
		}
		end, err := r.optTime("end_time")
		if err != nil {
			return err
		}
		t := schema.Timeframe{
			TimeframeGroupID: ids.TimeframeGroupId(r.str("timeframe_group_id")),
			StartTime:        start,
			EndTime:          end,
			ServiceID:        ids.ServiceId(r.str("service_id")),
		}
		if err := t.ValidateRow(); err != nil {
			return err
		}
		ds.Timeframes = append(ds.Timeframes, t)
		return nil
	})
}

func loadFareMedia(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		mediaType, err := reqParse(r, "fare_media_type", types.ParseFareMediaType)
		if err != nil {
			return err
		}
		fm := schema.FareMedia{
			FareMediaID:   ids.FareMediaId(r.str("fare_media_id")),
			FareMediaName: r.str("fare_media_name"),
			FareMediaType: mediaType,
		}
		if err := fm.ValidateRow(); err != nil {
			return err
		}
		ds.FareMedia[fm.FareMediaID] = fm
		return nil
	})
}

func loadFareProducts(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		amount, err := r.reqFloat("amount")
		if err != nil {
			return err
		}
		fp := schema.FareProduct{
			FareProductID:   ids.FareProductId(r.str("fare_product_id")),
			FareProductName: r.str("fare_product_name"),
			FareMediaID:     ids.FareMediaId(r.str("fare_media_id")),
			Amount:          amount,
			Currency:        r.str("currency"),
		}
		if err := fp.ValidateRow(); err != nil {
			return err
		}
		key := dataset.FareProductKey{FareProductID: fp.FareProductID, FareMediaID: fp.FareMediaID}
		ds.FareProducts[key] = fp
		return nil
	})
}

func loadFareLegRules(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		priority, err := r.optInt("rule_priority")
		if err != nil {
			return err
		}
		fl := schema.FareLegRule{
			LegGroupID:           ids.FareLegRuleId(r.str("leg_group_id")),
			NetworkID:            ids.NetworkId(r.str("network_id")),
			FromAreaID:           ids.AreaId(r.str("from_area_id")),
			ToAreaID:             ids.AreaId(r.str("to_area_id")),
			FromTimeframeGroupID: ids.TimeframeGroupId(r.str("from_timeframe_group_id")),
			ToTimeframeGroupID:   ids.TimeframeGroupId(r.str("to_timeframe_group_id")),
			FareProductID:        ids.FareProductId(r.str("fare_product_id")),
			RulePriority:         priority,
		}
		if err := fl.ValidateRow(); err != nil {
			return err
		}
		ds.FareLegRules = append(ds.FareLegRules, fl)
		return nil
	})
}

func loadFareTransferRules(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		transferCount, err := r.optInt("transfer_count")
		if err != nil {
			return err
		}
		durationLimit, err := r.optInt("duration_limit")
		if err != nil {
			return err
		}
		durationLimitType, err := optParsePtr(r, "duration_limit_type", types.ParseDurationLimitType)
		if err != nil {
			return err
		}
		transferType, err := reqParse(r, "fare_transfer_type", types.ParseFareTransferType)
		if err != nil {
			return err
		}
		ft := schema.FareTransferRule{
			FromLegGroupID:    ids.FareLegRuleId(r.str("from_leg_group_id")),
			ToLegGroupID:      ids.FareLegRuleId(r.str("to_leg_group_id")),
			TransferCount:     transferCount,
			DurationLimit:     durationLimit,
			DurationLimitType: durationLimitType,
			FareTransferType:  transferType,
			FareProductID:     ids.FareProductId(r.str("fare_product_id")),
		}
		if err := ft.ValidateRow(); err != nil {
			return err
		}
		ds.FareTransfers = append(ds.FareTransfers, ft)
		return nil
	})
}

func loadAreas(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		a := schema.Area{
			AreaID:   ids.AreaId(r.str("area_id")),
			AreaName: r.str("area_name"),
		}
		if err := a.ValidateRow(); err != nil {
			return err
		}
		ds.Areas[a.AreaID] = a
		return nil
	})
}

func loadStopAreas(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		sa := schema.StopArea{
			AreaID: ids.AreaId(r.str("area_id")),
			StopID: ids.StopId(r.str("stop_id")),
		}
		if err := sa.ValidateRow(); err != nil {
			return err
		}
		ds.StopsAreas = append(ds.StopsAreas, sa)
		return nil
	})
}

func loadNetworks(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		n := schema.Network{
			NetworkID:   ids.NetworkId(r.str("network_id")),
			NetworkName: r.str("network_name"),
		}
		if err := n.ValidateRow(); err != nil {
			return err
		}
		ds.Networks[n.NetworkID] = n
		return nil
	})
}

func loadRouteNetworks(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		rn := schema.RouteNetwork{
			NetworkID: ids.NetworkId(r.str("network_id")),
			RouteID:   ids.RouteId(r.str("route_id")),
		}
		if err := rn.ValidateRow(); err != nil {
			return err
		}
		ds.RoutesNetworks[rn.RouteID] = rn
		return nil
	})
}

func loadShapes(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		lat, err := r.reqFloat("shape_pt_lat")
		if err != nil {
			return err
		}
		lon, err := r.reqFloat("shape_pt_lon")
		if err != nil {
			return err
		}
		seq, err := r.intOr("shape_pt_sequence", 0)
		if err != nil {
			return err
		}
		dist, err := r.optFloat("shape_dist_traveled")
		if err != nil {
			return err
		}
		s := schema.Shape{
			ShapeID:           ids.ShapeId(r.str("shape_id")),
			Point:             types.Coordinate{Latitude: lat, Longitude: lon},
			ShapePtSequence:   seq,
			ShapeDistTraveled: dist,
		}
		if err := s.ValidateRow(); err != nil {
			return err
		}
		key := dataset.ShapePointKey{ShapeID: s.ShapeID, Seq: s.ShapePtSequence}
		ds.Shapes[key] = s
		return nil
	})
}

func loadFrequencies(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		start, err := r.reqTime("start_time")
		if err != nil {
			return err
		}
		end, err := r.reqTime("end_time")
		if err != nil {
			return err
		}
		headway, err := r.intOr("headway_secs", 0)
		if err != nil {
			return err
		}
		exactTimes, err := optParseOr(r, "exact_times", types.FrequencyBased, types.ParseExactTimes)
		if err != nil {
			return err
		}
		fr := schema.Frequency{
			TripID:      ids.TripId(r.str("trip_id")),
			StartTime:   start,
			EndTime:     end,
			HeadwaySecs: headway,
			ExactTimes:  exactTimes,
		}
		if err := fr.ValidateRow(); err != nil {
			return err
		}
		key := dataset.FrequencyKey{TripID: fr.TripID, StartTime: fr.StartTime.String()}
		ds.Frequencies[key] = fr
		return nil
	})
}

func loadTransfers(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		transferType, err := optParseOr(r, "transfer_type", types.TransferRecommended, types.ParseTransferType)
		if err != nil {
			return err
		}
		minTransferTime, err := r.optInt("min_transfer_time")
		if err != nil {
			return err
		}
		t := schema.Transfer{
			FromStopID:      ids.StopId(r.str("from_stop_id")),
			ToStopID:        ids.StopId(r.str("to_stop_id")),
			FromRouteID:     ids.RouteId(r.str("from_route_id")),
			ToRouteID:       ids.RouteId(r.str("to_route_id")),
			FromTripID:      ids.TripId(r.str("from_trip_id")),
			ToTripID:        ids.TripId(r.str("to_trip_id")),
			TransferType:    transferType,
			MinTransferTime: minTransferTime,
		}
		if err := t.ValidateRow(); err != nil {
			return err
		}
		ds.Transfers = append(ds.Transfers, t)
		return nil
	})
}

func loadPathways(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		mode, err := reqParse(r, "pathway_mode", types.ParsePathwayMode)
		if err != nil {
			return err
		}
		length, err := r.optFloat("length")
		if err != nil {
			return err
		}
		traversalTime, err := r.optInt("traversal_time")
		if err != nil {
			return err
		}
		stairCount, err := r.optInt("stair_count")
		if err != nil {
			return err
		}
		maxSlope, err := r.optFloat("max_slope")
		if err != nil {
			return err
		}
		minWidth, err := r.optFloat("min_width")
		if err != nil {
			return err
		}
		p := schema.Pathway{
			PathwayID:            ids.PathwayId(r.str("pathway_id")),
			FromStopID:           ids.StopId(r.str("from_stop_id")),
			ToStopID:             ids.StopId(r.str("to_stop_id")),
			PathwayMode:          mode,
			IsBidirectional:      r.raw("is_bidirectional") == "1",
			Length:               length,
			TraversalTime:        traversalTime,
			StairCount:           stairCount,
			MaxSlope:             maxSlope,
			MinWidth:             minWidth,
			SignpostedAs:         r.str("signposted_as"),
			ReversedSignpostedAs: r.str("reversed_signposted_as"),
		}
		if err := p.ValidateRow(); err != nil {
			return err
		}
		ds.Pathways[p.PathwayID] = p
		return nil
	})
}

func loadLevels(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		index, err := r.reqFloat("level_index")
		if err != nil {
			return err
		}
		l := schema.Level{
			LevelID:    ids.LevelId(r.str("level_id")),
			LevelIndex: index,
			LevelName:  r.str("level_name"),
		}
		if err := l.ValidateRow(); err != nil {
			return err
		}
		ds.Levels[l.LevelID] = l
		return nil
	})
}

func loadLocationGroups(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		lg := schema.LocationGroup{
			LocationGroupID:   ids.LocationGroupId(r.str("location_group_id")),
			LocationGroupName: r.str("location_group_name"),
		}
		if err := lg.ValidateRow(); err != nil {
			return err
		}
		ds.LocationGroups[lg.LocationGroupID] = lg
		return nil
	})
}

func loadLocationGroupStops(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		lgs := schema.LocationGroupStop{
			LocationGroupID: ids.LocationGroupId(r.str("location_group_id")),
			StopID:          ids.StopId(r.str("stop_id")),
		}
		if err := lgs.ValidateRow(); err != nil {
			return err
		}
		ds.LocationGroupsStops = append(ds.LocationGroupsStops, lgs)
		return nil
	})
}

func loadBookingRules(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		bookingType, err := reqParse(r, "booking_type", types.ParseBookingType)
		if err != nil {
			return err
		}
		durationMin, err := r.optInt("prior_notice_duration_min")
		if err != nil {
			return err
		}
		durationMax, err := r.optInt("prior_notice_duration_max")
		if err != nil {
			return err
		}
		lastDay, err := r.optInt("prior_notice_last_day")
		if err != nil {
			return err
		}
		lastTime, err := r.optTime("prior_notice_last_time")
		if err != nil {
			return err
		}
		startDay, err := r.optInt("prior_notice_start_day")
		if err != nil {
			return err
		}
		startTime, err := r.optTime("prior_notice_start_time")
		if err != nil {
			return err
		}
		b := schema.BookingRule{
			BookingRuleID:          ids.BookingRuleId(r.str("booking_rule_id")),
			BookingType:            bookingType,
			PriorNoticeDurationMin: durationMin,
			PriorNoticeDurationMax: durationMax,
			PriorNoticeLastDay:     lastDay,
			PriorNoticeLastTime:    lastTime,
			PriorNoticeStartDay:    startDay,
			PriorNoticeStartTime:   startTime,
			PriorNoticeServiceID:   ids.ServiceId(r.str("prior_notice_service_id")),
			Message:                r.str("message"),
			PickupMessage:          r.str("pickup_message"),
			DropOffMessage:         r.str("drop_off_message"),
			PhoneNumber:            r.str("phone_number"),
			InfoURL:                r.str("info_url"),
			BookingURL:             r.str("booking_url"),
		}
		if err := b.ValidateRow(); err != nil {
			return err
		}
		ds.BookingRules[b.BookingRuleID] = b
		return nil
	})
}

func loadTranslations(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		t := schema.Translation{
			TableName:   schema.TranslatedTable(r.str("table_name")),
			FieldName:   r.str("field_name"),
			Language:    r.str("language"),
			Translation: r.str("translation"),
			RecordID:    r.optStr("record_id"),
			RecordSubID: r.optStr("record_sub_id"),
			FieldValue:  r.optStr("field_value"),
		}
		if err := t.ValidateRow(); err != nil {
			return err
		}
		ds.Translations = append(ds.Translations, t)
		return nil
	})
}

func loadFeedInfo(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		startDate, err := r.optDate("feed_start_date")
		if err != nil {
			return err
		}
		endDate, err := r.optDate("feed_end_date")
		if err != nil {
			return err
		}
		fi := schema.FeedInfo{
			FeedPublisherName: r.str("feed_publisher_name"),
			FeedPublisherURL:  r.str("feed_publisher_url"),
			FeedLang:          r.str("feed_lang"),
			DefaultLang:       r.optStr("default_lang"),
			FeedStartDate:     startDate,
			FeedEndDate:       endDate,
			FeedVersion:       r.str("feed_version"),
			FeedContactEmail:  r.str("feed_contact_email"),
			FeedContactURL:    r.str("feed_contact_url"),
		}
		if err := fi.ValidateRow(); err != nil {
			return err
		}
		ds.FeedInfo = &fi
		return nil
	})
}

func loadAttributions(f *parser.CSVFile, ds *dataset.Dataset) error {
	return readRows(f, func(r *row) error {
		a := schema.Attribution{
			AttributionID:    ids.AttributionId(r.str("attribution_id")),
			AgencyID:         ids.AgencyId(r.str("agency_id")),
			RouteID:          ids.RouteId(r.str("route_id")),
			TripID:           ids.TripId(r.str("trip_id")),
			OrganizationName: r.str("organization_name"),
			IsProducer:       r.raw("is_producer") == "1",
			IsOperator:       r.raw("is_operator") == "1",
			IsAuthority:      r.raw("is_authority") == "1",
			AttributionURL:   r.str("attribution_url"),
			AttributionEmail: r.str("attribution_email"),
			AttributionPhone: r.str("attribution_phone"),
		}
		if err := a.ValidateRow(); err != nil {
			return err
		}
		ds.Attributions = append(ds.Attributions, a)
		return nil
	})
}

// reqParse parses a required enumerated column with the given constructor.
func reqParse[T any](r *row, column string, parse func(int) (T, error)) (T, error) {
	var zero T
	n, err := r.intOr(column, -1)
	if err != nil {
		return zero, err
	}
	v, err := parse(n)
	if err != nil {
		return zero, r.parseErr(column, r.raw(column), err)
	}
	return v, nil
}

// optParseOr parses an enumerated column, defaulting to def when absent.
func optParseOr[T any](r *row, column string, def T, parse func(int) (T, error)) (T, error) {
	raw := r.raw(column)
	if raw == "" {
		return def, nil
	}
	n, err := r.intOr(column, 0)
	if err != nil {
		return def, err
	}
	v, err := parse(n)
	if err != nil {
		return def, r.parseErr(column, raw, err)
	}
	return v, nil
}

// optParsePtr parses an optional enumerated column, returning nil when absent.
func optParsePtr[T any](r *row, column string, parse func(int) (T, error)) (*T, error) {
	raw := r.raw(column)
	if raw == "" {
		return nil, nil
	}
	n, err := r.intOr(column, 0)
	if err != nil {
		return nil, err
	}
	v, err := parse(n)
	if err != nil {
		return nil, r.parseErr(column, raw, err)
	}
	return &v, nil
}
