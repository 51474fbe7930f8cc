package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-dataset/dataset"
	"github.com/transitdata/gtfs-dataset/schema"
	"github.com/transitdata/gtfs-dataset/types"
)

func TestValidateRows_PassesOnWellFormedDataset(t *testing.T) {
	ds := dataset.New()
	ds.Agencies = []schema.Agency{basicAgency("1")}
	coord := types.Coordinate{Latitude: 47.6, Longitude: -122.3}
	ds.Stops["s1"] = schema.Stop{StopID: "s1", LocationType: types.LocationStopOrPlatform, StopName: "Main St", Coordinate: &coord}

	require.NoError(t, ValidateRows(ds))
}

func TestValidateRows_SurfacesFirstAgencyFailure(t *testing.T) {
	ds := dataset.New()
	ds.Agencies = []schema.Agency{{AgencyID: "1"}} // missing agency_name

	err := ValidateRows(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agency_name")
}

func TestValidateRows_StopsBeforeRoutes(t *testing.T) {
	ds := dataset.New()
	ds.Stops["s1"] = schema.Stop{} // missing stop_id
	ds.Routes["r1"] = schema.Route{}

	err := ValidateRows(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop_id")
}
