package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

func TestLatestVehicleLocationFallsBackToVehicle(t *testing.T) {
	e := newTestEnv(t)
	v := models.Vehicle{
		ID: e.st.NextID(), Plate: "34 LOC 001",
		Status: models.VehicleStatusTransit, Latitude: 39.93, Longitude: 32.86,
	}
	e.st.Vehicles = append(e.st.Vehicles, v)

	rec := e.do(t, http.MethodGet, "/api/vehicles/1/latest_location/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	loc := decodeAs[models.LocationSample](t, rec)
	assert.Equal(t, v.ID, loc.VehicleID)
	assert.Equal(t, 39.93, loc.Latitude)
	assert.Equal(t, 32.86, loc.Longitude)
	assert.Zero(t, loc.ID, "synthetic sample carries no allocated id")
}

func TestLatestVehicleLocationPrefersNewestSample(t *testing.T) {
	e := newTestEnv(t)
	v := e.addVehicle("34 LOC 002")
	other := e.addVehicle("06 LOC 003")

	base := time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC)
	e.st.Locations = append(e.st.Locations,
		models.LocationSample{ID: e.st.NextID(), VehicleID: v.ID, Latitude: 1, RecordedAt: base},
		models.LocationSample{ID: e.st.NextID(), VehicleID: v.ID, Latitude: 2, RecordedAt: base.Add(3 * time.Second)},
		models.LocationSample{ID: e.st.NextID(), VehicleID: other.ID, Latitude: 9, RecordedAt: base.Add(6 * time.Second)},
	)

	rec := e.do(t, http.MethodGet, "/api/vehicles/1/latest_location/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	loc := decodeAs[models.LocationSample](t, rec)
	assert.Equal(t, v.ID, loc.VehicleID)
	assert.Equal(t, 2.0, loc.Latitude, "newest sample for this vehicle, not another's")
}

func TestListVehiclesFilters(t *testing.T) {
	e := newTestEnv(t)
	e.st.Vehicles = append(e.st.Vehicles,
		models.Vehicle{ID: e.st.NextID(), Plate: "34 KRG 100", Status: models.VehicleStatusTransit, VehicleType: models.VehicleTypeTruck},
		models.Vehicle{ID: e.st.NextID(), Plate: "06 VAN 200", Status: models.VehicleStatusIdle, VehicleType: models.VehicleTypeVan},
		models.Vehicle{ID: e.st.NextID(), Plate: "35 KRG 300", Status: models.VehicleStatusTransit, VehicleType: models.VehicleTypeTruck},
	)

	page := decodeAs[pageOfVehicles](t, e.do(t, http.MethodGet, "/api/vehicles/?status=TRANSIT", nil))
	assert.Equal(t, 2, page.Count)

	page = decodeAs[pageOfVehicles](t, e.do(t, http.MethodGet, "/api/vehicles/?search=KRG&vehicle_type=TRUCK", nil))
	assert.Equal(t, 2, page.Count)

	page = decodeAs[pageOfVehicles](t, e.do(t, http.MethodGet, "/api/vehicles/?search=krg", nil))
	assert.Equal(t, 2, page.Count, "search is case-insensitive")

	page = decodeAs[pageOfVehicles](t, e.do(t, http.MethodGet, "/api/vehicles/?status=NO_SUCH", nil))
	assert.Equal(t, 0, page.Count)
	assert.NotNil(t, page.Results, "results renders as [] rather than null")
}

type pageOfVehicles struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []models.Vehicle `json:"results"`
}
