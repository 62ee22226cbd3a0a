package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// ListVehicles handles GET /vehicles/ with search (plate, brand), exact
// filters (status, vehicle_type) and pagination.
func (a *API) ListVehicles(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Vehicle(nil), a.store.Vehicles...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(v models.Vehicle) []string {
		return []string{v.Plate, v.Brand}
	})
	items = store.FilterByField(items, q.Get("status"), func(v models.Vehicle) string {
		return string(v.Status)
	})
	items = store.FilterByField(items, q.Get("vehicle_type"), func(v models.Vehicle) string {
		return string(v.VehicleType)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetVehicle(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Vehicles {
		if a.store.Vehicles[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Vehicles[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Vehicle %d not found.", id))
}

func (a *API) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var v models.Vehicle
	decode(r, &v)

	if !v.VehicleType.IsValid() {
		v.VehicleType = models.VehicleTypeTruck
	}
	if !v.Status.IsValid() {
		v.Status = models.VehicleStatusIdle
	}

	a.store.Lock()
	v.ID = a.store.NextID()
	v.CreatedAt = a.now()
	a.store.Vehicles = append(a.store.Vehicles, v)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, v)
}

// UpdateVehicle serves both PUT and PATCH with the same merge-by-field
// semantics: omitted fields keep their prior value. Denormalized plate
// copies held by drivers, shipments and maintenance records are not
// refreshed here.
func (a *API) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.VehicleUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Vehicles {
		if a.store.Vehicles[i].ID == id {
			a.store.Vehicles[i].Apply(u)
			a.writeJSON(w, http.StatusOK, a.store.Vehicles[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Vehicle %d not found.", id))
}

func (a *API) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Vehicles {
		if a.store.Vehicles[i].ID == id {
			a.store.Vehicles = append(a.store.Vehicles[:i], a.store.Vehicles[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Vehicle %d not found.", id))
}

// LatestVehicleLocation handles GET /vehicles/{id}/latest_location/. It
// returns the newest location sample for the vehicle, falling back to the
// vehicle's current coordinates when the simulator has not produced a
// sample yet.
func (a *API) LatestVehicleLocation(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()

	var vehicle *models.Vehicle
	for i := range a.store.Vehicles {
		if a.store.Vehicles[i].ID == id {
			vehicle = &a.store.Vehicles[i]
			break
		}
	}
	if vehicle == nil {
		a.notFound(w, fmt.Sprintf("Vehicle %d not found.", id))
		return
	}

	for i := len(a.store.Locations) - 1; i >= 0; i-- {
		if a.store.Locations[i].VehicleID == id {
			a.writeJSON(w, http.StatusOK, a.store.Locations[i])
			return
		}
	}

	a.writeJSON(w, http.StatusOK, models.LocationSample{
		VehicleID:  vehicle.ID,
		Latitude:   vehicle.Latitude,
		Longitude:  vehicle.Longitude,
		RecordedAt: a.now(),
	})
}

// intFilterValue normalizes an integer query parameter for exact-match
// filtering; non-numeric input filters nothing out, matching the
// permissive contract.
func intFilterValue(raw string) string {
	if raw == "" {
		return ""
	}
	if _, err := strconv.Atoi(raw); err != nil {
		return ""
	}
	return raw
}
