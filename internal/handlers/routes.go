package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListRoutes(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Route(nil), a.store.Routes...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(rt models.Route) []string {
		return []string{rt.Name, rt.VehiclePlate, rt.DriverName}
	})
	items = store.FilterByField(items, q.Get("status"), func(rt models.Route) string {
		return string(rt.Status)
	})
	items = store.FilterByField(items, intFilterValue(q.Get("vehicle_id")), func(rt models.Route) string {
		if rt.VehicleID == nil {
			return ""
		}
		return strconv.Itoa(*rt.VehicleID)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetRoute(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Routes {
		if a.store.Routes[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Routes[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Route %d not found.", id))
}

// CreateRoute denormalizes vehicle/driver names, derives stop endpoints
// from linked shipments and fills the aggregate distance/duration with
// random placeholders, exactly like the demo backend it stands in for.
func (a *API) CreateRoute(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var rt models.Route
	decode(r, &rt)

	if !rt.Status.IsValid() {
		rt.Status = models.RouteStatusPlanned
	}

	a.store.Lock()
	rt.ID = a.store.NextID()
	rt.CreatedAt = a.now()
	rt.VehiclePlate = a.plateFor(rt.VehicleID)
	rt.DriverName = a.driverNameFor(rt.DriverID)
	a.deriveStops(rt.Stops)
	if rt.TotalDistanceKm == 0 {
		rt.TotalDistanceKm = round2(150 + a.randFloat64()*800)
	}
	if rt.TotalDurationMin == 0 {
		rt.TotalDurationMin = round2(120 + a.randFloat64()*600)
	}
	a.store.Routes = append(a.store.Routes, rt)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, rt)
}

func (a *API) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.RouteUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Routes {
		rt := &a.store.Routes[i]
		if rt.ID != id {
			continue
		}
		rt.Apply(u)
		if u.VehicleID.Set {
			rt.VehiclePlate = a.plateFor(rt.VehicleID)
		}
		if u.DriverID.Set {
			rt.DriverName = a.driverNameFor(rt.DriverID)
		}
		if u.Stops != nil {
			a.deriveStops(rt.Stops)
		}
		a.writeJSON(w, http.StatusOK, *rt)
		return
	}
	a.notFound(w, fmt.Sprintf("Route %d not found.", id))
}

func (a *API) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Routes {
		if a.store.Routes[i].ID == id {
			a.store.Routes = append(a.store.Routes[:i], a.store.Routes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Route %d not found.", id))
}

// OptimizeRoute handles POST /routes/{id}/optimize/. Each call shrinks
// the stored distance by 15% and the duration by 13%; calling it again
// compounds the reduction on the already-shrunk values. That matches the
// backend being emulated, so it stays.
func (a *API) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Routes {
		rt := &a.store.Routes[i]
		if rt.ID != id {
			continue
		}
		rt.TotalDistanceKm = round2(rt.TotalDistanceKm * 0.85)
		rt.TotalDurationMin = round2(rt.TotalDurationMin * 0.87)
		a.writeJSON(w, http.StatusOK, *rt)
		return
	}
	a.notFound(w, fmt.Sprintf("Route %d not found.", id))
}

// deriveStops fills each stop's origin/destination from its linked
// shipment when one is referenced. Caller must hold the store lock.
func (a *API) deriveStops(stops []models.RouteStop) {
	for i := range stops {
		if stops[i].ShipmentID == nil {
			continue
		}
		for j := range a.store.Shipments {
			if a.store.Shipments[j].ID == *stops[i].ShipmentID {
				stops[i].Origin = a.store.Shipments[j].Origin
				stops[i].Destination = a.store.Shipments[j].Destination
				break
			}
		}
	}
}

// driverNameFor resolves a driver id for denormalized copies. Caller must
// hold the store lock.
func (a *API) driverNameFor(driverID *int) string {
	if driverID == nil {
		return ""
	}
	for i := range a.store.Drivers {
		if a.store.Drivers[i].ID == *driverID {
			return a.store.Drivers[i].Name
		}
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
