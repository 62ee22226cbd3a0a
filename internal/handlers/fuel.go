package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListFuelRecords(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.FuelRecord(nil), a.store.FuelRecords...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(f models.FuelRecord) []string {
		return []string{f.Station}
	})
	items = store.FilterByField(items, intFilterValue(q.Get("vehicle_id")), func(f models.FuelRecord) string {
		return strconv.Itoa(f.VehicleID)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetFuelRecord(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.FuelRecords {
		if a.store.FuelRecords[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.FuelRecords[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Fuel record %d not found.", id))
}

// CreateFuelRecord derives the total cost from liters and price-per-liter;
// missing numeric fields default to zero rather than erroring.
func (a *API) CreateFuelRecord(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var f models.FuelRecord
	decode(r, &f)

	f.TotalCost = math.Round(f.Liters*f.PricePerLiter*100) / 100

	a.store.Lock()
	f.ID = a.store.NextID()
	now := a.now()
	if f.Date.IsZero() {
		f.Date = now
	}
	f.CreatedAt = now
	a.store.FuelRecords = append(a.store.FuelRecords, f)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, f)
}

func (a *API) UpdateFuelRecord(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.FuelUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.FuelRecords {
		if a.store.FuelRecords[i].ID == id {
			a.store.FuelRecords[i].Apply(u)
			a.writeJSON(w, http.StatusOK, a.store.FuelRecords[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Fuel record %d not found.", id))
}

func (a *API) DeleteFuelRecord(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.FuelRecords {
		if a.store.FuelRecords[i].ID == id {
			a.store.FuelRecords = append(a.store.FuelRecords[:i], a.store.FuelRecords[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Fuel record %d not found.", id))
}
