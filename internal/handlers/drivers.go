package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// ListDrivers handles GET /drivers/ with search (name, phone, license)
// and the is_available filter.
func (a *API) ListDrivers(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Driver(nil), a.store.Drivers...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(d models.Driver) []string {
		return []string{d.Name, d.Phone, d.LicenseNumber}
	})
	items = store.FilterByField(items, q.Get("is_available"), func(d models.Driver) string {
		return strconv.FormatBool(d.IsAvailable)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetDriver(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Drivers {
		if a.store.Drivers[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Drivers[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Driver %d not found.", id))
}

func (a *API) CreateDriver(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var d models.Driver
	decode(r, &d)

	a.store.Lock()
	d.ID = a.store.NextID()
	d.CreatedAt = a.now()
	a.store.Drivers = append(a.store.Drivers, d)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, d)
}

func (a *API) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.DriverUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Drivers {
		if a.store.Drivers[i].ID == id {
			a.store.Drivers[i].Apply(u)
			a.writeJSON(w, http.StatusOK, a.store.Drivers[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Driver %d not found.", id))
}

func (a *API) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Drivers {
		if a.store.Drivers[i].ID == id {
			a.store.Drivers = append(a.store.Drivers[:i], a.store.Drivers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Driver %d not found.", id))
}
