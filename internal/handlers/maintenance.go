package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.MaintenanceRecord(nil), a.store.Maintenance...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(m models.MaintenanceRecord) []string {
		return []string{m.VehiclePlate, m.Notes}
	})
	items = store.FilterByField(items, q.Get("status"), func(m models.MaintenanceRecord) string {
		return string(m.Status)
	})
	items = store.FilterByField(items, q.Get("maintenance_type"), func(m models.MaintenanceRecord) string {
		return string(m.MaintenanceType)
	})
	items = store.FilterByField(items, intFilterValue(q.Get("vehicle_id")), func(m models.MaintenanceRecord) string {
		return strconv.Itoa(m.VehicleID)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Maintenance {
		if a.store.Maintenance[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Maintenance[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Maintenance record %d not found.", id))
}

func (a *API) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var m models.MaintenanceRecord
	decode(r, &m)

	if !m.MaintenanceType.IsValid() {
		m.MaintenanceType = models.MaintenanceTypeService
	}
	if !m.Status.IsValid() {
		m.Status = models.MaintenanceStatusScheduled
	}
	if m.Cost == "" {
		m.Cost = "0.00"
	}

	a.store.Lock()
	m.ID = a.store.NextID()
	m.CreatedAt = a.now()
	vid := m.VehicleID
	m.VehiclePlate = a.plateFor(&vid)
	a.store.Maintenance = append(a.store.Maintenance, m)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, m)
}

func (a *API) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.MaintenanceUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Maintenance {
		m := &a.store.Maintenance[i]
		if m.ID != id {
			continue
		}
		m.Apply(u)
		if u.VehicleID != nil {
			vid := m.VehicleID
			m.VehiclePlate = a.plateFor(&vid)
		}
		a.writeJSON(w, http.StatusOK, *m)
		return
	}
	a.notFound(w, fmt.Sprintf("Maintenance record %d not found.", id))
}

func (a *API) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Maintenance {
		if a.store.Maintenance[i].ID == id {
			a.store.Maintenance = append(a.store.Maintenance[:i], a.store.Maintenance[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Maintenance record %d not found.", id))
}

// ArchivedMaintenance handles GET /maintenance/archive/{id}/ where the id
// is a vehicle id. The archive is a cold collection returned wholesale,
// without pagination, simulating the slower rarely-used path of a real
// backend.
func (a *API) ArchivedMaintenance(w http.ResponseWriter, r *http.Request) {
	a.delay()
	vehicleID := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	out := make([]models.ArchivedMaintenance, 0)
	for i := range a.store.MaintenanceArchive {
		if a.store.MaintenanceArchive[i].VehicleID == vehicleID {
			out = append(out, a.store.MaintenanceArchive[i])
		}
	}
	a.writeJSON(w, http.StatusOK, out)
}
