package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// ListShipments handles GET /shipments/ with search (origin, destination,
// customer name, tracking token) and exact filters (status, customer_id,
// vehicle_id).
func (a *API) ListShipments(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Shipment(nil), a.store.Shipments...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(s models.Shipment) []string {
		return []string{s.Origin, s.Destination, s.CustomerName, s.TrackingToken}
	})
	items = store.FilterByField(items, q.Get("status"), func(s models.Shipment) string {
		return string(s.Status)
	})
	items = store.FilterByField(items, intFilterValue(q.Get("customer_id")), func(s models.Shipment) string {
		return strconv.Itoa(s.CustomerID)
	})
	items = store.FilterByField(items, intFilterValue(q.Get("vehicle_id")), func(s models.Shipment) string {
		if s.VehicleID == nil {
			return ""
		}
		return strconv.Itoa(*s.VehicleID)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetShipment(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Shipments {
		if a.store.Shipments[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Shipments[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Shipment %d not found.", id))
}

// CreateShipment mints an immutable tracking token, denormalizes the
// customer name and vehicle plate, and bumps the customer's running
// shipment counter.
func (a *API) CreateShipment(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var s models.Shipment
	decode(r, &s)

	if !s.Status.IsValid() {
		s.Status = models.ShipmentStatusPending
	}

	a.store.Lock()
	s.ID = a.store.NextID()
	s.TrackingToken = a.newToken()
	s.CreatedAt = a.now()
	s.CustomerName = ""
	for i := range a.store.Customers {
		if a.store.Customers[i].ID == s.CustomerID {
			s.CustomerName = a.store.Customers[i].Name
			a.store.Customers[i].TotalShipments++
			break
		}
	}
	s.VehiclePlate = a.plateFor(s.VehicleID)
	a.store.Shipments = append(a.store.Shipments, s)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, s)
}

// UpdateShipment serves PUT and PATCH. Changing the customer or vehicle
// reference re-caches the denormalized name/plate; the shipment counter is
// only ever touched at creation.
func (a *API) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.ShipmentUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Shipments {
		s := &a.store.Shipments[i]
		if s.ID != id {
			continue
		}
		s.Apply(u)
		if u.CustomerID != nil {
			s.CustomerName = ""
			for j := range a.store.Customers {
				if a.store.Customers[j].ID == s.CustomerID {
					s.CustomerName = a.store.Customers[j].Name
					break
				}
			}
		}
		if u.VehicleID.Set {
			s.VehiclePlate = a.plateFor(s.VehicleID)
		}
		a.writeJSON(w, http.StatusOK, *s)
		return
	}
	a.notFound(w, fmt.Sprintf("Shipment %d not found.", id))
}

func (a *API) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Shipments {
		if a.store.Shipments[i].ID == id {
			a.store.Shipments = append(a.store.Shipments[:i], a.store.Shipments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Shipment %d not found.", id))
}

// TrackShipment handles the public, unauthenticated tracking endpoints.
// It returns a reduced field subset keyed by the opaque token.
func (a *API) TrackShipment(w http.ResponseWriter, r *http.Request) {
	a.delay()
	token := mux.Vars(r)["token"]

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Shipments {
		if a.store.Shipments[i].TrackingToken == token && token != "" {
			a.writeJSON(w, http.StatusOK, a.store.Shipments[i].Tracked())
			return
		}
	}
	a.notFound(w, "No shipment matches this tracking code.")
}

// plateFor resolves a vehicle id to its plate for denormalized copies.
// Caller must hold the store lock.
func (a *API) plateFor(vehicleID *int) string {
	if vehicleID == nil {
		return ""
	}
	for i := range a.store.Vehicles {
		if a.store.Vehicles[i].ID == *vehicleID {
			return a.store.Vehicles[i].Plate
		}
	}
	return ""
}
