package handlers

import (
	"fmt"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListCustomers(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Customer(nil), a.store.Customers...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(c models.Customer) []string {
		return []string{c.Name, c.Email, c.Phone}
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetCustomer(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Customers {
		if a.store.Customers[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Customers[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Customer %d not found.", id))
}

func (a *API) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var c models.Customer
	decode(r, &c)

	a.store.Lock()
	c.ID = a.store.NextID()
	c.TotalShipments = 0
	c.CreatedAt = a.now()
	a.store.Customers = append(a.store.Customers, c)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, c)
}

func (a *API) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.CustomerUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Customers {
		if a.store.Customers[i].ID == id {
			a.store.Customers[i].Apply(u)
			a.writeJSON(w, http.StatusOK, a.store.Customers[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Customer %d not found.", id))
}

func (a *API) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Customers {
		if a.store.Customers[i].ID == id {
			a.store.Customers = append(a.store.Customers[:i], a.store.Customers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Customer %d not found.", id))
}
