package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListInvoices(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Invoice(nil), a.store.Invoices...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(i models.Invoice) []string {
		return []string{i.InvoiceNumber, i.CustomerName}
	})
	items = store.FilterByField(items, q.Get("status"), func(i models.Invoice) string {
		return string(i.Status)
	})
	items = store.FilterByField(items, intFilterValue(q.Get("customer_id")), func(i models.Invoice) string {
		return strconv.Itoa(i.CustomerID)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetInvoice(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Invoices {
		if a.store.Invoices[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Invoices[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Invoice %d not found.", id))
}

// CreateInvoice derives the document number from the allocated id and
// computes subtotal from the linked shipment's price, tax from the
// discounted subtotal and the rate, and the grand total.
func (a *API) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var inv models.Invoice
	decode(r, &inv)

	if !inv.Status.IsValid() {
		inv.Status = models.InvoiceStatusDraft
	}
	if inv.Discount == "" {
		inv.Discount = "0.00"
	}

	a.store.Lock()
	inv.ID = a.store.NextID()
	now := a.now()
	inv.InvoiceNumber = models.InvoiceNumberFor(inv.ID, now)
	if inv.IssuedDate.IsZero() {
		inv.IssuedDate = now
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = now.AddDate(0, 1, 0)
	}
	inv.CreatedAt = now

	inv.CustomerName = ""
	for i := range a.store.Customers {
		if a.store.Customers[i].ID == inv.CustomerID {
			inv.CustomerName = a.store.Customers[i].Name
			break
		}
	}
	inv.Subtotal = "0.00"
	for i := range a.store.Shipments {
		if a.store.Shipments[i].ID == inv.ShipmentID {
			inv.Subtotal = models.FormatAmount(models.ParseAmount(a.store.Shipments[i].Price))
			break
		}
	}
	inv.Recalculate()
	a.store.Invoices = append(a.store.Invoices, inv)
	a.store.Unlock()

	a.writeJSON(w, http.StatusCreated, inv)
}

// UpdateInvoice serves PUT and PATCH. Touching the shipment reference,
// discount or tax rate recomputes the monetary fields.
func (a *API) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)
	var u models.InvoiceUpdate
	decode(r, &u)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Invoices {
		inv := &a.store.Invoices[i]
		if inv.ID != id {
			continue
		}
		inv.Apply(u)
		if u.CustomerID != nil {
			inv.CustomerName = ""
			for j := range a.store.Customers {
				if a.store.Customers[j].ID == inv.CustomerID {
					inv.CustomerName = a.store.Customers[j].Name
					break
				}
			}
		}
		if u.ShipmentID != nil {
			inv.Subtotal = "0.00"
			for j := range a.store.Shipments {
				if a.store.Shipments[j].ID == inv.ShipmentID {
					inv.Subtotal = models.FormatAmount(models.ParseAmount(a.store.Shipments[j].Price))
					break
				}
			}
		}
		if u.ShipmentID != nil || u.Discount != nil || u.TaxRate != nil {
			inv.Recalculate()
		}
		a.writeJSON(w, http.StatusOK, *inv)
		return
	}
	a.notFound(w, fmt.Sprintf("Invoice %d not found.", id))
}

func (a *API) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Invoices {
		if a.store.Invoices[i].ID == id {
			a.store.Invoices = append(a.store.Invoices[:i], a.store.Invoices[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Invoice %d not found.", id))
}

// MarkInvoicePaid handles POST /invoices/{id}/mark_paid/ with a direct
// status flip.
func (a *API) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Invoices {
		if a.store.Invoices[i].ID == id {
			a.store.Invoices[i].Status = models.InvoiceStatusPaid
			a.writeJSON(w, http.StatusOK, a.store.Invoices[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Invoice %d not found.", id))
}
