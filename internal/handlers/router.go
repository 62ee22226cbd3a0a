package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the full route table under the given base path. Every
// endpoint mirrors the wire contract the UI expects from a real backend.
func (a *API) Router(basePath string) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/health", a.Health).Methods(http.MethodGet)

	api := r.PathPrefix(basePath).Subrouter()

	api.HandleFunc("/auth/login/", a.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh/", a.RefreshToken).Methods(http.MethodPost)

	api.HandleFunc("/vehicles/", a.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/", a.CreateVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id:[0-9]+}/", a.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}/", a.UpdateVehicle).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/vehicles/{id:[0-9]+}/", a.DeleteVehicle).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id:[0-9]+}/latest_location/", a.LatestVehicleLocation).Methods(http.MethodGet)

	api.HandleFunc("/drivers/", a.ListDrivers).Methods(http.MethodGet)
	api.HandleFunc("/drivers/", a.CreateDriver).Methods(http.MethodPost)
	api.HandleFunc("/drivers/{id:[0-9]+}/", a.GetDriver).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id:[0-9]+}/", a.UpdateDriver).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/drivers/{id:[0-9]+}/", a.DeleteDriver).Methods(http.MethodDelete)

	api.HandleFunc("/shipments/", a.ListShipments).Methods(http.MethodGet)
	api.HandleFunc("/shipments/", a.CreateShipment).Methods(http.MethodPost)
	api.HandleFunc("/shipments/track/{token}/", a.TrackShipment).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id:[0-9]+}/", a.GetShipment).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id:[0-9]+}/", a.UpdateShipment).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/shipments/{id:[0-9]+}/", a.DeleteShipment).Methods(http.MethodDelete)
	api.HandleFunc("/track/{token}/", a.TrackShipment).Methods(http.MethodGet)

	api.HandleFunc("/customers/", a.ListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/", a.CreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id:[0-9]+}/", a.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}/", a.UpdateCustomer).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/customers/{id:[0-9]+}/", a.DeleteCustomer).Methods(http.MethodDelete)

	api.HandleFunc("/invoices/", a.ListInvoices).Methods(http.MethodGet)
	api.HandleFunc("/invoices/", a.CreateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id:[0-9]+}/", a.GetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id:[0-9]+}/", a.UpdateInvoice).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/invoices/{id:[0-9]+}/", a.DeleteInvoice).Methods(http.MethodDelete)
	api.HandleFunc("/invoices/{id:[0-9]+}/mark_paid/", a.MarkInvoicePaid).Methods(http.MethodPost)

	api.HandleFunc("/routes/", a.ListRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes/", a.CreateRoute).Methods(http.MethodPost)
	api.HandleFunc("/routes/{id:[0-9]+}/", a.GetRoute).Methods(http.MethodGet)
	api.HandleFunc("/routes/{id:[0-9]+}/", a.UpdateRoute).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/routes/{id:[0-9]+}/", a.DeleteRoute).Methods(http.MethodDelete)
	api.HandleFunc("/routes/{id:[0-9]+}/optimize/", a.OptimizeRoute).Methods(http.MethodPost)

	api.HandleFunc("/maintenance/", a.ListMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/", a.CreateMaintenance).Methods(http.MethodPost)
	api.HandleFunc("/maintenance/archive/{id:[0-9]+}/", a.ArchivedMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id:[0-9]+}/", a.GetMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id:[0-9]+}/", a.UpdateMaintenance).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/maintenance/{id:[0-9]+}/", a.DeleteMaintenance).Methods(http.MethodDelete)

	api.HandleFunc("/fuel/", a.ListFuelRecords).Methods(http.MethodGet)
	api.HandleFunc("/fuel/", a.CreateFuelRecord).Methods(http.MethodPost)
	api.HandleFunc("/fuel/{id:[0-9]+}/", a.GetFuelRecord).Methods(http.MethodGet)
	api.HandleFunc("/fuel/{id:[0-9]+}/", a.UpdateFuelRecord).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/fuel/{id:[0-9]+}/", a.DeleteFuelRecord).Methods(http.MethodDelete)

	api.HandleFunc("/notifications/", a.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/mark_all_read/", a.MarkAllNotificationsRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id:[0-9]+}/", a.GetNotification).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/", a.DeleteNotification).Methods(http.MethodDelete)
	api.HandleFunc("/notifications/{id:[0-9]+}/mark_read/", a.MarkNotificationRead).Methods(http.MethodPost)

	return r
}

// Health reports store sizes and simulator state; handy for smoke checks
// and the UI's connectivity probe.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	a.store.RLock()
	counts := map[string]int{
		"vehicles":      len(a.store.Vehicles),
		"drivers":       len(a.store.Drivers),
		"shipments":     len(a.store.Shipments),
		"customers":     len(a.store.Customers),
		"invoices":      len(a.store.Invoices),
		"routes":        len(a.store.Routes),
		"maintenance":   len(a.store.Maintenance),
		"fuel_records":  len(a.store.FuelRecords),
		"notifications": len(a.store.Notifications),
		"locations":     len(a.store.Locations),
	}
	a.store.RUnlock()

	resp := map[string]any{
		"status": "ok",
		"counts": counts,
	}
	if a.simStatus != nil {
		resp["simulator_running"] = a.simStatus()
	}
	a.writeJSON(w, http.StatusOK, resp)
}
