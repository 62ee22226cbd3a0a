// Package store holds the in-memory fixture dataset backing the demo API.
//
// The store owns one ordered collection per entity kind and is shared by
// the request handlers and the route simulator. A single RWMutex guards
// all collections: every handler operation and every simulator tick takes
// the lock for its whole read-modify-write sequence, so each call is
// atomic with respect to the others while no ordering is guaranteed across
// calls. There are no transactions and nothing is ever persisted; the
// store lives exactly as long as the process.
package store

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

// Store is the mutable fixture dataset. Callers must hold the embedded
// lock (read or write as appropriate) while touching any collection.
type Store struct {
	sync.RWMutex

	Vehicles           []models.Vehicle
	Drivers            []models.Driver
	Shipments          []models.Shipment
	Customers          []models.Customer
	Invoices           []models.Invoice
	Routes             []models.Route
	Maintenance        []models.MaintenanceRecord
	MaintenanceArchive []models.ArchivedMaintenance
	FuelRecords        []models.FuelRecord
	Notifications      []models.Notification
	Locations          []models.LocationSample

	nextID atomic.Int64
}

// New returns an empty store whose id allocator starts at 1. Call Seed to
// populate it with fixture data.
func New() *Store {
	s := &Store{}
	s.nextID.Store(0)
	return s
}

// NextID returns a strictly increasing integer on every call. Ids are
// never reused and never persisted across restarts. No collision check is
// made against records inserted manually after startup.
func (s *Store) NextID() int {
	return int(s.nextID.Add(1))
}

// bumpNextID raises the allocator floor so the next id is above the given
// value. Used by seeding.
func (s *Store) bumpNextID(id int) {
	for {
		cur := s.nextID.Load()
		if int64(id) <= cur || s.nextID.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}

// Seed populates the store from the fixture generators. Intended to run
// exactly once at startup; the generators use the supplied rng for
// coordinates and costs, so an unseeded source gives different data per
// run.
func (s *Store) Seed(rng *rand.Rand) {
	s.Lock()
	defer s.Unlock()

	s.Vehicles = seedVehicles(rng)
	s.Drivers = seedDrivers()
	s.Customers = seedCustomers()
	s.Shipments = seedShipments(rng)
	s.Invoices = seedInvoices(rng)
	s.Routes = seedRoutes(rng)
	s.Maintenance = seedMaintenance(rng)
	s.MaintenanceArchive = seedMaintenanceArchive(rng)
	s.FuelRecords = seedFuelRecords(rng)
	s.Notifications = seedNotifications()
	s.Locations = nil

	max := 0
	for _, v := range s.Vehicles {
		max = maxInt(max, v.ID)
	}
	for _, d := range s.Drivers {
		max = maxInt(max, d.ID)
	}
	for _, c := range s.Customers {
		max = maxInt(max, c.ID)
	}
	for _, sh := range s.Shipments {
		max = maxInt(max, sh.ID)
	}
	for _, i := range s.Invoices {
		max = maxInt(max, i.ID)
	}
	for _, r := range s.Routes {
		max = maxInt(max, r.ID)
	}
	for _, m := range s.Maintenance {
		max = maxInt(max, m.ID)
	}
	for _, m := range s.MaintenanceArchive {
		max = maxInt(max, m.ID)
	}
	for _, f := range s.FuelRecords {
		max = maxInt(max, f.ID)
	}
	for _, n := range s.Notifications {
		max = maxInt(max, n.ID)
	}
	s.bumpNextID(max)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
