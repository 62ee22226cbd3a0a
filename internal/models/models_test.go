package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name     string
		valid    bool
		check    func() bool
	}{
		{"vehicle type truck", true, VehicleTypeTruck.IsValid},
		{"vehicle type bogus", false, VehicleType("SCOOTER").IsValid},
		{"vehicle status transit", true, VehicleStatusTransit.IsValid},
		{"vehicle status empty", false, VehicleStatus("").IsValid},
		{"shipment status delivered", true, ShipmentStatusDelivered.IsValid},
		{"shipment status bogus", false, ShipmentStatus("LOST").IsValid},
		{"invoice status overdue", true, InvoiceStatusOverdue.IsValid},
		{"route status planned", true, RouteStatusPlanned.IsValid},
		{"maintenance type repair", true, MaintenanceTypeRepair.IsValid},
		{"maintenance status bogus", false, MaintenanceStatus("DONE").IsValid},
		{"notification error", true, NotificationError.IsValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.check())
		})
	}
}

func TestVehicleApplyIgnoresInvalidStatus(t *testing.T) {
	v := Vehicle{Status: VehicleStatusIdle, Plate: "34 ABC 123"}
	bad := VehicleStatus("FLYING")
	newPlate := "06 XYZ 999"
	v.Apply(VehicleUpdate{Status: &bad, Plate: &newPlate})

	assert.Equal(t, VehicleStatusIdle, v.Status, "invalid status must not stick")
	assert.Equal(t, "06 XYZ 999", v.Plate)
}

func TestShipmentApplyKeepsOmittedFields(t *testing.T) {
	s := Shipment{Origin: "İstanbul", Destination: "Ankara", Price: "1000.00"}
	dest := "İzmir"
	s.Apply(ShipmentUpdate{Destination: &dest})

	assert.Equal(t, "İstanbul", s.Origin)
	assert.Equal(t, "İzmir", s.Destination)
	assert.Equal(t, "1000.00", s.Price)
}

func TestInvoiceRecalculate(t *testing.T) {
	inv := Invoice{Subtotal: "1000.00", Discount: "100.00", TaxRate: 20}
	inv.Recalculate()

	assert.Equal(t, "180.00", inv.TaxAmount)
	assert.Equal(t, "1080.00", inv.Total)
}

func TestInvoiceRecalculateCoercesMalformedAmounts(t *testing.T) {
	inv := Invoice{Subtotal: "not-a-number", Discount: "", TaxRate: 20}
	inv.Recalculate()

	assert.Equal(t, "0.00", inv.TaxAmount)
	assert.Equal(t, "0.00", inv.Total)
}

func TestInvoiceNumberFormat(t *testing.T) {
	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "FTR-2026-0042", InvoiceNumberFor(42, issued))
	assert.Equal(t, "FTR-2026-12345", InvoiceNumberFor(12345, issued))
}

func TestFuelApplyRecomputesTotal(t *testing.T) {
	f := FuelRecord{Liters: 100, PricePerLiter: 40, TotalCost: 4000}
	liters := 50.0
	f.Apply(FuelUpdate{Liters: &liters})

	assert.Equal(t, 2000.0, f.TotalCost)

	station := "Shell Bolu Dağı"
	f.Apply(FuelUpdate{Station: &station})
	assert.Equal(t, 2000.0, f.TotalCost, "total untouched when amounts unchanged")
}

func TestMaintenanceApplyKeepsOmittedCompletedDate(t *testing.T) {
	done := time.Now()
	m := MaintenanceRecord{Status: MaintenanceStatusCompleted, CompletedDate: &done}

	status := MaintenanceStatusInProgress
	m.Apply(MaintenanceUpdate{Status: &status})
	assert.NotNil(t, m.CompletedDate, "omitted field keeps prior value")
}

// The merge payload distinguishes three field states: absent keeps the
// prior value, explicit null clears, and a value replaces.
func TestMaintenanceUpdateNullClearsCompletedDate(t *testing.T) {
	done := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	m := MaintenanceRecord{Status: MaintenanceStatusCompleted, CompletedDate: &done}

	var u MaintenanceUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"completed_date": null}`), &u))
	assert.True(t, u.CompletedDate.Set)
	assert.False(t, u.CompletedDate.Valid)

	m.Apply(u)
	assert.Nil(t, m.CompletedDate)

	var set MaintenanceUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"completed_date": "2026-08-15T00:00:00Z"}`), &set))
	m.Apply(set)
	require.NotNil(t, m.CompletedDate)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *m.CompletedDate)
}

func TestShipmentUpdateNullVersusOmitted(t *testing.T) {
	vid := 4
	s := Shipment{VehicleID: &vid, Photos: []string{"damage.jpg"}, Origin: "Adana"}

	var omitted ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"origin": "Mersin"}`), &omitted))
	s.Apply(omitted)
	require.NotNil(t, s.VehicleID, "untouched when the field is absent")
	assert.Equal(t, 4, *s.VehicleID)

	var nulled ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"vehicle_id": null, "photos": null}`), &nulled))
	s.Apply(nulled)
	assert.Nil(t, s.VehicleID)
	assert.Nil(t, s.Photos)
	assert.Equal(t, "Mersin", s.Origin)
}

func TestRouteUpdateNullClearsAssignments(t *testing.T) {
	vid, did := 2, 5
	r := Route{VehicleID: &vid, DriverID: &did}

	var u RouteUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"vehicle_id": null, "driver_id": 7}`), &u))
	r.Apply(u)

	assert.Nil(t, r.VehicleID)
	require.NotNil(t, r.DriverID)
	assert.Equal(t, 7, *r.DriverID)
}
