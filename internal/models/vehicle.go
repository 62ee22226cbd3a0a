package models

import "time"

// VehicleType classifies a fleet vehicle.
type VehicleType string

const (
	VehicleTypeTruck  VehicleType = "TRUCK"
	VehicleTypeLorry  VehicleType = "LORRY"
	VehicleTypeVan    VehicleType = "VAN"
	VehicleTypePickup VehicleType = "PICKUP"
)

// IsValid checks if a vehicle type is one of the known types.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeLorry, VehicleTypeVan, VehicleTypePickup:
		return true
	default:
		return false
	}
}

// VehicleStatus is the operational state of a vehicle. Only TRANSIT
// vehicles are moved by the route simulator.
type VehicleStatus string

const (
	VehicleStatusIdle        VehicleStatus = "IDLE"
	VehicleStatusTransit     VehicleStatus = "TRANSIT"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// IsValid checks if a vehicle status is one of the known statuses.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusIdle, VehicleStatusTransit, VehicleStatusMaintenance:
		return true
	default:
		return false
	}
}

// Vehicle represents a fleet vehicle. Latitude/Longitude are mutated
// continuously by the route simulator while the vehicle is in TRANSIT.
type Vehicle struct {
	ID          int           `json:"id"`
	Plate       string        `json:"plate"`
	Brand       string        `json:"brand"`
	ModelYear   int           `json:"model_year"`
	VehicleType VehicleType   `json:"vehicle_type"`
	CapacityKg  float64       `json:"capacity_kg"`
	Status      VehicleStatus `json:"status"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	CreatedAt   time.Time     `json:"created_at"`
}

// VehicleUpdate carries the merge payload for PUT/PATCH. Omitted fields
// keep their prior value.
type VehicleUpdate struct {
	Plate       *string        `json:"plate"`
	Brand       *string        `json:"brand"`
	ModelYear   *int           `json:"model_year"`
	VehicleType *VehicleType   `json:"vehicle_type"`
	CapacityKg  *float64       `json:"capacity_kg"`
	Status      *VehicleStatus `json:"status"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
}

// Apply merges an update into the vehicle. Status values outside the
// closed enum are ignored so a vehicle always has a defined status.
func (v *Vehicle) Apply(u VehicleUpdate) {
	if u.Plate != nil {
		v.Plate = *u.Plate
	}
	if u.Brand != nil {
		v.Brand = *u.Brand
	}
	if u.ModelYear != nil {
		v.ModelYear = *u.ModelYear
	}
	if u.VehicleType != nil && u.VehicleType.IsValid() {
		v.VehicleType = *u.VehicleType
	}
	if u.CapacityKg != nil {
		v.CapacityKg = *u.CapacityKg
	}
	if u.Status != nil && u.Status.IsValid() {
		v.Status = *u.Status
	}
	if u.Latitude != nil {
		v.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		v.Longitude = *u.Longitude
	}
}
