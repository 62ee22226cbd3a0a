package models

import "time"

// Driver represents a fleet driver. VehiclePlate is an informational
// lookup key, not an owning reference; it is never validated against the
// vehicles collection.
type Driver struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	IsAvailable   bool      `json:"is_available"`
	VehiclePlate  string    `json:"vehicle_plate,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DriverUpdate carries the merge payload for PUT/PATCH.
type DriverUpdate struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
	IsAvailable   *bool   `json:"is_available"`
	VehiclePlate  *string `json:"vehicle_plate"`
}

func (d *Driver) Apply(u DriverUpdate) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
	if u.LicenseNumber != nil {
		d.LicenseNumber = *u.LicenseNumber
	}
	if u.IsAvailable != nil {
		d.IsAvailable = *u.IsAvailable
	}
	if u.VehiclePlate != nil {
		d.VehiclePlate = *u.VehiclePlate
	}
}
