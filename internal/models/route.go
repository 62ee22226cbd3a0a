package models

import "time"

// RouteStatus is the execution state of a planned route.
type RouteStatus string

const (
	RouteStatusPlanned    RouteStatus = "PLANNED"
	RouteStatusInProgress RouteStatus = "IN_PROGRESS"
	RouteStatusCompleted  RouteStatus = "COMPLETED"
	RouteStatusCancelled  RouteStatus = "CANCELLED"
)

func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusPlanned, RouteStatusInProgress, RouteStatusCompleted, RouteStatusCancelled:
		return true
	default:
		return false
	}
}

// RouteStop is one ordered stop on a route. Origin and destination are
// derived from the linked shipment when one is given.
type RouteStop struct {
	Sequence    int    `json:"sequence"`
	ShipmentID  *int   `json:"shipment_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Route represents a planned delivery route. VehiclePlate and DriverName
// are denormalized copies filled in at write time. TotalDistanceKm and
// TotalDurationMin start as random placeholders and shrink on optimize.
type Route struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	VehicleID        *int        `json:"vehicle_id"`
	VehiclePlate     string      `json:"vehicle_plate,omitempty"`
	DriverID         *int        `json:"driver_id"`
	DriverName       string      `json:"driver_name,omitempty"`
	Stops            []RouteStop `json:"stops"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	TotalDurationMin float64     `json:"total_duration_min"`
	Status           RouteStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// RouteUpdate carries the merge payload for PUT/PATCH. An explicit null
// clears the vehicle or driver assignment.
type RouteUpdate struct {
	Name             *string       `json:"name"`
	VehicleID        Nullable[int] `json:"vehicle_id"`
	DriverID         Nullable[int] `json:"driver_id"`
	Stops            *[]RouteStop  `json:"stops"`
	TotalDistanceKm  *float64      `json:"total_distance_km"`
	TotalDurationMin *float64      `json:"total_duration_min"`
	Status           *RouteStatus  `json:"status"`
}

func (r *Route) Apply(u RouteUpdate) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.VehicleID.Set {
		r.VehicleID = u.VehicleID.Ptr()
	}
	if u.DriverID.Set {
		r.DriverID = u.DriverID.Ptr()
	}
	if u.Stops != nil {
		r.Stops = *u.Stops
	}
	if u.TotalDistanceKm != nil {
		r.TotalDistanceKm = *u.TotalDistanceKm
	}
	if u.TotalDurationMin != nil {
		r.TotalDurationMin = *u.TotalDurationMin
	}
	if u.Status != nil && u.Status.IsValid() {
		r.Status = *u.Status
	}
}
