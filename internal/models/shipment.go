package models

import "time"

// ShipmentStatus is the delivery state of a shipment. Transitions are not
// validated at this layer; any enum value may be set directly.
type ShipmentStatus string

const (
	ShipmentStatusPending    ShipmentStatus = "PENDING"
	ShipmentStatusDispatched ShipmentStatus = "DISPATCHED"
	ShipmentStatusDelivered  ShipmentStatus = "DELIVERED"
	ShipmentStatusCancelled  ShipmentStatus = "CANCELLED"
)

func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusDispatched, ShipmentStatusDelivered, ShipmentStatusCancelled:
		return true
	default:
		return false
	}
}

// Shipment represents a freight order. CustomerName and VehiclePlate are
// denormalized copies filled in at write time; they are not refreshed if
// the referenced entity is later edited.
type Shipment struct {
	ID            int            `json:"id"`
	CustomerID    int            `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	VehicleID     *int           `json:"vehicle_id"`
	VehiclePlate  string         `json:"vehicle_plate,omitempty"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	WeightKg      float64        `json:"weight_kg"`
	Price         string         `json:"price"`
	Status        ShipmentStatus `json:"status"`
	TrackingToken string         `json:"tracking_token"`
	Photos        []string       `json:"photos,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ShipmentUpdate carries the merge payload for PUT/PATCH. The tracking
// token is immutable and deliberately absent. An explicit null clears the
// vehicle assignment or the photo list.
type ShipmentUpdate struct {
	CustomerID  *int               `json:"customer_id"`
	VehicleID   Nullable[int]      `json:"vehicle_id"`
	Origin      *string            `json:"origin"`
	Destination *string            `json:"destination"`
	WeightKg    *float64           `json:"weight_kg"`
	Price       *string            `json:"price"`
	Status      *ShipmentStatus    `json:"status"`
	Photos      Nullable[[]string] `json:"photos"`
}

func (s *Shipment) Apply(u ShipmentUpdate) {
	if u.CustomerID != nil {
		s.CustomerID = *u.CustomerID
	}
	if u.VehicleID.Set {
		s.VehicleID = u.VehicleID.Ptr()
	}
	if u.Origin != nil {
		s.Origin = *u.Origin
	}
	if u.Destination != nil {
		s.Destination = *u.Destination
	}
	if u.WeightKg != nil {
		s.WeightKg = *u.WeightKg
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.Status != nil && u.Status.IsValid() {
		s.Status = *u.Status
	}
	if u.Photos.Set {
		s.Photos = nil
		if u.Photos.Valid {
			s.Photos = u.Photos.Value
		}
	}
}

// TrackedShipment is the reduced public subset returned by the unauthenticated
// tracking endpoints.
type TrackedShipment struct {
	TrackingToken string         `json:"tracking_token"`
	Status        ShipmentStatus `json:"status"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	CustomerName  string         `json:"customer_name"`
	VehiclePlate  string         `json:"vehicle_plate,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Tracked projects the shipment onto its public tracking view.
func (s *Shipment) Tracked() TrackedShipment {
	return TrackedShipment{
		TrackingToken: s.TrackingToken,
		Status:        s.Status,
		Origin:        s.Origin,
		Destination:   s.Destination,
		CustomerName:  s.CustomerName,
		VehiclePlate:  s.VehiclePlate,
		CreatedAt:     s.CreatedAt,
	}
}
