package models

import "time"

// Customer represents a freight customer. TotalShipments is a running
// counter incremented on shipment creation only; it is never recalculated
// from the shipments collection and never decremented.
type Customer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	TotalShipments int       `json:"total_shipments"`
	CreatedAt      time.Time `json:"created_at"`
}

// CustomerUpdate carries the merge payload for PUT/PATCH. TotalShipments
// is server-maintained and not updatable.
type CustomerUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (c *Customer) Apply(u CustomerUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
}
