package models

import "time"

// LocationSample is one point in the append-only, bounded location time
// series produced by the route simulator.
type LocationSample struct {
	ID         int       `json:"id"`
	VehicleID  int       `json:"vehicle_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      float64   `json:"speed"`
	Heading    float64   `json:"heading"`
	RecordedAt time.Time `json:"recorded_at"`
}
