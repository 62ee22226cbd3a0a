package models

import (
	"math"
	"time"
)

// FuelRecord represents one refuelling event. TotalCost is derived from
// liters and price-per-liter at write time.
type FuelRecord struct {
	ID            int       `json:"id"`
	VehicleID     int       `json:"vehicle_id"`
	DriverID      *int      `json:"driver_id"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"price_per_liter"`
	TotalCost     float64   `json:"total_cost"`
	OdometerKm    float64   `json:"odometer_km"`
	Station       string    `json:"station"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// FuelUpdate carries the merge payload for PATCH. TotalCost is
// recalculated whenever liters or price change. An explicit null clears
// the driver reference.
type FuelUpdate struct {
	VehicleID     *int          `json:"vehicle_id"`
	DriverID      Nullable[int] `json:"driver_id"`
	Liters        *float64      `json:"liters"`
	PricePerLiter *float64      `json:"price_per_liter"`
	OdometerKm    *float64      `json:"odometer_km"`
	Station       *string       `json:"station"`
	Date          *time.Time    `json:"date"`
}

func (f *FuelRecord) Apply(u FuelUpdate) {
	if u.VehicleID != nil {
		f.VehicleID = *u.VehicleID
	}
	if u.DriverID.Set {
		f.DriverID = u.DriverID.Ptr()
	}
	if u.Liters != nil {
		f.Liters = *u.Liters
	}
	if u.PricePerLiter != nil {
		f.PricePerLiter = *u.PricePerLiter
	}
	if u.OdometerKm != nil {
		f.OdometerKm = *u.OdometerKm
	}
	if u.Station != nil {
		f.Station = *u.Station
	}
	if u.Date != nil {
		f.Date = *u.Date
	}
	if u.Liters != nil || u.PricePerLiter != nil {
		f.TotalCost = math.Round(f.Liters*f.PricePerLiter*100) / 100
	}
}
