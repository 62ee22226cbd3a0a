package models

import "time"

// MaintenanceType classifies a maintenance job.
type MaintenanceType string

const (
	MaintenanceTypeService    MaintenanceType = "SERVICE"
	MaintenanceTypeRepair     MaintenanceType = "REPAIR"
	MaintenanceTypeInspection MaintenanceType = "INSPECTION"
	MaintenanceTypeTireChange MaintenanceType = "TIRE_CHANGE"
)

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceTypeService, MaintenanceTypeRepair, MaintenanceTypeInspection, MaintenanceTypeTireChange:
		return true
	default:
		return false
	}
}

// MaintenanceStatus is the progress state of a maintenance job.
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled  MaintenanceStatus = "CANCELLED"
)

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	default:
		return false
	}
}

// MaintenanceRecord represents a vehicle maintenance job. VehiclePlate is
// a denormalized copy filled in at write time.
type MaintenanceRecord struct {
	ID              int               `json:"id"`
	VehicleID       int               `json:"vehicle_id"`
	VehiclePlate    string            `json:"vehicle_plate,omitempty"`
	MaintenanceType MaintenanceType   `json:"maintenance_type"`
	Status          MaintenanceStatus `json:"status"`
	Cost            string            `json:"cost"`
	ScheduledDate   time.Time         `json:"scheduled_date"`
	CompletedDate   *time.Time        `json:"completed_date"`
	OdometerKm      float64           `json:"odometer_km"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// MaintenanceUpdate carries the merge payload for PUT/PATCH. An explicit
// null clears the completed date; an omitted field keeps its prior value.
type MaintenanceUpdate struct {
	VehicleID       *int                `json:"vehicle_id"`
	MaintenanceType *MaintenanceType    `json:"maintenance_type"`
	Status          *MaintenanceStatus  `json:"status"`
	Cost            *string             `json:"cost"`
	ScheduledDate   *time.Time          `json:"scheduled_date"`
	CompletedDate   Nullable[time.Time] `json:"completed_date"`
	OdometerKm      *float64            `json:"odometer_km"`
	Notes           *string             `json:"notes"`
}

func (m *MaintenanceRecord) Apply(u MaintenanceUpdate) {
	if u.VehicleID != nil {
		m.VehicleID = *u.VehicleID
	}
	if u.MaintenanceType != nil && u.MaintenanceType.IsValid() {
		m.MaintenanceType = *u.MaintenanceType
	}
	if u.Status != nil && u.Status.IsValid() {
		m.Status = *u.Status
	}
	if u.Cost != nil {
		m.Cost = *u.Cost
	}
	if u.ScheduledDate != nil {
		m.ScheduledDate = *u.ScheduledDate
	}
	if u.CompletedDate.Set {
		m.CompletedDate = u.CompletedDate.Ptr()
	}
	if u.OdometerKm != nil {
		m.OdometerKm = *u.OdometerKm
	}
	if u.Notes != nil {
		m.Notes = *u.Notes
	}
}

// ArchivedMaintenance is a historical maintenance record from the cold
// archive collection, enriched with workshop details. Fetched on demand
// only, never listed with live records.
type ArchivedMaintenance struct {
	MaintenanceRecord
	ServiceProvider string `json:"service_provider"`
	InvoiceRef      string `json:"invoice_ref"`
	DowntimeDays    int    `json:"downtime_days"`
}
