package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	EquipmentStatusScrapped       = "Scrapped"
	EquipmentStatusMaintenanceDue = "Maintenance Due"
	EquipmentStatusOperational    = "Operational"
)

type Equipment struct {
	ID                  uint64      `json:"id"`
	Name                string      `json:"name"`
	SerialNumber        string      `json:"serial_number"`
	Department          string      `json:"department"`
	AssignedEmployee    null.String `json:"assigned_employee"`
	TeamID              uint64      `json:"team_id"`
	TeamName            string      `json:"team_name,omitempty"`
	DefaultTechnicianID null.Uint64 `json:"default_technician_id"`
	PurchaseDate        null.Time   `json:"purchase_date"`
	WarrantyExpiry      null.Time   `json:"warranty_expiry"`
	Location            null.String `json:"location"`
	IsScrapped          bool        `json:"is_scrapped"`
	CreatedAt           time.Time   `json:"created_at"`

	// OpenRequestCount is filled by list/detail queries that aggregate over
	// maintenance_requests.
	OpenRequestCount int `json:"open_request_count"`
}

// StatusBadge derives the display status: scrapped wins, then any open
// request, then operational.
func (e *Equipment) StatusBadge() string {
	if e.IsScrapped {
		return EquipmentStatusScrapped
	}
	if e.OpenRequestCount > 0 {
		return EquipmentStatusMaintenanceDue
	}
	return EquipmentStatusOperational
}
