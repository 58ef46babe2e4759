package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name                string `json:"name" validate:"required,max=200"`
	SerialNumber        string `json:"serial_number" validate:"required,max=100"`
	Department          string `json:"department" validate:"required,max=100"`
	AssignedEmployee    string `json:"assigned_employee" validate:"max=100"`
	TeamID              uint64 `json:"team_id" validate:"required"`
	DefaultTechnicianID uint64 `json:"default_technician_id"`
	PurchaseDate        string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry      string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Location            string `json:"location" validate:"max=200"`
}

func (d CreateEquipmentDTO) ParsedPurchaseDate() null.Time   { return parseDate(d.PurchaseDate) }
func (d CreateEquipmentDTO) ParsedWarrantyExpiry() null.Time { return parseDate(d.WarrantyExpiry) }

type UpdateEquipmentDTO struct {
	Name                string `json:"name" validate:"required,max=200"`
	SerialNumber        string `json:"serial_number" validate:"required,max=100"`
	Department          string `json:"department" validate:"required,max=100"`
	AssignedEmployee    string `json:"assigned_employee" validate:"max=100"`
	TeamID              uint64 `json:"team_id" validate:"required"`
	DefaultTechnicianID uint64 `json:"default_technician_id"`
	PurchaseDate        string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry      string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Location            string `json:"location" validate:"max=200"`
	IsScrapped          bool   `json:"is_scrapped"`
}

func (d UpdateEquipmentDTO) ParsedPurchaseDate() null.Time   { return parseDate(d.PurchaseDate) }
func (d UpdateEquipmentDTO) ParsedWarrantyExpiry() null.Time { return parseDate(d.WarrantyExpiry) }

// EquipmentFilter mirrors the list page filters: department, employee
// substring, scrapped/operational toggle and a name/serial text search.
type EquipmentFilter struct {
	Department string
	Employee   string
	Status     string
	Search     string
}
