package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateRequestDTO struct {
	Subject       string `json:"subject" validate:"required,max=200"`
	Description   string `json:"description" validate:"required"`
	RequestType   string `json:"request_type" validate:"required,request_type"`
	EquipmentID   uint64 `json:"equipment_id" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (d CreateRequestDTO) ParsedScheduledDate() null.Time { return parseDate(d.ScheduledDate) }
func (d CreateRequestDTO) ParsedDueDate() null.Time       { return parseDate(d.DueDate) }

type UpdateRequestDTO struct {
	Subject       string       `json:"subject" validate:"required,max=200"`
	Description   string       `json:"description" validate:"required"`
	RequestType   string       `json:"request_type" validate:"required,request_type"`
	ScheduledDate string       `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string       `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Duration      null.Float64 `json:"duration"`
	Notes         string       `json:"notes"`
}

func (d UpdateRequestDTO) ParsedScheduledDate() null.Time { return parseDate(d.ScheduledDate) }
func (d UpdateRequestDTO) ParsedDueDate() null.Time       { return parseDate(d.DueDate) }

type AssignRequestDTO struct {
	TechnicianID uint64 `json:"technician_id" validate:"required"`
}

type UpdateRequestStatusDTO struct {
	Status string `json:"status" validate:"required,request_status"`
}

// StatusUpdateResultDTO is the wire contract of the machine-callable status
// endpoint used by the kanban drag-and-drop.
type StatusUpdateResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RequestFilter carries the list filters. TeamScope is filled by the service
// for technicians and restricts results to those teams.
type RequestFilter struct {
	Status    string
	Type      string
	TeamID    uint64
	Search    string
	TeamScope []uint64
}
