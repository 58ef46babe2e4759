package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	apperrors "gearguard/pkg/errors"
)

type RequestStatus string

const (
	StatusNew        RequestStatus = "New"
	StatusInProgress RequestStatus = "In Progress"
	StatusRepaired   RequestStatus = "Repaired"
	StatusScrap      RequestStatus = "Scrap"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return RequestStatus(s), nil
	}
	return "", apperrors.NewValidationError("unknown request status %q", s)
}

// IsTerminal reports whether the status ends the lifecycle. There is no
// transition out of a terminal status.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRepaired || s == StatusScrap
}

type RequestType string

const (
	TypeCorrective RequestType = "Corrective"
	TypePreventive RequestType = "Preventive"
)

func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case TypeCorrective, TypePreventive:
		return RequestType(s), nil
	}
	return "", apperrors.NewValidationError("unknown request type %q", s)
}

type RequestPriority string

const (
	PriorityHigh   RequestPriority = "High"
	PriorityMedium RequestPriority = "Medium"
	PriorityLow    RequestPriority = "Low"
)

type MaintenanceRequest struct {
	ID          uint64      `json:"id"`
	Subject     string      `json:"subject"`
	Description string      `json:"description"`
	RequestType RequestType `json:"request_type"`

	EquipmentID   uint64 `json:"equipment_id"`
	EquipmentName string `json:"equipment_name,omitempty"`

	// TeamID is copied from the equipment's team at creation time and never
	// re-derived afterwards.
	TeamID   uint64 `json:"team_id"`
	TeamName string `json:"team_name,omitempty"`

	AssignedTechnicianID   null.Uint64 `json:"assigned_technician_id"`
	AssignedTechnicianName null.String `json:"assigned_technician_name"`

	ScheduledDate null.Time     `json:"scheduled_date"`
	DueDate       null.Time     `json:"due_date"`
	Duration      null.Float64  `json:"duration"`
	Status        RequestStatus `json:"status"`

	CreatedByID   uint64    `json:"created_by_id"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CompletedAt   null.Time `json:"completed_at"`
	Notes         null.String `json:"notes"`
}

// IsOverdueAt reports whether the request is past its due date while still
// open. Terminal requests are never overdue.
func (r *MaintenanceRequest) IsOverdueAt(now time.Time) bool {
	if r.Status.IsTerminal() {
		return false
	}
	if !r.DueDate.Valid {
		return false
	}
	due := r.DueDate.Time
	y1, m1, d1 := due.Date()
	y2, m2, d2 := now.Date()
	dueDay := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dueDay.Before(today)
}

func (r *MaintenanceRequest) IsOverdue() bool {
	return r.IsOverdueAt(time.Now())
}

// PriorityAt derives the display priority: overdue is high, corrective work
// is medium, preventive work is low.
func (r *MaintenanceRequest) PriorityAt(now time.Time) RequestPriority {
	if r.IsOverdueAt(now) {
		return PriorityHigh
	}
	if r.RequestType == TypeCorrective {
		return PriorityMedium
	}
	return PriorityLow
}

func (r *MaintenanceRequest) Priority() RequestPriority {
	return r.PriorityAt(time.Now())
}
