package dto

import (
	"gearguard/internal/entities"
)

type DashboardSummaryDTO struct {
	TotalEquipment    int `json:"total_equipment"`
	TotalRequests     int `json:"total_requests"`
	OpenRequests      int `json:"open_requests"`
	CompletedRequests int `json:"completed_requests"`

	RecentRequests  []entities.MaintenanceRequest `json:"recent_requests"`
	OverdueRequests []entities.MaintenanceRequest `json:"overdue_requests"`

	// MyRequests is the caller's in-progress assignments; only filled for
	// technicians.
	MyRequests []entities.MaintenanceRequest `json:"my_requests"`

	TeamStats []entities.TeamStats `json:"team_stats"`
}

type KanbanBoardDTO struct {
	New        []entities.MaintenanceRequest `json:"new"`
	InProgress []entities.MaintenanceRequest `json:"in_progress"`
	Repaired   []entities.MaintenanceRequest `json:"repaired"`
	Scrap      []entities.MaintenanceRequest `json:"scrap"`
}

type CalendarEventDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Equipment   string `json:"equipment"`
	Technician  string `json:"technician"`
}
