package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

const (
	recentRequestLimit = 5

	// Terminal kanban columns are capped so the board stays bounded as
	// history accumulates.
	terminalColumnLimit = 20
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context, actor authz.Actor) (*dto.DashboardSummaryDTO, error)
	Kanban(ctx context.Context, actor authz.Actor) (*dto.KanbanBoardDTO, error)
	Calendar(ctx context.Context, actor authz.Actor) ([]dto.CalendarEventDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	memberships   MembershipServiceInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	memberships MembershipServiceInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		requestRepo:   requestRepo,
		memberships:   memberships,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context, actor authz.Actor) (*dto.DashboardSummaryDTO, error) {
	summary := &dto.DashboardSummaryDTO{}
	var err error

	if summary.TotalEquipment, err = s.dashboardRepo.CountEquipment(ctx); err != nil {
		return nil, err
	}
	if summary.TotalRequests, err = s.dashboardRepo.CountRequests(ctx, nil); err != nil {
		return nil, err
	}
	open := []entities.RequestStatus{entities.StatusNew, entities.StatusInProgress}
	if summary.OpenRequests, err = s.dashboardRepo.CountRequests(ctx, open); err != nil {
		return nil, err
	}
	// Completed means Repaired; scrapped requests close without counting.
	done := []entities.RequestStatus{entities.StatusRepaired}
	if summary.CompletedRequests, err = s.dashboardRepo.CountRequests(ctx, done); err != nil {
		return nil, err
	}

	if summary.RecentRequests, err = s.requestRepo.ListRecent(ctx, recentRequestLimit); err != nil {
		return nil, err
	}
	if summary.OverdueRequests, err = s.requestRepo.ListOverdue(ctx, today(s.now())); err != nil {
		return nil, err
	}
	if summary.TeamStats, err = s.dashboardRepo.TeamStats(ctx); err != nil {
		return nil, err
	}

	if actor.Role == entities.RoleTechnician {
		if summary.MyRequests, err = s.requestRepo.ListAssignedInProgress(ctx, actor.ID); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func (s *DashboardService) Kanban(ctx context.Context, actor authz.Actor) (*dto.KanbanBoardDTO, error) {
	scope, err := s.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}

	board := &dto.KanbanBoardDTO{}
	columns := []struct {
		status entities.RequestStatus
		limit  uint64
		dest   *[]entities.MaintenanceRequest
	}{
		{entities.StatusNew, 0, &board.New},
		{entities.StatusInProgress, 0, &board.InProgress},
		{entities.StatusRepaired, terminalColumnLimit, &board.Repaired},
		{entities.StatusScrap, terminalColumnLimit, &board.Scrap},
	}
	for _, col := range columns {
		requests, err := s.requestRepo.ListByStatus(ctx, col.status, col.limit)
		if err != nil {
			return nil, err
		}
		*col.dest = filterByScope(requests, scope)
	}
	return board, nil
}

// Calendar lists scheduled preventive work as calendar events.
func (s *DashboardService) Calendar(ctx context.Context, actor authz.Actor) ([]dto.CalendarEventDTO, error) {
	scope, err := s.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListPreventiveScheduled(ctx)
	if err != nil {
		return nil, err
	}
	requests = filterByScope(requests, scope)

	events := make([]dto.CalendarEventDTO, 0, len(requests))
	for _, r := range requests {
		events = append(events, dto.CalendarEventDTO{
			ID:          r.ID,
			Title:       r.Subject,
			Start:       r.ScheduledDate.Time.Format("2006-01-02"),
			Description: r.Description,
			Status:      string(r.Status),
			Equipment:   r.EquipmentName,
			Technician:  r.AssignedTechnicianName.String,
		})
	}
	return events, nil
}

// scopeFor returns nil for unrestricted callers; technicians get their team
// memberships.
func (s *DashboardService) scopeFor(ctx context.Context, actor authz.Actor) ([]uint64, error) {
	if !authz.RequestScopeIsLimited(actor) {
		return nil, nil
	}
	return s.memberships.TeamIDs(ctx, actor.ID)
}

func filterByScope(requests []entities.MaintenanceRequest, scope []uint64) []entities.MaintenanceRequest {
	if scope == nil {
		return requests
	}
	filtered := make([]entities.MaintenanceRequest, 0, len(requests))
	for _, r := range requests {
		if containsID(scope, r.TeamID) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
