package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type RequestServiceInterface interface {
	Create(ctx context.Context, actor authz.Actor, d dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	Delete(ctx context.Context, actor authz.Actor, id uint64) error
	GetByID(ctx context.Context, actor authz.Actor, id uint64) (*entities.MaintenanceRequest, error)
	List(ctx context.Context, actor authz.Actor, f dto.RequestFilter) ([]entities.MaintenanceRequest, error)
	Assign(ctx context.Context, actor authz.Actor, id, technicianID uint64) (*entities.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, actor authz.Actor, id uint64, status string) (*entities.MaintenanceRequest, error)
}

// transitions is the full status graph. Absent pairs are rejected; a request
// must pass through In Progress before it can be Repaired, while Scrap is
// reachable straight from New.
var transitions = map[entities.RequestStatus][]entities.RequestStatus{
	entities.StatusNew:        {entities.StatusInProgress, entities.StatusScrap},
	entities.StatusInProgress: {entities.StatusRepaired, entities.StatusScrap},
}

func transitionAllowed(from, to entities.RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	memberships   MembershipServiceInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	memberships MembershipServiceInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		memberships:   memberships,
		txManager:     txManager,
		logger:        logger,
		now:           time.Now,
	}
}

// Create opens a request against a piece of equipment. The owning team is
// copied from the equipment, and its default technician is pre-assigned when
// present. Pre-assignment does not start the work: the request stays New.
func (s *RequestService) Create(ctx context.Context, actor authz.Actor, d dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	if !authz.Can(actor, authz.RequestsCreate) {
		return nil, apperrors.NewAuthorizationError("not allowed to create maintenance requests")
	}

	requestType, err := entities.ParseRequestType(d.RequestType)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindByID(ctx, d.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.IsScrapped {
		return nil, apperrors.NewValidationError("equipment %q is scrapped", equipment.Name)
	}

	req := &entities.MaintenanceRequest{
		Subject:       d.Subject,
		Description:   d.Description,
		RequestType:   requestType,
		EquipmentID:   equipment.ID,
		TeamID:        equipment.TeamID,
		ScheduledDate: d.ParsedScheduledDate(),
		DueDate:       d.ParsedDueDate(),
		Status:        entities.StatusNew,
		CreatedByID:   actor.ID,
	}
	if equipment.DefaultTechnicianID.Valid {
		req.AssignedTechnicianID = equipment.DefaultTechnicianID
	}

	id, err := s.requestRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance request created",
		zap.Uint64("requestId", id),
		zap.Uint64("equipmentId", equipment.ID),
		zap.Uint64("createdBy", actor.ID))
	return s.requestRepo.FindByID(ctx, id)
}

func (s *RequestService) Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditRequest(actor, req) {
		return nil, apperrors.NewAuthorizationError("not allowed to edit this request")
	}
	if req.Status.IsTerminal() {
		return nil, apperrors.NewValidationError("completed requests cannot be edited")
	}
	if _, err := entities.ParseRequestType(d.RequestType); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, id, d); err != nil {
		return nil, err
	}
	return s.requestRepo.FindByID(ctx, id)
}

func (s *RequestService) Delete(ctx context.Context, actor authz.Actor, id uint64) error {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeleteRequest(actor, req) {
		return apperrors.NewAuthorizationError("not allowed to delete this request")
	}
	return s.requestRepo.Delete(ctx, id)
}

func (s *RequestService) GetByID(ctx context.Context, actor authz.Actor, id uint64) (*entities.MaintenanceRequest, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	visible, err := s.visibleTo(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.NewNotFoundError("maintenance request not found")
	}
	return req, nil
}

func (s *RequestService) List(ctx context.Context, actor authz.Actor, f dto.RequestFilter) ([]entities.MaintenanceRequest, error) {
	if authz.RequestScopeIsLimited(actor) {
		scope, err := s.memberships.TeamIDs(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		f.TeamScope = scope
	}
	return s.requestRepo.List(ctx, f)
}

// Assign puts a technician on the request. Managers assign anyone on the
// owning team; a technician may only pick up work for themselves. Assigning a
// New request starts it.
func (s *RequestService) Assign(ctx context.Context, actor authz.Actor, id, technicianID uint64) (*entities.MaintenanceRequest, error) {
	if !authz.CanAssignRequest(actor, technicianID) {
		return nil, apperrors.NewAuthorizationError("not allowed to assign this technician")
	}

	technician, err := s.userRepo.FindByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.requestRepo.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if req.Status.IsTerminal() {
			return apperrors.NewValidationError("completed requests cannot be reassigned")
		}

		if !containsID(technician.TeamIDs, req.TeamID) {
			return apperrors.NewAuthorizationError("%s is not a member of the request's team", technician.Name)
		}

		status := req.Status
		if status == entities.StatusNew {
			status = entities.StatusInProgress
		}
		return s.requestRepo.Assign(ctx, tx, id, technicianID, status)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request assigned",
		zap.Uint64("requestId", id),
		zap.Uint64("technicianId", technicianID),
		zap.Uint64("actorId", actor.ID))
	return s.requestRepo.FindByID(ctx, id)
}

// UpdateStatus drives the lifecycle. Repaired and Scrap are final: the
// completion timestamp is written once and never overwritten, and moving to
// Scrap also retires the equipment. Re-sending the current status is a no-op
// so retried kanban drops stay harmless.
func (s *RequestService) UpdateStatus(ctx context.Context, actor authz.Actor, id uint64, status string) (*entities.MaintenanceRequest, error) {
	target, err := entities.ParseRequestStatus(status)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.requestRepo.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !authz.CanUpdateRequestStatus(actor, req) {
			return apperrors.NewAuthorizationError("not allowed to change this request's status")
		}

		if req.Status == target {
			return nil
		}
		if !transitionAllowed(req.Status, target) {
			return apperrors.NewValidationError("cannot move request from %s to %s", req.Status, target)
		}

		completedAt := req.CompletedAt
		notes := req.Notes
		if target.IsTerminal() && !completedAt.Valid {
			completedAt = null.TimeFrom(s.now())
		}
		if target == entities.StatusScrap {
			if err := s.equipmentRepo.MarkScrapped(ctx, tx, req.EquipmentID); err != nil {
				return err
			}
			notes = appendNote(notes, "[SYSTEM] Equipment marked as scrapped on "+s.now().Format("2006-01-02 15:04"))
		}

		return s.requestRepo.UpdateStatus(ctx, tx, id, target, completedAt, notes)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request status changed",
		zap.Uint64("requestId", id),
		zap.String("status", status),
		zap.Uint64("actorId", actor.ID))
	return s.requestRepo.FindByID(ctx, id)
}

// visibleTo narrows technician reads to the owning team's requests. Being the
// creator or the assignee does not widen the scope past team membership.
func (s *RequestService) visibleTo(ctx context.Context, actor authz.Actor, req *entities.MaintenanceRequest) (bool, error) {
	if !authz.RequestScopeIsLimited(actor) {
		return true, nil
	}
	scope, err := s.memberships.TeamIDs(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	return containsID(scope, req.TeamID), nil
}

func containsID(ids []uint64, id uint64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func appendNote(notes null.String, line string) null.String {
	if notes.Valid && notes.String != "" {
		return null.StringFrom(notes.String + "\n" + line)
	}
	return null.StringFrom(line)
}
