package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TeamServiceInterface interface {
	Create(ctx context.Context, actor authz.Actor, d dto.CreateTeamDTO) (*entities.Team, error)
	Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateTeamDTO) (*entities.Team, error)
	Delete(ctx context.Context, actor authz.Actor, id uint64) error
	GetByID(ctx context.Context, id uint64) (*entities.Team, error)
	List(ctx context.Context) ([]entities.Team, error)
}

type TeamService struct {
	teamRepo    repositories.TeamRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	memberships MembershipServiceInterface
	txManager   repositories.TxManagerInterface
	logger      *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	memberships MembershipServiceInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:    teamRepo,
		requestRepo: requestRepo,
		memberships: memberships,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *TeamService) Create(ctx context.Context, actor authz.Actor, d dto.CreateTeamDTO) (*entities.Team, error) {
	if !authz.Can(actor, authz.TeamsCreate) {
		return nil, apperrors.NewAuthorizationError("not allowed to create teams")
	}

	if _, err := s.teamRepo.FindByName(ctx, d.Name); err == nil {
		return nil, apperrors.NewConflictError("team %q already exists", d.Name)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	var id uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.teamRepo.Create(ctx, tx, d)
		if err != nil {
			return err
		}
		return s.teamRepo.ReplaceMembers(ctx, tx, id, d.MemberIDs)
	})
	if err != nil {
		return nil, err
	}

	s.memberships.Invalidate(ctx, d.MemberIDs...)
	s.logger.Info("team created", zap.Uint64("teamId", id), zap.String("name", d.Name))
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateTeamDTO) (*entities.Team, error) {
	if !authz.Can(actor, authz.TeamsUpdate) {
		return nil, apperrors.NewAuthorizationError("not allowed to update teams")
	}

	if existing, err := s.teamRepo.FindByName(ctx, d.Name); err == nil && existing.ID != id {
		return nil, apperrors.NewConflictError("team %q already exists", d.Name)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	// Both the outgoing and incoming rosters go stale.
	previous, err := s.teamRepo.MemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.teamRepo.Update(ctx, tx, id, d); err != nil {
			return err
		}
		return s.teamRepo.ReplaceMembers(ctx, tx, id, d.MemberIDs)
	})
	if err != nil {
		return nil, err
	}

	s.memberships.Invalidate(ctx, append(previous, d.MemberIDs...)...)
	return s.teamRepo.FindByID(ctx, id)
}

// Delete refuses while the team still owns equipment or open requests, so no
// request can end up pointing at a missing team.
func (s *TeamService) Delete(ctx context.Context, actor authz.Actor, id uint64) error {
	if !authz.Can(actor, authz.TeamsDelete) {
		return apperrors.NewAuthorizationError("not allowed to delete teams")
	}

	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return err
	}

	equipmentCount, err := s.teamRepo.CountEquipment(ctx, id)
	if err != nil {
		return err
	}
	if equipmentCount > 0 {
		return apperrors.NewConflictError("team has %d equipment item(s) assigned", equipmentCount)
	}

	open, err := s.requestRepo.List(ctx, dto.RequestFilter{TeamID: id})
	if err != nil {
		return err
	}
	for _, req := range open {
		if !req.Status.IsTerminal() {
			return apperrors.NewConflictError("team has open maintenance requests")
		}
	}

	members, err := s.teamRepo.MemberIDs(ctx, id)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.memberships.Invalidate(ctx, members...)
	s.logger.Info("team deleted", zap.Uint64("teamId", id))
	return nil
}

func (s *TeamService) GetByID(ctx context.Context, id uint64) (*entities.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) List(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.List(ctx)
}
