package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type EquipmentServiceInterface interface {
	Create(ctx context.Context, actor authz.Actor, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, actor authz.Actor, id uint64) error
	GetByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	List(ctx context.Context, f dto.EquipmentFilter) ([]entities.Equipment, error)
	Departments(ctx context.Context) ([]string, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, teamRepo: teamRepo, logger: logger}
}

func (s *EquipmentService) Create(ctx context.Context, actor authz.Actor, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if !authz.Can(actor, authz.EquipmentCreate) {
		return nil, apperrors.NewAuthorizationError("not allowed to create equipment")
	}

	if _, err := s.teamRepo.FindByID(ctx, d.TeamID); err != nil {
		return nil, err
	}
	if _, err := s.equipmentRepo.FindBySerial(ctx, d.SerialNumber); err == nil {
		return nil, apperrors.NewConflictError("serial number %q is already registered", d.SerialNumber)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	id, err := s.equipmentRepo.Create(ctx, d)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment created", zap.Uint64("equipmentId", id), zap.String("serial", d.SerialNumber))
	return s.equipmentRepo.FindByID(ctx, id)
}

func (s *EquipmentService) Update(ctx context.Context, actor authz.Actor, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if !authz.Can(actor, authz.EquipmentUpdate) {
		return nil, apperrors.NewAuthorizationError("not allowed to update equipment")
	}

	existing, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.FindByID(ctx, d.TeamID); err != nil {
		return nil, err
	}
	if other, err := s.equipmentRepo.FindBySerial(ctx, d.SerialNumber); err == nil && other.ID != id {
		return nil, apperrors.NewConflictError("serial number %q is already registered", d.SerialNumber)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	// The scrapped flag flips one way only; un-scrapping through an edit form
	// is rejected.
	if existing.IsScrapped && !d.IsScrapped {
		return nil, apperrors.NewValidationError("scrapped equipment cannot be restored")
	}

	if err := s.equipmentRepo.Update(ctx, id, d); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindByID(ctx, id)
}

// Delete refuses while open requests reference the equipment.
func (s *EquipmentService) Delete(ctx context.Context, actor authz.Actor, id uint64) error {
	if !authz.Can(actor, authz.EquipmentDelete) {
		return apperrors.NewAuthorizationError("not allowed to delete equipment")
	}

	if _, err := s.equipmentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	open, err := s.equipmentRepo.CountOpenRequests(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return apperrors.NewConflictError("equipment has %d open maintenance request(s)", open)
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipment deleted", zap.Uint64("equipmentId", id))
	return nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindByID(ctx, id)
}

func (s *EquipmentService) List(ctx context.Context, f dto.EquipmentFilter) ([]entities.Equipment, error) {
	return s.equipmentRepo.List(ctx, f)
}

func (s *EquipmentService) Departments(ctx context.Context) ([]string, error) {
	return s.equipmentRepo.Departments(ctx)
}
