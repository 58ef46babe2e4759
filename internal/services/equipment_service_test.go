package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func newEquipmentServiceFixture(t *testing.T) (*MockEquipmentRepository, *MockTeamRepository, EquipmentServiceInterface) {
	t.Helper()
	equipmentRepo := new(MockEquipmentRepository)
	teamRepo := new(MockTeamRepository)
	return equipmentRepo, teamRepo, NewEquipmentService(equipmentRepo, teamRepo, zap.NewNop())
}

func TestEquipmentService_Create(t *testing.T) {
	t.Run("duplicate serial number is a conflict", func(t *testing.T) {
		equipmentRepo, teamRepo, svc := newEquipmentServiceFixture(t)
		teamRepo.On("FindByID", mock.Anything, uint64(4)).Return(&entities.Team{ID: 4}, nil)
		equipmentRepo.On("FindBySerial", mock.Anything, "CNC-001").
			Return(&entities.Equipment{ID: 1, SerialNumber: "CNC-001"}, nil)

		_, err := svc.Create(context.Background(), manager, dto.CreateEquipmentDTO{
			Name: "CNC Machine", SerialNumber: "CNC-001", Department: "Production", TeamID: 4,
		})

		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("technicians may not create equipment", func(t *testing.T) {
		_, _, svc := newEquipmentServiceFixture(t)

		_, err := svc.Create(context.Background(), technician, dto.CreateEquipmentDTO{
			Name: "CNC Machine", SerialNumber: "CNC-001", Department: "Production", TeamID: 4,
		})

		assert.True(t, apperrors.IsAuthorization(err))
	})
}

func TestEquipmentService_Update(t *testing.T) {
	t.Run("un-scrapping is rejected", func(t *testing.T) {
		equipmentRepo, teamRepo, svc := newEquipmentServiceFixture(t)
		equipmentRepo.On("FindByID", mock.Anything, uint64(1)).
			Return(&entities.Equipment{ID: 1, SerialNumber: "CNC-001", IsScrapped: true}, nil)
		teamRepo.On("FindByID", mock.Anything, uint64(4)).Return(&entities.Team{ID: 4}, nil)
		equipmentRepo.On("FindBySerial", mock.Anything, "CNC-001").
			Return(&entities.Equipment{ID: 1, SerialNumber: "CNC-001", IsScrapped: true}, nil)

		_, err := svc.Update(context.Background(), manager, 1, dto.UpdateEquipmentDTO{
			Name: "CNC Machine", SerialNumber: "CNC-001", Department: "Production", TeamID: 4,
			IsScrapped: false,
		})

		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestEquipmentService_Delete(t *testing.T) {
	admin := authz.Actor{ID: 9, Role: entities.RoleAdmin}

	t.Run("refuses while open requests exist", func(t *testing.T) {
		equipmentRepo, _, svc := newEquipmentServiceFixture(t)
		equipmentRepo.On("FindByID", mock.Anything, uint64(1)).Return(&entities.Equipment{ID: 1}, nil)
		equipmentRepo.On("CountOpenRequests", mock.Anything, uint64(1)).Return(2, nil)

		err := svc.Delete(context.Background(), admin, 1)

		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("deletes once open requests are gone", func(t *testing.T) {
		equipmentRepo, _, svc := newEquipmentServiceFixture(t)
		equipmentRepo.On("FindByID", mock.Anything, uint64(1)).Return(&entities.Equipment{ID: 1}, nil)
		equipmentRepo.On("CountOpenRequests", mock.Anything, uint64(1)).Return(0, nil)
		equipmentRepo.On("Delete", mock.Anything, uint64(1)).Return(nil)

		err := svc.Delete(context.Background(), admin, 1)

		require.NoError(t, err)
		equipmentRepo.AssertExpectations(t)
	})

	t.Run("managers may not delete equipment", func(t *testing.T) {
		_, _, svc := newEquipmentServiceFixture(t)

		err := svc.Delete(context.Background(), manager, 1)

		assert.True(t, apperrors.IsAuthorization(err))
	})
}
