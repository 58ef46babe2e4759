package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) (uint64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id uint64, token string, expiry time.Time) error {
	args := m.Called(ctx, id, token, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, role string) ([]entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *MockUserRepository) TeamIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateTeamDTO) (uint64, error) {
	args := m.Called(ctx, tx, d)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateTeamDTO) error {
	args := m.Called(ctx, tx, id, d)
	return args.Error(0)
}

func (m *MockTeamRepository) ReplaceMembers(ctx context.Context, tx pgx.Tx, teamID uint64, memberIDs []uint64) error {
	args := m.Called(ctx, tx, teamID, memberIDs)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uint64) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *MockTeamRepository) CountEquipment(ctx context.Context, teamID uint64) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

func (m *MockTeamRepository) MemberIDs(ctx context.Context, teamID uint64) ([]uint64, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, d dto.CreateEquipmentDTO) (uint64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) error {
	args := m.Called(ctx, id, d)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) List(ctx context.Context, f dto.EquipmentFilter) ([]entities.Equipment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Departments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEquipmentRepository) CountOpenRequests(ctx context.Context, equipmentID uint64) (int, error) {
	args := m.Called(ctx, equipmentID)
	return args.Int(0), args.Error(1)
}

func (m *MockEquipmentRepository) MarkScrapped(ctx context.Context, tx pgx.Tx, id uint64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, req *entities.MaintenanceRequest) (uint64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, id uint64, d dto.UpdateRequestDTO) error {
	args := m.Called(ctx, id, d)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) List(ctx context.Context, f dto.RequestFilter) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Assign(ctx context.Context, tx pgx.Tx, id, technicianID uint64, status entities.RequestStatus) error {
	args := m.Called(ctx, tx, id, technicianID, status)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status entities.RequestStatus, completedAt null.Time, notes null.String) error {
	args := m.Called(ctx, tx, id, status, completedAt, notes)
	return args.Error(0)
}

func (m *MockRequestRepository) ListByStatus(ctx context.Context, status entities.RequestStatus, limit uint64) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListPreventiveScheduled(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListOverdue(ctx context.Context, today time.Time) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListAssignedInProgress(ctx context.Context, technicianID uint64) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListRecent(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountEquipment(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountRequests(ctx context.Context, statuses []entities.RequestStatus) (int, error) {
	args := m.Called(ctx, statuses)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) TeamStats(ctx context.Context) ([]entities.TeamStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamStats), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.MaintenanceRequest, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MaintenanceRequest), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Del(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) TeamIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockMembershipService) Invalidate(ctx context.Context, userIDs ...uint64) {
	m.Called(ctx, userIDs)
}

// fakeTxManager runs the callback without a real transaction; repository
// mocks ignore the tx argument.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}
