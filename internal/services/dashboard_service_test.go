package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
)

type dashboardServiceFixture struct {
	dashboardRepo *MockDashboardRepository
	requestRepo   *MockRequestRepository
	memberships   *MockMembershipService
	service       DashboardServiceInterface
}

func newDashboardServiceFixture(t *testing.T) *dashboardServiceFixture {
	t.Helper()
	f := &dashboardServiceFixture{
		dashboardRepo: new(MockDashboardRepository),
		requestRepo:   new(MockRequestRepository),
		memberships:   new(MockMembershipService),
	}
	f.service = NewDashboardService(f.dashboardRepo, f.requestRepo, f.memberships, zap.NewNop())
	return f
}

func (f *dashboardServiceFixture) stubCounts() {
	f.dashboardRepo.On("CountEquipment", mock.Anything).Return(10, nil)
	f.dashboardRepo.On("CountRequests", mock.Anything, mock.Anything).Return(5, nil)
	f.dashboardRepo.On("TeamStats", mock.Anything).Return([]entities.TeamStats{}, nil)
	f.requestRepo.On("ListRecent", mock.Anything, uint64(recentRequestLimit)).Return([]entities.MaintenanceRequest{}, nil)
	f.requestRepo.On("ListOverdue", mock.Anything, mock.Anything).Return([]entities.MaintenanceRequest{}, nil)
}

func TestDashboardService_Summary(t *testing.T) {
	t.Run("technicians get their in-progress assignments", func(t *testing.T) {
		f := newDashboardServiceFixture(t)
		f.stubCounts()
		f.requestRepo.On("ListAssignedInProgress", mock.Anything, technician.ID).
			Return([]entities.MaintenanceRequest{{ID: 1}}, nil)

		summary, err := f.service.Summary(context.Background(), technician)

		require.NoError(t, err)
		assert.Len(t, summary.MyRequests, 1)
	})

	t.Run("completed counter covers Repaired only", func(t *testing.T) {
		f := newDashboardServiceFixture(t)
		f.dashboardRepo.On("CountEquipment", mock.Anything).Return(10, nil)
		f.dashboardRepo.On("CountRequests", mock.Anything, []entities.RequestStatus(nil)).Return(20, nil)
		f.dashboardRepo.On("CountRequests", mock.Anything,
			[]entities.RequestStatus{entities.StatusNew, entities.StatusInProgress}).Return(12, nil)
		f.dashboardRepo.On("CountRequests", mock.Anything,
			[]entities.RequestStatus{entities.StatusRepaired}).Return(7, nil)
		f.dashboardRepo.On("TeamStats", mock.Anything).Return([]entities.TeamStats{}, nil)
		f.requestRepo.On("ListRecent", mock.Anything, uint64(recentRequestLimit)).Return([]entities.MaintenanceRequest{}, nil)
		f.requestRepo.On("ListOverdue", mock.Anything, mock.Anything).Return([]entities.MaintenanceRequest{}, nil)

		summary, err := f.service.Summary(context.Background(), manager)

		require.NoError(t, err)
		assert.Equal(t, 20, summary.TotalRequests)
		assert.Equal(t, 12, summary.OpenRequests)
		assert.Equal(t, 7, summary.CompletedRequests)
		f.dashboardRepo.AssertExpectations(t)
	})

	t.Run("managers get no personal queue", func(t *testing.T) {
		f := newDashboardServiceFixture(t)
		f.stubCounts()

		summary, err := f.service.Summary(context.Background(), manager)

		require.NoError(t, err)
		assert.Empty(t, summary.MyRequests)
		f.requestRepo.AssertNotCalled(t, "ListAssignedInProgress", mock.Anything, mock.Anything)
	})
}

func TestDashboardService_Kanban(t *testing.T) {
	buckets := map[entities.RequestStatus][]entities.MaintenanceRequest{
		entities.StatusNew:        {{ID: 1, TeamID: 4}, {ID: 2, TeamID: 9}},
		entities.StatusInProgress: {{ID: 3, TeamID: 4}},
		entities.StatusRepaired:   {{ID: 4, TeamID: 9}},
		entities.StatusScrap:      {},
	}

	stubBuckets := func(f *dashboardServiceFixture) {
		f.requestRepo.On("ListByStatus", mock.Anything, entities.StatusNew, uint64(0)).Return(buckets[entities.StatusNew], nil)
		f.requestRepo.On("ListByStatus", mock.Anything, entities.StatusInProgress, uint64(0)).Return(buckets[entities.StatusInProgress], nil)
		f.requestRepo.On("ListByStatus", mock.Anything, entities.StatusRepaired, uint64(terminalColumnLimit)).Return(buckets[entities.StatusRepaired], nil)
		f.requestRepo.On("ListByStatus", mock.Anything, entities.StatusScrap, uint64(terminalColumnLimit)).Return(buckets[entities.StatusScrap], nil)
	}

	t.Run("manager sees everything", func(t *testing.T) {
		f := newDashboardServiceFixture(t)
		stubBuckets(f)

		board, err := f.service.Kanban(context.Background(), manager)

		require.NoError(t, err)
		assert.Len(t, board.New, 2)
		assert.Len(t, board.Repaired, 1)
	})

	t.Run("technician board is filtered to their teams", func(t *testing.T) {
		f := newDashboardServiceFixture(t)
		stubBuckets(f)
		f.memberships.On("TeamIDs", mock.Anything, technician.ID).Return([]uint64{4}, nil)

		board, err := f.service.Kanban(context.Background(), technician)

		require.NoError(t, err)
		assert.Len(t, board.New, 1)
		assert.Len(t, board.InProgress, 1)
		assert.Empty(t, board.Repaired)
	})
}

func TestDashboardService_Calendar(t *testing.T) {
	f := newDashboardServiceFixture(t)
	scheduled := []entities.MaintenanceRequest{
		{ID: 1, TeamID: 4, Subject: "Quarterly maintenance", EquipmentName: "CNC Machine"},
	}
	f.requestRepo.On("ListPreventiveScheduled", mock.Anything).Return(scheduled, nil)

	events, err := f.service.Calendar(context.Background(), manager)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Quarterly maintenance", events[0].Title)
	assert.Equal(t, "CNC Machine", events[0].Equipment)
}
