package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func TestMonthRange(t *testing.T) {
	t.Run("mid-year month", func(t *testing.T) {
		from, to := monthRange(2024, 2)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		from, to := monthRange(2023, 12)
		assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), to)
	})
}

func TestReportService_MonthlyReport(t *testing.T) {
	requests := []entities.MaintenanceRequest{
		{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusRepaired, Duration: null.Float64From(2.0)},
		{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusNew},
		{TeamID: 2, TeamName: "Electrical Team", Status: entities.StatusScrap, Duration: null.Float64From(1.5)},
	}

	t.Run("aggregates per team and overall", func(t *testing.T) {
		repo := new(MockReportRepository)
		repo.On("ListCreatedBetween", mock.Anything,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Return(requests, nil)
		svc := NewReportService(repo, zap.NewNop())

		report, err := svc.MonthlyReport(context.Background(), manager, 2024, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, report.TotalRequests)
		assert.Equal(t, 1, report.CompletedRequests)
		assert.InDelta(t, 2.0, report.TotalDuration, 0.001)

		require.Len(t, report.TeamReports, 2)
		electrical := report.TeamReports[0]
		assert.Equal(t, "Electrical Team", electrical.TeamName)
		assert.Equal(t, 1, electrical.TotalRequests)
		assert.Equal(t, 0, electrical.Completed)
		assert.Zero(t, electrical.TotalHours)

		mechanical := report.TeamReports[1]
		assert.Equal(t, 2, mechanical.TotalRequests)
		assert.Equal(t, 1, mechanical.Completed)
		assert.InDelta(t, 2.0, mechanical.TotalHours, 0.001)
		repo.AssertExpectations(t)
	})

	t.Run("scrapped requests are counted but not completed", func(t *testing.T) {
		repo := new(MockReportRepository)
		repo.On("ListCreatedBetween", mock.Anything, mock.Anything, mock.Anything).
			Return([]entities.MaintenanceRequest{
				{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusRepaired, Duration: null.Float64From(2.5)},
				{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusScrap, Duration: null.Float64From(4.0)},
				{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusNew},
			}, nil)
		svc := NewReportService(repo, zap.NewNop())

		report, err := svc.MonthlyReport(context.Background(), manager, 2024, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, report.TotalRequests)
		assert.Equal(t, 1, report.CompletedRequests)
		assert.InDelta(t, 2.5, report.TotalDuration, 0.001)
	})

	t.Run("completed work without a recorded duration adds no hours", func(t *testing.T) {
		repo := new(MockReportRepository)
		repo.On("ListCreatedBetween", mock.Anything, mock.Anything, mock.Anything).
			Return([]entities.MaintenanceRequest{
				{TeamID: 1, TeamName: "Mechanical Team", Status: entities.StatusRepaired},
			}, nil)
		svc := NewReportService(repo, zap.NewNop())

		report, err := svc.MonthlyReport(context.Background(), manager, 2024, 3)

		require.NoError(t, err)
		assert.Equal(t, 1, report.CompletedRequests)
		assert.Zero(t, report.TotalDuration)
	})

	t.Run("technicians are denied", func(t *testing.T) {
		svc := NewReportService(new(MockReportRepository), zap.NewNop())

		_, err := svc.MonthlyReport(context.Background(), technician, 2024, 2)

		assert.True(t, apperrors.IsAuthorization(err))
	})

	t.Run("month out of range", func(t *testing.T) {
		svc := NewReportService(new(MockReportRepository), zap.NewNop())

		_, err := svc.MonthlyReport(context.Background(), manager, 2024, 13)

		assert.True(t, apperrors.IsValidation(err))
	})
}
