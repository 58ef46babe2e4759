package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type ReportServiceInterface interface {
	MonthlyReport(ctx context.Context, actor authz.Actor, year, month int) (*dto.MonthlyReportDTO, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// monthRange returns the half-open interval [first of month, first of next
// month). time.Date normalizes month 12+1 into January of the next year.
func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

func (s *ReportService) MonthlyReport(ctx context.Context, actor authz.Actor, year, month int) (*dto.MonthlyReportDTO, error) {
	if !authz.Can(actor, authz.ReportsView) {
		return nil, apperrors.NewAuthorizationError("not allowed to view reports")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, apperrors.NewValidationError("year %d is out of range", year)
	}

	from, to := monthRange(year, month)
	requests, err := s.reportRepo.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return reduceMonthly(year, month, requests), nil
}

// reduceMonthly folds a month's requests into per-team and overall totals.
// Completed means Repaired: a scrapped request closes without counting as
// completed work, and only Repaired durations contribute hours.
func reduceMonthly(year, month int, requests []entities.MaintenanceRequest) *dto.MonthlyReportDTO {
	byTeam := make(map[uint64]*dto.MonthlyTeamStatsDTO)

	report := &dto.MonthlyReportDTO{Year: year, Month: month}
	for _, r := range requests {
		stats, ok := byTeam[r.TeamID]
		if !ok {
			stats = &dto.MonthlyTeamStatsDTO{TeamID: r.TeamID, TeamName: r.TeamName}
			byTeam[r.TeamID] = stats
		}

		stats.TotalRequests++
		report.TotalRequests++

		if r.Status == entities.StatusRepaired {
			stats.Completed++
			report.CompletedRequests++
			if r.Duration.Valid {
				stats.TotalHours += r.Duration.Float64
				report.TotalDuration += r.Duration.Float64
			}
		}
	}

	report.TeamReports = make([]dto.MonthlyTeamStatsDTO, 0, len(byTeam))
	for _, stats := range byTeam {
		report.TeamReports = append(report.TeamReports, *stats)
	}
	sort.Slice(report.TeamReports, func(i, j int) bool {
		return report.TeamReports[i].TeamName < report.TeamReports[j].TeamName
	})
	return report
}
