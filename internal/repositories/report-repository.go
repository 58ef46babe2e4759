package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
)

type ReportRepositoryInterface interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.MaintenanceRequest, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

// ListCreatedBetween fetches requests created in the half-open interval
// [from, to). Aggregation happens in the service so the numbers stay easy to
// verify against fixtures.
func (r *ReportRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().
		Where(sq.GtOrEq{"r.created_at": from}).
		Where(sq.Lt{"r.created_at": to}).
		OrderBy("r.created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.MaintenanceRequest
	for rows.Next() {
		var m entities.MaintenanceRequest
		if err := rows.Scan(
			&m.ID, &m.Subject, &m.Description, &m.RequestType,
			&m.EquipmentID, &m.EquipmentName,
			&m.TeamID, &m.TeamName,
			&m.AssignedTechnicianID, &m.AssignedTechnicianName,
			&m.ScheduledDate, &m.DueDate, &m.Duration, &m.Status,
			&m.CreatedByID, &m.CreatedByName,
			&m.CreatedAt, &m.CompletedAt, &m.Notes,
		); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
