package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
)

type DashboardRepositoryInterface interface {
	CountEquipment(ctx context.Context) (int, error)
	CountRequests(ctx context.Context, statuses []entities.RequestStatus) (int, error)
	TeamStats(ctx context.Context) ([]entities.TeamStats, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) countRows(ctx context.Context, builder sq.SelectBuilder) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	err = r.storage.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

// CountEquipment counts operational units; scrapped equipment is excluded.
func (r *DashboardRepository) CountEquipment(ctx context.Context) (int, error) {
	return r.countRows(ctx, psql.Select("COUNT(*)").From("equipment").Where(sq.Eq{"is_scrapped": false}))
}

// CountRequests counts all requests when statuses is empty.
func (r *DashboardRepository) CountRequests(ctx context.Context, statuses []entities.RequestStatus) (int, error) {
	builder := psql.Select("COUNT(*)").From("maintenance_requests")
	if len(statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	return r.countRows(ctx, builder)
}

func (r *DashboardRepository) TeamStats(ctx context.Context) ([]entities.TeamStats, error) {
	query := `
		SELECT t.id, t.name,
		       (SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id),
		       (SELECT COUNT(*) FROM maintenance_requests r
		        WHERE r.team_id = t.id AND r.status IN ('New', 'In Progress'))
		FROM teams t
		ORDER BY t.name
	`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []entities.TeamStats
	for rows.Next() {
		var s entities.TeamStats
		if err := rows.Scan(&s.TeamID, &s.Name, &s.MemberCount, &s.OpenRequests); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
