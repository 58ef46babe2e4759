package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type RequestRepositoryInterface interface {
	Create(ctx context.Context, req *entities.MaintenanceRequest) (uint64, error)
	Update(ctx context.Context, id uint64, d dto.UpdateRequestDTO) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	FindForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error)
	List(ctx context.Context, f dto.RequestFilter) ([]entities.MaintenanceRequest, error)
	Assign(ctx context.Context, tx pgx.Tx, id, technicianID uint64, status entities.RequestStatus) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status entities.RequestStatus, completedAt null.Time, notes null.String) error
	ListByStatus(ctx context.Context, status entities.RequestStatus, limit uint64) ([]entities.MaintenanceRequest, error)
	ListPreventiveScheduled(ctx context.Context) ([]entities.MaintenanceRequest, error)
	ListOverdue(ctx context.Context, today time.Time) ([]entities.MaintenanceRequest, error)
	ListAssignedInProgress(ctx context.Context, technicianID uint64) ([]entities.MaintenanceRequest, error)
	ListRecent(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func requestSelect() sq.SelectBuilder {
	return psql.Select(
		"r.id", "r.subject", "r.description", "r.request_type",
		"r.equipment_id", "e.name AS equipment_name",
		"r.team_id", "t.name AS team_name",
		"r.assigned_technician_id", "tech.name AS technician_name",
		"r.scheduled_date", "r.due_date", "r.duration", "r.status",
		"r.created_by_id", "creator.name AS creator_name",
		"r.created_at", "r.completed_at", "r.notes",
	).
		From("maintenance_requests r").
		Join("equipment e ON e.id = r.equipment_id").
		Join("teams t ON t.id = r.team_id").
		LeftJoin("users tech ON tech.id = r.assigned_technician_id").
		Join("users creator ON creator.id = r.created_by_id")
}

func scanRequestRow(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.Subject, &m.Description, &m.RequestType,
		&m.EquipmentID, &m.EquipmentName,
		&m.TeamID, &m.TeamName,
		&m.AssignedTechnicianID, &m.AssignedTechnicianName,
		&m.ScheduledDate, &m.DueDate, &m.Duration, &m.Status,
		&m.CreatedByID, &m.CreatedByName,
		&m.CreatedAt, &m.CompletedAt, &m.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("maintenance request not found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, builder sq.SelectBuilder) ([]entities.MaintenanceRequest, error) {
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

func (r *RequestRepository) Create(ctx context.Context, req *entities.MaintenanceRequest) (uint64, error) {
	query := `
		INSERT INTO maintenance_requests
			(subject, description, request_type, equipment_id, team_id,
			 assigned_technician_id, scheduled_date, due_date, status, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err := r.storage.QueryRow(ctx, query,
		req.Subject, req.Description, req.RequestType, req.EquipmentID, req.TeamID,
		req.AssignedTechnicianID, req.ScheduledDate, req.DueDate, req.Status, req.CreatedByID,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return 0, err
	}
	return req.ID, nil
}

func (r *RequestRepository) Update(ctx context.Context, id uint64, d dto.UpdateRequestDTO) error {
	query := `
		UPDATE maintenance_requests SET
			subject = $1, description = $2, request_type = $3,
			scheduled_date = $4, due_date = $5, duration = $6, notes = NULLIF($7, '')
		WHERE id = $8
	`
	tag, err := r.storage.Exec(ctx, query,
		d.Subject, d.Description, d.RequestType,
		d.ParsedScheduledDate(), d.ParsedDueDate(), d.Duration, d.Notes,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request not found")
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM maintenance_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request not found")
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := requestSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequestRow(r.storage.QueryRow(ctx, query, args...))
}

// FindForUpdate locks the bare request row inside the caller's transaction so
// the read-decide-write status sequence is atomic. Joined display columns are
// not needed here.
func (r *RequestRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	query := `
		SELECT id, subject, description, request_type, equipment_id, team_id,
		       assigned_technician_id, scheduled_date, due_date, duration, status,
		       created_by_id, created_at, completed_at, notes
		FROM maintenance_requests
		WHERE id = $1
		FOR UPDATE
	`
	var m entities.MaintenanceRequest
	err := tx.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Subject, &m.Description, &m.RequestType, &m.EquipmentID, &m.TeamID,
		&m.AssignedTechnicianID, &m.ScheduledDate, &m.DueDate, &m.Duration, &m.Status,
		&m.CreatedByID, &m.CreatedAt, &m.CompletedAt, &m.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("maintenance request not found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *RequestRepository) List(ctx context.Context, f dto.RequestFilter) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().OrderBy("r.created_at DESC")

	if f.Status != "" {
		builder = builder.Where(sq.Eq{"r.status": f.Status})
	}
	if f.Type != "" {
		builder = builder.Where(sq.Eq{"r.request_type": f.Type})
	}
	if f.TeamID != 0 {
		builder = builder.Where(sq.Eq{"r.team_id": f.TeamID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.subject": pattern},
			sq.ILike{"r.description": pattern},
		})
	}
	if f.TeamScope != nil {
		// Technician scoping: an empty (non-nil) scope matches nothing.
		builder = builder.Where(sq.Eq{"r.team_id": f.TeamScope})
	}

	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) Assign(ctx context.Context, tx pgx.Tx, id, technicianID uint64, status entities.RequestStatus) error {
	tag, err := tx.Exec(ctx,
		"UPDATE maintenance_requests SET assigned_technician_id = $1, status = $2 WHERE id = $3",
		technicianID, status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request not found")
	}
	return nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status entities.RequestStatus, completedAt null.Time, notes null.String) error {
	tag, err := tx.Exec(ctx,
		"UPDATE maintenance_requests SET status = $1, completed_at = $2, notes = $3 WHERE id = $4",
		status, completedAt, notes, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request not found")
	}
	return nil
}

// ListByStatus returns a kanban bucket. Terminal buckets are ordered by
// completion time, open buckets by creation time.
func (r *RequestRepository) ListByStatus(ctx context.Context, status entities.RequestStatus, limit uint64) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().Where(sq.Eq{"r.status": status})
	if status.IsTerminal() {
		builder = builder.OrderBy("r.completed_at DESC NULLS LAST")
	} else {
		builder = builder.OrderBy("r.created_at DESC")
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) ListPreventiveScheduled(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().
		Where(sq.Eq{"r.request_type": entities.TypePreventive}).
		Where(sq.NotEq{"r.scheduled_date": nil}).
		OrderBy("r.scheduled_date")
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) ListOverdue(ctx context.Context, today time.Time) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().
		Where(sq.Lt{"r.due_date": today}).
		Where(sq.Eq{"r.status": []entities.RequestStatus{entities.StatusNew, entities.StatusInProgress}}).
		OrderBy("r.due_date")
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) ListAssignedInProgress(ctx context.Context, technicianID uint64) ([]entities.MaintenanceRequest, error) {
	builder := requestSelect().
		Where(sq.Eq{"r.assigned_technician_id": technicianID}).
		Where(sq.Eq{"r.status": entities.StatusInProgress}).
		OrderBy("r.created_at DESC")
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) ListRecent(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error) {
	return r.queryRequests(ctx, requestSelect().OrderBy("r.created_at DESC").Limit(limit))
}
