package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, d dto.CreateEquipmentDTO) (uint64, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error)
	List(ctx context.Context, f dto.EquipmentFilter) ([]entities.Equipment, error)
	Departments(ctx context.Context) ([]string, error)
	CountOpenRequests(ctx context.Context, equipmentID uint64) (int, error)
	MarkScrapped(ctx context.Context, tx pgx.Tx, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// equipmentSelect joins the owning team and aggregates open request counts so
// list and detail views avoid per-row follow-up queries.
func equipmentSelect() sq.SelectBuilder {
	return psql.Select(
		"e.id", "e.name", "e.serial_number", "e.department", "e.assigned_employee",
		"e.team_id", "t.name AS team_name", "e.default_technician_id",
		"e.purchase_date", "e.warranty_expiry", "e.location", "e.is_scrapped", "e.created_at",
		"(SELECT COUNT(*) FROM maintenance_requests r WHERE r.equipment_id = e.id AND r.status IN ('New', 'In Progress'))",
	).
		From("equipment e").
		Join("teams t ON t.id = e.team_id")
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.AssignedEmployee,
		&e.TeamID, &e.TeamName, &e.DefaultTechnicianID,
		&e.PurchaseDate, &e.WarrantyExpiry, &e.Location, &e.IsScrapped, &e.CreatedAt,
		&e.OpenRequestCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, d dto.CreateEquipmentDTO) (uint64, error) {
	query := `
		INSERT INTO equipment
			(name, serial_number, department, assigned_employee, team_id,
			 default_technician_id, purchase_date, warranty_expiry, location)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7, $8, $9)
		RETURNING id
	`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		d.Name, d.SerialNumber, d.Department, d.AssignedEmployee, d.TeamID,
		d.DefaultTechnicianID, d.ParsedPurchaseDate(), d.ParsedWarrantyExpiry(), d.Location,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) error {
	query := `
		UPDATE equipment SET
			name = $1, serial_number = $2, department = $3, assigned_employee = $4,
			team_id = $5, default_technician_id = NULLIF($6, 0),
			purchase_date = $7, warranty_expiry = $8, location = $9, is_scrapped = $10
		WHERE id = $11
	`
	tag, err := r.storage.Exec(ctx, query,
		d.Name, d.SerialNumber, d.Department, d.AssignedEmployee,
		d.TeamID, d.DefaultTechnicianID,
		d.ParsedPurchaseDate(), d.ParsedWarrantyExpiry(), d.Location, d.IsScrapped,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment not found")
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment not found")
	}
	return nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := equipmentSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) FindBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	query, args, err := equipmentSelect().Where(sq.Eq{"e.serial_number": serialNumber}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) List(ctx context.Context, f dto.EquipmentFilter) ([]entities.Equipment, error) {
	builder := equipmentSelect().OrderBy("e.created_at DESC")

	if f.Department != "" {
		builder = builder.Where(sq.Eq{"e.department": f.Department})
	}
	if f.Employee != "" {
		builder = builder.Where(sq.ILike{"e.assigned_employee": "%" + f.Employee + "%"})
	}
	switch f.Status {
	case "scrapped":
		builder = builder.Where(sq.Eq{"e.is_scrapped": true})
	case "operational":
		builder = builder.Where(sq.Eq{"e.is_scrapped": false})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.AssignedEmployee,
			&e.TeamID, &e.TeamName, &e.DefaultTechnicianID,
			&e.PurchaseDate, &e.WarrantyExpiry, &e.Location, &e.IsScrapped, &e.CreatedAt,
			&e.OpenRequestCount,
		); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx, "SELECT DISTINCT department FROM equipment ORDER BY department")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *EquipmentRepository) CountOpenRequests(ctx context.Context, equipmentID uint64) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*) FROM maintenance_requests
		WHERE equipment_id = $1 AND status IN ('New', 'In Progress')
	`, equipmentID).Scan(&count)
	return count, err
}

// MarkScrapped is the one-way flag flip performed inside the Scrap status
// transaction; there is deliberately no inverse operation.
func (r *EquipmentRepository) MarkScrapped(ctx context.Context, tx pgx.Tx, id uint64) error {
	tag, err := tx.Exec(ctx, "UPDATE equipment SET is_scrapped = TRUE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment not found")
	}
	return nil
}
