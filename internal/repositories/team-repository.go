package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type TeamRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d dto.CreateTeamDTO) (uint64, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateTeamDTO) error
	ReplaceMembers(ctx context.Context, tx pgx.Tx, teamID uint64, memberIDs []uint64) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*entities.Team, error)
	FindByName(ctx context.Context, name string) (*entities.Team, error)
	List(ctx context.Context) ([]entities.Team, error)
	CountEquipment(ctx context.Context, teamID uint64) (int, error)
	MemberIDs(ctx context.Context, teamID uint64) ([]uint64, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTeamRepository(storage *pgxpool.Pool, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

func (r *TeamRepository) Create(ctx context.Context, tx pgx.Tx, d dto.CreateTeamDTO) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		"INSERT INTO teams (name, description) VALUES ($1, $2) RETURNING id",
		d.Name, d.Description,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TeamRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d dto.UpdateTeamDTO) error {
	tag, err := tx.Exec(ctx,
		"UPDATE teams SET name = $1, description = $2 WHERE id = $3",
		d.Name, d.Description, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}
	return nil
}

// ReplaceMembers rewrites the membership set wholesale, matching the edit
// form semantics of the team page.
func (r *TeamRepository) ReplaceMembers(ctx context.Context, tx pgx.Tx, teamID uint64, memberIDs []uint64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM team_members WHERE team_id = $1", teamID); err != nil {
		return err
	}
	for _, userID := range memberIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO team_members (team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			teamID, userID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint64) (*entities.Team, error) {
	var team entities.Team
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, description, created_at FROM teams WHERE id = $1", id,
	).Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team not found")
		}
		return nil, err
	}

	members, err := r.members(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return &team, nil
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (*entities.Team, error) {
	var team entities.Team
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, description, created_at FROM teams WHERE name = $1", name,
	).Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team not found")
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]entities.Team, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT id, name, description, created_at FROM teams ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		members, err := r.members(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}
	return teams, nil
}

func (r *TeamRepository) CountEquipment(ctx context.Context, teamID uint64) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM equipment WHERE team_id = $1", teamID,
	).Scan(&count)
	return count, err
}

func (r *TeamRepository) MemberIDs(ctx context.Context, teamID uint64) ([]uint64, error) {
	rows, err := r.storage.Query(ctx, "SELECT user_id FROM team_members WHERE team_id = $1", teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *TeamRepository) members(ctx context.Context, teamID uint64) ([]entities.TeamMember, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT u.id, u.name, u.email, u.role
		FROM users u
		JOIN team_members tm ON tm.user_id = u.id
		WHERE tm.team_id = $1
		ORDER BY u.name
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entities.TeamMember
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
