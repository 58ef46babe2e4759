package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entities.User) (uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByResetToken(ctx context.Context, token string) (*entities.User, error)
	SetResetToken(ctx context.Context, id uint64, token string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	List(ctx context.Context, role string) ([]entities.User, error)
	TeamIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

const userColumns = "id, name, email, password_hash, role, reset_token, reset_token_expiry, created_at"

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.ResetToken,
		&u.ResetTokenExpiry,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (uint64, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id uint64
	err := r.storage.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	user.TeamIDs, err = r.TeamIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*entities.User, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE reset_token = $1", token)
	return scanUser(row)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id uint64, token string, expiry time.Time) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE users SET reset_token = $1, reset_token_expiry = $2 WHERE id = $3",
		token, expiry, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// UpdatePassword also consumes any outstanding reset token.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE users SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL WHERE id = $2",
		passwordHash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, role string) ([]entities.User, error) {
	builder := psql.Select(userColumns).From("users").OrderBy("name")
	if role != "" {
		builder = builder.Where(sq.Eq{"role": role})
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

	var users []entities.User
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) TeamIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	rows, err := r.storage.Query(ctx, "SELECT team_id FROM team_members WHERE user_id = $1", userID)
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
