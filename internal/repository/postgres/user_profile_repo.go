package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type userProfileRepo struct {
	db *pgxpool.Pool
}

func NewUserProfileRepository(db *pgxpool.Pool) domain.UserProfileRepository {
	return &userProfileRepo{db: db}
}

func (r *userProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (principal, name, email, app_role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)
              ON CONFLICT (principal) DO UPDATE
              SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		profile.Principal, profile.Name, profile.Email, profile.AppRole,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *userProfileRepo) GetByPrincipal(ctx context.Context, principal string) (*domain.UserProfile, error) {
	query := `SELECT principal, name, email, app_role, created_at, updated_at
              FROM user_profiles WHERE principal = $1`
	var profile domain.UserProfile
	err := r.db.QueryRow(ctx, query, principal).Scan(
		&profile.Principal, &profile.Name, &profile.Email, &profile.AppRole,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
