package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type systemRoleRepo struct {
	db *pgxpool.Pool
}

func NewSystemRoleRepository(db *pgxpool.Pool) domain.SystemRoleRepository {
	return &systemRoleRepo{db: db}
}

func (r *systemRoleRepo) Assign(ctx context.Context, principal string, role domain.SystemRole) error {
	query := `INSERT INTO system_roles (principal, role) VALUES ($1, $2)
              ON CONFLICT (principal) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.db.Exec(ctx, query, principal, role)
	return err
}

func (r *systemRoleRepo) GetByPrincipal(ctx context.Context, principal string) (domain.SystemRole, error) {
	query := `SELECT role FROM system_roles WHERE principal = $1`
	var role domain.SystemRole
	err := r.db.QueryRow(ctx, query, principal).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return role, nil
}
