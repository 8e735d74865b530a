package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Upsert(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `INSERT INTO employer_profiles (principal, company_name, company_description, company_location, email)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (principal) DO UPDATE
              SET company_name = EXCLUDED.company_name,
                  company_description = EXCLUDED.company_description,
                  company_location = EXCLUDED.company_location,
                  email = EXCLUDED.email`
	_, err := r.db.Exec(ctx, query,
		profile.Principal, profile.CompanyName, profile.CompanyDescription,
		profile.CompanyLocation, profile.Email,
	)
	return err
}

func (r *employerRepo) GetByPrincipal(ctx context.Context, principal string) (*domain.EmployerProfile, error) {
	query := `SELECT principal, company_name, company_description, company_location, email
              FROM employer_profiles WHERE principal = $1`
	var profile domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, principal).Scan(
		&profile.Principal, &profile.CompanyName, &profile.CompanyDescription,
		&profile.CompanyLocation, &profile.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employerRepo) FetchAll(ctx context.Context) ([]domain.EmployerProfile, error) {
	query := `SELECT principal, company_name, company_description, company_location, email
              FROM employer_profiles ORDER BY principal`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.EmployerProfile
	for rows.Next() {
		var profile domain.EmployerProfile
		if err := rows.Scan(
			&profile.Principal, &profile.CompanyName, &profile.CompanyDescription,
			&profile.CompanyLocation, &profile.Email,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
