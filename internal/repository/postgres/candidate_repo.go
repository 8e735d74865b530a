package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (principal, name, email, experience, skills, resume)
              VALUES ($1, $2, $3, $4, $5, $6)
              ON CONFLICT (principal) DO UPDATE
              SET name = EXCLUDED.name, email = EXCLUDED.email,
                  experience = EXCLUDED.experience, skills = EXCLUDED.skills,
                  resume = EXCLUDED.resume`
	_, err := r.db.Exec(ctx, query,
		profile.Principal, profile.Name, profile.Email,
		profile.Experience, profile.Skills, profile.Resume,
	)
	return err
}

func (r *candidateRepo) GetByPrincipal(ctx context.Context, principal string) (*domain.CandidateProfile, error) {
	query := `SELECT principal, name, email, experience, skills, resume
              FROM candidate_profiles WHERE principal = $1`
	var profile domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, principal).Scan(
		&profile.Principal, &profile.Name, &profile.Email,
		&profile.Experience, &profile.Skills, &profile.Resume,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *candidateRepo) FetchAll(ctx context.Context) ([]domain.CandidateProfile, error) {
	query := `SELECT principal, name, email, experience, skills, resume
              FROM candidate_profiles ORDER BY principal`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.CandidateProfile
	for rows.Next() {
		var profile domain.CandidateProfile
		if err := rows.Scan(
			&profile.Principal, &profile.Name, &profile.Email,
			&profile.Experience, &profile.Skills, &profile.Resume,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
