package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, candidate_id, status, applied_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.Status, app.AppliedAt,
	).Scan(&app.ID)

	if err != nil {
		// The (job_id, candidate_id) unique constraint is the backstop for
		// the one-application-per-pair invariant.
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already applied to this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, applied_at FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.AppliedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FetchByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, applied_at
              FROM applications WHERE job_id = $1 ORDER BY id`
	return r.fetch(ctx, query, jobID)
}

func (r *applicationRepo) FetchByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, applied_at
              FROM applications WHERE candidate_id = $1 ORDER BY id`
	return r.fetch(ctx, query, candidateID)
}

func (r *applicationRepo) FetchAll(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, applied_at
              FROM applications ORDER BY id`
	return r.fetch(ctx, query)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, jobID int64, candidateID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) ExistsForEmployer(ctx context.Context, candidateID, employerID string) (bool, error) {
	query := `SELECT EXISTS(
                SELECT 1 FROM applications a
                JOIN jobs j ON a.job_id = j.id
                WHERE a.candidate_id = $1 AND j.employer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, candidateID, employerID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
