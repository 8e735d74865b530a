package postgres

import (
	"context"
	"errors"

	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, employer_id, title, slug, description, location, salary, job_type, status, created_at, updated_at`

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Slug, &job.Description,
		&job.Location, &job.Salary, &job.JobType, &job.Status,
		&job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, slug, description, location, salary, job_type, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Slug, job.Description, job.Location,
		job.Salary, job.JobType, job.Status, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("A job with this slug already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, query, id), &job)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1`
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, query, slug), &job)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FetchAll orders by id so listings stay deterministic for a fixed catalog.
func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`
	return r.fetch(ctx, query)
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY id`
	return r.fetch(ctx, query, employerID)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		salary = $5,
		job_type = $6,
		status = $7,
		updated_at = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.Salary, job.JobType, job.Status, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
