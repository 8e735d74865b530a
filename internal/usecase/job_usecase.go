package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gosimple/slug"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerProfileRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

func validateJobInput(input domain.JobInput) *apperror.AppError {
	if strings.TrimSpace(input.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apperror.BadRequest("Description is required")
	}
	if input.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if !input.JobType.Valid() {
		return apperror.BadRequest("Invalid job type")
	}
	return nil
}

// SaveJob creates a posting owned by the caller. Postings start out draft
// or published; closing happens through updateJob.
func (u *jobUsecase) SaveJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can create jobs")
	}
	if id.AppRole != domain.AppRoleEmployer {
		return nil, apperror.Forbidden("Only employers can create jobs")
	}

	// Every posting must reference a principal holding an employer profile.
	if _, err := u.employerRepo.GetByPrincipal(ctx, id.Principal); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found. Please create a company profile first.")
		}
		return nil, apperror.Internal(err)
	}

	if appErr := validateJobInput(input); appErr != nil {
		return nil, appErr
	}
	if input.Status != domain.JobStatusDraft && input.Status != domain.JobStatusPublished {
		return nil, apperror.BadRequest("New jobs must be draft or published")
	}

	jobSlug := strings.TrimSpace(input.Slug)
	if jobSlug == "" {
		jobSlug = slug.Make(input.Title)
	} else if !slug.IsSlug(jobSlug) {
		return nil, apperror.BadRequest("Slug must be a URL-safe lowercase string")
	}

	if _, err := u.jobRepo.GetBySlug(ctx, jobSlug); err == nil {
		return nil, apperror.Conflict("A job with this slug already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	job := &domain.Job{
		EmployerID:  id.Principal,
		Title:       input.Title,
		Slug:        jobSlug,
		Description: input.Description,
		Location:    input.Location,
		Salary:      input.Salary,
		JobType:     input.JobType,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob overwrites the mutable fields of a posting the caller owns.
// The slug is kept as created; status may move between draft, published and
// closed in any order.
func (u *jobUsecase) UpdateJob(ctx context.Context, jobID int64, input domain.JobInput) (*domain.Job, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can update jobs")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !access.CanManageJob(id, *job) {
		return nil, apperror.Forbidden("Can only update your own jobs")
	}

	if appErr := validateJobInput(input); appErr != nil {
		return nil, appErr
	}
	if !input.Status.Valid() {
		return nil, apperror.BadRequest("Invalid job status")
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Location = input.Location
	job.Salary = input.Salary
	job.JobType = input.JobType
	job.Status = input.Status
	job.UpdatedAt = time.Now().UTC()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the posting permanently. Existing applications are kept
// and reference the dead job id from then on.
func (u *jobUsecase) DeleteJob(ctx context.Context, jobID int64) error {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return apperror.Unauthorized("Only authenticated users can delete jobs")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	if !access.CanManageJob(id, *job) {
		return apperror.Forbidden("Can only delete your own jobs")
	}

	return u.jobRepo.Delete(ctx, jobID)
}

// GetJob hides non-published postings from everyone but the owner and
// admins; a hidden posting reads as absent, not as forbidden.
func (u *jobUsecase) GetJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !access.CanViewJob(access.FromContext(ctx), *job) {
		return nil, nil
	}
	return job, nil
}

func (u *jobUsecase) GetJobBySlug(ctx context.Context, jobSlug string) (*domain.Job, error) {
	job, err := u.jobRepo.GetBySlug(ctx, jobSlug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !access.CanViewJob(access.FromContext(ctx), *job) {
		return nil, nil
	}
	return job, nil
}

// ListFilteredJobs evaluates the filter conjunction over the whole catalog,
// then applies the visibility rule. Caller-supplied status filters are
// advisory: a guest asking for drafts still gets nothing but published
// postings they could see anyway.
func (u *jobUsecase) ListFilteredJobs(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	id := access.FromContext(ctx)

	all, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := make([]domain.Job, 0, len(all))
	for _, job := range all {
		if !access.CanViewJob(id, job) {
			continue
		}
		if filters.Match(job) {
			result = append(result, job)
		}
	}
	return result, nil
}

// ListEmployerJobs returns the employer's postings: every status for the
// owner and admins, published only for anyone else.
func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID string) ([]domain.Job, error) {
	id := access.FromContext(ctx)

	jobs, err := u.jobRepo.FetchByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if access.CanViewJob(id, job) {
			result = append(result, job)
		}
	}
	return result, nil
}

func (u *jobUsecase) ListAllJobs(ctx context.Context) ([]domain.Job, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list jobs")
	}
	if !access.CanAssignSystemRoles(id) {
		return nil, apperror.Forbidden("Only admins can list all jobs")
	}

	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
