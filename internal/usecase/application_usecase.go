package usecase

import (
	"context"
	"errors"
	"time"

	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateProfileRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateProfileRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// ApplyForJob creates the one allowed application per (job, candidate)
// pair. The job must be published; drafts and closed postings read as
// absent so their existence does not leak to candidates.
func (u *applicationUsecase) ApplyForJob(ctx context.Context, jobID int64) (*domain.Application, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can apply for jobs")
	}
	if id.AppRole != domain.AppRoleCandidate {
		return nil, apperror.Forbidden("Only candidates can apply for jobs")
	}

	// Applications must reference a principal holding a candidate profile.
	if _, err := u.candidateRepo.GetByPrincipal(ctx, id.Principal); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Complete your candidate profile before applying")
		}
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusPublished {
		return nil, apperror.NotFound("Job not found")
	}

	exists, err := u.applicationRepo.Exists(ctx, jobID, id.Principal)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: id.Principal,
		Status:      domain.ApplicationStatusApplied,
		AppliedAt:   time.Now().UTC(),
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetApplication is visible to the owning candidate, the employer of the
// referenced job, and admins. When the job has been deleted the application
// survives with a dangling jobId; the employer side can no longer be
// established, so only the candidate and admins keep access.
func (u *applicationUsecase) GetApplication(ctx context.Context, appID int64) (*domain.Application, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can view applications")
	}

	app, err := u.applicationRepo.GetByID(ctx, appID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if !access.CanViewApplication(id, *app, job) {
		return nil, apperror.Forbidden("Can only view your own applications")
	}
	return app, nil
}

func (u *applicationUsecase) ListCandidateApplications(ctx context.Context, candidateID string) ([]domain.Application, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list applications")
	}
	if !access.CanViewCandidateApplications(id, candidateID) {
		return nil, apperror.Forbidden("Can only view your own applications")
	}

	apps, err := u.applicationRepo.FetchByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListJobApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list applications")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !access.CanManageJob(id, *job) {
		return nil, apperror.Forbidden("Can only view applications for your own jobs")
	}

	apps, err := u.applicationRepo.FetchByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplicationStatus accepts any of the five statuses from any prior
// status. The open transition graph mirrors the shipped behavior; a
// forward-only pipeline was considered and deliberately not imposed.
func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, appID int64, status domain.ApplicationStatus) error {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return apperror.Unauthorized("Only authenticated users can update applications")
	}
	if !status.Valid() {
		return apperror.BadRequest("Invalid application status")
	}

	app, err := u.applicationRepo.GetByID(ctx, appID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Application not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if errors.Is(err, domain.ErrNotFound) {
		// Orphaned application: the owning employer is gone with the job,
		// leaving only admins in charge of it.
		if !id.IsAdmin() {
			return apperror.Forbidden("Can only update applications for your own jobs")
		}
	} else if err != nil {
		return apperror.Internal(err)
	} else if !access.CanManageJob(id, *job) {
		return apperror.Forbidden("Can only update applications for your own jobs")
	}

	return u.applicationRepo.UpdateStatus(ctx, appID, status)
}

func (u *applicationUsecase) ListAllApplications(ctx context.Context) ([]domain.Application, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list applications")
	}
	if !access.CanAssignSystemRoles(id) {
		return nil, apperror.Forbidden("Only admins can list all applications")
	}

	apps, err := u.applicationRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
