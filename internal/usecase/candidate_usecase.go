package usecase

import (
	"context"
	"errors"

	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"
	"hospotalent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo            domain.CandidateProfileRepository
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateProfileRepository, applicationRepo domain.ApplicationRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:            repo,
		applicationRepo: applicationRepo,
		validate:        validate,
	}
}

func (u *candidateUsecase) SaveProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return apperror.Unauthorized("Only authenticated users can save a candidate profile")
	}
	if id.AppRole != domain.AppRoleCandidate {
		return apperror.Forbidden("Only candidates can save a candidate profile")
	}

	// The profile always belongs to the caller, whatever the payload says.
	profile.Principal = id.Principal

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetProfile is readable by the owner, admins, and employers holding an
// application from this candidate on one of their jobs.
func (u *candidateUsecase) GetProfile(ctx context.Context, principal string) (*domain.CandidateProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can view candidate profiles")
	}

	if !id.IsAdmin() && id.Principal != principal {
		if id.AppRole != domain.AppRoleEmployer {
			return nil, apperror.Forbidden("Can only view your own profile")
		}
		related, err := u.applicationRepo.ExistsForEmployer(ctx, principal, id.Principal)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !related {
			return nil, apperror.Forbidden("Can only view candidates who applied to your jobs")
		}
	}

	profile, err := u.repo.GetByPrincipal(ctx, principal)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) ListAllCandidates(ctx context.Context) ([]domain.CandidateProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list candidates")
	}
	if !access.CanAssignSystemRoles(id) {
		return nil, apperror.Forbidden("Only admins can list all candidates")
	}

	profiles, err := u.repo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}
