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

type employerUsecase struct {
	repo            domain.EmployerProfileRepository
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerProfileRepository, applicationRepo domain.ApplicationRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{
		repo:            repo,
		applicationRepo: applicationRepo,
		validate:        validate,
	}
}

func (u *employerUsecase) SaveProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return apperror.Unauthorized("Only authenticated users can save an employer profile")
	}
	if id.AppRole != domain.AppRoleEmployer {
		return apperror.Forbidden("Only employers can save an employer profile")
	}

	profile.Principal = id.Principal

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetProfile is readable by the owner, admins, and candidates who applied
// to one of this employer's jobs.
func (u *employerUsecase) GetProfile(ctx context.Context, principal string) (*domain.EmployerProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can view employer profiles")
	}

	if !id.IsAdmin() && id.Principal != principal {
		if id.AppRole != domain.AppRoleCandidate {
			return nil, apperror.Forbidden("Can only view your own profile")
		}
		related, err := u.applicationRepo.ExistsForEmployer(ctx, id.Principal, principal)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !related {
			return nil, apperror.Forbidden("Can only view employers you applied to")
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

func (u *employerUsecase) ListAllEmployers(ctx context.Context) ([]domain.EmployerProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can list employers")
	}
	if !access.CanAssignSystemRoles(id) {
		return nil, apperror.Forbidden("Only admins can list all employers")
	}

	profiles, err := u.repo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}
