package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo     domain.UserProfileRepository
	roleRepo        domain.SystemRoleRepository
	applicationRepo domain.ApplicationRepository
}

func NewProfileUsecase(profileRepo domain.UserProfileRepository, roleRepo domain.SystemRoleRepository, applicationRepo domain.ApplicationRepository) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:     profileRepo,
		roleRepo:        roleRepo,
		applicationRepo: applicationRepo,
	}
}

// SaveCallerProfile upserts the caller's base profile. The app role is fixed
// at creation: on re-save only name and email are overwritten.
func (u *profileUsecase) SaveCallerProfile(ctx context.Context, name, email string, role domain.AppRole) (*domain.UserProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can save a profile")
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}

	existing, err := u.profileRepo.GetByPrincipal(ctx, id.Principal)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	profile := &domain.UserProfile{
		Principal: id.Principal,
		Name:      name,
		Email:     email,
		UpdatedAt: now,
	}

	if existing != nil {
		profile.AppRole = existing.AppRole
		profile.CreatedAt = existing.CreatedAt
	} else {
		if !role.Valid() {
			return nil, apperror.BadRequest("Invalid app role")
		}
		profile.AppRole = role
		profile.CreatedAt = now
	}

	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// GetCallerProfile returns nil without error when the caller has not
// completed profile setup yet; the client uses that to drive first-run flow.
func (u *profileUsecase) GetCallerProfile(ctx context.Context) (*domain.UserProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can view their profile")
	}

	profile, err := u.profileRepo.GetByPrincipal(ctx, id.Principal)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// GetUserProfile is readable by the owner, admins, and employers holding an
// application from this principal on one of their jobs, matching the
// candidate-profile relationship rule.
func (u *profileUsecase) GetUserProfile(ctx context.Context, principal string) (*domain.UserProfile, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can look up profiles")
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
			return nil, apperror.Forbidden("Can only view users who applied to your jobs")
		}
	}

	profile, err := u.profileRepo.GetByPrincipal(ctx, principal)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetCallerSystemRole(ctx context.Context) domain.SystemRole {
	return access.FromContext(ctx).SystemRole
}

func (u *profileUsecase) IsCallerAdmin(ctx context.Context) bool {
	return access.FromContext(ctx).IsSystemAdmin()
}

// AssignSystemRole elevates or demotes a principal on the platform axis.
// Only an existing system admin may do this.
func (u *profileUsecase) AssignSystemRole(ctx context.Context, principal string, role domain.SystemRole) error {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return apperror.Unauthorized("Only authenticated users can assign roles")
	}
	if !access.CanAssignSystemRoles(id) {
		return apperror.Forbidden("Only admins can assign roles")
	}
	if principal == "" {
		return apperror.BadRequest("Principal is required")
	}
	if !role.Valid() {
		return apperror.BadRequest("Invalid system role")
	}

	if err := u.roleRepo.Assign(ctx, principal, role); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
