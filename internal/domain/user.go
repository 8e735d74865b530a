package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// AppRole selects which business workflows a principal participates in.
type AppRole string

const (
	AppRoleAdmin     AppRole = "admin"
	AppRoleEmployer  AppRole = "employer"
	AppRoleCandidate AppRole = "candidate"
)

func (r AppRole) Valid() bool {
	switch r {
	case AppRoleAdmin, AppRoleEmployer, AppRoleCandidate:
		return true
	}
	return false
}

// SystemRole is the platform-administration axis, independent of AppRole.
// Unauthenticated callers resolve to guest, authenticated callers to user
// unless an admin has elevated them.
type SystemRole string

const (
	SystemRoleAdmin SystemRole = "admin"
	SystemRoleUser  SystemRole = "user"
	SystemRoleGuest SystemRole = "guest"
)

func (r SystemRole) Valid() bool {
	switch r {
	case SystemRoleAdmin, SystemRoleUser, SystemRoleGuest:
		return true
	}
	return false
}

// UserProfile is the base account record, at most one per principal.
// AppRole is fixed at creation; re-saving only overwrites name and email.
type UserProfile struct {
	Principal string    `json:"principal"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AppRole   AppRole   `json:"appRole"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserProfileRepository interface {
	Upsert(ctx context.Context, profile *UserProfile) error
	GetByPrincipal(ctx context.Context, principal string) (*UserProfile, error)
}

// SystemRoleRepository stores explicit role assignments. Principals without
// an assignment fall back to the defaults above.
type SystemRoleRepository interface {
	Assign(ctx context.Context, principal string, role SystemRole) error
	GetByPrincipal(ctx context.Context, principal string) (SystemRole, error)
}

type ProfileUsecase interface {
	SaveCallerProfile(ctx context.Context, name, email string, role AppRole) (*UserProfile, error)
	GetCallerProfile(ctx context.Context) (*UserProfile, error)
	GetUserProfile(ctx context.Context, principal string) (*UserProfile, error)
	GetCallerSystemRole(ctx context.Context) SystemRole
	IsCallerAdmin(ctx context.Context) bool
	AssignSystemRole(ctx context.Context, principal string, role SystemRole) error
}
