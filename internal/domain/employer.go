package domain

import "context"

// EmployerProfile exists only for principals whose UserProfile carries the
// employer app role. One per principal.
type EmployerProfile struct {
	Principal          string `json:"userId"`
	CompanyName        string `json:"companyName" validate:"required"`
	CompanyDescription string `json:"companyDescription"`
	CompanyLocation    string `json:"companyLocation"`
	Email              string `json:"email" validate:"required,email"`
}

type EmployerProfileRepository interface {
	Upsert(ctx context.Context, profile *EmployerProfile) error
	GetByPrincipal(ctx context.Context, principal string) (*EmployerProfile, error)
	FetchAll(ctx context.Context) ([]EmployerProfile, error)
}

type EmployerUsecase interface {
	SaveProfile(ctx context.Context, profile *EmployerProfile) error
	GetProfile(ctx context.Context, principal string) (*EmployerProfile, error)
	ListAllEmployers(ctx context.Context) ([]EmployerProfile, error)
}
