package domain

import "context"

// CandidateProfile exists only for principals whose UserProfile carries the
// candidate app role. One per principal.
type CandidateProfile struct {
	Principal  string   `json:"userId"`
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	Resume     *string  `json:"resume,omitempty"`
}

type CandidateProfileRepository interface {
	Upsert(ctx context.Context, profile *CandidateProfile) error
	GetByPrincipal(ctx context.Context, principal string) (*CandidateProfile, error)
	FetchAll(ctx context.Context) ([]CandidateProfile, error)
}

type CandidateUsecase interface {
	SaveProfile(ctx context.Context, profile *CandidateProfile) error
	GetProfile(ctx context.Context, principal string) (*CandidateProfile, error)
	ListAllCandidates(ctx context.Context) ([]CandidateProfile, error)
}
