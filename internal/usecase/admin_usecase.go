package usecase

import (
	"context"

	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"
)

type adminUsecase struct {
	statsRepo domain.StatsRepository
}

func NewAdminUsecase(statsRepo domain.StatsRepository) domain.AdminUsecase {
	return &adminUsecase{statsRepo: statsRepo}
}

// GetStats backs the admin dashboard overview counters.
func (u *adminUsecase) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	id := access.FromContext(ctx)
	if !id.Authenticated() {
		return nil, apperror.Unauthorized("Only authenticated users can view platform stats")
	}
	if !access.CanAssignSystemRoles(id) {
		return nil, apperror.Forbidden("Only admins can view platform stats")
	}

	stats, err := u.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
