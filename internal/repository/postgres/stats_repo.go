package postgres

import (
	"context"

	"hospotalent-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `SELECT
                (SELECT COUNT(*) FROM jobs),
                (SELECT COUNT(*) FROM jobs WHERE status = 'published'),
                (SELECT COUNT(*) FROM candidate_profiles),
                (SELECT COUNT(*) FROM employer_profiles),
                (SELECT COUNT(*) FROM applications)`

	var stats domain.PlatformStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalJobs, &stats.PublishedJobs, &stats.TotalCandidates,
		&stats.TotalEmployers, &stats.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
