package domain

import "context"

// PlatformStats backs the admin dashboard overview.
type PlatformStats struct {
	TotalJobs         int64 `json:"total_jobs"`
	PublishedJobs     int64 `json:"published_jobs"`
	TotalCandidates   int64 `json:"total_candidates"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalApplications int64 `json:"total_applications"`
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*PlatformStats, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*PlatformStats, error)
}
