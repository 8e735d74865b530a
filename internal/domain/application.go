package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application records a candidate applying to a job. Exactly one may exist
// per (JobID, CandidateID) pair. All fields except Status are immutable
// after creation.
type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"jobId"`
	CandidateID string            `json:"candidateId"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	FetchByJob(ctx context.Context, jobID int64) ([]Application, error)
	FetchByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	FetchAll(ctx context.Context) ([]Application, error)
	Exists(ctx context.Context, jobID int64, candidateID string) (bool, error)
	// ExistsForEmployer reports whether the candidate has applied to any of
	// the employer's jobs; profile reads hang off this relationship.
	ExistsForEmployer(ctx context.Context, candidateID, employerID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	ApplyForJob(ctx context.Context, jobID int64) (*Application, error)
	GetApplication(ctx context.Context, id int64) (*Application, error)
	ListCandidateApplications(ctx context.Context, candidateID string) ([]Application, error)
	ListJobApplications(ctx context.Context, jobID int64) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status ApplicationStatus) error
	ListAllApplications(ctx context.Context) ([]Application, error)
}
