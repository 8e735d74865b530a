package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime  JobType = "fullTime"
	JobTypePartTime  JobType = "partTime"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance:
		return true
	}
	return false
}

// Job is a posting owned by a single employer. The slug is derived from the
// title at creation and never regenerated on edit.
type Job struct {
	ID          int64     `json:"id"`
	EmployerID  string    `json:"employerId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	JobType     JobType   `json:"jobType"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"modified"`
}

// JobInput carries the mutable posting fields for create and update.
type JobInput struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	JobType     JobType   `json:"jobType"`
	Status      JobStatus `json:"status"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetBySlug(ctx context.Context, slug string) (*Job, error)
	// FetchAll returns every posting ordered by id so listings are
	// deterministic for a fixed catalog state.
	FetchAll(ctx context.Context) ([]Job, error)
	FetchByEmployer(ctx context.Context, employerID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	SaveJob(ctx context.Context, input JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id int64, input JobInput) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	GetJobBySlug(ctx context.Context, slug string) (*Job, error)
	ListFilteredJobs(ctx context.Context, filters JobFilters) ([]Job, error)
	ListEmployerJobs(ctx context.Context, employerID string) ([]Job, error)
	ListAllJobs(ctx context.Context) ([]Job, error)
}
