package domain

import "strings"

// SalaryRange is an inclusive [min, max] bound.
type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// JobFilters is a conjunction of optional predicates over the job catalog.
// Nil fields impose no constraint.
type JobFilters struct {
	Status      *JobStatus   `json:"status,omitempty"`
	JobType     *JobType     `json:"jobType,omitempty"`
	Keyword     *string      `json:"keyword,omitempty"`
	Location    *string      `json:"location,omitempty"`
	SalaryRange *SalaryRange `json:"salaryRange,omitempty"`
}

// Match reports whether the job satisfies every present predicate.
// Keyword matches title or description, case-insensitive; location is a
// case-insensitive substring match; salary bounds are inclusive.
func (f JobFilters) Match(job Job) bool {
	if f.Status != nil && job.Status != *f.Status {
		return false
	}
	if f.JobType != nil && job.JobType != *f.JobType {
		return false
	}
	if f.Keyword != nil {
		kw := strings.ToLower(*f.Keyword)
		if !strings.Contains(strings.ToLower(job.Title), kw) &&
			!strings.Contains(strings.ToLower(job.Description), kw) {
			return false
		}
	}
	if f.Location != nil {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(*f.Location)) {
			return false
		}
	}
	if f.SalaryRange != nil {
		if job.Salary < f.SalaryRange.Min || job.Salary > f.SalaryRange.Max {
			return false
		}
	}
	return true
}
