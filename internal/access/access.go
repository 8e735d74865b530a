// Package access holds the authorization predicates for every operation.
// Each rule is a pure function over the caller identity and the target
// entity so it can be tested without storage.
package access

import (
	"context"

	"hospotalent-backend/internal/domain"
)

// Identity is the resolved caller. Principal is empty for anonymous
// callers; AppRole is empty until the principal has saved a UserProfile.
type Identity struct {
	Principal  string
	AppRole    domain.AppRole
	SystemRole domain.SystemRole
}

// FromContext rebuilds the identity the auth middleware stored on the
// request context. Missing keys resolve to an anonymous guest.
func FromContext(ctx context.Context) Identity {
	id := Identity{SystemRole: domain.SystemRoleGuest}
	if p, ok := ctx.Value(domain.KeyPrincipal).(string); ok {
		id.Principal = p
	}
	if r, ok := ctx.Value(domain.KeyAppRole).(domain.AppRole); ok {
		id.AppRole = r
	}
	if r, ok := ctx.Value(domain.KeySystemRole).(domain.SystemRole); ok && r.Valid() {
		id.SystemRole = r
	}
	return id
}

func (id Identity) Authenticated() bool {
	return id.Principal != ""
}

func (id Identity) IsSystemAdmin() bool {
	return id.SystemRole == domain.SystemRoleAdmin
}

// IsAdmin reports whether the caller is privileged on either role axis.
func (id Identity) IsAdmin() bool {
	return id.IsSystemAdmin() || id.AppRole == domain.AppRoleAdmin
}

// CanViewJob implements the visibility rule: non-owners without admin
// privileges only ever see published postings, regardless of any
// caller-supplied status filter.
func CanViewJob(id Identity, job domain.Job) bool {
	if job.Status == domain.JobStatusPublished {
		return true
	}
	return id.IsAdmin() || id.Principal == job.EmployerID
}

// CanManageJob gates updateJob, deleteJob, listJobApplications and
// updateApplicationStatus on the posting's applications.
func CanManageJob(id Identity, job domain.Job) bool {
	return id.IsAdmin() || (id.Principal != "" && id.Principal == job.EmployerID)
}

// CanViewApplication allows the owning candidate, the employer of the
// referenced job, and admins. job is nil when the posting has been deleted;
// the employer relationship can no longer be established then.
func CanViewApplication(id Identity, app domain.Application, job *domain.Job) bool {
	if id.IsAdmin() || id.Principal == app.CandidateID {
		return true
	}
	return job != nil && id.Principal != "" && id.Principal == job.EmployerID
}

// CanViewCandidateApplications gates listCandidateApplications to the
// candidate themselves or an admin.
func CanViewCandidateApplications(id Identity, candidateID string) bool {
	return id.IsAdmin() || (id.Principal != "" && id.Principal == candidateID)
}

// CanAssignSystemRoles gates role elevation and the admin listings.
// Only the platform axis counts here, never the business role.
func CanAssignSystemRoles(id Identity) bool {
	return id.IsSystemAdmin()
}
