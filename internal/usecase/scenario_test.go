package usecase_test

import (
	"context"
	"sort"
	"testing"

	"hospotalent-backend/internal/domain"
	"hospotalent-backend/internal/usecase"
	"hospotalent-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories for end-to-end flows through the real usecases.

type fakeEmployerRepo struct {
	profiles map[string]domain.EmployerProfile
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{profiles: make(map[string]domain.EmployerProfile)}
}

func (r *fakeEmployerRepo) Upsert(_ context.Context, profile *domain.EmployerProfile) error {
	r.profiles[profile.Principal] = *profile
	return nil
}

func (r *fakeEmployerRepo) GetByPrincipal(_ context.Context, principal string) (*domain.EmployerProfile, error) {
	p, ok := r.profiles[principal]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakeEmployerRepo) FetchAll(_ context.Context) ([]domain.EmployerProfile, error) {
	out := make([]domain.EmployerProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Principal < out[j].Principal })
	return out, nil
}

type fakeCandidateRepo struct {
	profiles map[string]domain.CandidateProfile
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{profiles: make(map[string]domain.CandidateProfile)}
}

func (r *fakeCandidateRepo) Upsert(_ context.Context, profile *domain.CandidateProfile) error {
	r.profiles[profile.Principal] = *profile
	return nil
}

func (r *fakeCandidateRepo) GetByPrincipal(_ context.Context, principal string) (*domain.CandidateProfile, error) {
	p, ok := r.profiles[principal]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakeCandidateRepo) FetchAll(_ context.Context) ([]domain.CandidateProfile, error) {
	out := make([]domain.CandidateProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Principal < out[j].Principal })
	return out, nil
}

type fakeJobRepo struct {
	jobs   map[int64]domain.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]domain.Job), nextID: 1}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func (r *fakeJobRepo) GetBySlug(_ context.Context, slug string) (*domain.Job, error) {
	for _, j := range r.jobs {
		if j.Slug == slug {
			return &j, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeJobRepo) FetchAll(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeJobRepo) FetchByEmployer(_ context.Context, employerID string) ([]domain.Job, error) {
	out := make([]domain.Job, 0)
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	apps   map[int64]domain.Application
	jobs   *fakeJobRepo
	nextID int64
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[int64]domain.Application), jobs: jobs, nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.CandidateID == app.CandidateID {
			return apperror.Conflict("You have already applied to this job")
		}
	}
	app.ID = r.nextID
	r.nextID++
	r.apps[app.ID] = *app
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *fakeApplicationRepo) FetchByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	out := make([]domain.Application, 0)
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeApplicationRepo) FetchByCandidate(_ context.Context, candidateID string) ([]domain.Application, error) {
	out := make([]domain.Application, 0)
	for _, a := range r.apps {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeApplicationRepo) FetchAll(_ context.Context) ([]domain.Application, error) {
	out := make([]domain.Application, 0, len(r.apps))
	for _, a := range r.apps {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeApplicationRepo) Exists(_ context.Context, jobID int64, candidateID string) (bool, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ExistsForEmployer(ctx context.Context, candidateID, employerID string) (bool, error) {
	for _, a := range r.apps {
		if a.CandidateID != candidateID {
			continue
		}
		job, err := r.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			continue
		}
		if job.EmployerID == employerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	r.apps[id] = a
	return nil
}

type marketplace struct {
	employers    domain.EmployerUsecase
	candidates   domain.CandidateUsecase
	jobs         domain.JobUsecase
	applications domain.ApplicationUsecase
}

func newMarketplace() *marketplace {
	employerRepo := newFakeEmployerRepo()
	candidateRepo := newFakeCandidateRepo()
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo(jobRepo)
	validate := validator.New()

	return &marketplace{
		employers:    usecase.NewEmployerUsecase(employerRepo, applicationRepo, validate),
		candidates:   usecase.NewCandidateUsecase(candidateRepo, applicationRepo, validate),
		jobs:         usecase.NewJobUsecase(jobRepo, employerRepo),
		applications: usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo),
	}
}

func TestHiringFlow(t *testing.T) {
	m := newMarketplace()
	employerCtx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
	candidateCtx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
	guestCtx := context.Background()

	require.NoError(t, m.employers.SaveProfile(employerCtx, &domain.EmployerProfile{
		CompanyName: "Harbour Bistro",
		Email:       "jobs@harbourbistro.example",
	}))
	require.NoError(t, m.candidates.SaveProfile(candidateCtx, &domain.CandidateProfile{
		Name:   "Casey",
		Email:  "casey@example.com",
		Skills: []string{"barista", "front of house"},
	}))

	job, err := m.jobs.SaveJob(employerCtx, domain.JobInput{
		Title:       "Sous Chef",
		Description: "Second in the kitchen",
		Location:    "Melbourne",
		Salary:      75000,
		JobType:     domain.JobTypeFullTime,
		Status:      domain.JobStatusDraft,
	})
	require.NoError(t, err)
	require.Equal(t, "sous-chef", job.Slug)

	// Draft is invisible to the public, by id and by slug alike.
	got, err := m.jobs.GetJobBySlug(guestCtx, "sous-chef")
	require.NoError(t, err)
	assert.Nil(t, got)
	got, err = m.jobs.GetJob(candidateCtx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// A candidate cannot apply to a job they cannot see.
	_, err = m.applications.ApplyForJob(candidateCtx, job.ID)
	assertCode(t, err, 404)

	// Publish, then the posting and the application path open up.
	input := domain.JobInput{
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Salary:      job.Salary,
		JobType:     job.JobType,
		Status:      domain.JobStatusPublished,
	}
	_, err = m.jobs.UpdateJob(employerCtx, job.ID, input)
	require.NoError(t, err)

	got, err = m.jobs.GetJobBySlug(guestCtx, "sous-chef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.JobStatusPublished, got.Status)

	app, err := m.applications.ApplyForJob(candidateCtx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, app.Status)

	// A second application bounces and leaves exactly one on record.
	_, err = m.applications.ApplyForJob(candidateCtx, job.ID)
	assertCode(t, err, 409)
	apps, err := m.applications.ListJobApplications(employerCtx, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	// Now that they applied, the employer can read the candidate profile.
	profile, err := m.candidates.GetProfile(employerCtx, "cand")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Casey", profile.Name)

	// Shortlisting shows up in the candidate's own listing.
	require.NoError(t, m.applications.UpdateApplicationStatus(employerCtx, app.ID, domain.ApplicationStatusShortlisted))
	mine, err := m.applications.ListCandidateApplications(candidateCtx, "cand")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, domain.ApplicationStatusShortlisted, mine[0].Status)

	// Status moves freely, including back to applied.
	require.NoError(t, m.applications.UpdateApplicationStatus(employerCtx, app.ID, domain.ApplicationStatusHired))
	require.NoError(t, m.applications.UpdateApplicationStatus(employerCtx, app.ID, domain.ApplicationStatusApplied))
	mine, err = m.applications.ListCandidateApplications(candidateCtx, "cand")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, mine[0].Status)
}

func TestDeletedJobLeavesOrphanedApplications(t *testing.T) {
	m := newMarketplace()
	employerCtx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
	candidateCtx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
	adminCtx := authCtx("root", "", domain.SystemRoleAdmin)

	require.NoError(t, m.employers.SaveProfile(employerCtx, &domain.EmployerProfile{
		CompanyName: "Harbour Bistro",
		Email:       "jobs@harbourbistro.example",
	}))
	require.NoError(t, m.candidates.SaveProfile(candidateCtx, &domain.CandidateProfile{
		Name:  "Casey",
		Email: "casey@example.com",
	}))

	job, err := m.jobs.SaveJob(employerCtx, domain.JobInput{
		Title:       "Barista",
		Description: "Morning shifts",
		Location:    "Sydney",
		Salary:      55000,
		JobType:     domain.JobTypePartTime,
		Status:      domain.JobStatusPublished,
	})
	require.NoError(t, err)

	app, err := m.applications.ApplyForJob(candidateCtx, job.ID)
	require.NoError(t, err)

	require.NoError(t, m.jobs.DeleteJob(employerCtx, job.ID))

	// The application survives with its dangling job id.
	mine, err := m.applications.ListCandidateApplications(candidateCtx, "cand")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].JobID)

	// The candidate still reads it; the employer no longer can.
	got, err := m.applications.GetApplication(candidateCtx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	_, err = m.applications.GetApplication(employerCtx, app.ID)
	assertCode(t, err, 403)

	// Only an admin can still move its status.
	err = m.applications.UpdateApplicationStatus(employerCtx, app.ID, domain.ApplicationStatusRejected)
	assertCode(t, err, 403)
	require.NoError(t, m.applications.UpdateApplicationStatus(adminCtx, app.ID, domain.ApplicationStatusRejected))

	// The slug is free again for a new posting.
	again, err := m.jobs.SaveJob(employerCtx, domain.JobInput{
		Title:       "Barista",
		Description: "Evening shifts",
		Location:    "Sydney",
		Salary:      56000,
		JobType:     domain.JobTypePartTime,
		Status:      domain.JobStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "barista", again.Slug)
	assert.NotEqual(t, job.ID, again.ID)
}

func TestSlugCollisionAcrossEmployers(t *testing.T) {
	m := newMarketplace()
	empA := authCtx("emp-a", domain.AppRoleEmployer, domain.SystemRoleUser)
	empB := authCtx("emp-b", domain.AppRoleEmployer, domain.SystemRoleUser)

	require.NoError(t, m.employers.SaveProfile(empA, &domain.EmployerProfile{CompanyName: "A", Email: "a@example.com"}))
	require.NoError(t, m.employers.SaveProfile(empB, &domain.EmployerProfile{CompanyName: "B", Email: "b@example.com"}))

	input := domain.JobInput{
		Title:       "Head Chef",
		Description: "Run the kitchen",
		Location:    "Melbourne",
		Salary:      90000,
		JobType:     domain.JobTypeFullTime,
		Status:      domain.JobStatusPublished,
	}
	_, err := m.jobs.SaveJob(empA, input)
	require.NoError(t, err)

	// Same title from another employer collides on the derived slug.
	_, err = m.jobs.SaveJob(empB, input)
	assertCode(t, err, 409)

	// An explicit slug sidesteps the collision.
	input.Slug = "head-chef-b"
	job, err := m.jobs.SaveJob(empB, input)
	require.NoError(t, err)
	assert.Equal(t, "head-chef-b", job.Slug)
}
