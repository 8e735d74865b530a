package usecase_test

import (
	"testing"

	"hospotalent-backend/internal/domain"
	"hospotalent-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func applicationMocks(t *testing.T) (*MockApplicationRepo, *MockJobRepo, *MockCandidateRepo, domain.ApplicationUsecase) {
	t.Helper()
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	candRepo := new(MockCandidateRepo)
	return appRepo, jobRepo, candRepo, usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)
}

func TestApplyForJob(t *testing.T) {
	candidateCtx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
	published := &domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusPublished}

	t.Run("requires the candidate role", func(t *testing.T) {
		_, _, _, uc := applicationMocks(t)
		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		_, err := uc.ApplyForJob(ctx, 1)
		assertCode(t, err, 403)
	})

	t.Run("requires a candidate profile", func(t *testing.T) {
		_, _, candRepo, uc := applicationMocks(t)
		candRepo.On("GetByPrincipal", mock.Anything, "cand").Return(nil, domain.ErrNotFound)

		_, err := uc.ApplyForJob(candidateCtx, 1)
		assertCode(t, err, 403)
		assert.Contains(t, err.Error(), "candidate profile")
	})

	t.Run("non-published jobs read as missing", func(t *testing.T) {
		_, jobRepo, candRepo, uc := applicationMocks(t)
		candRepo.On("GetByPrincipal", mock.Anything, "cand").Return(&domain.CandidateProfile{Principal: "cand"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusDraft}, nil)

		_, err := uc.ApplyForJob(candidateCtx, 1)
		assertCode(t, err, 404)
	})

	t.Run("second application is rejected", func(t *testing.T) {
		appRepo, jobRepo, candRepo, uc := applicationMocks(t)
		candRepo.On("GetByPrincipal", mock.Anything, "cand").Return(&domain.CandidateProfile{Principal: "cand"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(published, nil)
		appRepo.On("Exists", mock.Anything, int64(1), "cand").Return(true, nil)

		_, err := uc.ApplyForJob(candidateCtx, 1)
		assertCode(t, err, 409)
	})

	t.Run("creates with status applied", func(t *testing.T) {
		appRepo, jobRepo, candRepo, uc := applicationMocks(t)
		candRepo.On("GetByPrincipal", mock.Anything, "cand").Return(&domain.CandidateProfile{Principal: "cand"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(published, nil)
		appRepo.On("Exists", mock.Anything, int64(1), "cand").Return(false, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.ApplyForJob(candidateCtx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, "cand", app.CandidateID)
		assert.False(t, app.AppliedAt.IsZero())
	})
}

func TestGetApplicationAccess(t *testing.T) {
	stored := &domain.Application{ID: 5, JobID: 1, CandidateID: "cand", Status: domain.ApplicationStatusApplied}
	job := &domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusPublished}

	t.Run("the job's employer may view", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)

		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		app, err := uc.GetApplication(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), app.ID)
	})

	t.Run("an unrelated candidate may not", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)

		ctx := authCtx("stranger", domain.AppRoleCandidate, domain.SystemRoleUser)
		_, err := uc.GetApplication(ctx, 5)
		assertCode(t, err, 403)
	})

	t.Run("employer loses access once the job is deleted", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		_, err := uc.GetApplication(ctx, 5)
		assertCode(t, err, 403)

		ctx = authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
		app, err := uc.GetApplication(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), app.ID)
	})

	t.Run("missing application is absent, not an error", func(t *testing.T) {
		appRepo, _, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		ctx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
		app, err := uc.GetApplication(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, app)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	stored := &domain.Application{ID: 5, JobID: 1, CandidateID: "cand", Status: domain.ApplicationStatusHired}
	job := &domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusPublished}

	t.Run("rejects unknown statuses", func(t *testing.T) {
		_, _, _, uc := applicationMocks(t)
		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		err := uc.UpdateApplicationStatus(ctx, 5, domain.ApplicationStatus("promoted"))
		assertCode(t, err, 400)
	})

	t.Run("any valid transition is allowed, including backwards", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusApplied).Return(nil)

		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		assert.NoError(t, uc.UpdateApplicationStatus(ctx, 5, domain.ApplicationStatusApplied))
		appRepo.AssertExpectations(t)
	})

	t.Run("the candidate may not move their own application", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)

		ctx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
		err := uc.UpdateApplicationStatus(ctx, 5, domain.ApplicationStatusShortlisted)
		assertCode(t, err, 403)
	})

	t.Run("orphaned applications are admin-only", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		appRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusRejected).Return(nil)

		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		err := uc.UpdateApplicationStatus(ctx, 5, domain.ApplicationStatusRejected)
		assertCode(t, err, 403)

		ctx = authCtx("root", "", domain.SystemRoleAdmin)
		assert.NoError(t, uc.UpdateApplicationStatus(ctx, 5, domain.ApplicationStatusRejected))
	})
}

func TestListCandidateApplications(t *testing.T) {
	t.Run("owner lists their own", func(t *testing.T) {
		appRepo, _, _, uc := applicationMocks(t)
		appRepo.On("FetchByCandidate", mock.Anything, "cand").Return([]domain.Application{{ID: 1, CandidateID: "cand"}}, nil)

		ctx := authCtx("cand", domain.AppRoleCandidate, domain.SystemRoleUser)
		apps, err := uc.ListCandidateApplications(ctx, "cand")
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("another candidate is rejected", func(t *testing.T) {
		_, _, _, uc := applicationMocks(t)
		ctx := authCtx("other", domain.AppRoleCandidate, domain.SystemRoleUser)
		_, err := uc.ListCandidateApplications(ctx, "cand")
		assertCode(t, err, 403)
	})
}

func TestListJobApplications(t *testing.T) {
	job := &domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusPublished}

	t.Run("only the posting employer or an admin may list", func(t *testing.T) {
		_, jobRepo, _, uc := applicationMocks(t)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)

		ctx := authCtx("other", domain.AppRoleEmployer, domain.SystemRoleUser)
		_, err := uc.ListJobApplications(ctx, 1)
		assertCode(t, err, 403)
	})

	t.Run("owner sees applications for the job", func(t *testing.T) {
		appRepo, jobRepo, _, uc := applicationMocks(t)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(job, nil)
		appRepo.On("FetchByJob", mock.Anything, int64(1)).Return([]domain.Application{{ID: 1, JobID: 1}}, nil)

		ctx := authCtx("emp", domain.AppRoleEmployer, domain.SystemRoleUser)
		apps, err := uc.ListJobApplications(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}
