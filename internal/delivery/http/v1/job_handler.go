package v1

import (
	"net/http"
	"strconv"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public reads: anonymous callers see published postings only, owners
	// and admins see everything of theirs.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.ListFiltered)
		publicJobs.GET("/:id", handler.Get)
	}
	public.GET("/employers/:principal/jobs", handler.ListByEmployer)

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title       string           `json:"title" binding:"required"`
	Slug        string           `json:"slug"`
	Description string           `json:"description" binding:"required"`
	Location    string           `json:"location" binding:"required"`
	Salary      int64            `json:"salary" binding:"min=0"`
	JobType     domain.JobType   `json:"jobType" binding:"required"`
	Status      domain.JobStatus `json:"status" binding:"required"`
}

func (r JobRequest) toInput() domain.JobInput {
	return domain.JobInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Location:    r.Location,
		Salary:      r.Salary,
		JobType:     r.JobType,
		Status:      r.Status,
	}
}

// Create godoc
// @Summary      Create a job posting
// @Description  Create a new posting owned by the calling employer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.SaveJob(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Overwrite the mutable fields of a posting the caller owns
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Description  Remove a posting; its applications are kept
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// Get resolves a posting by numeric id or by slug; the two lookups stay
// separate operations underneath. An all-digit segment is tried as an id
// first, then as a slug, so a posting titled "2024" stays reachable.
//
// @Summary      Get job details
// @Description  Look up a posting by id or slug; hidden postings read as null
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID or slug"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	param := c.Param("id")

	var job *domain.Job
	var err error
	if id, parseErr := strconv.ParseInt(param, 10, 64); parseErr == nil {
		job, err = h.jobUC.GetJob(c.Request.Context(), id)
		if err == nil && job == nil {
			job, err = h.jobUC.GetJobBySlug(c.Request.Context(), param)
		}
	} else {
		job, err = h.jobUC.GetJobBySlug(c.Request.Context(), param)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// ListFiltered evaluates the optional query predicates; the server applies
// the visibility rule on top whatever filters the client sends.
//
// @Summary      List jobs
// @Description  Filtered catalog listing; visibility rules always apply
// @Tags         jobs
// @Produce      json
// @Param        status     query     string  false  "Job status"
// @Param        jobType    query     string  false  "Job type"
// @Param        keyword    query     string  false  "Keyword over title and description"
// @Param        location   query     string  false  "Location substring"
// @Param        salaryMin  query     int     false  "Inclusive salary lower bound"
// @Param        salaryMax  query     int     false  "Inclusive salary upper bound"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListFiltered(c *gin.Context) {
	filters, appErr := parseJobFilters(c)
	if appErr != nil {
		c.Error(appErr)
		return
	}

	jobs, err := h.jobUC.ListFilteredJobs(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// ListByEmployer godoc
// @Summary      List an employer's postings
// @Description  Every status for the owner and admins, published only otherwise
// @Tags         employers
// @Produce      json
// @Param        principal  path      string  true  "Employer principal"
// @Success      200  {object}  response.Response
// @Router       /employers/{principal}/jobs [get]
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), c.Param("principal"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer jobs", jobs)
}

func parseJobFilters(c *gin.Context) (domain.JobFilters, *apperror.AppError) {
	var filters domain.JobFilters

	if v := c.Query("status"); v != "" {
		status := domain.JobStatus(v)
		if !status.Valid() {
			return filters, apperror.BadRequest("Invalid status filter")
		}
		filters.Status = &status
	}
	if v := c.Query("jobType"); v != "" {
		jobType := domain.JobType(v)
		if !jobType.Valid() {
			return filters, apperror.BadRequest("Invalid jobType filter")
		}
		filters.JobType = &jobType
	}
	if v := c.Query("keyword"); v != "" {
		filters.Keyword = &v
	}
	if v := c.Query("location"); v != "" {
		filters.Location = &v
	}

	minStr, maxStr := c.Query("salaryMin"), c.Query("salaryMax")
	if minStr != "" || maxStr != "" {
		if minStr == "" || maxStr == "" {
			return filters, apperror.BadRequest("salaryMin and salaryMax must be supplied together")
		}
		min, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil {
			return filters, apperror.BadRequest("Invalid salaryMin")
		}
		max, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return filters, apperror.BadRequest("Invalid salaryMax")
		}
		if min > max {
			return filters, apperror.BadRequest("salaryMin cannot be greater than salaryMax")
		}
		filters.SalaryRange = &domain.SalaryRange{Min: min, Max: max}
	}

	return filters, nil
}
