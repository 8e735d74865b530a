package v1

import (
	"net/http"
	"strconv"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobs/:id/applications", handler.ListByJob)

	applications := protected.Group("/applications")
	{
		applications.GET("/:id", handler.Get)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}

	protected.GET("/candidates/:principal/applications", handler.ListByCandidate)
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Create the caller's application for a published posting
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	app, err := h.applicationUC.ApplyForJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// Get godoc
// @Summary      Get application details
// @Description  Visible to the candidate, the posting's employer, and admins
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// ListByJob godoc
// @Summary      List applications for a job
// @Description  Owner and admins only
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	apps, err := h.applicationUC.ListJobApplications(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// ListByCandidate godoc
// @Summary      List a candidate's applications
// @Description  The candidate themselves or an admin
// @Tags         applications
// @Produce      json
// @Param        principal  path      string  true  "Candidate principal"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidates/{principal}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	apps, err := h.applicationUC.ListCandidateApplications(c.Request.Context(), c.Param("principal"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate applications", apps)
}

type UpdateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move an application to any valid status (owner or admin)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "Status JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
