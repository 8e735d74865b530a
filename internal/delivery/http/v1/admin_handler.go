package v1

import (
	"net/http"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the platform-administration surface. Every route is
// gated on the system role axis inside the usecases.
type AdminHandler struct {
	profileUC     domain.ProfileUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
	candidateUC   domain.CandidateUsecase
	employerUC    domain.EmployerUsecase
	adminUC       domain.AdminUsecase
}

func NewAdminHandler(
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	jobUC domain.JobUsecase,
	applicationUC domain.ApplicationUsecase,
	candidateUC domain.CandidateUsecase,
	employerUC domain.EmployerUsecase,
	adminUC domain.AdminUsecase,
) {
	handler := &AdminHandler{
		profileUC:     profileUC,
		jobUC:         jobUC,
		applicationUC: applicationUC,
		candidateUC:   candidateUC,
		employerUC:    employerUC,
		adminUC:       adminUC,
	}

	admin := protected.Group("/admin")
	{
		admin.POST("/system-roles", handler.AssignSystemRole)
		admin.GET("/jobs", handler.ListAllJobs)
		admin.GET("/applications", handler.ListAllApplications)
		admin.GET("/candidates", handler.ListAllCandidates)
		admin.GET("/employers", handler.ListAllEmployers)
		admin.GET("/stats", handler.GetStats)
	}
}

type AssignRoleRequest struct {
	Principal string            `json:"principal" binding:"required"`
	Role      domain.SystemRole `json:"role" binding:"required"`
}

// AssignSystemRole godoc
// @Summary      Assign a system role
// @Description  Elevate or demote a principal on the platform axis
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        assignment  body      AssignRoleRequest  true  "Assignment JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/system-roles [post]
// @Security     BearerAuth
func (h *AdminHandler) AssignSystemRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.AssignSystemRole(c.Request.Context(), req.Principal, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "System role assigned", nil)
}

// ListAllJobs godoc
// @Summary      List every posting
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListAllJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListAllJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All jobs", jobs)
}

// ListAllApplications godoc
// @Summary      List every application
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/applications [get]
// @Security     BearerAuth
func (h *AdminHandler) ListAllApplications(c *gin.Context) {
	apps, err := h.applicationUC.ListAllApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All applications", apps)
}

// ListAllCandidates godoc
// @Summary      List every candidate profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/candidates [get]
// @Security     BearerAuth
func (h *AdminHandler) ListAllCandidates(c *gin.Context) {
	candidates, err := h.candidateUC.ListAllCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All candidates", candidates)
}

// ListAllEmployers godoc
// @Summary      List every employer profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/employers [get]
// @Security     BearerAuth
func (h *AdminHandler) ListAllEmployers(c *gin.Context) {
	employers, err := h.employerUC.ListAllEmployers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All employers", employers)
}

// GetStats godoc
// @Summary      Platform counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Platform stats", stats)
}
