package v1

import (
	"net/http"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	protected.PUT("/me/employer-profile", handler.SaveProfile)
	protected.GET("/employers/:principal", handler.GetProfile)
}

type EmployerProfileRequest struct {
	CompanyName        string `json:"companyName" binding:"required"`
	CompanyDescription string `json:"companyDescription"`
	CompanyLocation    string `json:"companyLocation"`
	Email              string `json:"email" binding:"required,email"`
}

// SaveProfile godoc
// @Summary      Save the caller's employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        profile  body      EmployerProfileRequest  true  "Employer profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /me/employer-profile [put]
// @Security     BearerAuth
func (h *EmployerHandler) SaveProfile(c *gin.Context) {
	var req EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.EmployerProfile{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyLocation:    req.CompanyLocation,
		Email:              req.Email,
	}

	if err := h.employerUC.SaveProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile saved", profile)
}

// GetProfile godoc
// @Summary      Get an employer profile
// @Description  Owner, admins, and candidates who applied to this employer
// @Tags         employers
// @Produce      json
// @Param        principal  path      string  true  "Employer principal"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employers/{principal} [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	profile, err := h.employerUC.GetProfile(c.Request.Context(), c.Param("principal"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}
