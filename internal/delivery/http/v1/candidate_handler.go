package v1

import (
	"net/http"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	protected.PUT("/me/candidate-profile", handler.SaveProfile)
	protected.GET("/candidates/:principal", handler.GetProfile)
}

type CandidateProfileRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	Resume     *string  `json:"resume"`
}

// SaveProfile godoc
// @Summary      Save the caller's candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      CandidateProfileRequest  true  "Candidate profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /me/candidate-profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) SaveProfile(c *gin.Context) {
	var req CandidateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		Name:       req.Name,
		Email:      req.Email,
		Experience: req.Experience,
		Skills:     req.Skills,
		Resume:     req.Resume,
	}

	if err := h.candidateUC.SaveProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile saved", profile)
}

// GetProfile godoc
// @Summary      Get a candidate profile
// @Description  Owner, admins, and employers with an application from this candidate
// @Tags         candidates
// @Produce      json
// @Param        principal  path      string  true  "Candidate principal"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidates/{principal} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetProfile(c.Request.Context(), c.Param("principal"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}
