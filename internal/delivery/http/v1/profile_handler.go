package v1

import (
	"net/http"

	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	me := protected.Group("/me")
	{
		me.PUT("/profile", handler.SaveCallerProfile)
		me.GET("/profile", handler.GetCallerProfile)
		me.GET("/system-role", handler.GetCallerSystemRole)
		me.GET("/is-admin", handler.IsCallerAdmin)
	}

	protected.GET("/users/:principal", handler.GetUserProfile)
}

type SaveProfileRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required,email"`
	AppRole domain.AppRole `json:"appRole" binding:"required"`
}

// SaveCallerProfile upserts the caller's base profile. On re-save the
// stored app role wins; the payload role only matters at first setup.
// @Summary      Save the caller's profile
// @Description  Create or update the base profile; app role is fixed at creation
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      SaveProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /me/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveCallerProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.SaveCallerProfile(c.Request.Context(), req.Name, req.Email, req.AppRole)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// GetCallerProfile returns null data when the caller has no profile yet;
// the client uses that to open first-run setup.
// @Summary      Get the caller's profile
// @Description  Null data means profile setup has not happened yet
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /me/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCallerProfile(c *gin.Context) {
	profile, err := h.profileUC.GetCallerProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Caller profile", profile)
}

// GetCallerSystemRole godoc
// @Summary      Get the caller's system role
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /me/system-role [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCallerSystemRole(c *gin.Context) {
	role := h.profileUC.GetCallerSystemRole(c.Request.Context())
	response.Success(c, http.StatusOK, "Caller system role", gin.H{"role": role})
}

// IsCallerAdmin godoc
// @Summary      Report whether the caller is a platform admin
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /me/is-admin [get]
// @Security     BearerAuth
func (h *ProfileHandler) IsCallerAdmin(c *gin.Context) {
	isAdmin := h.profileUC.IsCallerAdmin(c.Request.Context())
	response.Success(c, http.StatusOK, "Caller admin status", gin.H{"is_admin": isAdmin})
}

// GetUserProfile godoc
// @Summary      Look up a user profile
// @Description  Owner, admins, and employers holding an application from the principal
// @Tags         profiles
// @Produce      json
// @Param        principal  path      string  true  "Principal"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/{principal} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	profile, err := h.profileUC.GetUserProfile(c.Request.Context(), c.Param("principal"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", profile)
}
