package v1

import (
	"net/http"

	"hospotalent-backend/config"
	"hospotalent-backend/internal/delivery/http/middleware"
	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	EmployerUC    domain.EmployerUsecase
	AdminUC       domain.AdminUsecase
	ProfileRepo   domain.UserProfileRepository
	RoleRepo      domain.SystemRoleRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	resolver := middleware.RoleResolver{
		Profiles: deps.ProfileRepo,
		Roles:    deps.RoleRepo,
		Cfg:      deps.Config,
	}

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public reads resolve an identity when a token is present so owners
	// see their own drafts; anonymous callers browse as guests.
	public := v1.Group("")
	public.Use(middleware.Identify(resolver))

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(resolver))

	NewJobHandler(public, protected, deps.JobUC)
	NewProfileHandler(protected, deps.ProfileUC)
	NewCandidateHandler(protected, deps.CandidateUC)
	NewEmployerHandler(protected, deps.EmployerUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewAdminHandler(protected, deps.ProfileUC, deps.JobUC, deps.ApplicationUC, deps.CandidateUC, deps.EmployerUC, deps.AdminUC)

	return r
}
