package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospotalent-backend/config"
	_ "hospotalent-backend/docs" // Important for Swagger
	v1 "hospotalent-backend/internal/delivery/http/v1"
	"hospotalent-backend/internal/repository/postgres"
	"hospotalent-backend/internal/usecase"
	"hospotalent-backend/pkg/database"
	"hospotalent-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           HOSPO TALENT API
// @version         1.0
// @description     Recruitment marketplace backend for hospitality jobs.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting recruitment marketplace backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	profileRepo := postgres.NewUserProfileRepository(dbPool)
	roleRepo := postgres.NewSystemRoleRepository(dbPool)
	candidateRepo := postgres.NewCandidateProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, roleRepo, applicationRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, applicationRepo, validate)
	employerUC := usecase.NewEmployerUsecase(employerRepo, applicationRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo)
	adminUC := usecase.NewAdminUsecase(statsRepo)

	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CandidateUC:   candidateUC,
		EmployerUC:    employerUC,
		AdminUC:       adminUC,
		ProfileRepo:   profileRepo,
		RoleRepo:      roleRepo,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
