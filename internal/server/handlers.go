package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	animationHttp "github.com/animaforge/scene-forge/internal/animations/delivery/http"
	animationRepository "github.com/animaforge/scene-forge/internal/animations/repository"
	animationUsecase "github.com/animaforge/scene-forge/internal/animations/usecase"
	authHttp "github.com/animaforge/scene-forge/internal/auth/delivery/http"
	authRepository "github.com/animaforge/scene-forge/internal/auth/repository"
	authUsecase "github.com/animaforge/scene-forge/internal/auth/usecase"
	"github.com/animaforge/scene-forge/internal/middleware"
	"github.com/animaforge/scene-forge/internal/script"
	"github.com/animaforge/scene-forge/internal/worker"
	"github.com/animaforge/scene-forge/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	jobRepo := animationRepository.NewAnimationRepo(s.db)
	jobAWSRepo := animationRepository.NewAwsRepository(s.s3Client, s.preSignClient, s.cfg.S3.Bucket)
	jobRedisRepo := animationRepository.NewAnimationRedisRepo(s.redisClient)

	scriptClient := script.NewScriptClient(s.cfg, s.logger)
	processor := worker.NewProcessor(s.cfg, jobRepo, jobRedisRepo, jobAWSRepo, scriptClient, s.logger)
	s.dispatcher = worker.NewDispatcher(s.cfg, processor, s.logger)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	animationUC := animationUsecase.NewAnimationUseCase(s.cfg, jobRepo, jobRedisRepo, jobAWSRepo, s.dispatcher, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	animationHandlers := animationHttp.NewAnimationHandler(animationUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	animationGroup := v1.Group("/animations")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw, authUC, s.cfg)
	animationHttp.MapAnimationRoutes(animationGroup, animationHandlers, mw, authUC, s.cfg)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
