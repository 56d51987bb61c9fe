package http

import (
	"github.com/labstack/echo/v4"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/auth"
	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/middleware"
)

func MapAnimationRoutes(animationGroup *echo.Group, h animations.Handler, mw *middleware.MiddlewareManager, authUC auth.UseCase, cfg *config.Config) {
	animationGroup.Use(mw.AuthJWTMiddleware(authUC, cfg))
	animationGroup.POST("", h.CreateAnimation())
	animationGroup.GET("", h.ListAnimations())
	animationGroup.GET("/:job_id", h.GetAnimationByID())
	animationGroup.GET("/:job_id/status", h.GetAnimationStatus())
	animationGroup.GET("/:job_id/program", h.GetProgramURL())
}
