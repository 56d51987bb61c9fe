package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/logger"
	"github.com/animaforge/scene-forge/pkg/utils"
)

type animationHandler struct {
	animationUC animations.UseCase
	logger      logger.Logger
}

func NewAnimationHandler(animationUC animations.UseCase, log logger.Logger) animations.Handler {
	return &animationHandler{
		animationUC: animationUC,
		logger:      log,
	}
}

func (h *animationHandler) CreateAnimation() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		input := &models.CreateAnimationInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		job, err := h.animationUC.CreateJob(c.Request().Context(), user.UserID, input)
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			h.logger.Errorf("CreateAnimation RequestID: %s, ERROR: %s", utils.GetRequestID(c), err.Error())
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create animation"})
		}

		return c.JSON(http.StatusCreated, job)
	}
}

func (h *animationHandler) GetAnimationByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		job, err := h.animationUC.GetJob(c.Request().Context(), c.Param("job_id"))
		if err != nil {
			return h.jobError(c, err)
		}
		if job.UserID != user.UserID.String() && user.Role != models.AdminRole {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Animation not found"})
		}

		return c.JSON(http.StatusOK, job)
	}
}

func (h *animationHandler) GetAnimationStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		status, err := h.animationUC.GetJobStatus(c.Request().Context(), c.Param("job_id"))
		if err != nil {
			return h.jobError(c, err)
		}
		return c.JSON(http.StatusOK, status)
	}
}

func (h *animationHandler) GetProgramURL() echo.HandlerFunc {
	return func(c echo.Context) error {
		url, err := h.animationUC.GetProgramURL(c.Request().Context(), c.Param("job_id"))
		if err != nil {
			if errors.Is(err, models.ErrJobNotFound) || errors.Is(err, models.ErrInvalidInput) {
				return h.jobError(c, err)
			}
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"programUrl": url})
	}
}

func (h *animationHandler) ListAnimations() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		jobs, err := h.animationUC.ListJobs(c.Request().Context(), user.UserID, pagination)
		if err != nil {
			h.logger.Errorf("ListAnimations RequestID: %s, ERROR: %s", utils.GetRequestID(c), err.Error())
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list animations"})
		}
		return c.JSON(http.StatusOK, jobs)
	}
}

func (h *animationHandler) jobError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrJobNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Animation not found"})
	case errors.Is(err, models.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.logger.Errorf("animation handler RequestID: %s, ERROR: %s", utils.GetRequestID(c), err.Error())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
