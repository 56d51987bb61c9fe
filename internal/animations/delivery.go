package animations

import "github.com/labstack/echo/v4"

type Handler interface {
	CreateAnimation() echo.HandlerFunc
	GetAnimationByID() echo.HandlerFunc
	GetAnimationStatus() echo.HandlerFunc
	GetProgramURL() echo.HandlerFunc
	ListAnimations() echo.HandlerFunc
}
