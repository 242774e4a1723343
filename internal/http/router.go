package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"igclean/internal/handler"
)

func NewRouter(cleanHandler *handler.CleanHandler, staticDir string, rateLimit float64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	if limiter := RateLimitMiddleware(rateLimit); limiter != nil {
		api.Use(limiter)
	}
	cleanHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)
	return e
}
