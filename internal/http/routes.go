package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "volunteer-hub.com/volunteer-hub/internal/http/middlewares"
	"volunteer-hub.com/volunteer-hub/internal/services"
)

func Register(e *echo.Echo, h *Handler, auth *services.AuthService, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.GET("/health", h.Health)

	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:id", h.GetProject)

	api.POST("/applications", h.CreateApplication)
	api.POST("/login", h.Login)

	// Staff-only views of submitted applications.
	admin := api.Group("", middleware.RequireSession(auth))
	admin.GET("/applications", h.ListApplications)
	admin.GET("/projects/:id/applications", h.ListProjectApplications)
	admin.POST("/logout", h.Logout)
}
