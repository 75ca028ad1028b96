package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers the event routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)

	staff := rg.Group("")
	staff.Use(middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleCoach))
	staff.POST("", h.Create)
	staff.PUT("/:id/status", h.SetStatus)
}
