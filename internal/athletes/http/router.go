package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers athlete routes. Registration is open to any signed-in
// account (self-registration lands in pending); lifecycle actions are
// restricted to staff.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/stream", h.Stream)
	rg.GET("/:id", h.Get)

	staff := rg.Group("")
	staff.Use(middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleCoach))
	staff.PUT("/:id", h.Update)
	staff.POST("/:id/activate", h.Activate)
	staff.POST("/:id/deactivate", h.Deactivate)
}
