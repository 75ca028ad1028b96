package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers the qualifying-standards routes. Reads are open to any
// signed-in account; bulk import is a staff action.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Season)
	rg.GET("/evaluate", h.Evaluate)

	staff := rg.Group("")
	staff.Use(middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleCoach))
	staff.POST("/import", h.Import)
}
