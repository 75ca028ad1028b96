package http

import (
	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers the account routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.PUT("/me/profile", h.UpdateProfile)

	admin := rg.Group("/users")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("", h.ListUsers)
	admin.PUT("/:uid/role", h.SetRole)
}
