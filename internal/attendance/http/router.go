package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers the attendance routes. Session saves and metadata are
// staff actions; histories are readable by any signed-in account.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/session", h.Session)
	rg.GET("/athletes/:athleteId", h.AthleteHistory)

	staff := rg.Group("")
	staff.Use(middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleCoach))
	staff.POST("/session", h.SaveSession)
	staff.PUT("/session/meta", h.SetSessionMeta)
}
