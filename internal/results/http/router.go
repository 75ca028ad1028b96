package http

import (
	"github.com/gin-gonic/gin"

	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
)

// Register registers the result routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/athletes/:athleteId", h.History)
	rg.GET("/athletes/:athleteId/progress", h.Progress)
	rg.GET("/athletes/:athleteId/stream", h.Stream)
	rg.GET("/events/:eventId", h.EventResults)

	staff := rg.Group("")
	staff.Use(middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleCoach))
	staff.POST("", h.Record)
}
