package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/standards/service"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type Handler struct {
	standardService *service.StandardService
	defaultSeason   int
}

func NewHandler(standardService *service.StandardService, defaultSeason int) *Handler {
	return &Handler{standardService: standardService, defaultSeason: defaultSeason}
}

type importRequest struct {
	Text       string `json:"text" binding:"required"`
	SeasonYear int    `json:"seasonYear"`
}

// Import bulk-loads standards from pasted sheet text.
func (h *Handler) Import(c *gin.Context) {
	var body importRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.SeasonYear == 0 {
		body.SeasonYear = h.defaultSeason
	}

	report, err := h.standardService.Import(c.Request.Context(), body.Text, body.SeasonYear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Season lists the standards loaded for one season.
func (h *Handler) Season(c *gin.Context) {
	season := h.defaultSeason
	if v := c.Query("season"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season"})
			return
		}
		season = n
	}

	standards, err := h.standardService.Season(c.Request.Context(), season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"season": season, "standards": standards})
}

// Evaluate compares a time against the matching standard.
func (h *Handler) Evaluate(c *gin.Context) {
	season := h.defaultSeason
	if v := c.Query("season"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season"})
			return
		}
		season = n
	}

	distance, err := strconv.Atoi(c.Query("distance"))
	if err != nil || distance <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid distance"})
		return
	}

	timeMs, err := swimtime.ParseDisplay(c.Query("time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time"})
		return
	}

	category := c.Query("category")
	gender := c.Query("gender")
	style := c.Query("style")
	if category == "" || gender == "" || style == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category, gender and style are required"})
		return
	}

	eval, err := h.standardService.Evaluate(c.Request.Context(), season, category, gender, distance, style, timeMs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, eval)
}
