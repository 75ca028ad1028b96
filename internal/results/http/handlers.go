package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/results/domain"
	"github.com/clubnatacion/swimclub-backend/internal/results/service"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type Handler struct {
	resultService *service.ResultService

	// streamFactory builds the cached live query for one athlete's results.
	// Nil disables the SSE endpoint (e.g. in tests without Firestore).
	streamFactory StreamFactory
}

func NewHandler(resultService *service.ResultService, streamFactory StreamFactory) *Handler {
	return &Handler{resultService: resultService, streamFactory: streamFactory}
}

type recordResultRequest struct {
	AthleteID  string        `json:"athleteId" binding:"required"`
	EventID    *string       `json:"eventId,omitempty"`
	Style      string        `json:"style" binding:"required"`
	Distance   int           `json:"distance" binding:"required"`
	Time       string        `json:"time" binding:"required"` // MM:SS.cc family
	Date       string        `json:"date" binding:"required"` // ISO YYYY-MM-DD
	Origin     domain.Origin `json:"origin" binding:"required"`
	PoolLength int           `json:"poolLength" binding:"required"`
}

// Record stores one performance.
func (h *Handler) Record(c *gin.Context) {
	var body recordResultRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Origin != domain.OriginRace && body.Origin != domain.OriginTraining {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin must be Race or Training"})
		return
	}

	res := &domain.Result{
		AthleteID:  body.AthleteID,
		EventID:    body.EventID,
		Style:      body.Style,
		Distance:   body.Distance,
		Date:       body.Date,
		Origin:     body.Origin,
		PoolLength: body.PoolLength,
	}

	err := h.resultService.Record(c.Request.Context(), res, body.Time)
	if errors.Is(err, swimtime.ErrInvalidTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time"})
		return
	}
	if errors.Is(err, swimtime.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": res})
}

// History lists an athlete's results, filterable by ?style=&distance=&pool=.
func (h *Handler) History(c *gin.Context) {
	athleteID := c.Param("athleteId")

	results, err := h.resultService.History(
		c.Request.Context(),
		athleteID,
		c.Query("style"),
		intQuery(c, "distance"),
		intQuery(c, "pool"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Progress returns aggregate statistics, with an optional ?target=YYYY-MM-DD
// trend projection.
func (h *Handler) Progress(c *gin.Context) {
	athleteID := c.Param("athleteId")

	var targetDate *time.Time
	if raw := c.Query("target"); raw != "" {
		t, err := swimtime.ParseISO(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date"})
			return
		}
		targetDate = &t
	}

	progress, err := h.resultService.Progress(
		c.Request.Context(),
		athleteID,
		c.Query("style"),
		intQuery(c, "distance"),
		intQuery(c, "pool"),
		targetDate,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// EventResults lists every record for one meet.
func (h *Handler) EventResults(c *gin.Context) {
	results, err := h.resultService.EventResults(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
