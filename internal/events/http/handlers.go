package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/events/domain"
	"github.com/clubnatacion/swimclub-backend/internal/events/service"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type Handler struct {
	eventService *service.EventService
}

func NewHandler(eventService *service.EventService) *Handler {
	return &Handler{eventService: eventService}
}

type createEventRequest struct {
	Name       string `json:"name" binding:"required"`
	Date       string `json:"date" binding:"required"` // ISO YYYY-MM-DD
	Location   string `json:"location" binding:"required"`
	PoolLength int    `json:"poolLength" binding:"required"`
	Qualifying bool   `json:"qualifying"`
}

type setStatusRequest struct {
	Status domain.Status `json:"status" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var body createEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e := &domain.Event{
		Name:       body.Name,
		Date:       body.Date,
		Location:   body.Location,
		PoolLength: body.PoolLength,
		Qualifying: body.Qualifying,
	}

	err := h.eventService.Create(c.Request.Context(), e)
	if errors.Is(err, swimtime.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("open") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": e})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var body setStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Status != domain.StatusOpen && body.Status != domain.StatusClosed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be abierto or cerrado"})
		return
	}

	err := h.eventService.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if errors.Is(err, domain.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
