package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/groups/domain"
	"github.com/clubnatacion/swimclub-backend/internal/groups/service"
)

type Handler struct {
	groupService *service.GroupService
}

func NewHandler(groupService *service.GroupService) *Handler {
	return &Handler{groupService: groupService}
}

type createGroupRequest struct {
	Name             string                        `json:"name" binding:"required"`
	HeadCoach        string                        `json:"headCoach" binding:"required"`
	AssistantCoaches []string                      `json:"assistantCoaches,omitempty"`
	Schedule         map[string][]domain.TimeRange `json:"schedule,omitempty"`
}

type updateGroupRequest struct {
	Name             *string                       `json:"name,omitempty"`
	HeadCoach        *string                       `json:"headCoach,omitempty"`
	AssistantCoaches []string                      `json:"assistantCoaches,omitempty"`
	Schedule         map[string][]domain.TimeRange `json:"schedule,omitempty"`
}

func (h *Handler) Create(c *gin.Context) {
	var body createGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g := &domain.Group{
		Name:             body.Name,
		HeadCoach:        body.HeadCoach,
		AssistantCoaches: body.AssistantCoaches,
		Schedule:         body.Schedule,
	}
	if err := h.groupService.Create(c.Request.Context(), g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": g})
}

func (h *Handler) List(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *Handler) Get(c *gin.Context) {
	g, err := h.groupService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": g})
}

func (h *Handler) Update(c *gin.Context) {
	var body updateGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.HeadCoach != nil {
		fields["headCoach"] = *body.HeadCoach
	}
	if body.AssistantCoaches != nil {
		fields["assistantCoaches"] = body.AssistantCoaches
	}
	if body.Schedule != nil {
		fields["schedule"] = body.Schedule
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := h.groupService.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) RemoveMember(c *gin.Context) {
	err := h.groupService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("athleteId"))
	if errors.Is(err, domain.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
