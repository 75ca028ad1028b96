package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	"github.com/clubnatacion/swimclub-backend/internal/athletes/service"
)

// AthleteService is the slice of the athlete service the handlers need; the
// interface keeps handler tests free of real Firestore clients.
type AthleteService interface {
	Register(ctx context.Context, a *domain.Athlete, rut string) error
	Get(ctx context.Context, id string) (*service.AthleteView, error)
	List(ctx context.Context, st domain.Status, search string) ([]*service.AthleteView, error)
	Activate(ctx context.Context, athleteID, groupID string) error
	Deactivate(ctx context.Context, athleteID string) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type Handler struct {
	athleteService AthleteService
	streamFactory  StreamFactory
}

func NewHandler(athleteService AthleteService, streamFactory StreamFactory) *Handler {
	return &Handler{athleteService: athleteService, streamFactory: streamFactory}
}

type registerAthleteRequest struct {
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birthDate" binding:"required"` // ISO YYYY-MM-DD
	Gender     string `json:"gender" binding:"required"`
	SeasonYear int    `json:"seasonYear,omitempty"`
	RUT        string `json:"rut,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
}

type activateAthleteRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}

type updateAthleteRequest struct {
	Name      *string `json:"name,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
}

// Create registers a pending athlete (self-registration or admin entry).
func (h *Handler) Create(c *gin.Context) {
	var body registerAthleteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a := &domain.Athlete{
		Name:       body.Name,
		BirthDate:  body.BirthDate,
		Gender:     body.Gender,
		SeasonYear: body.SeasonYear,
	}
	if body.PhotoURL != "" {
		a.PhotoURL = &body.PhotoURL
	}

	err := h.athleteService.Register(c.Request.Context(), a, body.RUT)
	if errors.Is(err, domain.ErrInvalidBirthDate) || errors.Is(err, domain.ErrInvalidRUT) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"athlete": a})
}

// List returns athletes, filterable by ?status= and ?q= (normalized search).
func (h *Handler) List(c *gin.Context) {
	st := domain.Status(c.Query("status"))
	switch st {
	case "", domain.StatusPending, domain.StatusActive, domain.StatusInactive:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	views, err := h.athleteService.List(c.Request.Context(), st, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"athletes": views})
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.athleteService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrAthleteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"athlete": view})
}

// Activate moves a pending athlete into a group (admin action).
func (h *Handler) Activate(c *gin.Context) {
	var body activateAthleteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.athleteService.Activate(c.Request.Context(), c.Param("id"), body.GroupID)
	if errors.Is(err, domain.ErrAlreadyInGroup) {
		c.JSON(http.StatusConflict, gin.H{"error": "athlete already belongs to a group"})
		return
	}
	if errors.Is(err, domain.ErrAthleteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "activated"})
}

// Deactivate rejects or retires an athlete.
func (h *Handler) Deactivate(c *gin.Context) {
	err := h.athleteService.Deactivate(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrAthleteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// Update merges editable biographical fields.
func (h *Handler) Update(c *gin.Context) {
	var body updateAthleteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.BirthDate != nil {
		fields["birthDate"] = *body.BirthDate
	}
	if body.Gender != nil {
		fields["gender"] = *body.Gender
	}
	if body.PhotoURL != nil {
		fields["photoUrl"] = *body.PhotoURL
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := h.athleteService.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
