package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
	"github.com/clubnatacion/swimclub-backend/internal/attendance/service"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type Handler struct {
	attendanceService *service.AttendanceService
}

func NewHandler(attendanceService *service.AttendanceService) *Handler {
	return &Handler{attendanceService: attendanceService}
}

type attendanceEntry struct {
	AthleteID string `json:"athleteId" binding:"required"`
	Present   bool   `json:"present"`
	Justified bool   `json:"justified"`
	Note      string `json:"note,omitempty"`
}

type saveSessionRequest struct {
	Date    string            `json:"date" binding:"required"` // ISO YYYY-MM-DD
	GroupID string            `json:"groupId" binding:"required"`
	Entries []attendanceEntry `json:"entries" binding:"required"`
}

type sessionMetaRequest struct {
	Date              string   `json:"date" binding:"required"`
	Cancelled         bool     `json:"cancelled"`
	ExceptionalGroups []string `json:"exceptionalGroups,omitempty"`
}

// SaveSession upserts one session's records; re-saving overwrites.
func (h *Handler) SaveSession(c *gin.Context) {
	var body saveSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recordedBy := ""
	if user := middleware.CurrentUser(c); user != nil {
		recordedBy = user.UID
	}

	records := make([]*domain.Attendance, 0, len(body.Entries))
	for _, e := range body.Entries {
		records = append(records, &domain.Attendance{
			AthleteID:  e.AthleteID,
			Date:       body.Date,
			GroupID:    body.GroupID,
			Present:    e.Present,
			Justified:  e.Justified,
			Note:       e.Note,
			RecordedBy: recordedBy,
		})
	}

	saved, err := h.attendanceService.SaveSession(c.Request.Context(), records)
	if errors.Is(err, swimtime.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved, "total": len(records)})
}

// Session returns one (date, group) session with its metadata.
func (h *Handler) Session(c *gin.Context) {
	dateISO := c.Query("date")
	groupID := c.Query("groupId")
	if dateISO == "" || groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and groupId are required"})
		return
	}

	records, sessionMeta, err := h.attendanceService.Session(c.Request.Context(), dateISO, groupID)
	if errors.Is(err, swimtime.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "meta": sessionMeta})
}

// AthleteHistory returns one athlete's attendance records.
func (h *Handler) AthleteHistory(c *gin.Context) {
	records, err := h.attendanceService.AthleteHistory(c.Request.Context(), c.Param("athleteId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// SetSessionMeta upserts per-date metadata (cancellation, exceptional groups).
func (h *Handler) SetSessionMeta(c *gin.Context) {
	var body sessionMetaRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m := &domain.SessionMeta{
		Date:              body.Date,
		Cancelled:         body.Cancelled,
		ExceptionalGroups: body.ExceptionalGroups,
	}

	err := h.attendanceService.SetSessionMeta(c.Request.Context(), m)
	if errors.Is(err, swimtime.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
