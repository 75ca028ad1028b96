package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/livequery"
)

// StreamFactory builds the cached live query for one athlete's results.
type StreamFactory func(athleteID string) *livequery.Query

// ResultsCacheKey is the snapshot key for one athlete's results stream.
func ResultsCacheKey(athleteID string) string {
	return "ath_prog_results_v9:" + athleteID
}

// Stream pushes an athlete's results over Server-Sent Events: an immediate
// event from the cached snapshot when one exists, then one per remote change.
func (h *Handler) Stream(c *gin.Context) {
	if h.streamFactory == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "streaming unavailable"})
		return
	}

	athleteID := c.Param("athleteId")
	if athleteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "athlete ID is required"})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ctx := c.Request.Context()
	updates := h.streamFactory(athleteID).Run(ctx)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case u, ok := <-updates:
			if !ok {
				return
			}
			if u.Err != nil {
				data, _ := json.Marshal(gin.H{"error": u.Err.Error()})
				fmt.Fprintf(c.Writer, "event: degraded\ndata: %s\n\n", data)
				flusher.Flush()
				continue
			}

			data, _ := json.Marshal(gin.H{"source": u.Source, "results": u.Docs})
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", u.Source, data)
			flusher.Flush()
		}
	}
}
